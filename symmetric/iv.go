package symmetric

import (
	"crypto/aes"
	"encoding/hex"

	"lukechampine.com/frand"
)

// InitializationVector is the initialization vector of a CBC encryption.
type InitializationVector [aes.BlockSize]byte

// NewInitializationVector returns a random initialization vector.
func NewInitializationVector() InitializationVector {
	var iv InitializationVector
	frand.Read(iv[:])
	return iv
}

// InitializationVectorFromBytes returns the initialization vector consisting
// of bts, which must be exactly aes.BlockSize bytes long.
func InitializationVectorFromBytes(bts []byte) (InitializationVector, error) {
	var iv InitializationVector
	if len(bts) != len(iv) {
		return iv, ErrInvalidEncoding
	}
	copy(iv[:], bts)
	return iv, nil
}

func (iv InitializationVector) String() string {
	return hex.EncodeToString(iv[:])
}
