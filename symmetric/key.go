// Package symmetric provides AES keys derived from integers, used in CBC mode
// with PKCS#7 padding and explicit initialization vectors.
//
// Callers must not reuse an initialization vector with the same key.
package symmetric

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/internal/common"
	"github.com/digitalid/cryptography/params"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.StandardLogger()

var (
	// ErrInvalidEncoding is returned when a ciphertext or initialization
	// vector is malformed.
	ErrInvalidEncoding = errors.New("invalid symmetric encoding")

	ErrNegativeValue = errors.New("symmetric key value must not be negative")
)

// Key is an AES key derived from a non-negative integer.
type Key struct {
	value *big.Int
	key   []byte
	block cipher.Block
}

// NewKey derives a key of p.EncryptionKey bits from value. The big-endian
// bytes of value are right-aligned in the key: shorter values are padded with
// zeros on the left and longer values lose their leading bytes.
func NewKey(p *params.Parameters, value *big.Int) (*Key, error) {
	ensureEnvironment()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if value.Sign() < 0 {
		return nil, ErrNegativeValue
	}

	key := make([]byte, p.EncryptionKeyBytes())
	bts := value.Bytes()
	if len(bts) > len(key) {
		bts = bts[len(bts)-len(key):]
	}
	copy(key[len(key)-len(bts):], bts)

	block, err := aes.NewCipher(key)
	if err != nil {
		// Validate only admits AES key lengths
		panic(err)
	}
	return &Key{value: new(big.Int).Set(value), key: key, block: block}, nil
}

// RandomKey returns a key derived from a random value of p.EncryptionKey bits.
func RandomKey(p *params.Parameters) (*Key, error) {
	value, err := common.RandomBigInt(p.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return NewKey(p, value)
}

// Value returns a copy of the value the key was derived from.
func (k *Key) Value() *big.Int {
	return new(big.Int).Set(k.value)
}

// Bytes returns a copy of the AES key.
func (k *Key) Bytes() []byte {
	return append([]byte(nil), k.key...)
}

// Equal reports whether k and other were derived from the same value.
func (k *Key) Equal(other *Key) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.value.Cmp(other.value) == 0 && len(k.key) == len(other.key)
}

func checkRange(bts []byte, offset, length int) {
	if offset < 0 || length <= 0 || offset+length > len(bts) {
		panic("symmetric: invalid offset or length")
	}
}

// Encrypt encrypts length bytes of bts starting at offset. It panics if the
// range does not lie within bts or is empty.
func (k *Key) Encrypt(iv InitializationVector, bts []byte, offset, length int) []byte {
	checkRange(bts, offset, length)
	ciphertext := pad(bts[offset:offset+length], aes.BlockSize)
	cipher.NewCBCEncrypter(k.block, iv[:]).CryptBlocks(ciphertext, ciphertext)
	return ciphertext
}

// Decrypt decrypts length bytes of bts starting at offset. It returns
// ErrInvalidEncoding if the ciphertext is not a multiple of the block size or
// its padding is invalid, and panics if the range does not lie within bts or
// is empty.
func (k *Key) Decrypt(iv InitializationVector, bts []byte, offset, length int) ([]byte, error) {
	checkRange(bts, offset, length)
	if length%aes.BlockSize != 0 {
		return nil, ErrInvalidEncoding
	}
	plaintext := make([]byte, length)
	cipher.NewCBCDecrypter(k.block, iv[:]).CryptBlocks(plaintext, bts[offset:offset+length])
	return unpad(plaintext, aes.BlockSize)
}
