package common

import (
	"crypto/sha256"
	"encoding/asn1"

	"github.com/digitalid/cryptography/big"

	gobig "math/big"
)

// HashCommit computes the sha256 hash over the asn1 representation of a slice
// of big integers and returns the positive big integer represented by that
// hash. The number of values is encoded first, so the result depends on both
// the values and their order.
func HashCommit(values []*big.Int) *big.Int {
	tmp := make([]interface{}, len(values)+1)
	tmp[0] = gobig.NewInt(int64(len(values)))
	for i, v := range values {
		if v == nil {
			// asn1 cannot encode a nil integer; an absent value hashes as -1,
			// which no element of a group can take.
			tmp[i+1] = gobig.NewInt(-1)
			continue
		}
		tmp[i+1] = v.Go()
	}
	r, err := asn1.Marshal(tmp)
	if err != nil {
		panic(err) // Marshal should never error, so panic if it does
	}

	sha := sha256.Sum256(r)
	return new(big.Int).SetBytes(sha[:])
}

// HashBits is the bit length of the values returned by HashCommit.
const HashBits = sha256.Size * 8
