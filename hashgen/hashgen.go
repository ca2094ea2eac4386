// Package hashgen derives Fiat-Shamir challenges from group elements.
package hashgen

import (
	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/group"
	"github.com/digitalid/cryptography/internal/common"
)

// Bits is the bit length of the challenges returned by this package.
const Bits = common.HashBits

// Generate hashes the values of elements, in order, to a non-negative
// integer of at most Bits bits.
func Generate(elements ...*group.Element) *big.Int {
	values := make([]*big.Int, len(elements))
	for i, e := range elements {
		if e != nil {
			values[i] = e.Value()
		}
	}
	return common.HashCommit(values)
}

// GenerateFromInts hashes raw integers the same way Generate hashes element
// values.
func GenerateFromInts(values ...*big.Int) *big.Int {
	return common.HashCommit(values)
}

// GenerateExponent returns the challenge for elements as an exponent.
func GenerateExponent(elements ...*group.Element) *group.Exponent {
	return group.NewExponent(Generate(elements...))
}
