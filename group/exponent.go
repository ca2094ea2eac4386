package group

import (
	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/internal/common"

	"lukechampine.com/frand"
)

// Exponent is an integer that is not bound to a group.
type Exponent struct {
	Number
}

// NewExponent returns the exponent with the given value.
func NewExponent(value *big.Int) *Exponent {
	return &Exponent{Number: newNumber(value)}
}

// RandomExponent returns an exponent chosen uniformly from [0, 2^bits).
func RandomExponent(bits uint) *Exponent {
	max := new(big.Int).Lsh(bigONE, bits)
	return &Exponent{Number: Number{value: big.Convert(frand.BigIntn(max.Go()))}}
}

// Add returns x + y.
func (x *Exponent) Add(y *Exponent) *Exponent {
	return &Exponent{Number: Number{value: new(big.Int).Add(x.value, y.value)}}
}

// Subtract returns x - y, which may be negative.
func (x *Exponent) Subtract(y *Exponent) *Exponent {
	return &Exponent{Number: Number{value: new(big.Int).Sub(x.value, y.value)}}
}

// Multiply returns x * y.
func (x *Exponent) Multiply(y *Exponent) *Exponent {
	return &Exponent{Number: Number{value: new(big.Int).Mul(x.value, y.value)}}
}

// Mod returns x reduced modulo the order of g. It panics if the order is
// unknown.
func (x *Exponent) Mod(g *Group) *Exponent {
	if g.order == nil {
		panic("group: reduction requires a group with known order")
	}
	return &Exponent{Number: Number{value: new(big.Int).Mod(x.value, g.order)}}
}

// Inverse returns the inverse of x modulo the order of g. It panics if the
// order is unknown or x is not relatively prime to it.
func (x *Exponent) Inverse(g *Group) *Exponent {
	if g.order == nil {
		panic("group: inversion requires a group with known order")
	}
	inv, ok := common.ModInverse(new(big.Int).Mod(x.value, g.order), g.order)
	if !ok {
		panic("group: exponent is not relatively prime to the group order")
	}
	return &Exponent{Number: Number{value: inv}}
}

// IsRelativelyPrime reports whether x is relatively prime to the order of g.
func (x *Exponent) IsRelativelyPrime(g *Group) bool {
	if g.order == nil {
		panic("group: coprimality to the order requires a group with known order")
	}
	return common.IsCoprime(x.value, g.order)
}

// Equal reports whether x and y have the same value.
func (x *Exponent) Equal(y *Exponent) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.equalValue(y.Number)
}
