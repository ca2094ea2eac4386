package group

import (
	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/internal/common"
)

// Element is a number in a group. Its value v always satisfies
// 0 <= v < modulus.
type Element struct {
	Number
	group *Group
}

// Group returns the group of e.
func (e *Element) Group() *Group {
	return e.group
}

// InGroup reports whether e is an element of g.
func (e *Element) InGroup(g *Group) bool {
	return e.group.Equal(g)
}

func (e *Element) check(f *Element) {
	if !e.group.Equal(f.group) {
		panic("group: elements are in different groups")
	}
}

// Add returns e + f.
func (e *Element) Add(f *Element) *Element {
	e.check(f)
	return e.group.Element(new(big.Int).Add(e.value, f.value))
}

// Subtract returns e - f.
func (e *Element) Subtract(f *Element) *Element {
	e.check(f)
	return e.group.Element(new(big.Int).Sub(e.value, f.value))
}

// Multiply returns e * f.
func (e *Element) Multiply(f *Element) *Element {
	e.check(f)
	return e.group.Element(new(big.Int).Mul(e.value, f.value))
}

// Inverse returns the multiplicative inverse of e. It panics if e is not
// relatively prime to the modulus.
func (e *Element) Inverse() *Element {
	inv, ok := common.ModInverse(e.value, e.group.modulus)
	if !ok {
		panic("group: element is not relatively prime to the modulus")
	}
	return e.group.Element(inv)
}

// Pow returns e raised to x.
func (e *Element) Pow(x *Exponent) *Element {
	return e.PowInt(x.value)
}

// PowInt returns e raised to the non-negative integer x. It panics if x is
// negative; invert the element first instead.
func (e *Element) PowInt(x *big.Int) *Element {
	if x.Sign() < 0 {
		panic("group: negative exponent")
	}
	return e.group.Element(new(big.Int).Exp(e.value, x, e.group.modulus))
}

// IsRelativelyPrime reports whether e is relatively prime to the modulus.
func (e *Element) IsRelativelyPrime() bool {
	return common.IsCoprime(e.value, e.group.modulus)
}

// IsOne reports whether e is the neutral element.
func (e *Element) IsOne() bool {
	return e.value.Cmp(bigONE) == 0
}

// Equal reports whether e and f are the same element of the same group.
func (e *Element) Equal(f *Element) bool {
	if e == nil || f == nil {
		return e == f
	}
	return e.group.Equal(f.group) && e.equalValue(f.Number)
}
