package group

import (
	"fmt"

	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/internal/common"

	"github.com/go-errors/errors"
	"lukechampine.com/frand"
)

// Group is the multiplicative group of integers modulo a composite modulus.
// The order of the group is only known to whoever generated the modulus; a
// Group without order is a group with unknown order, which is all a verifier
// ever gets to see.
type Group struct {
	modulus *big.Int
	order   *big.Int // nil if unknown
}

var (
	ErrInvalidModulus = errors.New("group modulus must be at least 2")
	ErrInvalidOrder   = errors.New("group order must be positive and smaller than the modulus")
)

var bigONE = big.NewInt(1)

// NewGroupWithUnknownOrder returns the group modulo modulus.
func NewGroupWithUnknownOrder(modulus *big.Int) (*Group, error) {
	if modulus == nil || modulus.Cmp(bigONE) <= 0 {
		return nil, ErrInvalidModulus
	}
	return &Group{modulus: new(big.Int).Set(modulus)}, nil
}

// NewGroupWithKnownOrder returns the group modulo modulus whose order is known.
func NewGroupWithKnownOrder(modulus, order *big.Int) (*Group, error) {
	g, err := NewGroupWithUnknownOrder(modulus)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Sign() <= 0 || order.Cmp(modulus) >= 0 {
		return nil, ErrInvalidOrder
	}
	g.order = new(big.Int).Set(order)
	return g, nil
}

// Modulus returns a copy of the modulus of g.
func (g *Group) Modulus() *big.Int {
	return new(big.Int).Set(g.modulus)
}

// Order returns a copy of the order of g, or nil if the order is unknown.
func (g *Group) Order() *big.Int {
	if g.order == nil {
		return nil
	}
	return new(big.Int).Set(g.order)
}

// HasKnownOrder reports whether the order of g is known.
func (g *Group) HasKnownOrder() bool {
	return g.order != nil
}

// WithUnknownOrder returns the same group with its order stripped.
func (g *Group) WithUnknownOrder() *Group {
	return &Group{modulus: g.modulus}
}

// Equal reports whether g and h have the same modulus.
func (g *Group) Equal(h *Group) bool {
	if g == h {
		return true
	}
	if g == nil || h == nil {
		return false
	}
	return g.modulus.Cmp(h.modulus) == 0
}

// Contains reports whether value is a canonical representative, that is
// 0 <= value < modulus.
func (g *Group) Contains(value *big.Int) bool {
	return value.Sign() >= 0 && value.Cmp(g.modulus) < 0
}

// Element returns the element of g with the given value reduced modulo the
// modulus, for any sign and magnitude of value.
func (g *Group) Element(value *big.Int) *Element {
	return &Element{
		Number: Number{value: new(big.Int).Mod(value, g.modulus)},
		group:  g,
	}
}

// One returns the neutral element of g.
func (g *Group) One() *Element {
	return g.Element(bigONE)
}

// RandomElement returns a uniformly chosen unit of g.
func (g *Group) RandomElement() *Element {
	return g.Element(common.RandomUnit(g.modulus))
}

// RandomQuadraticResidue returns a random square unit of g.
func (g *Group) RandomQuadraticResidue() *Element {
	return g.Element(common.RandomQR(g.modulus))
}

// RandomExponent returns an exponent chosen uniformly below the order of g.
// It panics if the order of g is unknown.
func (g *Group) RandomExponent() *Exponent {
	if g.order == nil {
		panic("group: random exponent requires a group with known order")
	}
	return &Exponent{Number: Number{value: big.Convert(frand.BigIntn(g.order.Go()))}}
}

func (g *Group) String() string {
	if g.order == nil {
		return fmt.Sprintf("Z*_%s", g.modulus.String())
	}
	return fmt.Sprintf("Z*_%s (order %s)", g.modulus.String(), g.order.String())
}
