package keys

import (
	"sync"

	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/group"
	"github.com/digitalid/cryptography/hashgen"
)

// PublicKeyData is the external representation of a public key: the tuple
// (compositeModulus, e, ab, au, ai, av, ao, t, su, si, sv, so, squareModulus,
// g, y, zPlus1). The order is fixed since the subgroup proof hashes in order.
type PublicKeyData struct {
	_ struct{} `cbor:",toarray"`

	CompositeModulus *big.Int `xml:"CompositeGroup>Modulus"`
	E                *big.Int `xml:"CompositeGroup>E"`
	Ab               *big.Int `xml:"CompositeGroup>Bases>ab"`
	Au               *big.Int `xml:"CompositeGroup>Bases>au"`
	Ai               *big.Int `xml:"CompositeGroup>Bases>ai"`
	Av               *big.Int `xml:"CompositeGroup>Bases>av"`
	Ao               *big.Int `xml:"CompositeGroup>Bases>ao"`
	T                *big.Int `xml:"SubgroupProof>t"`
	Su               *big.Int `xml:"SubgroupProof>su"`
	Si               *big.Int `xml:"SubgroupProof>si"`
	Sv               *big.Int `xml:"SubgroupProof>sv"`
	So               *big.Int `xml:"SubgroupProof>so"`
	SquareModulus    *big.Int `xml:"SquareGroup>Modulus"`
	G                *big.Int `xml:"SquareGroup>g"`
	Y                *big.Int `xml:"SquareGroup>y"`
	ZPlus1           *big.Int `xml:"SquareGroup>zPlus1"`
}

// PublicKey is a public key whose subgroup proof has been verified.
type PublicKey struct {
	compositeGroup     *group.Group
	e                  *group.Exponent
	ab, au, ai, av, ao *group.Element
	t, su, si, sv, so  *group.Exponent

	squareGroup  *group.Group
	g, y, zPlus1 *group.Element

	validate   sync.Once
	validation error
}

// NewPublicKey decodes data into a public key, checks that all values are in
// range and verifies the subgroup proof. It returns ErrInvalidEncoding for
// malformed data and ErrInvalidSubgroupProof if the proof does not verify.
func NewPublicKey(data PublicKeyData) (*PublicKey, error) {
	pk, err := decodePublicKey(&data)
	if err != nil {
		return nil, err
	}
	if err = pk.Validate(); err != nil {
		return nil, err
	}
	return pk, nil
}

func decodePublicKey(data *PublicKeyData) (*PublicKey, error) {
	for i, v := range []*big.Int{
		data.CompositeModulus, data.E, data.Ab, data.Au, data.Ai, data.Av, data.Ao,
		data.T, data.Su, data.Si, data.Sv, data.So,
		data.SquareModulus, data.G, data.Y, data.ZPlus1,
	} {
		if v == nil {
			return nil, invalidEncoding("value %d of the public key is missing", i)
		}
		if v.Sign() < 0 {
			return nil, invalidEncoding("value %d of the public key is negative", i)
		}
	}

	composite, err := group.NewGroupWithUnknownOrder(data.CompositeModulus)
	if err != nil {
		return nil, invalidEncoding("composite group: %v", err)
	}
	square, err := group.NewGroupWithUnknownOrder(data.SquareModulus)
	if err != nil {
		return nil, invalidEncoding("square group: %v", err)
	}

	pk := &PublicKey{compositeGroup: composite, squareGroup: square}

	bases := []**group.Element{&pk.ab, &pk.au, &pk.ai, &pk.av, &pk.ao}
	for i, v := range []*big.Int{data.Ab, data.Au, data.Ai, data.Av, data.Ao} {
		if *bases[i], err = unit(composite, v); err != nil {
			return nil, err
		}
	}
	values := []**group.Element{&pk.g, &pk.y, &pk.zPlus1}
	for i, v := range []*big.Int{data.G, data.Y, data.ZPlus1} {
		if *values[i], err = unit(square, v); err != nil {
			return nil, err
		}
	}

	// The square modulus is n'^2 and zPlus1 is n'+1.
	nPrime := new(big.Int).Sub(data.ZPlus1, bigONE)
	if new(big.Int).Mul(nPrime, nPrime).Cmp(data.SquareModulus) != 0 {
		return nil, invalidEncoding("zPlus1 does not match the square group")
	}

	if data.E.Cmp(bigONE) <= 0 {
		return nil, invalidEncoding("e must be larger than 1")
	}
	if data.T.BitLen() > hashgen.Bits {
		return nil, invalidEncoding("t exceeds %d bits", hashgen.Bits)
	}

	pk.e = group.NewExponent(data.E)
	pk.t = group.NewExponent(data.T)
	pk.su = group.NewExponent(data.Su)
	pk.si = group.NewExponent(data.Si)
	pk.sv = group.NewExponent(data.Sv)
	pk.so = group.NewExponent(data.So)
	return pk, nil
}

// unit returns value as an element of g if it is a canonical representative
// of a unit of g.
func unit(g *group.Group, value *big.Int) (*group.Element, error) {
	if !g.Contains(value) {
		return nil, invalidEncoding("value not reduced modulo %s", g.Modulus())
	}
	e := g.Element(value)
	if !e.IsRelativelyPrime() {
		return nil, invalidEncoding("value not relatively prime to %s", g.Modulus())
	}
	return e, nil
}

// VerifySubgroupProof reports whether t equals the hash of
//     ab^su * au^t, ab^si * ai^t, ab^sv * av^t, ab^so * ao^t.
func (pk *PublicKey) VerifySubgroupProof() bool {
	ab := group.NewTable(pk.ab)
	tu := ab.Pow(pk.su).Multiply(pk.au.Pow(pk.t))
	ti := ab.Pow(pk.si).Multiply(pk.ai.Pow(pk.t))
	tv := ab.Pow(pk.sv).Multiply(pk.av.Pow(pk.t))
	to := ab.Pow(pk.so).Multiply(pk.ao.Pow(pk.t))
	return hashgen.Generate(tu, ti, tv, to).Cmp(pk.t.Value()) == 0
}

// Validate returns ErrInvalidSubgroupProof if the subgroup proof of pk does
// not verify. The proof is verified only once per key.
func (pk *PublicKey) Validate() error {
	pk.validate.Do(func() {
		if !pk.VerifySubgroupProof() {
			Logger.Warnf("rejecting public key with modulus of %d bits: subgroup proof does not verify",
				pk.compositeGroup.Modulus().BitLen())
			pk.validation = ErrInvalidSubgroupProof
		}
	})
	return pk.validation
}

// CompositeGroup returns the composite group of pk, whose order is unknown.
func (pk *PublicKey) CompositeGroup() *group.Group { return pk.compositeGroup }

// SquareGroup returns the square group of pk, whose order is unknown.
func (pk *PublicKey) SquareGroup() *group.Group { return pk.squareGroup }

func (pk *PublicKey) E() *group.Exponent  { return pk.e }
func (pk *PublicKey) Ab() *group.Element  { return pk.ab }
func (pk *PublicKey) Au() *group.Element  { return pk.au }
func (pk *PublicKey) Ai() *group.Element  { return pk.ai }
func (pk *PublicKey) Av() *group.Element  { return pk.av }
func (pk *PublicKey) Ao() *group.Element  { return pk.ao }
func (pk *PublicKey) T() *group.Exponent  { return pk.t }
func (pk *PublicKey) Su() *group.Exponent { return pk.su }
func (pk *PublicKey) Si() *group.Exponent { return pk.si }
func (pk *PublicKey) Sv() *group.Exponent { return pk.sv }
func (pk *PublicKey) So() *group.Exponent { return pk.so }
func (pk *PublicKey) G() *group.Element   { return pk.g }
func (pk *PublicKey) Y() *group.Element   { return pk.y }
func (pk *PublicKey) ZPlus1() *group.Element {
	return pk.zPlus1
}

// VerifiableEncryption encrypts the exponent m with randomness r as the pair
// (y^r * zPlus1^m, g^r) in the square group.
func (pk *PublicKey) VerifiableEncryption(m, r *group.Exponent) (w, u *group.Element) {
	w = pk.y.Pow(r).Multiply(pk.zPlus1.Pow(m))
	u = pk.g.Pow(r)
	return
}

// Encrypt raises m to e in the composite group. It panics if m is not an
// element of the composite group.
func (pk *PublicKey) Encrypt(m *group.Element) *group.Element {
	if !m.InGroup(pk.compositeGroup) {
		panic("keys: message is not in the composite group")
	}
	return m.Pow(pk.e)
}

// Data returns the external representation of pk.
func (pk *PublicKey) Data() PublicKeyData {
	return PublicKeyData{
		CompositeModulus: pk.compositeGroup.Modulus(),
		E:                pk.e.Value(),
		Ab:               pk.ab.Value(),
		Au:               pk.au.Value(),
		Ai:               pk.ai.Value(),
		Av:               pk.av.Value(),
		Ao:               pk.ao.Value(),
		T:                pk.t.Value(),
		Su:               pk.su.Value(),
		Si:               pk.si.Value(),
		Sv:               pk.sv.Value(),
		So:               pk.so.Value(),
		SquareModulus:    pk.squareGroup.Modulus(),
		G:                pk.g.Value(),
		Y:                pk.y.Value(),
		ZPlus1:           pk.zPlus1.Value(),
	}
}

// Equal reports whether pk and other consist of the same values.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == nil || other == nil {
		return pk == other
	}
	return pk.compositeGroup.Equal(other.compositeGroup) &&
		pk.squareGroup.Equal(other.squareGroup) &&
		pk.e.Equal(other.e) &&
		pk.ab.Equal(other.ab) && pk.au.Equal(other.au) && pk.ai.Equal(other.ai) &&
		pk.av.Equal(other.av) && pk.ao.Equal(other.ao) &&
		pk.t.Equal(other.t) && pk.su.Equal(other.su) && pk.si.Equal(other.si) &&
		pk.sv.Equal(other.sv) && pk.so.Equal(other.so) &&
		pk.g.Equal(other.g) && pk.y.Equal(other.y) && pk.zPlus1.Equal(other.zPlus1)
}

var bigONE = big.NewInt(1)
