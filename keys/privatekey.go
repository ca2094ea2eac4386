package keys

import (
	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/group"
	"github.com/digitalid/cryptography/internal/common"
	"github.com/digitalid/cryptography/safeprime"
)

// PrivateKeyData is the external representation of a private key: its public
// key followed by the factors of both moduli and the secret exponents.
type PrivateKeyData struct {
	_ struct{} `cbor:",toarray"`

	Public  PublicKeyData `xml:"PublicKey"`
	P       *big.Int      `xml:"CompositeGroup>p"`
	Q       *big.Int      `xml:"CompositeGroup>q"`
	D       *big.Int      `xml:"CompositeGroup>d"`
	SquareP *big.Int      `xml:"SquareGroup>p"`
	SquareQ *big.Int      `xml:"SquareGroup>q"`
	X       *big.Int      `xml:"SquareGroup>x"`
}

// PrivateKey holds the factorizations of the moduli of a public key together
// with the exponents d = e^-1 and x = log_g(y).
type PrivateKey struct {
	public *PublicKey

	compositeGroup *group.Group
	p, q           *big.Int
	d              *group.Exponent
	dp, dq         *big.Int

	squareGroup      *group.Group
	squareP, squareQ *big.Int
	nPrime           *big.Int
	x                *group.Exponent
}

// NewPrivateKey decodes data into a private key. Besides the checks done by
// NewPublicKey it checks that the factors are safe primes that multiply to
// the moduli of the public key and that d and x match e and y.
func NewPrivateKey(data PrivateKeyData) (*PrivateKey, error) {
	pk, err := NewPublicKey(data.Public)
	if err != nil {
		return nil, err
	}
	for i, v := range []*big.Int{data.P, data.Q, data.D, data.SquareP, data.SquareQ, data.X} {
		if v == nil {
			return nil, invalidEncoding("value %d of the private key is missing", i)
		}
		if v.Sign() < 0 {
			return nil, invalidEncoding("value %d of the private key is negative", i)
		}
	}

	composite, err := knownOrderGroup(data.P, data.Q, pk.compositeGroup.Modulus(), false)
	if err != nil {
		return nil, err
	}
	square, err := knownOrderGroup(data.SquareP, data.SquareQ, pk.squareGroup.Modulus(), true)
	if err != nil {
		return nil, err
	}

	sk := &PrivateKey{
		public:         pk,
		compositeGroup: composite,
		p:              new(big.Int).Set(data.P),
		q:              new(big.Int).Set(data.Q),
		d:              group.NewExponent(data.D),
		squareGroup:    square,
		squareP:        new(big.Int).Set(data.SquareP),
		squareQ:        new(big.Int).Set(data.SquareQ),
		nPrime:         new(big.Int).Mul(data.SquareP, data.SquareQ),
		x:              group.NewExponent(data.X),
	}

	de := sk.d.Multiply(pk.e).Mod(composite)
	if de.Value().Cmp(bigONE) != 0 {
		return nil, invalidEncoding("d is not the inverse of e")
	}
	if !pk.g.Pow(sk.x).Equal(pk.y) {
		return nil, invalidEncoding("y does not equal g^x")
	}

	sk.dp = new(big.Int).Mod(data.D, new(big.Int).Sub(sk.p, bigONE))
	sk.dq = new(big.Int).Mod(data.D, new(big.Int).Sub(sk.q, bigONE))
	return sk, nil
}

// knownOrderGroup returns the group modulo p*q (or (p*q)^2 if square is set),
// which must equal modulus, with its order.
func knownOrderGroup(p, q, modulus *big.Int, square bool) (*group.Group, error) {
	if p.Cmp(q) == 0 {
		return nil, invalidEncoding("factors are equal")
	}
	if !safeprime.ProbablySafePrime(p, 40) || !safeprime.ProbablySafePrime(q, 40) {
		return nil, invalidEncoding("factors are not safe primes")
	}
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, bigONE), new(big.Int).Sub(q, bigONE))
	order := phi
	if square {
		order = new(big.Int).Mul(n, phi)
		n.Mul(n, n)
	}
	if n.Cmp(modulus) != 0 {
		return nil, invalidEncoding("factors do not match the modulus")
	}
	g, err := group.NewGroupWithKnownOrder(n, order)
	if err != nil {
		return nil, invalidEncoding("%v", err)
	}
	return g, nil
}

// PublicKey returns the public key belonging to sk.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return sk.public
}

// CompositeGroup returns the composite group with its order.
func (sk *PrivateKey) CompositeGroup() *group.Group { return sk.compositeGroup }

// SquareGroup returns the square group with its order.
func (sk *PrivateKey) SquareGroup() *group.Group { return sk.squareGroup }

func (sk *PrivateKey) D() *group.Exponent { return sk.d }
func (sk *PrivateKey) X() *group.Exponent { return sk.x }

// Decrypt raises c to d in the composite group, undoing PublicKey.Encrypt.
// It panics if c is not an element of the composite group.
func (sk *PrivateKey) Decrypt(c *group.Element) *group.Element {
	if !c.InGroup(sk.compositeGroup) {
		panic("keys: ciphertext is not in the composite group")
	}
	v := c.Value()
	mp := new(big.Int).Exp(v, sk.dp, sk.p)
	mq := new(big.Int).Exp(v, sk.dq, sk.q)
	return sk.compositeGroup.Element(common.Crt(mp, sk.p, mq, sk.q))
}

// DecryptVerifiable recovers m mod n' from a verifiable encryption (w, u) as
// returned by PublicKey.VerifiableEncryption. It returns ErrInvalidCiphertext
// if w or u are not units of the square group or w*u^-x is not a power of
// zPlus1.
func (sk *PrivateKey) DecryptVerifiable(w, u *group.Element) (*group.Exponent, error) {
	if w == nil || u == nil || !w.InGroup(sk.squareGroup) || !u.InGroup(sk.squareGroup) {
		return nil, ErrInvalidCiphertext
	}
	if !w.IsRelativelyPrime() || !u.IsRelativelyPrime() {
		return nil, ErrInvalidCiphertext
	}

	// w * (u^x)^-1 = zPlus1^m = 1 + m*n' mod n'^2
	z := w.Multiply(u.Pow(sk.x).Inverse()).Value()
	z.Sub(z, bigONE)
	m, r := new(big.Int).QuoRem(z, sk.nPrime, new(big.Int))
	if r.Sign() != 0 {
		return nil, ErrInvalidCiphertext
	}
	return group.NewExponent(m), nil
}

// Data returns the external representation of sk.
func (sk *PrivateKey) Data() PrivateKeyData {
	return PrivateKeyData{
		Public:  sk.public.Data(),
		P:       new(big.Int).Set(sk.p),
		Q:       new(big.Int).Set(sk.q),
		D:       sk.d.Value(),
		SquareP: new(big.Int).Set(sk.squareP),
		SquareQ: new(big.Int).Set(sk.squareQ),
		X:       sk.x.Value(),
	}
}
