package keys

import (
	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/group"
	"github.com/digitalid/cryptography/hashgen"
	"github.com/digitalid/cryptography/internal/common"
	"github.com/digitalid/cryptography/params"
	"github.com/digitalid/cryptography/safeprime"

	"github.com/go-errors/errors"
)

// KeyPair is a private key together with its public key.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

// GenerateKeyPair generates a new key pair with the bit lengths of p. The
// composite modulus is the product of two safe primes of p.Factor bits and
// the square modulus the square of the product of two safe primes of
// p.VerifiableEncryption bits. The returned public key has been validated.
func GenerateKeyPair(p *params.Parameters) (*KeyPair, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	Logger.Debugf("generating composite group from %d-bit safe primes", p.Factor)
	Follower.StepStart("Generating composite group", 0)
	cp, cq, err := safeprime.GeneratePair(int(p.Factor))
	if err != nil {
		return nil, err
	}
	Follower.StepDone()
	composite, err := knownOrderGroup(cp, cq, new(big.Int).Mul(cp, cq), false)
	if err != nil {
		return nil, err
	}

	var e *group.Exponent
	for {
		prime, err := common.RandomPrimeOfLength(p.Hash)
		if err != nil {
			return nil, err
		}
		if e = group.NewExponent(prime); e.IsRelativelyPrime(composite) {
			break
		}
	}
	d := e.Inverse(composite)

	// Subgroup proof: t = hash(ab^ru, ab^ri, ab^rv, ab^ro) and s = r - t*e
	// for the discrete logarithm e of each base to ab.
	Follower.StepStart("Generating subgroup proof", 8)
	ab := group.NewTable(composite.RandomQuadraticResidue())
	pow := func(x *group.Exponent) *group.Element {
		defer Follower.Tick()
		return ab.Pow(x)
	}
	eu, ei, ev, eo := composite.RandomExponent(), composite.RandomExponent(),
		composite.RandomExponent(), composite.RandomExponent()
	au, ai, av, ao := pow(eu), pow(ei), pow(ev), pow(eo)
	ru, ri, rv, ro := composite.RandomExponent(), composite.RandomExponent(),
		composite.RandomExponent(), composite.RandomExponent()
	t := hashgen.GenerateExponent(pow(ru), pow(ri), pow(rv), pow(ro))
	respond := func(r, e *group.Exponent) *group.Exponent {
		return r.Subtract(t.Multiply(e)).Mod(composite)
	}
	Follower.StepDone()

	Logger.Debugf("generating square group from %d-bit safe primes", p.VerifiableEncryption)
	Follower.StepStart("Generating square group", 0)
	sp, sq, err := safeprime.GeneratePair(int(p.VerifiableEncryption))
	if err != nil {
		return nil, err
	}
	nPrime := new(big.Int).Mul(sp, sq)
	square, err := knownOrderGroup(sp, sq, new(big.Int).Mul(nPrime, nPrime), true)
	if err != nil {
		return nil, err
	}
	g := square.RandomElement().PowInt(new(big.Int).Lsh(nPrime, 1))
	x := square.RandomExponent()
	Follower.StepDone()

	Follower.StepStart("Validating key pair", 0)
	sk, err := NewPrivateKey(PrivateKeyData{
		Public: PublicKeyData{
			CompositeModulus: composite.Modulus(),
			E:                e.Value(),
			Ab:               ab.Base().Value(),
			Au:               au.Value(),
			Ai:               ai.Value(),
			Av:               av.Value(),
			Ao:               ao.Value(),
			T:                t.Value(),
			Su:               respond(ru, eu).Value(),
			Si:               respond(ri, ei).Value(),
			Sv:               respond(rv, ev).Value(),
			So:               respond(ro, eo).Value(),
			SquareModulus:    square.Modulus(),
			G:                g.Value(),
			Y:                g.Pow(x).Value(),
			ZPlus1:           new(big.Int).Add(nPrime, bigONE),
		},
		P:       cp,
		Q:       cq,
		D:       d.Value(),
		SquareP: sp,
		SquareQ: sq,
		X:       x.Value(),
	})
	if err != nil {
		return nil, errors.WrapPrefix(err, "generated key pair is invalid", 0)
	}
	Follower.StepDone()

	Logger.Debug("key pair generated")
	return &KeyPair{Private: sk, Public: sk.PublicKey()}, nil
}
