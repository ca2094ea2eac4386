package group

import (
	"testing"

	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testP = 1031
	testQ = 1063
)

func testGroup(t *testing.T) *Group {
	g, err := NewGroupWithKnownOrder(big.NewInt(testP*testQ), big.NewInt((testP-1)*(testQ-1)))
	require.NoError(t, err)
	return g
}

// Two random 128-bit primes, so that the modulus has the size used by the
// testing profile.
func test128Group(t *testing.T) *Group {
	p, err := common.RandomPrimeOfLength(128)
	require.NoError(t, err)
	q, err := common.RandomPrimeOfLength(128)
	require.NoError(t, err)
	g, err := NewGroupWithUnknownOrder(new(big.Int).Mul(p, q))
	require.NoError(t, err)
	return g
}

func TestNewGroup(t *testing.T) {
	_, err := NewGroupWithUnknownOrder(big.NewInt(1))
	require.ErrorIs(t, err, ErrInvalidModulus)
	_, err = NewGroupWithUnknownOrder(nil)
	require.ErrorIs(t, err, ErrInvalidModulus)

	_, err = NewGroupWithKnownOrder(big.NewInt(15), big.NewInt(15))
	require.ErrorIs(t, err, ErrInvalidOrder)
	_, err = NewGroupWithKnownOrder(big.NewInt(15), big.NewInt(0))
	require.ErrorIs(t, err, ErrInvalidOrder)

	g := testGroup(t)
	assert.True(t, g.HasKnownOrder())
	assert.Equal(t, int64((testP-1)*(testQ-1)), g.Order().Int64())

	public := g.WithUnknownOrder()
	assert.False(t, public.HasKnownOrder())
	assert.Nil(t, public.Order())
	assert.True(t, g.Equal(public))
}

func TestModulusIsCopied(t *testing.T) {
	modulus := big.NewInt(77)
	g, err := NewGroupWithUnknownOrder(modulus)
	require.NoError(t, err)
	modulus.SetInt64(5)
	assert.Equal(t, int64(77), g.Modulus().Int64())

	m := g.Modulus()
	m.SetInt64(3)
	assert.Equal(t, int64(77), g.Modulus().Int64())
}

func TestElementReduction(t *testing.T) {
	g := testGroup(t)
	modulus := g.Modulus()
	for _, v := range []int64{0, 1, 5, testP * testQ, testP*testQ + 5, -1, -testP * testQ * 3, 123456789} {
		e := g.Element(big.NewInt(v))
		assert.True(t, g.Contains(e.Value()), "value %d not reduced", v)
		assert.Zero(t, new(big.Int).Mod(big.NewInt(v), modulus).Cmp(e.Value()))
	}
}

func TestElementModulusPlusFive(t *testing.T) {
	g := test128Group(t)
	e := g.Element(new(big.Int).Add(g.Modulus(), big.NewInt(5)))
	assert.Equal(t, int64(5), e.Value().Int64())
}

func TestAddSubtract(t *testing.T) {
	g := testGroup(t)
	for i := 0; i < 20; i++ {
		a := g.RandomElement()
		b := g.RandomElement()
		assert.True(t, a.Add(b).Subtract(b).Equal(a))
		assert.True(t, a.Subtract(b).Add(b).Equal(a))
	}
}

func TestMultiplyInverse(t *testing.T) {
	g := test128Group(t)
	for i := 0; i < 20; i++ {
		a := g.RandomElement()
		require.True(t, a.IsRelativelyPrime())
		assert.True(t, a.Multiply(a.Inverse()).IsOne())
		assert.True(t, a.Inverse().Inverse().Equal(a))
	}
}

func TestInverseNonUnitPanics(t *testing.T) {
	g := testGroup(t)
	e := g.Element(big.NewInt(testP * 3))
	assert.False(t, e.IsRelativelyPrime())
	assert.Panics(t, func() { e.Inverse() })
}

func TestDifferentGroupsPanic(t *testing.T) {
	g := testGroup(t)
	h, err := NewGroupWithUnknownOrder(big.NewInt(1019 * 1049))
	require.NoError(t, err)

	a := g.Element(big.NewInt(3))
	b := h.Element(big.NewInt(3))
	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.Subtract(b) })
	assert.Panics(t, func() { a.Multiply(b) })
	assert.False(t, a.Equal(b))

	// The public view of a group is the same group
	c := g.WithUnknownOrder().Element(big.NewInt(4))
	assert.Equal(t, int64(12), a.Multiply(c).Value().Int64())
}

func TestPow(t *testing.T) {
	g := test128Group(t)
	for i := 0; i < 10; i++ {
		a := g.RandomElement()
		e1 := RandomExponent(300)
		e2 := RandomExponent(300)
		assert.True(t, a.Pow(e1).Multiply(a.Pow(e2)).Equal(a.Pow(e1.Add(e2))))
	}

	a := g.Element(big.NewInt(7))
	assert.True(t, a.PowInt(big.NewInt(0)).IsOne())
	assert.Equal(t, int64(343), a.PowInt(big.NewInt(3)).Value().Int64())
	assert.Panics(t, func() { a.PowInt(big.NewInt(-1)) })
	assert.Panics(t, func() { a.Pow(NewExponent(big.NewInt(-2))) })
}

func TestPowOrder(t *testing.T) {
	g := testGroup(t)
	order := NewExponent(g.Order())
	for i := 0; i < 10; i++ {
		assert.True(t, g.RandomElement().Pow(order).IsOne())
	}
}

func TestRandomExponent(t *testing.T) {
	g := testGroup(t)
	for i := 0; i < 20; i++ {
		x := g.RandomExponent()
		assert.True(t, x.Value().Cmp(g.Order()) < 0)
		assert.GreaterOrEqual(t, x.Sign(), 0)
	}
	assert.Panics(t, func() { g.WithUnknownOrder().RandomExponent() })

	x := RandomExponent(64)
	assert.LessOrEqual(t, x.BitLen(), 64)
}

func TestExponentArithmetic(t *testing.T) {
	g := testGroup(t)
	x := NewExponent(big.NewInt(7))
	y := NewExponent(big.NewInt(10))

	assert.Equal(t, int64(17), x.Add(y).Value().Int64())
	assert.Equal(t, int64(-3), x.Subtract(y).Value().Int64())
	assert.Equal(t, int64(70), x.Multiply(y).Value().Int64())

	m := x.Subtract(y).Mod(g)
	assert.Equal(t, g.Order().Int64()-3, m.Value().Int64())

	inv := x.Inverse(g)
	assert.Equal(t, int64(1), new(big.Int).Mod(new(big.Int).Mul(inv.Value(), big.NewInt(7)), g.Order()).Int64())
	assert.Panics(t, func() { NewExponent(big.NewInt(2)).Inverse(g) })
	assert.Panics(t, func() { x.Mod(g.WithUnknownOrder()) })
	assert.True(t, x.IsRelativelyPrime(g))
	assert.False(t, NewExponent(big.NewInt(6)).IsRelativelyPrime(g))
}

func TestExponentInverseInGroup(t *testing.T) {
	g := testGroup(t)
	e := NewExponent(big.NewInt(65537))
	d := e.Inverse(g)
	for i := 0; i < 10; i++ {
		a := g.RandomElement()
		assert.True(t, a.Pow(e).Pow(d).Equal(a))
	}
}

func TestImmutability(t *testing.T) {
	g := testGroup(t)
	v := big.NewInt(42)
	e := g.Element(v)
	v.SetInt64(43)
	assert.Equal(t, int64(42), e.Value().Int64())
	e.Value().SetInt64(44)
	assert.Equal(t, int64(42), e.Value().Int64())

	x := NewExponent(v)
	v.SetInt64(1)
	assert.Equal(t, int64(43), x.Value().Int64())
}

func TestString(t *testing.T) {
	g := testGroup(t)
	assert.Equal(t, "5 [3 bits]", g.Element(big.NewInt(5)).String())
	assert.Equal(t, "1024 [11 bits]", NewExponent(big.NewInt(1024)).String())
}

func TestRandomQuadraticResidue(t *testing.T) {
	g := testGroup(t)
	for i := 0; i < 10; i++ {
		r := g.RandomQuadraticResidue()
		// The quadratic residues modulo pq have order dividing (p-1)(q-1)/4
		assert.True(t, r.PowInt(big.NewInt((testP-1)*(testQ-1)/4)).IsOne())
	}
}
