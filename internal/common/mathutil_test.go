package common

import (
	"testing"

	"github.com/digitalid/cryptography/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModInverse(t *testing.T) {
	n := big.NewInt(1031 * 1063)
	a := big.NewInt(12345)
	ia, ok := ModInverse(a, n)
	require.True(t, ok)
	assert.Zero(t, new(big.Int).Mod(new(big.Int).Mul(a, ia), n).Cmp(big.NewInt(1)))

	_, ok = ModInverse(big.NewInt(1031*5), n)
	assert.False(t, ok, "Inverse of a non-unit accepted")
}

func TestRandomBigInt(t *testing.T) {
	for i := 0; i < 20; i++ {
		r, err := RandomBigInt(100)
		require.NoError(t, err)
		assert.LessOrEqual(t, r.BitLen(), 100)
		assert.GreaterOrEqual(t, r.Sign(), 0)
	}
}

func TestRandomQR(t *testing.T) {
	const p = 1031
	const q = 1063
	n := big.NewInt(p * q)
	for i := 0; i < 20; i++ {
		r := RandomQR(n)
		assert.True(t, IsCoprime(r, n))
		// Euler's criterion modulo both factors
		assert.Zero(t, new(big.Int).Exp(r, big.NewInt((p-1)/2), big.NewInt(p)).Cmp(big.NewInt(1)))
		assert.Zero(t, new(big.Int).Exp(r, big.NewInt((q-1)/2), big.NewInt(q)).Cmp(big.NewInt(1)))
	}
}

func TestCrt(t *testing.T) {
	x := Crt(big.NewInt(3), big.NewInt(1031), big.NewInt(7), big.NewInt(1063))
	assert.Equal(t, int64(3), new(big.Int).Mod(x, big.NewInt(1031)).Int64())
	assert.Equal(t, int64(7), new(big.Int).Mod(x, big.NewInt(1063)).Int64())
	assert.Panics(t, func() { Crt(big.NewInt(1), big.NewInt(6), big.NewInt(1), big.NewInt(9)) })
}
