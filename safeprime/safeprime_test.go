package safeprime

import (
	"testing"

	"github.com/digitalid/cryptography/big"

	"github.com/stretchr/testify/require"
)

func requireSafePrime(t *testing.T, x *big.Int, bitsize int) {
	require.NotNil(t, x)
	require.Equal(t, bitsize, x.BitLen())
	require.True(t, x.ProbablyPrime(40), "Generated number was not prime")

	y := new(big.Int).Sub(x, big.NewInt(1))
	y.Div(y, big.NewInt(2))
	require.True(t, y.ProbablyPrime(40), "Generated number was not a safe prime")
}

func TestGenerate(t *testing.T) {
	x, err := Generate(256, nil)
	require.NoError(t, err)
	requireSafePrime(t, x, 256)
}

func TestGenerateTooSmall(t *testing.T) {
	_, err := Generate(2, nil)
	require.ErrorIs(t, err, ErrBitsize)
	_, _, err = GeneratePair(1)
	require.ErrorIs(t, err, ErrBitsize)
}

func TestGenerateStopped(t *testing.T) {
	stop := make(chan struct{})
	close(stop)
	// Generate only looks at stop every 1000 candidates, so it may still
	// find a safe prime before it notices.
	x, err := Generate(1024, stop)
	require.NoError(t, err)
	if x != nil {
		requireSafePrime(t, x, 1024)
	}
}

func TestGenerateConcurrent(t *testing.T) {
	stop := make(chan struct{})
	ints, errs := GenerateConcurrent(128, stop)
	for i := 0; i < 3; i++ {
		select {
		case x := <-ints:
			requireSafePrime(t, x, 128)
		case err := <-errs:
			require.NoError(t, err)
		}
	}
	stop <- struct{}{}
}

func TestGeneratePair(t *testing.T) {
	p, q, err := GeneratePair(128)
	require.NoError(t, err)
	requireSafePrime(t, p, 128)
	requireSafePrime(t, q, 128)
	require.NotZero(t, p.Cmp(q))
}

func TestProbablySafePrime(t *testing.T) {
	require.True(t, ProbablySafePrime(big.NewInt(23), 20))
	require.True(t, ProbablySafePrime(big.NewInt(2039), 20))
	require.False(t, ProbablySafePrime(big.NewInt(29), 20))
	require.False(t, ProbablySafePrime(big.NewInt(2), 20))
	require.False(t, ProbablySafePrime(big.NewInt(25), 20))
}
