package cbor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	_ struct{} `cbor:",toarray"`
	A []byte
	B uint64
}

func TestRoundTrip(t *testing.T) {
	in := pair{A: []byte{1, 2, 3}, B: 42}
	bts, err := Marshal(in)
	require.NoError(t, err)

	var out pair
	require.NoError(t, Unmarshal(bts, &out))
	require.Equal(t, in.A, out.A)
	require.Equal(t, in.B, out.B)

	again, err := Marshal(out)
	require.NoError(t, err)
	require.Equal(t, bts, again)
}

func TestTrailingData(t *testing.T) {
	bts, err := Marshal(pair{A: []byte{1}, B: 1})
	require.NoError(t, err)

	var out pair
	require.Error(t, Unmarshal(append(bts, 0x00), &out))
}

func TestArrayLength(t *testing.T) {
	bts, err := Marshal([]uint64{1, 2, 3})
	require.NoError(t, err)

	var out pair
	require.Error(t, Unmarshal(bts, &out))
}

func TestEmpty(t *testing.T) {
	var out pair
	require.Error(t, Unmarshal(nil, &out))
}
