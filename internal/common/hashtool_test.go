package common

import (
	"testing"

	"github.com/digitalid/cryptography/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashCommit(t *testing.T) {
	listA := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
	}
	hashA := HashCommit(listA)
	require.NotNil(t, hashA, "Failed to generate hash for A")

	listB := []*big.Int{
		big.NewInt(1),
		nil,
		big.NewInt(3),
	}
	hashB := HashCommit(listB)
	require.NotNil(t, hashB, "Failed to generate hash for B")

	listC := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
	}
	hashC := HashCommit(listC)
	require.NotNil(t, hashC, "Failed to generate hash for C")

	assert.NotZero(t, hashA.Cmp(hashB), "Hashes for A and B coincide")
	assert.NotZero(t, hashA.Cmp(hashC), "Hashes for A and C coincide")
	assert.NotZero(t, hashB.Cmp(hashC), "Hashes for B and C coincide")
}

func TestHashCommitOrder(t *testing.T) {
	a := HashCommit([]*big.Int{big.NewInt(1), big.NewInt(2)})
	b := HashCommit([]*big.Int{big.NewInt(2), big.NewInt(1)})
	assert.NotZero(t, a.Cmp(b), "Reordering did not change the hash")

	c := HashCommit([]*big.Int{big.NewInt(1), big.NewInt(2)})
	assert.Zero(t, a.Cmp(c), "Hash is not deterministic")
	assert.LessOrEqual(t, a.BitLen(), HashBits)
}

func TestHashCommitConcatenation(t *testing.T) {
	// 0x0102 and (0x01, 0x02) must not collide
	a := HashCommit([]*big.Int{big.NewInt(0x0102)})
	b := HashCommit([]*big.Int{big.NewInt(0x01), big.NewInt(0x02)})
	assert.NotZero(t, a.Cmp(b))
}
