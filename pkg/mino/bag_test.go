package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBag(t *testing.T) {
	b, err := NewBag(1, AllPieces())
	require.NoError(t, err)

	seen := make(map[PieceType]int)
	for i := 0; i < 700; i++ {
		next := b.Next()
		taken := b.Take()
		require.Equal(t, next, taken)
		require.True(t, taken >= 0 && taken < PieceCount)

		seen[taken]++
	}

	assert.Len(t, seen, PieceCount, "every piece type is drawn, including Z")
}

func TestBagDeterministic(t *testing.T) {
	a, err := NewBag(42, AllPieces())
	require.NoError(t, err)
	b, err := NewBag(42, AllPieces())
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Take(), b.Take())
	}
}

func TestBagSingleType(t *testing.T) {
	b, err := NewBag(7, []PieceType{PieceT})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, PieceT, b.Take())
	}
}

func TestNewBagInvalid(t *testing.T) {
	_, err := NewBag(1, nil)
	assert.Error(t, err)

	_, err = NewBag(1, []PieceType{PieceI, PieceCount})
	assert.Error(t, err)
}

func BenchmarkBag(b *testing.B) {
	bag, err := NewBag(1, AllPieces())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bag.Take()
	}
}
