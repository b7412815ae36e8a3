package Go_Avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitArray(t *testing.T) {
	b := NewBitArray(70)
	require.GreaterOrEqual(t, b.Len(), 70)
	require.Zero(t, b.Count())
	for _, i := range []int{0, 1, 63, 64, 69} {
		b.Up(i)
		require.True(t, b.Get(i), "bit %d", i)
	}
	require.Equal(t, 5, b.Count())
	require.False(t, b.Get(2))
	b.Down(63)
	require.False(t, b.Get(63))
	require.True(t, b.Get(64))
	require.Equal(t, 4, b.Count())
}

func TestBitArray_Empty(t *testing.T) {
	b := NewBitArray(0)
	require.Zero(t, b.Len())
	require.Zero(t, b.Count())
}
