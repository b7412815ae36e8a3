package Trees

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotate_RoundTrip(t *testing.T) {
	tree := build("d", "b", "f", "a", "c", "e", "g")
	before := shape(tree.Root())
	keys := tree.Keys()

	tree.RotateLeft(tree.Root())
	require.Equal(t, "f", tree.Root().Key())
	require.Equal(t, "((((. a .) b (. c .)) d (. e .)) f (. g .))", shape(tree.Root()))
	require.Equal(t, keys, tree.Keys())
	require.NoError(t, tree.CheckStructure())
	require.ErrorContains(t, tree.Check(), "balance factor -2")

	tree.RotateRight(tree.Root())
	require.Equal(t, before, shape(tree.Root()))
	require.NoError(t, tree.Check())

	// the same on an inner edge.
	b := tree.Search("b")
	tree.RotateRight(b)
	require.Equal(t, "a", tree.Search("d").Left().Key())
	require.Equal(t, keys, tree.Keys())
	// a rotation only refreshes the two nodes it moves, so d keeps its old height.
	require.NoError(t, tree.CheckStructure())
	require.Equal(t, 2, tree.Search("d").Height())
	require.Equal(t, 3, tree.ComputeHeight())
	tree.RotateLeft(tree.Search("a"))
	require.Equal(t, before, shape(tree.Root()))
	require.NoError(t, tree.Check())
}

func TestRotate_Heights(t *testing.T) {
	tree := build("b", "a", "c")
	tree.RotateLeft(tree.Root())
	c := tree.Root()
	require.Equal(t, "c", c.Key())
	require.Equal(t, 2, c.Height())
	require.Equal(t, 1, c.Left().Height())
	require.Equal(t, uint(3), c.Size())
	require.Equal(t, uint(2), c.Left().Size())
	require.True(t, c.Parent().IsNil())
	require.Equal(t, c, c.Left().Parent())
}

func TestRotate_MissingChild(t *testing.T) {
	tree := build("a")
	require.PanicsWithError(t, "rotate left: node 1 has no right child", func() {
		tree.RotateLeft(tree.Root())
	})
	require.PanicsWithError(t, "rotate right: node 1 has no left child", func() {
		tree.RotateRight(tree.Root())
	})
	require.Panics(t, func() {
		tree.RotateLeft(Node[string, uint32]{})
	})
	require.Panics(t, func() {
		build("x", "y").RotateLeft(tree.Root())
	})
	require.NoError(t, tree.Check())
}

func TestRebalance_TieBreak(t *testing.T) {
	// left heavy root whose left child is even: double rotation.
	tree := NewStringTree()
	for _, k := range []string{"d", "b", "a", "c"} {
		tree.InsertUnbalanced(k)
	}
	tree.Rebalance(tree.Search("b"))
	tree.Rebalance(tree.Root())
	require.Equal(t, "(((. a .) b .) c (. d .))", shape(tree.Root()))
	require.NoError(t, tree.Check())

	// right heavy root whose right child is even: single rotation.
	tree = NewStringTree()
	for _, k := range []string{"a", "c", "b", "d"} {
		tree.InsertUnbalanced(k)
	}
	tree.Rebalance(tree.Search("c"))
	tree.Rebalance(tree.Root())
	require.Equal(t, "((. a (. b .)) c (. d .))", shape(tree.Root()))
	require.NoError(t, tree.Check())

	tree.Rebalance(Node[string, uint32]{})
	require.NoError(t, tree.Check())
}
