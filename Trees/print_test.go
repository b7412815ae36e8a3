package Trees

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintStructure(t *testing.T) {
	var buf bytes.Buffer
	tree := build("d", "b", "f", "a", "c", "e", "g")
	require.NoError(t, tree.PrintStructure(&buf))
	require.Equal(t, ""+
		"                g(0)\n"+
		"        f(1)\n"+
		"                e(0)\n"+
		"d(2)\n"+
		"                c(0)\n"+
		"        b(1)\n"+
		"                a(0)\n", buf.String())

	buf.Reset()
	require.NoError(t, NewStringTree().PrintStructure(&buf))
	require.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, build("a", "b").PrintStructure(&buf))
	require.Equal(t, "        b(0)\na(1)\n", buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestPrintStructure_WriteError(t *testing.T) {
	require.ErrorIs(t, build("b", "a", "c").PrintStructure(failingWriter{}), errWrite)
}

func TestLevelOrder(t *testing.T) {
	tree := build("d", "b", "f", "a", "c", "e", "g", "h")
	var got []string
	var depths []int
	tree.LevelOrder(func(d int, n Node[string, uint32]) bool {
		got = append(got, n.Key())
		depths = append(depths, d)
		return true
	})
	require.Equal(t, []string{"d", "b", "f", "a", "c", "e", "g", "h"}, got)
	require.Equal(t, []int{0, 1, 1, 2, 2, 2, 2, 3}, depths)
	require.Equal(t, []int{1, 2, 4, 1}, tree.Levels())

	got = got[:0]
	tree.LevelOrder(func(_ int, n Node[string, uint32]) bool {
		got = append(got, n.Key())
		return len(got) < 3
	})
	require.Equal(t, []string{"d", "b", "f"}, got)

	require.Empty(t, NewStringTree().Levels())
}
