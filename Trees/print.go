package Trees

import (
	"bufio"
	"io"
	"strings"

	"github.com/g-m-twostay/go-avl/Queues"
	"golang.org/x/exp/constraints"
)

const printIndent = "        "

// PrintStructure writes a sideways picture of the tree to w. The root is at
// the left edge, right subtrees are above their parent and left subtrees
// below, each level indented by 8 spaces. Every node is one line, key(height).
// Recursive.
func (u *AVLTree[T, S]) PrintStructure(w io.Writer) error {
	bw := bufio.NewWriter(w)
	u.printSubtree(bw, u.root, 0)
	return bw.Flush()
}

func (u *base[T, S]) printSubtree(w *bufio.Writer, i S, level int) {
	if i == 0 {
		return
	}
	u.printSubtree(w, u.ifs[i].r, level+1)
	w.WriteString(strings.Repeat(printIndent, level))
	w.WriteString(u.node(i).String())
	w.WriteByte('\n')
	u.printSubtree(w, u.ifs[i].l, level+1)
}

type levelItem[S constraints.Unsigned] struct {
	i     S
	depth int
}

// LevelOrder calls f on the nodes breadth first, left to right, with the root
// at depth 0. It stops early when f returns false.
func (u *AVLTree[T, S]) LevelOrder(f func(depth int, n Node[T, S]) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[levelItem[S]](u.Size()/2 + 1)
	q.Push(levelItem[S]{u.root, 0})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.depth, u.node(it.i)) {
			return
		}
		if l := u.ifs[it.i].l; l != 0 {
			q.Push(levelItem[S]{l, it.depth + 1})
		}
		if r := u.ifs[it.i].r; r != 0 {
			q.Push(levelItem[S]{r, it.depth + 1})
		}
	}
}

// Levels returns how many nodes there are at each depth.
func (u *AVLTree[T, S]) Levels() []int {
	var ls []int
	u.LevelOrder(func(d int, _ Node[T, S]) bool {
		if d == len(ls) {
			ls = append(ls, 0)
		}
		ls[d]++
		return true
	})
	return ls
}
