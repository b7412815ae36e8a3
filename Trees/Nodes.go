package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Node is a handle to a node in an AVLTree.
// The zero value is the absent node; every method is defined on it. A Node
// stays valid until its key is removed from the tree or the tree is cleared.
type Node[T any, S constraints.Unsigned] struct {
	u *base[T, S]
	i S
}

func (u *base[T, S]) node(i S) Node[T, S] {
	if i == 0 {
		return Node[T, S]{}
	}
	return Node[T, S]{u, i}
}

// IsNil reports whether n is the absent node.
func (n Node[T, S]) IsNil() bool {
	return n.i == 0
}

// Key of n, the zero value of T for the absent node.
func (n Node[T, S]) Key() (v T) {
	if n.i != 0 {
		v = n.u.vs[n.i]
	}
	return
}

// Height cached at n; -1 for the absent node.
func (n Node[T, S]) Height() int {
	if n.i == 0 {
		return -1
	}
	return n.u.height(n.i)
}

// BalanceFactor is height(right)-height(left), 0 for the absent node.
func (n Node[T, S]) BalanceFactor() int {
	if n.i == 0 {
		return 0
	}
	return n.u.balanceFactor(n.i)
}

// Size of the subtree rooted at n.
func (n Node[T, S]) Size() uint {
	if n.i == 0 {
		return 0
	}
	return uint(n.u.ifs[n.i].sz)
}

func (n Node[T, S]) Left() Node[T, S] {
	if n.i == 0 {
		return n
	}
	return n.u.node(n.u.ifs[n.i].l)
}

func (n Node[T, S]) Right() Node[T, S] {
	if n.i == 0 {
		return n
	}
	return n.u.node(n.u.ifs[n.i].r)
}

// Parent of n; absent for the root.
func (n Node[T, S]) Parent() Node[T, S] {
	if n.i == 0 {
		return n
	}
	return n.u.node(n.u.ifs[n.i].p)
}

// Next node in in-order, absent after the last one.
func (n Node[T, S]) Next() Node[T, S] {
	if n.i == 0 {
		return n
	}
	return n.u.node(n.u.next(n.i))
}

// String formats n as key(height).
func (n Node[T, S]) String() string {
	if n.i == 0 {
		return "<nil>"
	}
	return fmt.Sprintf("%v(%d)", n.u.vs[n.i], n.u.ifs[n.i].h)
}
