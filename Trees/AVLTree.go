package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It keeps
// |height(right)-height(left)|<=1 at every node through rotations after
// each Insert and Remove.
// T is the type of the values, S is the type of the indexes into the node
// arena and of the subtree sizes; S must be wide enough to hold Size()+1.
// Every node carries a parent index so the tree can be walked upwards
// without a stack.
// An AVLTree isn't safe for concurrent use; callers must serialize access.
type AVLTree[T any, S constraints.Unsigned] struct {
	base[T, S]
}

// StringTree is the AVLTree over lexicographically ordered strings.
type StringTree = AVLTree[string, uint32]

var _ Tree[string] = (*StringTree)(nil)

// New AVLTree for ordered T. hint is the expected number of elements.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return &AVLTree[T, S]{makeBase[T, S](hint, cmp.Compare[T])}
}

// NewC creates an AVLTree ordered by cmp. cmp returns a negative number if first < second, 0 if
// first==second, positive number if first>second. see cmp.Compare for an example.
func NewC[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *AVLTree[T, S] {
	return &AVLTree[T, S]{makeBase[T, S](hint, cmp)}
}

// NewStringTree returns an empty StringTree.
func NewStringTree() *StringTree {
	return New[string, uint32](0)
}

// From builds a balanced tree from vs in O(n); faster than repeatedly calling Insert.
// vs must be sorted in ascending order without repeated elements. If safe==true this is
// checked and a violation panics with InvalidSliceError; otherwise a bad vs silently
// gives a corrupt tree.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, safe bool) *AVLTree[T, S] {
	return FromC[T, S](vs, cmp.Compare[T], safe)
}

// FromC is From with an explicit ordering.
func FromC[T any, S constraints.Unsigned](vs []T, cmp func(T, T) int, safe bool) *AVLTree[T, S] {
	if safe {
		for i := 1; i < len(vs); i++ {
			if cmp(vs[i-1], vs[i]) >= 0 {
				panic(InvalidSliceError{i, vs[i-1], vs[i]})
			}
		}
	}
	u := &AVLTree[T, S]{makeBase[T, S](S(len(vs)), cmp)}
	u.ifs = u.ifs[:len(vs)+1]
	u.vs = append(u.vs, vs...)
	u.root = u.build(1, S(len(vs)), 0)
	return u
}

// build the subtree over the arena range [lo,hi] under p. Recursive.
func (u *base[T, S]) build(lo, hi, p S) S {
	if lo > hi {
		return 0
	}
	mid := lo + (hi-lo)>>1
	n := &u.ifs[mid]
	n.p = p
	n.l = u.build(lo, mid-1, mid)
	n.r = u.build(mid+1, hi, mid)
	u.update(mid)
	return mid
}

// own returns the index of n, which must be a node of u.
func (u *AVLTree[T, S]) own(n Node[T, S]) S {
	if n.i != 0 && n.u != &u.base {
		panic("Trees: node belongs to another tree")
	}
	return n.i
}

// Root of the tree, absent when the tree is empty.
func (u *AVLTree[T, S]) Root() Node[T, S] {
	return u.node(u.root)
}

// Search for v. The result is absent if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Search(v T) Node[T, S] {
	return u.node(u.find(v))
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// InsertUnbalanced adds v as a plain binary search tree leaf without any
// rebalancing. Heights of the ancestors aren't maintained, so don't mix it
// with Insert or Remove on the same tree; it's the unbalanced counterpart
// for comparisons. Subtree sizes are kept, so Size, Select and RankOf work.
// Time: O(D)
func (u *AVLTree[T, S]) InsertUnbalanced(v T) bool {
	i := u.attach(v)
	if i == 0 {
		return false
	}
	for p := u.ifs[i].p; p != 0; p = u.ifs[p].p {
		u.ifs[p].sz++
	}
	return true
}

// Insert [Tree.Insert]
// After linking the new leaf, every ancestor from its parent up to the root
// is rebalanced in that order. The tree must be AVL balanced before the call.
// Time: O(D)
func (u *AVLTree[T, S]) Insert(v T) bool {
	i := u.attach(v)
	if i == 0 {
		return false
	}
	u.retrace(u.ifs[i].p, false)
	return true
}

// Remove [Tree.Remove]
// A node with two children is replaced by its in-order successor. The
// successor's node is moved into place instead of copying values, so Nodes
// of other elements stay valid. Afterwards the ancestors of the lowest
// changed node are rebalanced up to the root.
// Time: O(D)
func (u *AVLTree[T, S]) Remove(v T) bool {
	z := u.find(v)
	if z == 0 {
		return false
	}
	zn := u.ifs[z]
	var lowest S
	if zn.l == 0 || zn.r == 0 {
		c := zn.l
		if c == 0 {
			c = zn.r
		}
		u.replaceChild(zn.p, z, c)
		lowest = zn.p
	} else {
		s := u.first(zn.r)
		if s == zn.r {
			lowest = s
		} else {
			lowest = u.ifs[s].p
			u.replaceChild(lowest, s, u.ifs[s].r)
			u.ifs[s].r = zn.r
			u.ifs[zn.r].p = s
		}
		u.ifs[s].l = zn.l
		u.ifs[zn.l].p = s
		u.replaceChild(zn.p, z, s)
	}
	u.addFree(z)
	u.retrace(lowest, true)
	return true
}

// RotateLeft on the edge from n to its right child, keeping the in-order sequence.
// Panics with *MissingChildError if n has no right child. Insert and Remove already
// rotate as needed; this is for inspecting and reshaping trees by hand.
func (u *AVLTree[T, S]) RotateLeft(n Node[T, S]) {
	u.rotateLeft(u.own(n))
}

// RotateRight on the edge from n to its left child. Mirror of RotateLeft.
func (u *AVLTree[T, S]) RotateRight(n Node[T, S]) {
	u.rotateRight(u.own(n))
}

// Rebalance n with zero, one or two rotations. None of n's descendants may be unbalanced.
func (u *AVLTree[T, S]) Rebalance(n Node[T, S]) {
	if i := u.own(n); i != 0 {
		u.rebalance(i, false)
	}
}

// Height of the tree from the cached height of the root, -1 if empty.
// Only meaningful for trees not touched by InsertUnbalanced.
func (u *AVLTree[T, S]) Height() int {
	return u.height(u.root)
}

// ComputeHeight of the tree from scratch. Recursive.
// Time: O(n)
func (u *AVLTree[T, S]) ComputeHeight() int {
	return u.computeHeight(u.root)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Minimum() (T, bool) {
	i := u.first(u.root)
	return u.vs[i], i != 0
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Maximum() (T, bool) {
	i := u.last(u.root)
	return u.vs[i], i != 0
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.cmp(v, u.vs[curI]) <= 0 {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Successor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.cmp(v, u.vs[curI]) < 0 {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// Select [Tree.Select]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Select(k uint) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	t := S(k)
	curI := u.root
	for {
		cur := &u.ifs[curI]
		if ls := u.ifs[cur.l].sz; t <= ls {
			curI = cur.l
		} else if t == ls+1 {
			return u.vs[curI], true
		} else {
			t -= ls + 1
			curI = cur.r
		}
	}
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) RankOf(v T) uint {
	var ra S
	for curI := u.root; curI != 0; {
		cur := &u.ifs[curI]
		if order := u.cmp(v, u.vs[curI]); order < 0 {
			curI = cur.l
		} else if order > 0 {
			ra += u.ifs[cur.l].sz + 1
			curI = cur.r
		} else {
			return uint(ra + u.ifs[cur.l].sz + 1)
		}
	}
	return 0
}

// InOrder [Tree.InOrder]
// The tree isn't modified by the iteration; it walks parent links.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *AVLTree[T, S]) InOrder() func() (T, bool) {
	cur := u.first(u.root)
	return func() (v T, has bool) {
		if cur != 0 {
			v, has = u.vs[cur], true
			cur = u.next(cur)
		}
		return
	}
}

// Keys in ascending order.
func (u *AVLTree[T, S]) Keys() []T {
	ks := make([]T, 0, u.Size())
	for i := u.first(u.root); i != 0; i = u.next(i) {
		ks = append(ks, u.vs[i])
	}
	return ks
}
