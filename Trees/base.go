package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the AVLTree.
// Index 0 of the arena is the absent node: h=-1, sz=0, and it's never written through.
type info[S constraints.Unsigned] struct {
	l, r, p S // p is a back reference only; ownership goes through l and r.
	sz      S
	h       int8 // fits the height of any tree an unsigned index can address.
}

type base[T any, S constraints.Unsigned] struct {
	root, free S         // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs        []info[S] // ifs[0] is the absent node. all index are based on ifs.
	vs         []T       // vs[i] belongs to ifs[i]; vs[0] is unused.
	cmp        func(T, T) int
}

func makeBase[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) base[T, S] {
	ifs := make([]info[S], 1, uint(hint)+1)
	ifs[0].h = -1
	return base[T, S]{ifs: ifs, vs: make([]T, 1, uint(hint)+1), cmp: cmp}
}

// height of the node at i, -1 for the absent node. Always the cached value.
func (u *base[T, S]) height(i S) int {
	return int(u.ifs[i].h)
}

// balanceFactor of i. i mustn't be 0.
func (u *base[T, S]) balanceFactor(i S) int {
	n := &u.ifs[i]
	return int(u.ifs[n.r].h) - int(u.ifs[n.l].h)
}

// update recomputes the cached height and size of i from its children.
func (u *base[T, S]) update(i S) {
	n := &u.ifs[i]
	l, r := &u.ifs[n.l], &u.ifs[n.r]
	n.h = max(l.h, r.h) + 1
	n.sz = l.sz + r.sz + 1
}

// newNode at a free index, or at the end of the arena if there's none. The node is a leaf under p.
func (u *base[T, S]) newNode(v T, p S) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{p: p, sz: 1}
		u.vs[i] = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{p: p, sz: 1})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[b].l
	return b
}

// replaceChild puts c where old used to hang under p; p==0 means old was the root.
func (u *base[T, S]) replaceChild(p, old, c S) {
	if p == 0 {
		u.root = c
	} else if pn := &u.ifs[p]; pn.l == old {
		pn.l = c
	} else {
		pn.r = c
	}
	if c != 0 {
		u.ifs[c].p = p
	}
}

// rotateLeft on the edge from x to its right child.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(x S) {
	xn := &u.ifs[x]
	y := xn.r
	if y == 0 {
		panic(&MissingChildError{Rotation: "left", Index: uint64(x)})
	}
	yn := &u.ifs[y]
	xn.r = yn.l
	if yn.l != 0 {
		u.ifs[yn.l].p = x
	}
	u.replaceChild(xn.p, x, y)
	yn.l = x
	xn.p = y
	u.update(x)
	u.update(y)
}

// rotateRight on the edge from y to its left child.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(y S) {
	yn := &u.ifs[y]
	x := yn.l
	if x == 0 {
		panic(&MissingChildError{Rotation: "right", Index: uint64(y)})
	}
	xn := &u.ifs[x]
	yn.l = xn.r
	if xn.r != 0 {
		u.ifs[xn.r].p = y
	}
	u.replaceChild(yn.p, y, x)
	xn.r = y
	yn.p = x
	u.update(y)
	u.update(x)
}

// rebalance n after an insertion or removal below it.
// None of n's descendants may violate the AVL property.
// A child with balance factor 0 only occurs after a removal; with removed set
// it takes the single rotation on either side, otherwise a left child of 0
// takes the double one.
func (u *base[T, S]) rebalance(n S, removed bool) {
	u.update(n)
	if bf := u.balanceFactor(n); bf < -1 {
		if l := u.ifs[n].l; u.balanceFactor(l) < 0 || removed && u.balanceFactor(l) == 0 {
			u.rotateRight(n)
		} else {
			u.rotateLeft(l)
			u.rotateRight(n)
		}
	} else if bf > 1 {
		if r := u.ifs[n].r; u.balanceFactor(r) < 0 {
			u.rotateRight(r)
			u.rotateLeft(n)
		} else {
			u.rotateLeft(n)
		}
	}
}

// retrace calls rebalance on i and every ancestor of it, bottom-up.
// The parent is read before rebalance since a rotation moves i down.
func (u *base[T, S]) retrace(i S, removed bool) {
	for i != 0 {
		p := u.ifs[i].p
		u.rebalance(i, removed)
		i = p
	}
}

// find the index holding v, 0 if there's none.
func (u *base[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if order := u.cmp(v, u.vs[curI]); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// attach v as a new leaf. Returns the new index, or 0 if v is already in the tree.
func (u *base[T, S]) attach(v T) S {
	if u.root == 0 {
		u.root = u.newNode(v, 0)
		return u.root
	}
	for curI := u.root; ; {
		cur := &u.ifs[curI]
		if order := u.cmp(v, u.vs[curI]); order < 0 {
			if cur.l == 0 {
				i := u.newNode(v, curI)
				u.ifs[curI].l = i // cur may be stale after newNode grew the arena.
				return i
			}
			curI = cur.l
		} else if order > 0 {
			if cur.r == 0 {
				i := u.newNode(v, curI)
				u.ifs[curI].r = i
				return i
			}
			curI = cur.r
		} else {
			return 0
		}
	}
}

func (u *base[T, S]) first(i S) S {
	if i != 0 {
		for u.ifs[i].l != 0 {
			i = u.ifs[i].l
		}
	}
	return i
}

func (u *base[T, S]) last(i S) S {
	if i != 0 {
		for u.ifs[i].r != 0 {
			i = u.ifs[i].r
		}
	}
	return i
}

// next index in in-order after i, 0 when i is the last.
func (u *base[T, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.first(r)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i {
			return p
		}
	}
	return 0
}

// computeHeight of the subtree at i from scratch, ignoring the cached heights. Recursive.
func (u *base[T, S]) computeHeight(i S) int {
	if i == 0 {
		return -1
	}
	return max(u.computeHeight(u.ifs[i].l), u.computeHeight(u.ifs[i].r)) + 1
}

func (u *base[T, S]) Size() uint {
	return uint(u.ifs[u.root].sz)
}

// Clear the tree. O(Size); the arena keeps its capacity.
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:1]
	u.root, u.free = 0, 0
}
