package Trees

import (
	"fmt"

	Go_Avl "github.com/g-m-twostay/go-avl"
	"golang.org/x/exp/constraints"
)

// Check verifies every property of an AVL tree: each node is reached once,
// parent links match the children, keys are in order, subtree sizes add up,
// cached heights equal the heights recomputed from scratch, and every balance
// factor is within [-1,1]. It returns the first violation as a *CorruptError.
// Recursive. Time: O(n)
func (u *AVLTree[T, S]) Check() error {
	return u.check(true)
}

// CheckStructure is Check without the height and balance checks, so it also
// holds for trees built with InsertUnbalanced.
func (u *AVLTree[T, S]) CheckStructure() error {
	return u.check(false)
}

// Corrupt [Tree.Corrupt]
func (u *AVLTree[T, S]) Corrupt() bool {
	return u.CheckStructure() != nil
}

func (u *base[T, S]) check(avl bool) error {
	if u.root != 0 && int(u.root) < len(u.ifs) && u.ifs[u.root].p != 0 {
		return &CorruptError{u.vs[u.root], "root has a parent"}
	}
	c := checker[T, S]{u, Go_Avl.NewBitArray(len(u.ifs)), avl}
	_, err := c.walk(u.root, 0, 0)
	return err
}

type checker[T any, S constraints.Unsigned] struct {
	u    *base[T, S]
	seen Go_Avl.BitArray
	avl  bool
}

// walk the subtree at i whose keys must lie strictly between vs[lo] and vs[hi]
// (0 is unbounded). Returns the height recomputed from scratch.
func (c checker[T, S]) walk(i, lo, hi S) (int, error) {
	u := c.u
	if i == 0 {
		return -1, nil
	}
	if int(i) >= len(u.ifs) {
		return 0, &CorruptError{i, "index outside the arena"}
	}
	if c.seen.Get(int(i)) {
		return 0, &CorruptError{u.vs[i], "reached twice"}
	}
	c.seen.Up(int(i))
	n := u.ifs[i]
	if lo != 0 && u.cmp(u.vs[i], u.vs[lo]) <= 0 {
		return 0, &CorruptError{u.vs[i], fmt.Sprintf("not greater than ancestor %v", u.vs[lo])}
	}
	if hi != 0 && u.cmp(u.vs[i], u.vs[hi]) >= 0 {
		return 0, &CorruptError{u.vs[i], fmt.Sprintf("not less than ancestor %v", u.vs[hi])}
	}
	for _, ch := range [2]S{n.l, n.r} {
		if ch != 0 && int(ch) < len(u.ifs) && u.ifs[ch].p != i {
			return 0, &CorruptError{u.vs[ch], fmt.Sprintf("parent link doesn't point at %v", u.vs[i])}
		}
	}
	lh, err := c.walk(n.l, lo, i)
	if err != nil {
		return 0, err
	}
	rh, err := c.walk(n.r, i, hi)
	if err != nil {
		return 0, err
	}
	if sum := u.ifs[n.l].sz + u.ifs[n.r].sz + 1; n.sz != sum {
		return 0, &CorruptError{u.vs[i], fmt.Sprintf("size %d, children add up to %d", n.sz, sum)}
	}
	h := max(lh, rh) + 1
	if c.avl {
		if int(n.h) != h {
			return 0, &CorruptError{u.vs[i], fmt.Sprintf("cached height %d, actual %d", n.h, h)}
		}
		if bf := rh - lh; bf < -1 || bf > 1 {
			return 0, &CorruptError{u.vs[i], fmt.Sprintf("balance factor %d", bf)}
		}
	}
	return h, nil
}
