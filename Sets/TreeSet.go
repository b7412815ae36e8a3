package Sets

import (
	"cmp"

	"github.com/g-m-twostay/go-avl/Trees"
)

// TreeSet is an ordered Set backed by an AVL tree. Range visits the
// elements in ascending order. Concurrent Has calls are fine while nothing
// modifies the set.
type TreeSet[E cmp.Ordered] struct {
	t *Trees.AVLTree[E, uint32]
}

var _ Set[string] = (*TreeSet[string])(nil)

// NewTreeSet holding es; repeated elements are kept once.
func NewTreeSet[E cmp.Ordered](es ...E) *TreeSet[E] {
	u := &TreeSet[E]{Trees.New[E, uint32](uint32(len(es)))}
	for _, e := range es {
		u.t.Insert(e)
	}
	return u
}

func (u *TreeSet[E]) Put(e E) bool {
	return u.t.Insert(e)
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take an arbitrary element from the set without removing it. Returns zero value if the set is empty.
// Time: O(1)
func (u *TreeSet[E]) Take() E {
	return u.t.Root().Key()
}

// Range over elements in ascending order and call f on them. Stops when f returns false.
// The set mustn't be modified from f.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for next := u.t.InOrder(); ; {
		e, ok := next()
		if !ok || !f(e) {
			return
		}
	}
}
