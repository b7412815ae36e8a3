package Trees

import "fmt"

// InvalidSliceError is what From panics with when the given slice isn't
// sorted in strictly ascending order. Prev and Next are the offending neighbors
// at Index-1 and Index.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice not strictly ascending at %d: %v then %v", e.Index, e.Prev, e.Next)
}

// MissingChildError is the panic value of a rotation on a node without the child it rotates with.
type MissingChildError struct {
	Rotation string
	Index    uint64
}

func (e *MissingChildError) Error() string {
	child := "right"
	if e.Rotation == "right" {
		child = "left"
	}
	return fmt.Sprintf("rotate %s: node %d has no %s child", e.Rotation, e.Index, child)
}

// CorruptError describes the first violated property found by Check or CheckStructure.
type CorruptError struct {
	Key    any
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt tree at %v: %s", e.Key, e.Reason)
}
