package Queues

type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize to newLen>=sz, laying the items out from index 0.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.head < this.tail || this.sz == 0 {
		copy(nc, this.content[this.head:this.tail])
	} else {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.tail])
	}
	this.head, this.tail = 0, this.sz%newLen
	this.content = nc
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return item, nil
}

func (this circArrQ[T]) Peek() (item T) {
	if !this.Empty() {
		item = this.content[this.head]
	}
	return
}
