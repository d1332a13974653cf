package queue

import "slices"

// SliceQueue implements the Queue interface using a slice.
type SliceQueue[T any] struct {
	items []T
}

var _ Queue[int] = (*SliceQueue[int])(nil)

// NewSliceQueue creates a new SliceQueue with the given preallocated capacity.
func NewSliceQueue[T any](prealloc int) *SliceQueue[T] {
	if prealloc < 0 {
		prealloc = 0
	}
	return &SliceQueue[T]{items: make([]T, 0, prealloc)}
}

// NewSliceQueueFrom creates a SliceQueue that takes ownership of items.
//
// The caller must not modify items after the call.
func NewSliceQueueFrom[T any](items []T) *SliceQueue[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &SliceQueue[T]{items: items}
}

// Enqueue adds an item to the tail of the queue.
func (q *SliceQueue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the item at the head of the queue.
func (q *SliceQueue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero // release the reference held by the backing array
	q.items = q.items[1:]
	return item, true
}

// Last returns the item at the tail of the queue without removing it.
func (q *SliceQueue[T]) Last() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[len(q.items)-1], true
}

// At returns the item at position i.
func (q *SliceQueue[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(q.items) {
		var zero T
		return zero, false
	}
	return q.items[i], true
}

// RemoveAt removes and returns the item at position i.
func (q *SliceQueue[T]) RemoveAt(i int) (T, bool) {
	if i < 0 || i >= len(q.items) {
		var zero T
		return zero, false
	}
	if i == 0 {
		return q.Dequeue()
	}
	item := q.items[i]
	q.items = slices.Delete(q.items, i, i+1)
	return item, true
}

// IndexFunc returns the position of the first item satisfying f, or -1.
func (q *SliceQueue[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(q.items, f)
}

// Items returns a copy of the items, head first.
func (q *SliceQueue[T]) Items() []T {
	return slices.Clone(q.items)
}

// Reset resets the queue to an empty state.
func (q *SliceQueue[T]) Reset() {
	clear(q.items)
	q.items = q.items[:0] // Reslice to 0 length to reuse the underlying array
}

// IsEmpty returns true if the queue is empty, false otherwise.
func (q *SliceQueue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Length returns the number of items in the queue.
func (q *SliceQueue[T]) Length() int {
	return len(q.items)
}
