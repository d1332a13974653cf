package queue

// Queue defines the ordered storage behind a notifier queue.
//
// Positions are zero-based from the head. Implementations are not required to be
// safe for concurrent use.
type Queue[T any] interface {
	// Enqueue adds an item to the tail of the queue.
	Enqueue(item T)
	// Dequeue removes and returns the item at the head of the queue.
	// The second result is false when the queue is empty.
	Dequeue() (T, bool)
	// Last returns the item at the tail of the queue without removing it.
	Last() (T, bool)
	// At returns the item at position i.
	At(i int) (T, bool)
	// RemoveAt removes and returns the item at position i, keeping the order of the rest.
	RemoveAt(i int) (T, bool)
	// IndexFunc returns the position of the first item satisfying f, or -1.
	IndexFunc(f func(T) bool) int
	// Items returns a copy of the items, head first.
	Items() []T
	// Reset to an empty queue
	Reset()
	// IsEmpty returns true if the queue is empty, false otherwise.
	IsEmpty() bool
	// Length returns the number of items in the queue.
	Length() int
}
