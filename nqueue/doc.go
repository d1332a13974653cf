// Package nqueue provides a generic FIFO queue that notifies observers when items are
// added or removed.
//
// A Queue publishes events through an event.Bus:
//   - event.ItemQueued: published by Enqueue with the enqueued item.
//   - event.ItemDequeued: published by Dequeue and by a matching Seek with the removed item.
//
// Events are published synchronously, after the queue state has been updated and
// before the mutating call returns. Handlers run in registration order. A handler may
// call back into the same queue; the nested call completes before the outer call
// continues.
//
// Items passed to Make are the initial contents of the queue and don't produce any
// ItemQueued event.
//
// Absent results are reported with a boolean, as in Dequeue() (T, bool), so an empty
// queue can be told apart from a queue whose head is a zero value.
//
// Queue is not safe for concurrent use. Callers sharing a queue between goroutines
// must guard it with their own lock.
package nqueue
