package nqueue

import (
	"github.com/arloliu/go-notifierqueue/event"
	"github.com/arloliu/go-notifierqueue/internal/queue"
	"github.com/arloliu/go-notifierqueue/internal/util"
	"github.com/arloliu/go-notifierqueue/logger"
)

// Queue is a FIFO queue which publishes an event whenever an item is added or removed.
//
// Every mutation updates the queue state first and then publishes the event
// synchronously, so handlers always observe the state after the mutation.
//
// Queue is not safe for concurrent use. The zero value is not ready for use;
// construct via Make or MakeWithConfig.
type Queue[T any] struct {
	items   *queue.SliceQueue[T]
	length  int
	isEmpty bool

	bus     event.Bus[T]
	cfg     *Config
	logger  logger.Logger
	metrics *Metrics
}

// Make creates a queue holding a copy of initialValues, head first.
//
// No ItemQueued event is published for the initial values.
func Make[T any](initialValues ...T) *Queue[T] {
	return MakeWithConfig[T](nil, nil, initialValues...)
}

// MakeWithConfig creates a queue with the given config and event bus, holding a copy
// of initialValues.
//
// A nil cfg means DefaultConfig(), and a nil bus means a new event.Emitter.
// No ItemQueued event is published for the initial values.
func MakeWithConfig[T any](cfg *Config, bus event.Bus[T], initialValues ...T) *Queue[T] {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if bus == nil {
		bus = event.NewEmitter[T]()
	}

	q := &Queue[T]{
		items:   queue.NewSliceQueueFrom(util.CloneSlice(initialValues, cfg.initialCapacity)),
		bus:     bus,
		cfg:     cfg,
		logger:  cfg.logger.With("queue", cfg.name),
		metrics: newMetrics(),
	}
	q.setLengthAndIsEmpty()

	return q
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return q.length
}

// IsEmpty reports whether the queue has no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.isEmpty
}

// Enqueue appends item to the tail and publishes event.ItemQueued with it.
func (q *Queue[T]) Enqueue(item T) {
	q.items.Enqueue(item)
	q.setLengthAndIsEmpty()
	q.metrics.incEnqueueCount()
	q.trace("item enqueued")

	q.bus.Publish(event.ItemQueued, item)
}

// Dequeue removes the head item, publishes event.ItemDequeued with it and returns it.
//
// The second result is false when the queue is empty; in that case nothing is
// published.
func (q *Queue[T]) Dequeue() (T, bool) {
	item, ok := q.items.Dequeue()
	if !ok {
		q.metrics.incEmptyDequeueCount()
		return item, false
	}

	q.setLengthAndIsEmpty()
	q.metrics.incDequeueCount()
	q.trace("item dequeued")

	q.bus.Publish(event.ItemDequeued, item)

	return item, true
}

// Contains reports whether any item satisfies predicate. Items are tested head first.
func (q *Queue[T]) Contains(predicate func(item T) bool) bool {
	return q.items.IndexFunc(predicate) >= 0
}

// Peek returns the tail item, the one enqueued most recently, without removing it.
//
// Note that it is not the item the next Dequeue returns, unless the queue holds a
// single item. The second result is false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	return q.items.Last()
}

// Items returns a copy of the items, head first.
func (q *Queue[T]) Items() []T {
	return q.items.Items()
}

// Seek calls process for each item of q, head first, until process reports a match.
//
// The matching item is removed from q, event.ItemDequeued is published with the
// original item, and the result of process is returned. The order of the remaining
// items is preserved. When nothing matches, q is unchanged and the second result is
// false.
//
// A match is decided by the second result of process alone, so zero values such as
// 0 or "" are valid results.
func Seek[T, R any](q *Queue[T], process func(item T) (R, bool)) (R, bool) {
	for i := 0; i < q.items.Length(); i++ {
		item, _ := q.items.At(i)
		res, ok := process(item)
		if !ok {
			continue
		}

		q.items.RemoveAt(i)
		q.setLengthAndIsEmpty()
		q.metrics.incSeekHitCount()
		q.trace("item sought", "index", i)

		q.bus.Publish(event.ItemDequeued, item)

		return res, true
	}

	q.metrics.incSeekMissCount()

	var zero R
	return zero, false
}

// SeekItem removes and returns the first item satisfying predicate.
//
// It is Seek with the matching item itself as result.
func (q *Queue[T]) SeekItem(predicate func(item T) bool) (T, bool) {
	return Seek(q, func(item T) (T, bool) {
		return item, predicate(item)
	})
}

// Subscribe registers handler for events of the given kind on the queue's bus.
func (q *Queue[T]) Subscribe(kind event.Kind, handler event.Handler[T]) (event.SubscriptionID, error) {
	return q.bus.Subscribe(kind, handler)
}

// SubscribeOnce registers handler for the next event of the given kind on the queue's bus.
func (q *Queue[T]) SubscribeOnce(kind event.Kind, handler event.Handler[T]) (event.SubscriptionID, error) {
	return q.bus.SubscribeOnce(kind, handler)
}

// Unsubscribe removes the handler registered with id.
func (q *Queue[T]) Unsubscribe(id event.SubscriptionID) bool {
	return q.bus.Unsubscribe(id)
}

// UnsubscribeAll removes every handler registered for kind.
func (q *Queue[T]) UnsubscribeAll(kind event.Kind) {
	q.bus.UnsubscribeAll(kind)
}

// HandlerCount returns the number of handlers registered for kind.
func (q *Queue[T]) HandlerCount(kind event.Kind) int {
	return q.bus.HandlerCount(kind)
}

// Bus returns the event bus of the queue.
func (q *Queue[T]) Bus() event.Bus[T] {
	return q.bus
}

// Config returns the config of the queue.
func (q *Queue[T]) Config() *Config {
	return q.cfg
}

// Metrics returns the operation counters of the queue.
func (q *Queue[T]) Metrics() *Metrics {
	return q.metrics
}

func (q *Queue[T]) setLengthAndIsEmpty() {
	q.length = q.items.Length()
	q.isEmpty = q.length == 0
}

func (q *Queue[T]) trace(msg string, keysAndValues ...any) {
	if !q.cfg.debugTrace {
		return
	}
	q.logger.Debug(msg, append(keysAndValues, "length", q.length)...)
}
