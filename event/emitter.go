package event

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
)

const numKinds = int(ItemDequeued) + 1

type subscription[T any] struct {
	id      SubscriptionID
	handler Handler[T]
	once    bool
	fired   bool
}

// Emitter is the default Bus implementation.
//
// Handlers run synchronously in registration order. Publish iterates the handler list
// as it was when the publish started: handlers subscribed by a running handler are not
// invoked for the current event, and handlers unsubscribed by a running handler still
// are. A handler may publish again; the nested publish completes before the outer one
// continues.
//
// The zero value is not ready for use; construct via NewEmitter.
type Emitter[T any] struct {
	lastID   SubscriptionID
	handlers [numKinds][]*subscription[T]

	publishCounts *xsync.MapOf[Kind, *xsync.Counter]
}

var _ Bus[int] = (*Emitter[int])(nil)

// NewEmitter creates an Emitter without any handlers.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{
		publishCounts: xsync.NewMapOf[Kind, *xsync.Counter](),
	}
}

// Subscribe registers handler for events of the given kind.
func (e *Emitter[T]) Subscribe(kind Kind, handler Handler[T]) (SubscriptionID, error) {
	return e.add(kind, handler, false)
}

// SubscribeOnce registers handler for the next event of the given kind.
//
// The handler is unregistered right before it is invoked.
func (e *Emitter[T]) SubscribeOnce(kind Kind, handler Handler[T]) (SubscriptionID, error) {
	return e.add(kind, handler, true)
}

// Unsubscribe removes the handler registered with id.
func (e *Emitter[T]) Unsubscribe(id SubscriptionID) bool {
	for k := range e.handlers {
		subs := e.handlers[k]
		for i, sub := range subs {
			if sub.id == id {
				// copy on write, a running Publish keeps iterating its own snapshot
				e.handlers[k] = slices.Concat(subs[:i], subs[i+1:])
				return true
			}
		}
	}

	return false
}

// UnsubscribeAll removes every handler registered for kind.
func (e *Emitter[T]) UnsubscribeAll(kind Kind) {
	if !kind.IsValid() {
		return
	}
	e.handlers[kind] = nil
}

// HandlerCount returns the number of handlers registered for kind.
func (e *Emitter[T]) HandlerCount(kind Kind) int {
	if !kind.IsValid() {
		return 0
	}
	return len(e.handlers[kind])
}

// Publish invokes the handlers registered for kind with item.
// Publishing an unknown kind is a no-op.
func (e *Emitter[T]) Publish(kind Kind, item T) {
	if !kind.IsValid() {
		return
	}

	e.counter(kind).Inc()

	for _, sub := range e.handlers[kind] {
		if sub.once {
			if sub.fired {
				continue
			}
			sub.fired = true
			e.Unsubscribe(sub.id)
		}
		sub.handler(item)
	}
}

// PublishCount returns the number of events of the given kind published so far.
//
// It is safe to call from any goroutine.
func (e *Emitter[T]) PublishCount(kind Kind) int64 {
	c, ok := e.publishCounts.Load(kind)
	if !ok {
		return 0
	}
	return c.Value()
}

func (e *Emitter[T]) add(kind Kind, handler Handler[T], once bool) (SubscriptionID, error) {
	if !kind.IsValid() {
		return 0, ErrInvalidKind
	}
	if handler == nil {
		return 0, ErrNilHandler
	}

	e.lastID++
	e.handlers[kind] = append(e.handlers[kind], &subscription[T]{
		id:      e.lastID,
		handler: handler,
		once:    once,
	})

	return e.lastID, nil
}

func (e *Emitter[T]) counter(kind Kind) *xsync.Counter {
	c, _ := e.publishCounts.LoadOrCompute(kind, xsync.NewCounter)
	return c
}
