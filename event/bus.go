package event

// Handler is a function type that represents a handler for queue events.
// It receives the item that was queued or dequeued.
//
// Note: the handler will be invoked in a blocking mode, before the queue operation
// returns. Take care with long-running implementations.
type Handler[T any] func(item T)

// SubscriptionID identifies a registered handler. IDs are never reused by a bus.
type SubscriptionID uint64

// Bus defines the publish/subscribe collaborator of a queue.
type Bus[T any] interface {
	// Subscribe registers handler for events of the given kind.
	// It returns ErrInvalidKind for unknown kinds and ErrNilHandler for a nil handler.
	Subscribe(kind Kind, handler Handler[T]) (SubscriptionID, error)
	// SubscribeOnce registers handler for the next event of the given kind only.
	SubscribeOnce(kind Kind, handler Handler[T]) (SubscriptionID, error)
	// Unsubscribe removes the handler registered with id.
	// It returns false if no such handler is registered.
	Unsubscribe(id SubscriptionID) bool
	// UnsubscribeAll removes every handler registered for kind.
	UnsubscribeAll(kind Kind)
	// HandlerCount returns the number of handlers registered for kind.
	HandlerCount(kind Kind) int
	// Publish invokes the handlers registered for kind with item.
	Publish(kind Kind, item T)
}
