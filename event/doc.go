// Package event provides the publish/subscribe mechanism used by notifier queues.
//
// A Bus delivers queue events to handlers registered per event Kind. The default
// implementation, Emitter, invokes handlers synchronously, in registration order, on
// the goroutine that publishes the event:
//
//	bus := event.NewEmitter[string]()
//	id, _ := bus.Subscribe(event.ItemQueued, func(item string) {
//		fmt.Println("queued", item)
//	})
//	bus.Publish(event.ItemQueued, "hello") // prints "queued hello"
//	bus.Unsubscribe(id)
//
// Emitter is not safe for concurrent use, with the exception of PublishCount which
// may be read from any goroutine.
package event
