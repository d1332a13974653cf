package event

import "strconv"

// Kind identifies the type of a queue event.
type Kind uint8

const (
	// ItemQueued is published after an item was appended to a queue.
	ItemQueued Kind = iota
	// ItemDequeued is published after an item was removed from a queue.
	ItemDequeued
)

// Kinds returns all valid event kinds.
func Kinds() []Kind {
	return []Kind{ItemQueued, ItemDequeued}
}

// IsValid reports whether k is a known event kind.
func (k Kind) IsValid() bool {
	return k == ItemQueued || k == ItemDequeued
}

// String returns the event name.
func (k Kind) String() string {
	switch k {
	case ItemQueued:
		return "item_queued"
	case ItemDequeued:
		return "item_dequeued"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}
