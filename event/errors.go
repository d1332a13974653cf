package event

import "errors"

var (
	// ErrInvalidKind indicates that an unknown event kind was provided.
	ErrInvalidKind = errors.New("invalid event kind")

	// ErrNilHandler indicates that a nil handler was provided.
	ErrNilHandler = errors.New("handler is nil")
)
