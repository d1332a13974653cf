package nqueue

import "errors"

var (
	// ErrConfigNil indicates that a nil Config was provided.
	ErrConfigNil = errors.New("queue config is nil")

	// ErrLoggerNil indicates that a nil logger was provided.
	ErrLoggerNil = errors.New("logger is nil")

	// ErrInvalidInitialCapacity indicates that a negative initial capacity was provided.
	ErrInvalidInitialCapacity = errors.New("initial capacity should not be negative")
)
