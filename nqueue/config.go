package nqueue

import (
	"github.com/arloliu/go-notifierqueue/logger"
)

const defaultName = "nqueue"

// Config represents the configuration of a notifier queue.
type Config struct {
	// name is attached to every log record of the queue under the "queue" key.
	// Defaults to "nqueue".
	name string

	// initialCapacity defines the preallocated capacity of the item storage.
	// The storage is never smaller than the initial values passed to the constructor.
	// Defaults to 0.
	initialCapacity int

	// debugTrace indicates whether every mutation is logged at debug level.
	// Defaults to false.
	debugTrace bool

	// logger provides a logger instance for the queue.
	logger logger.Logger
}

// NewConfig creates a new queue configuration with the optional functional options.
//
// It initializes a Config with default values and then applies the provided options in order.
// See the documentation for Option and the various WithXXX functions for available options.
//
// Returns the Config and the error of the first option that failed, if any.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		name:            defaultName,
		initialCapacity: 0,
		debugTrace:      false,
		logger:          logger.GetLogger(),
	}
}

// Name returns the queue name.
func (cfg *Config) Name() string {
	return cfg.name
}

// InitialCapacity returns the preallocated capacity of the item storage.
func (cfg *Config) InitialCapacity() int {
	return cfg.initialCapacity
}

// DebugTrace returns true if mutations are logged at debug level.
func (cfg *Config) DebugTrace() bool {
	return cfg.debugTrace
}

// Logger returns the configured logger.
func (cfg *Config) Logger() logger.Logger {
	return cfg.logger
}

// Option represents a functional option for configuring a Config.
type Option interface {
	apply(*Config) error
}

type optFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *optFunc) apply(cfg *Config) error {
	if cfg == nil {
		return ErrConfigNil
	}
	return o.applyFunc(cfg)
}

func newOptFunc(name string, f func(*Config) error) *optFunc {
	return &optFunc{
		name:      name,
		applyFunc: f,
	}
}

// WithName sets the queue name attached to log records.
// An empty name resets it to the default.
func WithName(name string) Option {
	return newOptFunc("WithName", func(cfg *Config) error {
		if name == "" {
			name = defaultName
		}
		cfg.name = name

		return nil
	})
}

// WithInitialCapacity sets the preallocated capacity of the item storage.
// An error is returned if n is negative.
func WithInitialCapacity(n int) Option {
	return newOptFunc("WithInitialCapacity", func(cfg *Config) error {
		if n < 0 {
			return ErrInvalidInitialCapacity
		}
		cfg.initialCapacity = n

		return nil
	})
}

// WithDebugTrace enables or disables debug logging of every mutation.
func WithDebugTrace(enabled bool) Option {
	return newOptFunc("WithDebugTrace", func(cfg *Config) error {
		cfg.debugTrace = enabled
		return nil
	})
}

// WithLogger sets the logger for the queue.
// An error is returned if l is nil.
//
// The default logger is the global logger instance.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *Config) error {
		if l == nil {
			return ErrLoggerNil
		}
		cfg.logger = l

		return nil
	})
}
