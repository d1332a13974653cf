package nqueue

import (
	"testing"

	"github.com/arloliu/go-notifierqueue/logger"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	require := require.New(t)

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := NewConfig()
		require.NoError(err)
		require.Equal("nqueue", cfg.Name())
		require.Equal(0, cfg.InitialCapacity())
		require.False(cfg.DebugTrace())
		require.NotNil(cfg.Logger())
	})

	t.Run("Valid Configuration", func(t *testing.T) {
		l := logger.NewMockLogger()
		cfg, err := NewConfig(
			WithName("jobs"),
			WithInitialCapacity(64),
			WithDebugTrace(true),
			WithLogger(l),
		)
		require.NoError(err)
		require.Equal("jobs", cfg.Name())
		require.Equal(64, cfg.InitialCapacity())
		require.True(cfg.DebugTrace())
		require.Same(l, cfg.Logger())

		require.NoError(WithDebugTrace(false).apply(cfg))
		require.False(cfg.DebugTrace())
	})

	t.Run("Empty name resets to default", func(t *testing.T) {
		cfg, err := NewConfig(WithName("jobs"), WithName(""))
		require.NoError(err)
		require.Equal("nqueue", cfg.Name())
	})

	t.Run("Invalid Initial Capacity", func(t *testing.T) {
		_, err := NewConfig(WithInitialCapacity(-1))
		require.ErrorIs(err, ErrInvalidInitialCapacity)
		require.EqualError(err, "initial capacity should not be negative")
	})

	t.Run("Nil Logger", func(t *testing.T) {
		cfg, err := NewConfig(WithLogger(nil))
		require.ErrorIs(err, ErrLoggerNil)
		require.NotNil(cfg.Logger())
	})

	t.Run("Nil Config", func(t *testing.T) {
		require.ErrorIs(WithName("x").apply(nil), ErrConfigNil)
	})
}
