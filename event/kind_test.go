package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	require := require.New(t)

	require.Equal("item_queued", ItemQueued.String())
	require.Equal("item_dequeued", ItemDequeued.String())
	require.Equal("unknown(7)", Kind(7).String())

	require.True(ItemQueued.IsValid())
	require.True(ItemDequeued.IsValid())
	require.False(Kind(2).IsValid())

	require.Equal([]Kind{ItemQueued, ItemDequeued}, Kinds())
}
