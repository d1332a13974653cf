package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type msgItem struct {
	Data string
}

func TestSliceQueue(t *testing.T) {
	assert := assert.New(t)
	t.Run("Empty Queue", func(t *testing.T) {
		q := NewSliceQueue[*msgItem](1)

		assert.True(q.IsEmpty())
		assert.Equal(0, q.Length())

		item, ok := q.Dequeue()
		assert.False(ok)
		assert.Nil(item)

		item, ok = q.Last()
		assert.False(ok)
		assert.Nil(item)

		_, ok = q.At(0)
		assert.False(ok)
		_, ok = q.RemoveAt(0)
		assert.False(ok)
		assert.Equal(-1, q.IndexFunc(func(*msgItem) bool { return true }))
		assert.Empty(q.Items())
	})

	t.Run("Enqueue and Dequeue", func(t *testing.T) {
		q := NewSliceQueue[*msgItem](1)

		item1 := &msgItem{"data1"}
		q.Enqueue(item1)
		assert.False(q.IsEmpty())
		assert.Equal(1, q.Length())

		item2 := &msgItem{"data2"}
		q.Enqueue(item2)
		assert.Equal(2, q.Length())

		dequeuedItem1, ok := q.Dequeue()
		assert.True(ok)
		assert.Equal(item1, dequeuedItem1)
		assert.Equal(1, q.Length())

		dequeuedItem2, ok := q.Dequeue()
		assert.True(ok)
		assert.Equal(item2, dequeuedItem2)
		assert.True(q.IsEmpty())

		dequeuedItem3, ok := q.Dequeue()
		assert.False(ok)
		assert.Nil(dequeuedItem3)
		assert.True(q.IsEmpty())
	})

	t.Run("Last", func(t *testing.T) {
		q := NewSliceQueue[*msgItem](1)

		item1 := &msgItem{"data1"}
		item2 := &msgItem{"data2"}
		q.Enqueue(item1)

		last, ok := q.Last()
		assert.True(ok)
		assert.Equal(item1, last)
		assert.Equal(1, q.Length()) // Length should not change after Last

		q.Enqueue(item2)

		last, _ = q.Last()
		assert.Equal(item2, last)
		assert.Equal(2, q.Length())

		q.Dequeue()
		last, _ = q.Last()
		assert.Equal(item2, last)
		assert.Equal(1, q.Length())

		q.Dequeue()
		_, ok = q.Last()
		assert.False(ok)
		assert.Equal(0, q.Length())
	})

	t.Run("Zero value items", func(t *testing.T) {
		q := NewSliceQueue[int](0)
		q.Enqueue(0)

		v, ok := q.Dequeue()
		assert.True(ok)
		assert.Equal(0, v)

		_, ok = q.Dequeue()
		assert.False(ok)
	})
}

func TestSliceQueue_RemoveAt(t *testing.T) {
	require := require.New(t)

	t.Run("Middle", func(t *testing.T) {
		q := NewSliceQueueFrom([]string{"a", "b", "c", "d"})

		item, ok := q.RemoveAt(2)
		require.True(ok)
		require.Equal("c", item)
		require.Equal([]string{"a", "b", "d"}, q.Items())
		require.Equal(3, q.Length())
	})

	t.Run("Head", func(t *testing.T) {
		q := NewSliceQueueFrom([]string{"a", "b"})

		item, ok := q.RemoveAt(0)
		require.True(ok)
		require.Equal("a", item)
		require.Equal([]string{"b"}, q.Items())
	})

	t.Run("Tail", func(t *testing.T) {
		q := NewSliceQueueFrom([]string{"a", "b"})

		item, ok := q.RemoveAt(1)
		require.True(ok)
		require.Equal("b", item)
		require.Equal([]string{"a"}, q.Items())
	})

	t.Run("Out of range", func(t *testing.T) {
		q := NewSliceQueueFrom([]string{"a"})

		_, ok := q.RemoveAt(-1)
		require.False(ok)
		_, ok = q.RemoveAt(1)
		require.False(ok)
		require.Equal(1, q.Length())
	})
}

func TestSliceQueue_IndexFunc(t *testing.T) {
	require := require.New(t)

	q := NewSliceQueueFrom([]string{"x", "y", "x"})
	require.Equal(0, q.IndexFunc(func(s string) bool { return s == "x" }))
	require.Equal(1, q.IndexFunc(func(s string) bool { return s == "y" }))
	require.Equal(-1, q.IndexFunc(func(s string) bool { return s == "z" }))

	item, ok := q.At(2)
	require.True(ok)
	require.Equal("x", item)
}

func TestSliceQueue_ItemsIsCopy(t *testing.T) {
	require := require.New(t)

	q := NewSliceQueueFrom([]string{"a", "b"})
	items := q.Items()
	items[0] = "z"

	first, _ := q.At(0)
	require.Equal("a", first)
}

func TestSliceQueue_Reset(t *testing.T) {
	require := require.New(t)

	q := NewSliceQueueFrom([]int{1, 2, 3})
	q.Reset()
	require.True(q.IsEmpty())
	require.Equal(0, q.Length())

	q.Enqueue(4)
	require.Equal([]int{4}, q.Items())
}

func BenchmarkSliceQueue_100(b *testing.B) {
	benchSliceQueue(b, 100)
}

func BenchmarkSliceQueue_1000(b *testing.B) {
	benchSliceQueue(b, 1000)
}

func benchSliceQueue(b *testing.B, iterCount int) {
	q := NewSliceQueue[int](iterCount)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < iterCount; j++ {
			q.Enqueue(j)
		}
		for !q.IsEmpty() {
			_, _ = q.Dequeue()
		}
	}
	b.StopTimer()
}
