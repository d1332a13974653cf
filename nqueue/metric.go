package nqueue

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Metrics contains operation counters of a queue.
//
// Counters are safe to read from any goroutine, so they can be used as the value of
// a prometheus CounterFunc while the owner goroutine mutates the queue.
type Metrics struct {
	// EnqueueCount indicates the number of enqueued items.
	EnqueueCount *xsync.Counter
	// DequeueCount indicates the number of items removed by Dequeue.
	DequeueCount *xsync.Counter
	// EmptyDequeueCount indicates the number of Dequeue calls on an empty queue.
	EmptyDequeueCount *xsync.Counter
	// SeekHitCount indicates the number of items removed by Seek.
	SeekHitCount *xsync.Counter
	// SeekMissCount indicates the number of Seek calls without a match.
	SeekMissCount *xsync.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		EnqueueCount:      xsync.NewCounter(),
		DequeueCount:      xsync.NewCounter(),
		EmptyDequeueCount: xsync.NewCounter(),
		SeekHitCount:      xsync.NewCounter(),
		SeekMissCount:     xsync.NewCounter(),
	}
}

func (m *Metrics) incEnqueueCount() {
	m.EnqueueCount.Inc()
}

func (m *Metrics) incDequeueCount() {
	m.DequeueCount.Inc()
}

func (m *Metrics) incEmptyDequeueCount() {
	m.EmptyDequeueCount.Inc()
}

func (m *Metrics) incSeekHitCount() {
	m.SeekHitCount.Inc()
}

func (m *Metrics) incSeekMissCount() {
	m.SeekMissCount.Inc()
}

// Reset sets all counters to zero.
func (m *Metrics) Reset() {
	m.EnqueueCount.Reset()
	m.DequeueCount.Reset()
	m.EmptyDequeueCount.Reset()
	m.SeekHitCount.Reset()
	m.SeekMissCount.Reset()
}
