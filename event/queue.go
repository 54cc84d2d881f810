package event

import "sync/atomic"

// queueCapacity is the ring size. When the producer runs ahead of the
// consumer by more than this, the oldest events are overwritten.
const queueCapacity = 256

// Queue is a fixed-size ring buffer carrying events from one capture
// goroutine to one consumer (the host loop).
//
// The core tracker itself is single-threaded; the queue exists so that a
// blocking event source (a terminal reader, a window callback thread) can
// run off the loop thread. Exactly one goroutine may call Push and exactly
// one may call Consume. Head and tail are atomic so producer and consumer
// never take a lock.
//
// Overflow is handled by advancing head past the oldest events. A consumer
// that falls behind by more than queueCapacity events loses the oldest ones;
// for input events this degrades to missed edges, never corruption of the
// per-frame state machine.
type Queue struct {
	events [queueCapacity]Event
	head   atomic.Uint64 // next position to read
	tail   atomic.Uint64 // next position to write
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event. Single producer only.
func (q *Queue) Push(ev Event) {
	tail := q.tail.Load()
	q.events[tail%queueCapacity] = ev

	// Overwrite-oldest: move head forward before publishing the new tail so
	// the consumer never observes a window wider than the ring.
	if head := q.head.Load(); tail+1-head > queueCapacity {
		q.head.CompareAndSwap(head, tail+1-queueCapacity)
	}

	q.tail.Store(tail + 1)
}

// Consume returns all pending events in FIFO order and marks them read.
// Returns nil when the queue is empty. Single consumer only.
func (q *Queue) Consume() []Event {
	head := q.head.Load()
	tail := q.tail.Load()

	available := tail - head
	if available == 0 {
		return nil
	}
	if available > queueCapacity {
		available = queueCapacity
		head = tail - queueCapacity
	}

	out := make([]Event, available)
	for i := uint64(0); i < available; i++ {
		out[i] = q.events[(head+i)%queueCapacity]
	}

	q.head.Store(tail)
	return out
}

// Len reports the number of pending events.
func (q *Queue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > queueCapacity {
		n = queueCapacity
	}
	return int(n)
}
