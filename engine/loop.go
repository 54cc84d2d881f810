// Package engine hosts the pieces that sit between a platform event source
// and the input tracker: the time providers and the frame-driving loop.
package engine

import (
	"sync/atomic"
	"time"

	"github.com/lodygan/framewise/event"
	"github.com/lodygan/framewise/input"
)

// Handler receives the per-frame callbacks from a Loop.
type Handler[B comparable] interface {
	// Update runs once per frame, after timing has advanced and before
	// Draw. Returning false stops the loop after this frame.
	Update(m *input.Manager[B]) bool

	// Draw runs after Update every frame.
	Draw(m *input.Manager[B])
}

// Loop pumps a queue of captured events into a Manager and fires frame
// boundaries at a fixed interval. Per frame it drains pending events in
// delivery order, processes the boundary, runs Update then Draw, and clears
// the edge-triggered state. All of that happens on the goroutine calling
// Run; the queue's producer is the only other party involved.
type Loop[B comparable] struct {
	mgr      *input.Manager[B]
	src      *event.Queue
	handler  Handler[B]
	interval time.Duration
	stop     atomic.Bool
}

// NewLoop creates a loop firing a frame boundary every interval.
func NewLoop[B comparable](mgr *input.Manager[B], src *event.Queue, handler Handler[B], interval time.Duration) *Loop[B] {
	return &Loop[B]{
		mgr:      mgr,
		src:      src,
		handler:  handler,
		interval: interval,
	}
}

// Stop asks the loop to exit after the current frame. Safe to call from any
// goroutine.
func (l *Loop[B]) Stop() {
	l.stop.Store(true)
}

// Run blocks until the handler returns false, Stop is called, or a
// LoopExiting event arrives. On the way out it processes a final
// LoopExiting so queries report the terminal state.
func (l *Loop[B]) Run() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for range ticker.C {
		if !l.RunFrame() {
			return
		}
	}
}

// RunFrame executes exactly one frame cycle without pacing. Useful for
// hosts that own their own timer, and for tests.
func (l *Loop[B]) RunFrame() bool {
	for _, ev := range l.src.Consume() {
		l.mgr.Process(ev)
	}
	l.mgr.Process(event.FrameBoundary{})

	ok := l.handler.Update(l.mgr)
	l.handler.Draw(l.mgr)
	l.mgr.Clear()

	if !ok || l.stop.Load() || l.mgr.Raw().LoopExiting() {
		l.mgr.Process(event.LoopExiting{})
		return false
	}
	return true
}
