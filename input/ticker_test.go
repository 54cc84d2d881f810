package input_test

import (
	"math"
	"testing"
	"time"

	"github.com/lodygan/framewise/engine"
	"github.com/lodygan/framewise/input"
)

func TestTickerFiresAfterInterval(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ticker := input.NewTicker(100*time.Millisecond, clock)

	ticker.Update()
	if ticker.IsTick() {
		t.Error("ticker fired with no elapsed time")
	}

	clock.Advance(150 * time.Millisecond)
	ticker.Update()
	if !ticker.IsTick() {
		t.Error("ticker did not fire after exceeding the interval")
	}
	if ticker.Count != 1 {
		t.Errorf("count = %d, want 1", ticker.Count)
	}

	// Immediately after a tick, nothing is due.
	ticker.Update()
	if ticker.IsTick() {
		t.Error("ticker double-fired without elapsed time")
	}
}

func TestTickerCountsAcrossIntervals(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ticker := input.NewTicker(100*time.Millisecond, clock)

	for i := 0; i < 10; i++ {
		clock.Advance(101 * time.Millisecond)
		ticker.Update()
	}
	if ticker.Count != 10 {
		t.Errorf("count = %d after 10 intervals, want 10", ticker.Count)
	}
}

func TestTickerPause(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ticker := input.NewTicker(100*time.Millisecond, clock)

	ticker.Paused = true
	clock.Advance(time.Second)
	ticker.Update()
	if ticker.IsTick() {
		t.Error("paused ticker fired")
	}

	ticker.Paused = false
	ticker.Update()
	if !ticker.IsTick() {
		t.Error("unpaused ticker with overdue interval did not fire")
	}
}

func TestTickerRatio(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ticker := input.NewTicker(100*time.Millisecond, clock)

	clock.Advance(50 * time.Millisecond)
	if got := ticker.TickRatio(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("ratio = %v at half interval, want 0.5", got)
	}

	if got := ticker.TimeSinceLastTick(); got != 50*time.Millisecond {
		t.Errorf("time since last tick = %v, want 50ms", got)
	}
}
