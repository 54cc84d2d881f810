package input

import "time"

// Ticker fires at a fixed interval, counting ticks. Unlike Every it tracks
// its own last-tick timestamp, so it never double-fires and catches up by at
// most one tick after a hitch.
type Ticker struct {
	// Interval between ticks. Can be changed at any time and takes effect
	// on the next Update.
	Interval time.Duration

	// Count is the number of ticks that have fired.
	Count int

	// Paused suppresses ticks while true. After unpausing the next tick is
	// usually immediate.
	Paused bool

	clock  Clock
	last   time.Time
	isTick bool
}

// NewTicker creates a ticker reading timestamps from clock.
func NewTicker(interval time.Duration, clock Clock) *Ticker {
	return &Ticker{
		Interval: interval,
		clock:    clock,
		last:     clock.Now(),
	}
}

// Update samples the clock; call it once per frame.
func (t *Ticker) Update() {
	now := t.clock.Now()
	t.isTick = !t.Paused && now.Sub(t.last) > t.Interval
	if t.isTick {
		t.last = now
		t.Count++
	}
}

// IsTick reports whether the most recent Update crossed the interval.
func (t *Ticker) IsTick() bool {
	return t.isTick
}

// TimeSinceLastTick returns the elapsed time since the last tick,
// saturating at zero.
func (t *Ticker) TimeSinceLastTick() time.Duration {
	d := t.clock.Now().Sub(t.last)
	if d < 0 {
		return 0
	}
	return d
}

// TickRatio returns progress through the current interval. At least zero
// and only above one when an update is overdue.
func (t *Ticker) TickRatio() float64 {
	if t.Interval <= 0 {
		return 0
	}
	return t.TimeSinceLastTick().Seconds() / t.Interval.Seconds()
}
