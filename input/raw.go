package input

import (
	"time"

	"github.com/lodygan/framewise/event"
)

// Clock supplies "now" to the tracker. engine.MonotonicTimeProvider and
// engine.MockTimeProvider satisfy it.
type Clock interface {
	Now() time.Time
}

// Size is a pending window size in pixels (cells for terminal hosts).
type Size struct {
	Width, Height int
}

// Raw accumulates one frame's worth of input facts from the event stream and
// answers point-in-time queries about them.
//
// Field lifetimes follow a fixed clear policy:
//
//	EDGE       pressed, released, mouseMotion, wheelDelta, resize,
//	           closeRequested — reset by Clear every frame
//	PERSISTENT held, mousePosition, start, lastUpdate, updateDelta
//	STICKY     loopExiting — set once, never reset
//
// Clear applies exactly the EDGE rows; tests pin the table. Released is
// deliberately edge-triggered like pressed: the accumulate-forever variant
// would degrade Released() to "was ever released since startup".
type Raw struct {
	clock Clock

	held     map[ID]struct{}
	pressed  map[ID]struct{}
	released map[ID]struct{}

	mouseMotion   [2]float64
	mousePosition [2]float64
	wheelDelta    [2]float64

	start       time.Time
	lastUpdate  time.Time
	updateDelta time.Duration

	resize         Size
	hasResize      bool
	closeRequested bool
	loopExiting    bool
}

// NewRaw creates a tracker reading timestamps from clock.
func NewRaw(clock Clock) *Raw {
	now := clock.Now()
	return &Raw{
		clock:      clock,
		held:       make(map[ID]struct{}),
		pressed:    make(map[ID]struct{}),
		released:   make(map[ID]struct{}),
		start:      now,
		lastUpdate: now,
	}
}

// Process folds one event into the state. The switch is exhaustive over the
// event union; a new event kind will not compile without a case here.
func (r *Raw) Process(ev event.Event) {
	switch e := ev.(type) {
	case event.KeyboardInput:
		r.transition(Key(e.Key), e.Pressed)
	case event.MouseInput:
		r.transition(Mouse(e.Button), e.Pressed)
	case event.MouseMotion:
		r.mouseMotion[0] += e.DX
		r.mouseMotion[1] += e.DY
	case event.CursorMoved:
		r.mousePosition[0] = e.X
		r.mousePosition[1] = e.Y
	case event.MouseWheel:
		r.wheelDelta[0] += e.DX
		r.wheelDelta[1] += e.DY
	case event.Resized:
		r.resize = Size{Width: e.Width, Height: e.Height}
		r.hasResize = true
	case event.CloseRequested:
		r.closeRequested = true
	case event.FocusLost:
		// The platform stops delivering releases for keys held across a
		// focus switch. Dropping held avoids stuck keys; the dropped IDs do
		// NOT appear in released.
		clear(r.held)
	case event.FrameBoundary:
		r.MarkFrame()
	case event.LoopExiting:
		r.loopExiting = true
	}
}

// transition moves one ID through the press/release state machine. A press
// and a release are mutually exclusive transitions, so a single event can
// never leave the same ID in both pressed and released.
func (r *Raw) transition(id ID, pressed bool) {
	if pressed {
		r.held[id] = struct{}{}
		r.pressed[id] = struct{}{}
		return
	}
	delete(r.held, id)
	r.released[id] = struct{}{}
}

// MarkFrame advances timing at a frame boundary. updateDelta saturates at
// zero if the clock moves backwards. This is the only point where timing
// advances.
func (r *Raw) MarkFrame() {
	now := r.clock.Now()
	delta := now.Sub(r.lastUpdate)
	if delta < 0 {
		delta = 0
	}
	r.updateDelta = delta
	r.lastUpdate = now
}

// Clear resets the EDGE fields after the application has observed the frame.
// Held, mousePosition, timing and loopExiting are untouched.
func (r *Raw) Clear() {
	clear(r.pressed)
	clear(r.released)
	r.mouseMotion = [2]float64{}
	r.wheelDelta = [2]float64{}
	r.hasResize = false
	r.resize = Size{}
	r.closeRequested = false
}

// Pressed reports whether id transitioned down since the last frame boundary.
func (r *Raw) Pressed(id ID) bool {
	_, ok := r.pressed[id]
	return ok
}

// Held reports whether id is currently down.
func (r *Raw) Held(id ID) bool {
	_, ok := r.held[id]
	return ok
}

// Released reports whether id transitioned up since the last frame boundary.
func (r *Raw) Released(id ID) bool {
	_, ok := r.released[id]
	return ok
}

// MouseMotion returns the accumulated device-relative pointer delta since
// the last frame boundary.
func (r *Raw) MouseMotion() (x, y float64) {
	return r.mouseMotion[0], r.mouseMotion[1]
}

// MousePosition returns the last absolute pointer position. It persists
// across frames.
func (r *Raw) MousePosition() (x, y float64) {
	return r.mousePosition[0], r.mousePosition[1]
}

// WheelDelta returns the accumulated scroll delta in lines since the last
// frame boundary.
func (r *Raw) WheelDelta() (x, y float64) {
	return r.wheelDelta[0], r.wheelDelta[1]
}

// DeltaTime returns the duration between the two most recent frame
// boundaries. Zero before the first boundary.
func (r *Raw) DeltaTime() time.Duration {
	return r.updateDelta
}

// DeltaSeconds returns DeltaTime in seconds.
func (r *Raw) DeltaSeconds() float64 {
	return r.updateDelta.Seconds()
}

// FrameRate returns 1 / DeltaSeconds. When no frame boundary has been
// processed yet the delta is zero and the result is +Inf; callers sampling
// the first frame must tolerate that.
func (r *Raw) FrameRate() float64 {
	return 1.0 / r.DeltaSeconds()
}

// Resized returns the pending window size, if one arrived this frame.
func (r *Raw) Resized() (Size, bool) {
	return r.resize, r.hasResize
}

// CloseRequested reports whether the window manager asked the window to
// close since the last frame boundary.
func (r *Raw) CloseRequested() bool {
	return r.closeRequested
}

// LoopExiting reports whether the host event loop is shutting down. Sticky.
func (r *Raw) LoopExiting() bool {
	return r.loopExiting
}

// GameTime returns the elapsed time between startup and the most recent
// frame boundary.
func (r *Raw) GameTime() time.Duration {
	d := r.lastUpdate.Sub(r.start)
	if d < 0 {
		return 0
	}
	return d
}

// Every reports true once per interval boundary crossed, computed as
// GameTime mod interval < DeltaTime. The floating-point modulo can double
// fire or miss a tick across a large frame hitch; use Ticker when exact
// counts matter.
func (r *Raw) Every(interval time.Duration) bool {
	return mod(r.GameTime(), interval) < r.updateDelta
}

func mod(a, b time.Duration) time.Duration {
	if b <= 0 {
		return 0
	}
	return a % b
}
