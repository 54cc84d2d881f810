package input

import (
	"math"
	"time"

	"github.com/lodygan/framewise/event"
	"github.com/lodygan/framewise/vmath"
)

// AxisBind pairs the two actions forming one movement axis.
type AxisBind[B comparable] struct {
	Pos B // positive direction
	Neg B // negative direction
}

// Manager composes the raw tracker with a binding table, mouse sensitivity,
// time scaling and frame-rate smoothing. It is the application-facing query
// surface; hosts read through it for the duration of each frame.
type Manager[B comparable] struct {
	// MouseSensitivity multiplies raw mouse motion componentwise. Negative
	// values invert an axis.
	MouseSensitivity [2]float64

	// Bindings is the semantic-action table consulted by Pressed, Held,
	// Released and the axis queries.
	Bindings *Bindings[B]

	// Time is the accumulated scaled elapsed time across frame boundaries.
	Time time.Duration

	// TimeScale multiplies DeltaTime. 1.0 is real time; 0 pauses, 0.5 is
	// half speed. It never touches the raw tracker's clock.
	TimeScale float64

	// SmoothFrameRateAlpha is the EMA coefficient for SmoothFrameRate. The
	// default 0.05 gives roughly a 20-frame averaging window.
	SmoothFrameRateAlpha float64

	// SmoothFrameRate is the exponentially smoothed frame rate, updated
	// once per MarkFrame.
	SmoothFrameRate float64

	raw *Raw
}

// NewManager creates a manager with default scaling and an empty binding
// table, reading time from clock.
func NewManager[B comparable](clock Clock) *Manager[B] {
	return &Manager[B]{
		MouseSensitivity:     [2]float64{1, 1},
		Bindings:             NewBindings[B](),
		TimeScale:            1.0,
		SmoothFrameRateAlpha: 0.05,
		raw:                  NewRaw(clock),
	}
}

// Raw exposes the underlying tracker for identity-level queries.
func (m *Manager[B]) Raw() *Raw {
	return m.raw
}

// Process folds one event into the state. FrameBoundary runs the manager's
// own frame bookkeeping on top of the raw timing update.
func (m *Manager[B]) Process(ev event.Event) {
	if _, ok := ev.(event.FrameBoundary); ok {
		m.MarkFrame()
		return
	}
	m.raw.Process(ev)
}

// MarkFrame advances timing, accumulates scaled time and updates the
// smoothed frame rate. Invoked once per frame boundary, before the
// application reads queries.
//
// A zero raw delta (possible on the very first boundary) would contribute an
// infinite sample; the EMA skips it so one degenerate frame cannot poison
// the average. FrameRate still reports +Inf for that frame.
func (m *Manager[B]) MarkFrame() {
	m.raw.MarkFrame()
	m.Time += m.DeltaTime()
	if m.raw.updateDelta > 0 {
		alpha := m.SmoothFrameRateAlpha
		m.SmoothFrameRate = alpha*m.raw.FrameRate() + (1-alpha)*m.SmoothFrameRate
	}
}

// Clear resets the raw tracker's edge-triggered state for the next frame.
func (m *Manager[B]) Clear() {
	m.raw.Clear()
}

// Pressed reports whether any input bound to action was pressed this frame.
func (m *Manager[B]) Pressed(action B) bool {
	for _, id := range m.Bindings.Transform(action) {
		if m.raw.Pressed(id) {
			return true
		}
	}
	return false
}

// Held reports whether any input bound to action is currently down.
func (m *Manager[B]) Held(action B) bool {
	for _, id := range m.Bindings.Transform(action) {
		if m.raw.Held(id) {
			return true
		}
	}
	return false
}

// Released reports whether any input bound to action was released this
// frame.
func (m *Manager[B]) Released(action B) bool {
	for _, id := range m.Bindings.Transform(action) {
		if m.raw.Released(id) {
			return true
		}
	}
	return false
}

// MouseMotion returns this frame's pointer delta scaled by
// MouseSensitivity.
func (m *Manager[B]) MouseMotion() (x, y float64) {
	rx, ry := m.raw.MouseMotion()
	return rx * m.MouseSensitivity[0], ry * m.MouseSensitivity[1]
}

// DeltaTime returns the frame delta with TimeScale applied. This is the
// authoritative frame time for the application; the host implements pause
// and slow motion through TimeScale alone.
func (m *Manager[B]) DeltaTime() time.Duration {
	return time.Duration(float64(m.raw.DeltaTime()) * m.TimeScale)
}

// DeltaSeconds returns DeltaTime in seconds.
func (m *Manager[B]) DeltaSeconds() float64 {
	return m.DeltaTime().Seconds()
}

// Axis returns the 1D movement axis for bind: +1 when only the positive
// action is held, -1 when only the negative one is, 0 otherwise. Holding
// both directions cancels to 0 (subtraction, not addition: the historical
// additive variant produced 2 when both were held).
func (m *Manager[B]) Axis(bind AxisBind[B]) float64 {
	var v float64
	if m.Held(bind.Pos) {
		v++
	}
	if m.Held(bind.Neg) {
		v--
	}
	return v
}

// AxisN applies Axis componentwise over any number of independent pairs.
func (m *Manager[B]) AxisN(binds ...AxisBind[B]) []float64 {
	out := make([]float64, len(binds))
	for i, bind := range binds {
		out[i] = m.Axis(bind)
	}
	return out
}

// AxisNNorm is AxisN scaled to unit length. The zero vector is returned
// unchanged, so diagonal movement is deterministic: two held orthogonal
// axes yield length 1, not sqrt(2).
func (m *Manager[B]) AxisNNorm(binds ...AxisBind[B]) []float64 {
	out := m.AxisN(binds...)
	var sqrMag float64
	for _, v := range out {
		sqrMag += v * v
	}
	if sqrMag == 0 {
		return out
	}
	inv := 1.0 / math.Sqrt(sqrMag)
	for i := range out {
		out[i] *= inv
	}
	return out
}

// Axis2 returns the 2D axis vector for an (x, y) pair of binds.
func (m *Manager[B]) Axis2(x, y AxisBind[B]) vmath.Vec2F {
	return vmath.Vec2F{X: m.Axis(x), Y: m.Axis(y)}
}

// Axis2Norm returns Axis2 on the unit circle, or the zero vector.
func (m *Manager[B]) Axis2Norm(x, y AxisBind[B]) vmath.Vec2F {
	return vmath.V2FNormalize(m.Axis2(x, y))
}

// Axis3 returns the 3D axis vector for an (x, y, z) triple of binds.
func (m *Manager[B]) Axis3(x, y, z AxisBind[B]) vmath.Vec3F {
	return vmath.Vec3F{X: m.Axis(x), Y: m.Axis(y), Z: m.Axis(z)}
}

// Axis3Norm returns Axis3 on the unit sphere, or the zero vector.
func (m *Manager[B]) Axis3Norm(x, y, z AxisBind[B]) vmath.Vec3F {
	return vmath.V3FNormalize(m.Axis3(x, y, z))
}

// Every reports true once per interval of scaled time, computed as
// Time mod interval < DeltaTime. Same hitch caveats as Raw.Every.
func (m *Manager[B]) Every(interval time.Duration) bool {
	return mod(m.Time, interval) < m.DeltaTime()
}
