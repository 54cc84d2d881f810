package input_test

import (
	"math"
	"testing"
	"time"

	"github.com/lodygan/framewise/engine"
	"github.com/lodygan/framewise/event"
	"github.com/lodygan/framewise/input"
)

const (
	up action = iota + 10
	down
	left
	right
)

func newManager() (*input.Manager[action], *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(testStart)
	m := input.NewManager[action](clock)
	m.Bindings.Bind(input.Key(event.KeyW), up)
	m.Bindings.Bind(input.Key(event.KeyUp), up)
	m.Bindings.Bind(input.Key(event.KeyS), down)
	m.Bindings.Bind(input.Key(event.KeyA), left)
	m.Bindings.Bind(input.Key(event.KeyD), right)
	return m, clock
}

func press(m *input.Manager[action], k event.Key) {
	m.Process(event.KeyboardInput{Key: k, Pressed: true})
}

func release(m *input.Manager[action], k event.Key) {
	m.Process(event.KeyboardInput{Key: k, Pressed: false})
}

func managerFrame(m *input.Manager[action], clock *engine.MockTimeProvider, d time.Duration) {
	clock.Advance(d)
	m.Process(event.FrameBoundary{})
	m.Clear()
}

func TestActionQueriesAreOrOverBindings(t *testing.T) {
	m, _ := newManager()

	// Either bound key should trigger the action.
	press(m, event.KeyUp)
	if !m.Pressed(up) || !m.Held(up) {
		t.Error("action not reported for the second bound key")
	}
	if m.Pressed(down) {
		t.Error("unrelated action reported pressed")
	}

	release(m, event.KeyUp)
	if !m.Released(up) {
		t.Error("released not reported for the action")
	}
}

func TestUnboundActionAlwaysFalse(t *testing.T) {
	m, _ := newManager()
	const orphan action = 99

	if m.Pressed(orphan) || m.Held(orphan) || m.Released(orphan) {
		t.Error("an unbound action must report false everywhere")
	}
}

func TestAxisSubtraction(t *testing.T) {
	m, _ := newManager()
	axis := input.AxisBind[action]{Pos: right, Neg: left}

	if got := m.Axis(axis); got != 0 {
		t.Errorf("axis with nothing held = %v, want 0", got)
	}

	press(m, event.KeyD)
	if got := m.Axis(axis); got != 1 {
		t.Errorf("axis with positive held = %v, want 1", got)
	}

	release(m, event.KeyD)
	press(m, event.KeyA)
	if got := m.Axis(axis); got != -1 {
		t.Errorf("axis with negative held = %v, want -1", got)
	}

	// Both directions held must cancel to 0. The historical additive
	// variant yielded 2 here; subtraction is the semantics we pin.
	press(m, event.KeyD)
	if got := m.Axis(axis); got != 0 {
		t.Errorf("axis with both directions held = %v, want 0", got)
	}
}

func TestAxisNormalizedDiagonal(t *testing.T) {
	m, _ := newManager()

	press(m, event.KeyW)
	press(m, event.KeyD)

	v := m.Axis2Norm(
		input.AxisBind[action]{Pos: right, Neg: left},
		input.AxisBind[action]{Pos: up, Neg: down},
	)
	mag := math.Hypot(v.X, v.Y)
	if math.Abs(mag-1) > 1e-9 {
		t.Errorf("diagonal magnitude = %v, want 1", mag)
	}
}

func TestAxisNormalizedZeroVector(t *testing.T) {
	m, _ := newManager()

	v := m.Axis2Norm(
		input.AxisBind[action]{Pos: right, Neg: left},
		input.AxisBind[action]{Pos: up, Neg: down},
	)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("normalized zero axis = %+v, want exact zero vector", v)
	}

	n := m.AxisNNorm(
		input.AxisBind[action]{Pos: right, Neg: left},
		input.AxisBind[action]{Pos: up, Neg: down},
		input.AxisBind[action]{Pos: up, Neg: down},
	)
	for i, c := range n {
		if c != 0 {
			t.Errorf("component %d = %v, want exact 0", i, c)
		}
	}
}

func TestAxis3NormOnUnitSphere(t *testing.T) {
	m, _ := newManager()

	press(m, event.KeyW)
	press(m, event.KeyD)

	v := m.Axis3Norm(
		input.AxisBind[action]{Pos: right, Neg: left},
		input.AxisBind[action]{Pos: up, Neg: down},
		input.AxisBind[action]{Pos: up, Neg: down},
	)
	mag := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if math.Abs(mag-1) > 1e-9 {
		t.Errorf("3D magnitude = %v, want 1", mag)
	}
}

func TestMouseSensitivityScalesAndInverts(t *testing.T) {
	m, _ := newManager()
	m.MouseSensitivity = [2]float64{2, -1}

	m.Process(event.MouseMotion{DX: 3, DY: 5})
	x, y := m.MouseMotion()
	if x != 6 || y != -5 {
		t.Errorf("scaled motion = (%v, %v), want (6, -5)", x, y)
	}
}

func TestTimeScaleHalvesDelta(t *testing.T) {
	m, clock := newManager()
	m.TimeScale = 0.5

	clock.Advance(20 * time.Millisecond)
	m.Process(event.FrameBoundary{})

	if raw := m.Raw().DeltaTime(); raw != 20*time.Millisecond {
		t.Errorf("raw delta = %v, want 20ms", raw)
	}
	if scaled := m.DeltaTime(); scaled != 10*time.Millisecond {
		t.Errorf("scaled delta = %v, want 10ms", scaled)
	}
}

func TestTimeAccumulatesScaled(t *testing.T) {
	m, clock := newManager()
	m.TimeScale = 0.5

	for i := 0; i < 4; i++ {
		managerFrame(m, clock, 20*time.Millisecond)
	}
	if m.Time != 40*time.Millisecond {
		t.Errorf("accumulated time = %v, want 40ms at half scale", m.Time)
	}
}

func TestSmoothFrameRateConvergesMonotonically(t *testing.T) {
	m, clock := newManager()

	// Constant 100 fps input. The EMA must rise toward 100 without
	// overshooting.
	prev := m.SmoothFrameRate
	for i := 0; i < 200; i++ {
		managerFrame(m, clock, 10*time.Millisecond)
		got := m.SmoothFrameRate
		if got < prev {
			t.Fatalf("smooth frame rate fell from %v to %v on frame %d", prev, got, i)
		}
		if got > 100+1e-9 {
			t.Fatalf("smooth frame rate overshot to %v on frame %d", got, i)
		}
		prev = got
	}
	if math.Abs(m.SmoothFrameRate-100) > 1 {
		t.Errorf("smooth frame rate = %v after 200 frames, want within 1 of 100", m.SmoothFrameRate)
	}
}

func TestSmoothFrameRateSkipsZeroDeltaSample(t *testing.T) {
	m, _ := newManager()

	// Boundary with no elapsed time: the raw rate is +Inf and must not
	// reach the EMA.
	m.Process(event.FrameBoundary{})
	if math.IsInf(m.SmoothFrameRate, 0) || math.IsNaN(m.SmoothFrameRate) {
		t.Errorf("smooth frame rate poisoned by zero-delta frame: %v", m.SmoothFrameRate)
	}
}

func TestManagerEveryUsesScaledTime(t *testing.T) {
	m, clock := newManager()

	fired := 0
	for i := 0; i < 30; i++ {
		managerFrame(m, clock, 10*time.Millisecond)
		if m.Every(100 * time.Millisecond) {
			fired++
		}
	}
	if fired != 3 {
		t.Errorf("every(100ms) fired %d times over 300ms, want 3", fired)
	}
}
