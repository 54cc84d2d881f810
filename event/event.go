// Package event defines the closed set of window and device events consumed
// by the input tracker, together with a single-producer/single-consumer queue
// for handing events from a capture goroutine to the host loop.
//
// The event set is sealed: every concrete type implements the unexported
// isEvent method, and ingestion code type-switches over all of them. Adding a
// new kind means adding a case to every switch, so events cannot be silently
// dropped.
package event

// Event is a single window or device occurrence. Events must be delivered to
// the tracker in real chronological order; FrameBoundary is an ordinary event
// and marks the cut between one frame's inputs and the next.
type Event interface {
	isEvent()
}

// KeyboardInput reports a physical key transition.
type KeyboardInput struct {
	Key     Key
	Pressed bool // true on press, false on release
}

// MouseInput reports a mouse button transition.
type MouseInput struct {
	Button  Button
	Pressed bool
}

// MouseMotion carries a device-relative pointer delta. Multiple motion events
// may arrive per frame; consumers accumulate them.
type MouseMotion struct {
	DX, DY float64
}

// CursorMoved carries the absolute pointer position in window coordinates.
// Last write wins within a frame.
type CursorMoved struct {
	X, Y float64
}

// MouseWheel carries a scroll delta measured in lines. Pixel-based scroll
// units are translated to lines by the adapter or dropped before they reach
// the tracker.
type MouseWheel struct {
	DX, DY float64
}

// Resized reports a new window size in pixels (cells for terminal hosts).
type Resized struct {
	Width, Height int
}

// CloseRequested reports that the OS or window manager asked the window to
// close, normally via the close button.
type CloseRequested struct{}

// FocusLost reports that the window lost input focus. The tracker drops all
// held inputs on focus loss because the platform stops delivering release
// events for keys held across a focus switch.
type FocusLost struct{}

// FrameBoundary marks the end of one update cycle. Timing advances only
// here; events arriving after a boundary belong to the next frame.
type FrameBoundary struct{}

// LoopExiting reports that the host event loop is shutting down. The flag it
// sets is terminal and never cleared.
type LoopExiting struct{}

func (KeyboardInput) isEvent()  {}
func (MouseInput) isEvent()     {}
func (MouseMotion) isEvent()    {}
func (CursorMoved) isEvent()    {}
func (MouseWheel) isEvent()     {}
func (Resized) isEvent()        {}
func (CloseRequested) isEvent() {}
func (FocusLost) isEvent()      {}
func (FrameBoundary) isEvent()  {}
func (LoopExiting) isEvent()    {}
