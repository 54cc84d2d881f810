// Package terminal adapts tcell screen events into the tracker's event
// union. It is a thin proxy over the windowing collaborator: it owns no
// input state beyond what is needed to turn terminal reports into
// press/release transitions and relative motion.
package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lodygan/framewise/event"
)

// Terminals report key taps and auto-repeat, never key-up. A key is
// considered held while repeats keep arriving and released once none has
// been seen for keyHoldTimeout. The sweep runs often enough that a release
// lands at most one sweep late.
const (
	keyHoldTimeout = 150 * time.Millisecond
	sweepInterval  = 50 * time.Millisecond
)

// Source reads tcell events on its own goroutine and feeds translated
// events into a queue consumed by the host loop. It is the queue's single
// producer.
type Source struct {
	screen tcell.Screen
	queue  *event.Queue

	stopCh chan struct{}
	doneCh chan struct{}

	mu      sync.Mutex
	running bool

	// reader-goroutine state, untouched elsewhere
	heldKeys     map[event.Key]time.Time
	buttons      tcell.ButtonMask
	lastX, lastY int
	hasCursor    bool
}

// NewSource creates a source translating events from screen into queue.
// The screen must already be initialized; enable mouse and focus reporting
// on it to receive those event kinds.
func NewSource(screen tcell.Screen, queue *event.Queue) *Source {
	return &Source{
		screen:   screen,
		queue:    queue,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		heldKeys: make(map[event.Key]time.Time),
	}
}

// Start begins reading in a goroutine.
func (s *Source) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.readLoop()
}

// Stop signals the reader to stop and waits briefly for it to wind down.
func (s *Source) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	select {
	case <-s.doneCh:
	case <-time.After(100 * time.Millisecond):
		// Reader stuck on a blocking read, proceed anyway
	}
}

func (s *Source) readLoop() {
	defer close(s.doneCh)

	evCh := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go s.screen.ChannelEvents(evCh, quit)

	sweep := time.NewTicker(sweepInterval)
	defer sweep.Stop()

	for {
		select {
		case <-s.stopCh:
			close(quit)
			s.queue.Push(event.LoopExiting{})
			return
		case tev, ok := <-evCh:
			if !ok {
				s.queue.Push(event.LoopExiting{})
				return
			}
			s.translate(tev)
		case <-sweep.C:
			s.releaseStale(time.Now())
		}
	}
}

func (s *Source) translate(tev tcell.Event) {
	switch e := tev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			s.queue.Push(event.CloseRequested{})
			return
		}
		k := translateKey(e)
		if k == event.KeyUnknown {
			return
		}
		if _, held := s.heldKeys[k]; !held {
			s.queue.Push(event.KeyboardInput{Key: k, Pressed: true})
		}
		s.heldKeys[k] = time.Now()

	case *tcell.EventMouse:
		s.translateMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		s.queue.Push(event.Resized{Width: w, Height: h})

	case *tcell.EventFocus:
		if !e.Focused {
			// Synthetic holds die with real ones; no releases are emitted,
			// matching the tracker's own focus-loss rule.
			clear(s.heldKeys)
			s.queue.Push(event.FocusLost{})
		}
	}
}

func (s *Source) translateMouse(e *tcell.EventMouse) {
	btns := e.Buttons()

	if dx, dy := wheelLines(btns); dx != 0 || dy != 0 {
		s.queue.Push(event.MouseWheel{DX: dx, DY: dy})
	}

	for _, entry := range buttonMap {
		now := btns&entry.mask != 0
		was := s.buttons&entry.mask != 0
		if now != was {
			s.queue.Push(event.MouseInput{Button: entry.button, Pressed: now})
		}
	}
	s.buttons = btns

	x, y := e.Position()
	if !s.hasCursor {
		s.lastX, s.lastY = x, y
		s.hasCursor = true
		s.queue.Push(event.CursorMoved{X: float64(x), Y: float64(y)})
		return
	}
	if x != s.lastX || y != s.lastY {
		// Terminals only report absolute cells; relative motion is derived
		// from consecutive positions.
		s.queue.Push(event.MouseMotion{DX: float64(x - s.lastX), DY: float64(y - s.lastY)})
		s.queue.Push(event.CursorMoved{X: float64(x), Y: float64(y)})
		s.lastX, s.lastY = x, y
	}
}

// releaseStale synthesizes key releases for keys whose auto-repeat went
// quiet.
func (s *Source) releaseStale(now time.Time) {
	for k, seen := range s.heldKeys {
		if now.Sub(seen) > keyHoldTimeout {
			delete(s.heldKeys, k)
			s.queue.Push(event.KeyboardInput{Key: k, Pressed: false})
		}
	}
}
