// Package audio provides the small feedback sounds used by the demo:
// short sine blips on action press and release.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const blipLength = 40 * time.Millisecond

// Feedback owns the speaker. Blips are fire-and-forget; a host without a
// working audio device simply skips Initialize and every blip is a no-op.
type Feedback struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewFeedback creates an uninitialized feedback player.
func NewFeedback() *Feedback {
	return &Feedback{}
}

// Initialize opens the speaker. Safe to call more than once.
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	f.initialized = true
	return nil
}

// SetMuted toggles all blips off or on.
func (f *Feedback) SetMuted(muted bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = muted
}

// PressBlip plays a short high tone.
func (f *Feedback) PressBlip() {
	f.play(880)
}

// ReleaseBlip plays a short low tone.
func (f *Feedback) ReleaseBlip() {
	f.play(440)
}

func (f *Feedback) play(freq float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipLength), sine))
}

// Close shuts the speaker down.
func (f *Feedback) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		speaker.Close()
		f.initialized = false
	}
}
