// Package input is the per-frame input-state tracker: it folds a stream of
// window and device events into sets answering "what happened this frame"
// (pressed, held, released, motion, wheel, resize, close, focus loss) plus
// frame timing, and layers application-defined semantic actions and derived
// movement axes on top via a binding table.
//
// The tracker is single-threaded by design: events are processed strictly in
// delivery order on the goroutine that owns the host loop, and a
// FrameBoundary event is the cut that makes "this frame's presses" well
// defined. Off-thread capture goes through event.Queue.
package input

import (
	"fmt"
	"strings"

	"github.com/lodygan/framewise/event"
)

// kind tags the payload of an ID.
type kind uint8

const (
	kindKey kind = iota
	kindMouse
)

// ID identifies one physical input source, either a keyboard key or a mouse
// button. It is a plain comparable value used as a map and set key; it owns
// no state and has no behavior beyond equality and naming.
type ID struct {
	kind   kind
	key    event.Key
	button event.Button
}

// Key returns the ID for a physical keyboard key.
func Key(k event.Key) ID {
	return ID{kind: kindKey, key: k}
}

// Mouse returns the ID for a mouse button.
func Mouse(b event.Button) ID {
	return ID{kind: kindMouse, button: b}
}

// IsKey reports whether the ID names a keyboard key.
func (id ID) IsKey() bool { return id.kind == kindKey }

// IsMouse reports whether the ID names a mouse button.
func (id ID) IsMouse() bool { return id.kind == kindMouse }

// String renders the ID in the "key:w" / "mouse:left" form used by keymap
// documents. ParseID inverts it.
func (id ID) String() string {
	switch id.kind {
	case kindMouse:
		return "mouse:" + id.button.String()
	default:
		return "key:" + id.key.String()
	}
}

// ParseID parses the "key:<name>" / "mouse:<name>" form produced by String.
func ParseID(s string) (ID, error) {
	prefix, name, ok := strings.Cut(s, ":")
	if !ok {
		return ID{}, fmt.Errorf("input id %q: missing key/mouse prefix", s)
	}
	switch prefix {
	case "key":
		k, ok := event.LookupKey(name)
		if !ok {
			return ID{}, fmt.Errorf("input id %q: unknown key name %q", s, name)
		}
		return Key(k), nil
	case "mouse":
		b, ok := event.LookupButton(name)
		if !ok {
			return ID{}, fmt.Errorf("input id %q: unknown button name %q", s, name)
		}
		return Mouse(b), nil
	default:
		return ID{}, fmt.Errorf("input id %q: unknown prefix %q", s, prefix)
	}
}
