package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lodygan/framewise/event"
)

// translateKey converts a tcell key event to a physical key code. Shift is
// folded away: 'A' and 'a' are the same physical key. Keys outside the
// tracked set come back as KeyUnknown and are dropped by the caller.
func translateKey(ev *tcell.EventKey) event.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	case tcell.KeyEscape:
		return event.KeyEscape
	case tcell.KeyEnter:
		return event.KeyEnter
	case tcell.KeyTab:
		return event.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return event.KeyBackspace
	case tcell.KeyInsert:
		return event.KeyInsert
	case tcell.KeyDelete:
		return event.KeyDelete
	case tcell.KeyRight:
		return event.KeyRight
	case tcell.KeyLeft:
		return event.KeyLeft
	case tcell.KeyDown:
		return event.KeyDown
	case tcell.KeyUp:
		return event.KeyUp
	case tcell.KeyPgUp:
		return event.KeyPageUp
	case tcell.KeyPgDn:
		return event.KeyPageDown
	case tcell.KeyHome:
		return event.KeyHome
	case tcell.KeyEnd:
		return event.KeyEnd
	case tcell.KeyF1:
		return event.KeyF1
	case tcell.KeyF2:
		return event.KeyF2
	case tcell.KeyF3:
		return event.KeyF3
	case tcell.KeyF4:
		return event.KeyF4
	case tcell.KeyF5:
		return event.KeyF5
	case tcell.KeyF6:
		return event.KeyF6
	case tcell.KeyF7:
		return event.KeyF7
	case tcell.KeyF8:
		return event.KeyF8
	case tcell.KeyF9:
		return event.KeyF9
	case tcell.KeyF10:
		return event.KeyF10
	case tcell.KeyF11:
		return event.KeyF11
	case tcell.KeyF12:
		return event.KeyF12
	default:
		return event.KeyUnknown
	}
}

func translateRune(r rune) event.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return event.KeyA + event.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return event.KeyA + event.Key(r-'A')
	case r >= '0' && r <= '9':
		return event.Key0 + event.Key(r-'0')
	}
	switch r {
	case ' ':
		return event.KeySpace
	case '-':
		return event.KeyMinus
	case '.':
		return event.KeyPeriod
	case '/':
		return event.KeySlash
	case ';':
		return event.KeySemicolon
	case '=':
		return event.KeyEqual
	default:
		return event.KeyUnknown
	}
}

// buttonMap pairs tcell button bits with tracker button ids. tcell's
// Button2 is the middle button and Button3 the right one.
var buttonMap = [...]struct {
	mask   tcell.ButtonMask
	button event.Button
}{
	{tcell.Button1, event.ButtonLeft},
	{tcell.Button2, event.ButtonMiddle},
	{tcell.Button3, event.ButtonRight},
	{tcell.Button4, event.ButtonX1},
	{tcell.Button5, event.ButtonX2},
}

// wheelLines extracts the momentary wheel bits as a line delta. Scroll up
// is +Y, scroll right is +X.
func wheelLines(btns tcell.ButtonMask) (dx, dy float64) {
	if btns&tcell.WheelUp != 0 {
		dy++
	}
	if btns&tcell.WheelDown != 0 {
		dy--
	}
	if btns&tcell.WheelLeft != 0 {
		dx--
	}
	if btns&tcell.WheelRight != 0 {
		dx++
	}
	return dx, dy
}
