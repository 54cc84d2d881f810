package event

// Key is a layout-independent physical key code. Printable keys use their
// ASCII value (letters are the uppercase code points); named keys start at
// 256.
type Key uint16

const (
	KeyUnknown Key = 0

	// Printable keys
	KeySpace     Key = 32
	KeyMinus     Key = 45
	KeyPeriod    Key = 46
	KeySlash     Key = 47
	Key0         Key = 48
	Key1         Key = 49
	Key2         Key = 50
	Key3         Key = 51
	Key4         Key = 52
	Key5         Key = 53
	Key6         Key = 54
	Key7         Key = 55
	Key8         Key = 56
	Key9         Key = 57
	KeySemicolon Key = 59
	KeyEqual     Key = 61
	KeyA         Key = 65
	KeyB         Key = 66
	KeyC         Key = 67
	KeyD         Key = 68
	KeyE         Key = 69
	KeyF         Key = 70
	KeyG         Key = 71
	KeyH         Key = 72
	KeyI         Key = 73
	KeyJ         Key = 74
	KeyK         Key = 75
	KeyL         Key = 76
	KeyM         Key = 77
	KeyN         Key = 78
	KeyO         Key = 79
	KeyP         Key = 80
	KeyQ         Key = 81
	KeyR         Key = 82
	KeyS         Key = 83
	KeyT         Key = 84
	KeyU         Key = 85
	KeyV         Key = 86
	KeyW         Key = 87
	KeyX         Key = 88
	KeyY         Key = 89
	KeyZ         Key = 90
)

// Named keys start above the printable range.
const (
	KeyEscape Key = iota + 256
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
)

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonX1
	ButtonX2
)

var keyNames = map[Key]string{
	KeySpace:       "space",
	KeyMinus:       "minus",
	KeyPeriod:      "period",
	KeySlash:       "slash",
	KeySemicolon:   "semicolon",
	KeyEqual:       "equal",
	KeyEscape:      "escape",
	KeyEnter:       "enter",
	KeyTab:         "tab",
	KeyBackspace:   "backspace",
	KeyInsert:      "insert",
	KeyDelete:      "delete",
	KeyRight:       "right",
	KeyLeft:        "left",
	KeyDown:        "down",
	KeyUp:          "up",
	KeyPageUp:      "pageup",
	KeyPageDown:    "pagedown",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyF1:          "f1",
	KeyF2:          "f2",
	KeyF3:          "f3",
	KeyF4:          "f4",
	KeyF5:          "f5",
	KeyF6:          "f6",
	KeyF7:          "f7",
	KeyF8:          "f8",
	KeyF9:          "f9",
	KeyF10:         "f10",
	KeyF11:         "f11",
	KeyF12:         "f12",
	KeyLeftShift:   "shift",
	KeyLeftControl: "control",
	KeyLeftAlt:     "alt",
}

var keysByName map[string]Key

func init() {
	keysByName = make(map[string]Key, len(keyNames)+36)
	for k, name := range keyNames {
		keysByName[name] = k
	}
	for k := KeyA; k <= KeyZ; k++ {
		keysByName[string(rune('a'+k-KeyA))] = k
	}
	for k := Key0; k <= Key9; k++ {
		keysByName[string(rune('0'+k-Key0))] = k
	}
}

// String returns the lowercase config name of the key, or "unknown".
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// LookupKey resolves a config name ("w", "space", "f3") to a key code.
func LookupKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

var buttonNames = [...]string{"left", "right", "middle", "x1", "x2"}

// String returns the lowercase config name of the button, or "unknown".
func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "unknown"
}

// LookupButton resolves a config name ("left", "middle") to a button id.
func LookupButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}
