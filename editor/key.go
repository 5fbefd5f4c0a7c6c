package editor

import "strings"

// Key identifies a key reported by the host.
type Key int

const (
	KeyNone  Key = iota
	KeyRunes     // a printable character, carried in KeyEvent.Text
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
)

var keyNames = map[Key]string{
	KeyBackspace: "backspace",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEscape:    "esc",
}

// KeyEvent is one key press. Events are interpreted in the order the host
// delivers them.
type KeyEvent struct {
	Key  Key
	Text string // literal character(s) for KeyRunes, empty otherwise

	Ctrl, Alt, Shift bool

	// Paste marks text delivered by the host's own paste mechanism
	// (e.g. bracketed paste); it is inserted verbatim.
	Paste bool
}

// Runes returns a plain character event.
func Runes(s string) KeyEvent { return KeyEvent{Key: KeyRunes, Text: s} }

// Ctrl returns a ctrl+character event, e.g. Ctrl('v').
func Ctrl(r rune) KeyEvent { return KeyEvent{Key: KeyRunes, Text: string(r), Ctrl: true} }

// Press returns a modifier-free event for a named key.
func Press(k Key) KeyEvent { return KeyEvent{Key: k} }

// String formats the event the way key bindings spell it: "alt+ctrl+v",
// "shift+left", "backspace", "a".
func (e KeyEvent) String() string {
	var sb strings.Builder
	if e.Alt {
		sb.WriteString("alt+")
	}
	if e.Ctrl {
		sb.WriteString("ctrl+")
	}
	if e.Key == KeyRunes {
		if e.Ctrl || e.Alt {
			sb.WriteString(strings.ToLower(e.Text))
		} else {
			sb.WriteString(e.Text)
		}
		return sb.String()
	}
	if e.Shift {
		sb.WriteString("shift+")
	}
	name, ok := keyNames[e.Key]
	if !ok {
		return ""
	}
	sb.WriteString(name)
	return sb.String()
}
