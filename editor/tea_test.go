package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyEventFromTea(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want KeyEvent
	}{
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, want: Runes("é")},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, want: KeyEvent{Key: KeyRunes, Text: "x", Alt: true}},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb"), Paste: true}, want: KeyEvent{Key: KeyRunes, Text: "a\nb", Paste: true}},
		{msg: tea.KeyMsg{Type: tea.KeySpace}, want: Runes(" ")},
		{msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: Press(KeyBackspace)},
		{msg: tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, want: KeyEvent{Key: KeyBackspace, Alt: true}},
		{msg: tea.KeyMsg{Type: tea.KeyLeft}, want: Press(KeyLeft)},
		{msg: tea.KeyMsg{Type: tea.KeyShiftLeft}, want: KeyEvent{Key: KeyLeft, Shift: true}},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlRight}, want: KeyEvent{Key: KeyRight, Ctrl: true}},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlV}, want: Ctrl('v')},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlW}, want: Ctrl('w')},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlH}, want: Ctrl('h')},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: Press(KeyTab)},
		{msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Press(KeyEnter)},
		{msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Press(KeyEscape)},
		{msg: tea.KeyMsg{Type: tea.KeyF1}, want: KeyEvent{}},
	}
	for _, tc := range cases {
		if got := KeyEventFromTea(tc.msg); got != tc.want {
			t.Fatalf("KeyEventFromTea(%q): got %#v, want %#v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestKeyEventFromTea_BindingsMatchTeaSpelling(t *testing.T) {
	km := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyBackspace},
		{Type: tea.KeyCtrlH},
		{Type: tea.KeyBackspace, Alt: true},
		{Type: tea.KeyCtrlW},
		{Type: tea.KeyCtrlV},
		{Type: tea.KeyLeft},
		{Type: tea.KeyRight},
	} {
		ev := KeyEventFromTea(msg)
		if ev.String() != msg.String() {
			t.Fatalf("spelling: editor %q, tea %q", ev.String(), msg.String())
		}
		bound := false
		for _, b := range [][]string{km.Left.Keys(), km.Right.Keys(), km.Backspace.Keys(), km.WordBackspace.Keys(), km.Paste.Keys()} {
			for _, k := range b {
				if k == ev.String() {
					bound = true
				}
			}
		}
		if !bound {
			t.Fatalf("%q is not bound by the default key map", ev.String())
		}
	}
}
