package editor

import tea "github.com/charmbracelet/bubbletea"

// KeyEventFromTea converts a Bubble Tea key message, for hosts that run the
// widget inside a Bubble Tea program.
func KeyEventFromTea(msg tea.KeyMsg) KeyEvent {
	ev := KeyEvent{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyRunes:
		ev.Key = KeyRunes
		ev.Text = string(msg.Runes)
		ev.Paste = msg.Paste
	case tea.KeySpace:
		ev.Key = KeyRunes
		ev.Text = " "

	case tea.KeyBackspace:
		ev.Key = KeyBackspace
	case tea.KeyDelete:
		ev.Key = KeyDelete
	case tea.KeyEnter:
		ev.Key = KeyEnter
	case tea.KeyTab:
		ev.Key = KeyTab
	case tea.KeyEsc:
		ev.Key = KeyEscape

	case tea.KeyLeft:
		ev.Key = KeyLeft
	case tea.KeyShiftLeft:
		ev.Key, ev.Shift = KeyLeft, true
	case tea.KeyCtrlLeft:
		ev.Key, ev.Ctrl = KeyLeft, true
	case tea.KeyRight:
		ev.Key = KeyRight
	case tea.KeyShiftRight:
		ev.Key, ev.Shift = KeyRight, true
	case tea.KeyCtrlRight:
		ev.Key, ev.Ctrl = KeyRight, true
	case tea.KeyUp:
		ev.Key = KeyUp
	case tea.KeyDown:
		ev.Key = KeyDown
	case tea.KeyHome:
		ev.Key = KeyHome
	case tea.KeyEnd:
		ev.Key = KeyEnd

	default:
		// ctrl+a .. ctrl+z arrive as their own key types. Tab and enter
		// share codes with this range and are matched above.
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			ev.Key = KeyRunes
			ev.Text = string(rune('a' + int(msg.Type-tea.KeyCtrlA)))
			ev.Ctrl = true
		}
	}
	return ev
}
