package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across backends: terminals rarely report
// ctrl+backspace, so word deletion also answers to alt+backspace and ctrl+w.
// Shift never changes what a key does, and ctrl only matters on backspace.
type KeyMap struct {
	Left, Right key.Binding

	Backspace, WordBackspace key.Binding

	Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+left", "shift+left", "ctrl+shift+left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+right", "shift+right", "ctrl+shift+right"), key.WithHelp("→", "right")),

		Backspace:     key.NewBinding(key.WithKeys("backspace", "shift+backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		WordBackspace: key.NewBinding(key.WithKeys("ctrl+backspace", "ctrl+shift+backspace", "alt+backspace", "ctrl+w"), key.WithHelp("ctrl+backspace", "delete word")),

		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.WordBackspace, km.Paste}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right},
		{km.Backspace, km.WordBackspace},
		{km.Paste},
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range []key.Binding{km.Left, km.Right, km.Backspace, km.WordBackspace, km.Paste} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
