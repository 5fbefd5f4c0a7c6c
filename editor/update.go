package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/caretline/internal/grapheme"
)

// Update advances the widget by one frame: it samples the blink clock at
// now, interprets events in order while the widget is focused and enabled,
// and regenerates the bitmap if anything changed. now must not decrease
// between calls.
//
// The returned error comes from the rasterizer and means the bitmap could
// not be drawn.
func (w *Widget) Update(events []KeyEvent, now time.Duration) error {
	if w.clock.Tick(now) {
		w.invalidate()
	}

	if w.focused && w.enabled {
		for _, ev := range events {
			if w.updateKey(ev) && w.clock.Override(true) {
				w.invalidate()
			}
			w.notify()
		}
	}

	_, err := w.Regenerate(false)
	return err
}

// updateKey applies one event and reports whether it was bound.
func (w *Widget) updateKey(ev KeyEvent) bool {
	km := w.cfg.KeyMap

	// Host paste events always insert literal text and never trigger shortcuts.
	if ev.Key == KeyRunes && ev.Paste {
		w.text.Insert(ev.Text)
		return true
	}

	switch {
	case key.Matches(ev, km.WordBackspace):
		w.text.DeleteBackward(!w.cfg.DisableWordDelete)
	case key.Matches(ev, km.Backspace):
		w.text.DeleteBackward(false)
	case key.Matches(ev, km.Left):
		w.text.MoveLeft()
	case key.Matches(ev, km.Right):
		w.text.MoveRight()
	case key.Matches(ev, km.Paste):
		if w.cfg.DisablePaste || w.cfg.Clipboard == nil {
			return false
		}
		w.pasteClipboard()

	default:
		if ev.Key != KeyRunes || ev.Ctrl || ev.Alt || !grapheme.IsPrintable(ev.Text) {
			return false
		}
		w.text.Insert(ev.Text)
	}
	return true
}

func (w *Widget) pasteClipboard() {
	s, err := w.cfg.Clipboard.ReadText()
	if err != nil {
		w.log.V(1).Info("clipboard read failed", "err", err)
		return
	}
	w.text.Insert(s)
}
