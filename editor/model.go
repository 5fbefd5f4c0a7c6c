package editor

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/go-logr/logr"

	"github.com/iw2rmb/caretline/blink"
	"github.com/iw2rmb/caretline/caret"
	"github.com/iw2rmb/caretline/render"
	"github.com/iw2rmb/caretline/segment"
)

var ErrNoRasterizer = errors.New("editor: no rasterizer configured")

// Widget is a single-line text field with a blinking caret.
//
// It starts focused and enabled with the caret solid.
type Widget struct {
	cfg Config
	log logr.Logger

	text  *caret.State
	clock *blink.Clock
	cache *render.Cache

	style      Style
	caretStyle CaretStyle

	focused bool
	enabled bool

	lastVersion uint64
}

// New builds a widget and renders its first bitmap. It fails when no
// rasterizer is configured or the rasterizer rejects the style.
func New(cfg Config) (*Widget, error) {
	if cfg.Rasterizer == nil {
		return nil, ErrNoRasterizer
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger.GetSink() == nil {
		cfg.Logger = logr.Discard()
	}
	segOpt := segment.DefaultOptions()
	if cfg.Segmenter != nil {
		segOpt = *cfg.Segmenter
	}
	seg := segment.New(segOpt)

	if cfg.Style == (Style{}) {
		cfg.Style = DefaultStyle()
	}
	cs := cfg.Caret
	if cs.Width == 0 {
		cs.Width = DefaultCaretWidth
	}

	w := &Widget{
		cfg:        cfg,
		log:        cfg.Logger,
		clock:      blink.New(cs.Off, cs.On),
		cache:      render.NewCache(cfg.Rasterizer),
		style:      cfg.Style.normalize(),
		caretStyle: cs,
		focused:    true,
		enabled:    true,
	}
	w.caretStyle.Off, w.caretStyle.On = w.clock.Off(), w.clock.On()
	w.text = caret.New(cfg.Text, caret.Options{Segmenter: &seg, OnEdit: w.edited})
	w.lastVersion = w.text.Version()

	if _, err := w.Regenerate(false); err != nil {
		return nil, err
	}
	return w, nil
}

// edited runs after every effective change to the text or caret.
func (w *Widget) edited() {
	w.cache.Invalidate()
	w.clock.Override(true)
}

func (w *Widget) invalidate() { w.cache.Invalidate() }

// Content returns the full text.
func (w *Widget) Content() string { return w.text.Content() }

// SetContent replaces the text and moves the caret to its end.
func (w *Widget) SetContent(s string) {
	w.text.SetContent(s)
	w.notify()
}

// CaretPosition returns the caret position in grapheme clusters.
func (w *Widget) CaretPosition() int { return w.text.Position() }

// CaretVisible reports whether the caret is currently in its on phase.
func (w *Widget) CaretVisible() bool { return w.clock.Visible() }

func (w *Widget) Focused() bool { return w.focused }

// SetFocused moves focus. An unfocused widget ignores input and shows a
// solid, non-blinking caret; regaining focus restarts the blink cycle with
// the caret visible.
func (w *Widget) SetFocused(focused bool) {
	if w.focused == focused {
		return
	}
	w.focused = focused
	w.clock.SetEnabled(focused)
	if focused {
		w.clock.Override(true)
	}
	w.invalidate()
}

func (w *Widget) Enabled() bool { return w.enabled }

// SetEnabled toggles the widget. A disabled widget ignores input and draws
// no caret.
func (w *Widget) SetEnabled(enabled bool) {
	if w.enabled == enabled {
		return
	}
	w.enabled = enabled
	w.invalidate()
}

func (w *Widget) Style() Style { return w.style }

func (w *Widget) CaretStyle() CaretStyle { return w.caretStyle }

func (w *Widget) SetColor(c color.Color) {
	if c == nil {
		c = color.White
	}
	if sameColor(w.style.Color, c) {
		return
	}
	w.style.Color = c
	w.invalidate()
}

// SetBackground sets the background colour; nil makes it transparent.
func (w *Widget) SetBackground(c color.Color) {
	if sameColor(w.style.Background, c) {
		return
	}
	w.style.Background = c
	w.invalidate()
}

func (w *Widget) SetFont(font string) {
	if w.style.Font == font {
		return
	}
	w.style.Font = font
	w.invalidate()
}

func (w *Widget) SetSize(px int) {
	if w.style.Size == px {
		return
	}
	w.style.Size = px
	w.invalidate()
}

func (w *Widget) SetBold(bold bool) {
	if w.style.Bold == bold {
		return
	}
	w.style.Bold = bold
	w.invalidate()
}

func (w *Widget) SetItalic(italic bool) {
	if w.style.Italic == italic {
		return
	}
	w.style.Italic = italic
	w.invalidate()
}

func (w *Widget) SetAntialias(aa bool) {
	if w.style.Antialias == aa {
		return
	}
	w.style.Antialias = aa
	w.invalidate()
}

// SetStyle replaces the whole text style.
func (w *Widget) SetStyle(s Style) {
	s = s.normalize()
	if s.Font == w.style.Font && s.Size == w.style.Size &&
		s.Bold == w.style.Bold && s.Italic == w.style.Italic && s.Antialias == w.style.Antialias &&
		sameColor(s.Color, w.style.Color) && sameColor(s.Background, w.style.Background) {
		return
	}
	w.style = s
	w.invalidate()
}

func (w *Widget) SetCaretWidth(px int) {
	px = max(px, 0)
	if w.caretStyle.Width == px {
		return
	}
	w.caretStyle.Width = px
	w.invalidate()
}

// SetCaretColor sets the caret colour; nil uses the text colour.
func (w *Widget) SetCaretColor(c color.Color) {
	if sameColor(w.caretStyle.Color, c) {
		return
	}
	w.caretStyle.Color = c
	w.invalidate()
}

// SetCaretOff sets the off phase of the blink cycle.
func (w *Widget) SetCaretOff(d time.Duration) {
	if w.clock.SetOff(d) {
		w.caretStyle.Off = w.clock.Off()
		w.invalidate()
	}
}

// SetCaretOn sets the on phase of the blink cycle.
func (w *Widget) SetCaretOn(d time.Duration) {
	if w.clock.SetOn(d) {
		w.caretStyle.On = w.clock.On()
		w.invalidate()
	}
}

// SetCaretStyle applies every caret setting at once. A zero Width keeps the
// current width.
func (w *Widget) SetCaretStyle(cs CaretStyle) {
	if cs.Width != 0 {
		w.SetCaretWidth(cs.Width)
	}
	w.SetCaretColor(cs.Color)
	w.SetCaretOff(cs.Off)
	w.SetCaretOn(cs.On)
}

// Dirty reports whether the bitmap is stale.
func (w *Widget) Dirty() bool { return w.cache.Dirty() }

// Bitmap returns the composite produced by the latest Update or Regenerate.
func (w *Widget) Bitmap() *image.RGBA { return w.cache.Bitmap() }

// Bounds returns the bounding box of Bitmap.
func (w *Widget) Bounds() image.Rectangle { return w.cache.Bounds() }

func (w *Widget) notify() {
	v := w.text.Version()
	if v == w.lastVersion {
		return
	}
	w.lastVersion = v
	if w.cfg.OnChange != nil {
		w.cfg.OnChange(w.buildChangeEvent())
	}
}
