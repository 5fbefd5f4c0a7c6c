package editor

import (
	"github.com/go-logr/logr"

	"github.com/iw2rmb/caretline/render"
	"github.com/iw2rmb/caretline/segment"
)

// Config configures a Widget.
type Config struct {
	// Initial text; the caret starts at its end.
	Text string

	// Rendering options. A zero Style is DefaultStyle(). Otherwise a zero
	// Size, nil Color, zero caret Width and zero blink durations fall back
	// to the defaults.
	Style Style
	Caret CaretStyle

	// Rasterizer draws the text. Required.
	Rasterizer render.Rasterizer

	// Zero value uses DefaultKeyMap().
	KeyMap KeyMap

	// Clipboard backs the paste binding. Nil disables paste.
	Clipboard Clipboard

	// Word deletion rules. Nil uses segment.DefaultOptions().
	Segmenter *segment.Options

	DisableWordDelete bool // word backspace deletes a single character
	DisablePaste      bool

	// OnChange is called after every event that changed the text or moved
	// the caret, and after SetContent.
	OnChange func(ChangeEvent)

	// Logger defaults to logr.Discard().
	Logger logr.Logger
}
