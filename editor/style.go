package editor

import (
	"image/color"
	"time"

	"github.com/iw2rmb/caretline/blink"
	"github.com/iw2rmb/caretline/raster"
	"github.com/iw2rmb/caretline/render"
)

const (
	DefaultSize       = 24
	DefaultCaretWidth = 2
)

// Style controls how the text is drawn.
type Style struct {
	Color      color.Color
	Background color.Color // nil: transparent

	Font string // font identity understood by the rasterizer
	Size int    // pixels

	Bold      bool
	Italic    bool
	Antialias bool
}

// CaretStyle controls the caret bar and its blink cycle.
type CaretStyle struct {
	Width int
	Color color.Color // nil: the text colour

	Off time.Duration
	On  time.Duration
}

func DefaultStyle() Style {
	return Style{
		Color:     color.White,
		Font:      raster.DefaultFont,
		Size:      DefaultSize,
		Antialias: true,
	}
}

func DefaultCaretStyle() CaretStyle {
	return CaretStyle{
		Width: DefaultCaretWidth,
		Off:   blink.DefaultOff,
		On:    blink.DefaultOn,
	}
}

// normalize fills unset fields. Negative sizes are kept so the rasterizer can
// reject them.
func (s Style) normalize() Style {
	if s.Color == nil {
		s.Color = color.White
	}
	if s.Size == 0 {
		s.Size = DefaultSize
	}
	return s
}

func (s Style) textStyle() render.TextStyle {
	return render.TextStyle{
		Font:       s.Font,
		Size:       s.Size,
		Color:      s.Color,
		Background: s.Background,
		Bold:       s.Bold,
		Italic:     s.Italic,
		Antialias:  s.Antialias,
	}
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
