package render

import (
	"image"
	"image/color"
)

// TextStyle is everything a Rasterizer needs to draw a run of text.
type TextStyle struct {
	Font string // font identity, interpreted by the Rasterizer
	Size int    // pixels

	Color      color.Color
	Background color.Color // nil draws on a transparent background

	Bold      bool
	Italic    bool
	Antialias bool
}

// CaretStyle describes the caret bar.
type CaretStyle struct {
	Width int
	Color color.Color
}

// Rasterizer measures and renders single lines of text.
//
// Errors are fatal to the widget: it cannot draw without a usable font.
type Rasterizer interface {
	Measure(text string, st TextStyle) (width, height int, err error)
	Render(text string, st TextStyle) (image.Image, error)
}
