package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Frame is the widget state a composite is built from.
type Frame struct {
	Left, Right string

	Style TextStyle
	Caret CaretStyle

	CaretVisible bool
	Enabled      bool
}

// Cache holds the last composite and a dirty flag.
type Cache struct {
	r Rasterizer

	img   *image.RGBA
	dirty bool
}

// NewCache returns a dirty cache; the first Regenerate always draws.
func NewCache(r Rasterizer) *Cache {
	return &Cache{r: r, dirty: true}
}

func (c *Cache) Invalidate() { c.dirty = true }

func (c *Cache) Dirty() bool { return c.dirty }

// Bitmap returns the last composite, or nil before the first successful
// Regenerate.
func (c *Cache) Bitmap() *image.RGBA { return c.img }

// Bounds returns the bounding box of the last composite.
func (c *Cache) Bounds() image.Rectangle {
	if c.img == nil {
		return image.Rectangle{}
	}
	return c.img.Bounds()
}

// Regenerate redraws the composite when the cache is dirty or force is set
// and returns it. On failure the previous composite is returned with the
// error and the cache stays dirty.
func (c *Cache) Regenerate(f Frame, force bool) (*image.RGBA, error) {
	if !c.dirty && !force && c.img != nil {
		return c.img, nil
	}

	text := f.Left + f.Right
	src, err := c.r.Render(text, f.Style)
	if err != nil {
		return c.img, fmt.Errorf("rasterize text: %w", err)
	}
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	caretW := max(f.Caret.Width, 0)

	// One column of slack on the left keeps a caret at position 0 from
	// covering the first glyph.
	dst := image.NewRGBA(image.Rect(0, 0, w+caretW, h))
	if f.Style.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(f.Style.Background), image.Point{}, draw.Src)
	}
	draw.Draw(dst, image.Rect(1, 0, 1+w, h), src, sb.Min, draw.Over)

	if f.CaretVisible && f.Enabled && caretW > 0 {
		x, _, err := c.r.Measure(f.Left, f.Style)
		if err != nil {
			return c.img, fmt.Errorf("measure caret offset: %w", err)
		}
		bar := image.Rect(x, 0, x+caretW, h)
		draw.Draw(dst, bar, image.NewUniform(caretColor(f)), image.Point{}, draw.Src)
	}

	c.img = dst
	c.dirty = false
	return dst, nil
}

func caretColor(f Frame) color.Color {
	switch {
	case f.Caret.Color != nil:
		return f.Caret.Color
	case f.Style.Color != nil:
		return f.Style.Color
	default:
		return color.White
	}
}
