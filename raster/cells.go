package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/image/draw"

	"github.com/iw2rmb/caretline/internal/grapheme"
	"github.com/iw2rmb/caretline/render"
)

// Cells draws text on a grid of terminal-style cells: every grapheme cluster
// takes as many cells as a terminal would give it and non-blank clusters are
// drawn as filled blocks.
//
// A zero CellHeight uses the style's Size; a zero CellWidth uses half the
// cell height.
type Cells struct {
	CellWidth  int
	CellHeight int
}

var _ render.Rasterizer = Cells{}

func (c Cells) Measure(text string, st render.TextStyle) (int, int, error) {
	cw, ch, err := c.cell(st)
	if err != nil {
		return 0, 0, err
	}
	n := 0
	for _, g := range grapheme.Split(text) {
		n += clusterCells(g)
	}
	return n * cw, ch, nil
}

func (c Cells) Render(text string, st render.TextStyle) (image.Image, error) {
	w, h, err := c.Measure(text, st)
	if err != nil {
		return nil, err
	}
	cw, _, _ := c.cell(st)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if st.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)
	}
	fg := st.Color
	if fg == nil {
		fg = color.White
	}
	ink := image.NewUniform(fg)

	inset := 1
	if st.Bold || cw < 3 || h < 3 {
		inset = 0
	}
	x := 0
	for _, g := range grapheme.Split(text) {
		n := clusterCells(g)
		if n > 0 && !grapheme.IsBlank(g) {
			box := image.Rect(x+inset, inset, x+n*cw-inset, h-inset)
			if st.Italic {
				// Lean the top half one pixel to the right.
				top := image.Rect(box.Min.X+1, box.Min.Y, box.Max.X+1, box.Min.Y+box.Dy()/2)
				draw.Draw(img, top.Intersect(img.Bounds()), ink, image.Point{}, draw.Src)
				box.Min.Y = top.Max.Y
			}
			draw.Draw(img, box, ink, image.Point{}, draw.Src)
		}
		x += n * cw
	}
	return img, nil
}

func (c Cells) cell(st render.TextStyle) (int, int, error) {
	ch := c.CellHeight
	if ch == 0 {
		ch = st.Size
	}
	if ch <= 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidSize, ch)
	}
	cw := c.CellWidth
	if cw == 0 {
		cw = max(ch/2, 1)
	}
	if cw <= 0 {
		return 0, 0, fmt.Errorf("%w: cell width %d", ErrInvalidSize, cw)
	}
	return cw, ch, nil
}

func clusterCells(g string) int {
	w := runewidth.StringWidth(g)
	if w <= 0 {
		w = uniseg.StringWidth(g)
	}
	return max(w, 0)
}
