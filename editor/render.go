package editor

import (
	"fmt"
	"image"

	"github.com/iw2rmb/caretline/render"
)

func (w *Widget) frame() render.Frame {
	return render.Frame{
		Left:  w.text.Left(),
		Right: w.text.Right(),
		Style: w.style.textStyle(),
		Caret: render.CaretStyle{
			Width: w.caretStyle.Width,
			Color: w.caretStyle.Color,
		},
		CaretVisible: w.clock.Visible(),
		Enabled:      w.enabled,
	}
}

// Regenerate redraws the bitmap if it is stale, or unconditionally when
// force is set. Update calls it once per frame; hosts only need it to pick
// up setter changes between frames.
func (w *Widget) Regenerate(force bool) (*image.RGBA, error) {
	if !force && !w.cache.Dirty() && w.cache.Bitmap() != nil {
		return w.cache.Bitmap(), nil
	}
	img, err := w.cache.Regenerate(w.frame(), force)
	if err != nil {
		w.log.Error(err, "bitmap regeneration failed", "font", w.style.Font, "size", w.style.Size)
		return img, fmt.Errorf("editor: %w", err)
	}
	w.log.V(2).Info("bitmap regenerated", "bounds", img.Bounds(), "position", w.text.Position())
	return img, nil
}
