package editor

import (
	"testing"

	"github.com/iw2rmb/caretline/raster"
)

func TestRender_CaretSitsAtMeasuredPrefixWithFace(t *testing.T) {
	face := raster.NewFace()
	defer face.Close()

	w, err := New(Config{
		Text:       "Hello",
		Rasterizer: face,
		Style:      Style{Font: "gomono", Size: 16},
		Caret:      CaretStyle{Width: 2, Color: caretRed},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	update(t, w, 0, Press(KeyLeft), Press(KeyLeft))

	st := w.Style().textStyle()
	want, _, err := face.Measure("Hel", st)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if got := caretX(w.Bitmap()); got != want {
		t.Fatalf("caret x: got %d, want %d", got, want)
	}

	full, h, _ := face.Measure("Hello", st)
	if got := w.Bounds(); got.Dx() != full+2 || got.Dy() != h {
		t.Fatalf("bounds: got %v, want %dx%d", got, full+2, h)
	}
}

func TestRender_FontChangeRedraws(t *testing.T) {
	face := raster.NewFace()
	defer face.Close()

	w, err := New(Config{Text: "iii", Rasterizer: face, Style: Style{Size: 16}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := w.Bounds().Dx()

	w.SetFont("gomono")
	if !w.Dirty() {
		t.Fatalf("SetFont must mark the bitmap dirty")
	}
	update(t, w, 0)
	if after := w.Bounds().Dx(); after <= before {
		t.Fatalf("monospace width: got %d, want more than proportional %d", after, before)
	}
}

func TestRender_UnknownFontKeepsPreviousBitmap(t *testing.T) {
	face := raster.NewFace()
	defer face.Close()

	w, err := New(Config{Text: "abc", Rasterizer: face})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	prev := w.Bitmap()

	w.SetFont("missing")
	if err := w.Update(nil, 0); err == nil {
		t.Fatalf("Update with unknown font: got nil error")
	}
	if w.Bitmap() != prev {
		t.Fatalf("bitmap must be kept after a failed redraw")
	}
	if !w.Dirty() {
		t.Fatalf("bitmap must stay dirty after a failed redraw")
	}
}
