package raster

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/iw2rmb/caretline/render"
)

// DefaultFont is used when a style leaves the font identity empty.
const DefaultFont = "go"

type variant uint8

const (
	regular variant = iota
	bold
	italic
	boldItalic
)

func variantOf(st render.TextStyle) variant {
	switch {
	case st.Bold && st.Italic:
		return boldItalic
	case st.Bold:
		return bold
	case st.Italic:
		return italic
	default:
		return regular
	}
}

type fontKey struct {
	family string
	v      variant
}

type faceKey struct {
	fontKey
	size int
}

// Face rasterizes with OpenType fonts. The Go font families "go" and
// "gomono" are registered by NewFace; Register adds more.
type Face struct {
	sources map[fontKey][]byte
	parsed  map[fontKey]*opentype.Font
	faces   map[faceKey]font.Face
}

var _ render.Rasterizer = (*Face)(nil)

func NewFace() *Face {
	f := &Face{
		sources: make(map[fontKey][]byte),
		parsed:  make(map[fontKey]*opentype.Font),
		faces:   make(map[faceKey]font.Face),
	}
	f.Register("go", goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF)
	f.Register("gomono", gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF)
	return f
}

// Register adds a font family. Missing bold or italic variants fall back to
// the closest available one.
func (f *Face) Register(family string, regularTTF, boldTTF, italicTTF, boldItalicTTF []byte) {
	for v, src := range [...][]byte{regularTTF, boldTTF, italicTTF, boldItalicTTF} {
		k := fontKey{family: family, v: variant(v)}
		delete(f.parsed, k)
		if src == nil {
			delete(f.sources, k)
			continue
		}
		f.sources[k] = src
	}
	for k, face := range f.faces {
		if k.family == family {
			_ = face.Close()
			delete(f.faces, k)
		}
	}
}

// Has reports whether family has a regular variant registered.
func (f *Face) Has(family string) bool {
	_, ok := f.sources[fontKey{family: family, v: regular}]
	return ok
}

func (f *Face) Measure(text string, st render.TextStyle) (int, int, error) {
	face, err := f.face(st)
	if err != nil {
		return 0, 0, err
	}
	m := face.Metrics()
	return font.MeasureString(face, text).Ceil(), (m.Ascent + m.Descent).Ceil(), nil
}

func (f *Face) Render(text string, st render.TextStyle) (image.Image, error) {
	face, err := f.face(st)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	bounds := image.Rect(0, 0, font.MeasureString(face, text).Ceil(), (m.Ascent + m.Descent).Ceil())

	mask := image.NewAlpha(bounds)
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(text)
	if !st.Antialias {
		threshold(mask)
	}

	img := image.NewRGBA(bounds)
	if st.Background != nil {
		draw.Draw(img, bounds, image.NewUniform(st.Background), image.Point{}, draw.Src)
	}
	fg := st.Color
	if fg == nil {
		fg = color.White
	}
	draw.DrawMask(img, bounds, image.NewUniform(fg), image.Point{}, mask, image.Point{}, draw.Over)
	return img, nil
}

// Close releases every cached face.
func (f *Face) Close() error {
	var first error
	for k, face := range f.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(f.faces, k)
	}
	return first
}

func (f *Face) face(st render.TextStyle) (font.Face, error) {
	if st.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, st.Size)
	}
	family := st.Font
	if family == "" {
		family = DefaultFont
	}
	fk, ok := f.resolve(family, variantOf(st))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, family)
	}

	k := faceKey{fontKey: fk, size: st.Size}
	if face, ok := f.faces[k]; ok {
		return face, nil
	}

	parsed, ok := f.parsed[fk]
	if !ok {
		var err error
		parsed, err = opentype.Parse(f.sources[fk])
		if err != nil {
			return nil, fmt.Errorf("parse font %q: %w", family, err)
		}
		f.parsed[fk] = parsed
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(st.Size),
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("open face %q size %d: %w", family, st.Size, err)
	}
	f.faces[k] = face
	return face, nil
}

// resolve picks the registered variant closest to v.
func (f *Face) resolve(family string, v variant) (fontKey, bool) {
	var order []variant
	switch v {
	case boldItalic:
		order = []variant{boldItalic, bold, italic, regular}
	case bold:
		order = []variant{bold, regular}
	case italic:
		order = []variant{italic, regular}
	default:
		order = []variant{regular}
	}
	for _, cand := range order {
		k := fontKey{family: family, v: cand}
		if _, ok := f.sources[k]; ok {
			return k, true
		}
	}
	return fontKey{}, false
}

// threshold turns antialiased coverage into hard on/off pixels.
func threshold(a *image.Alpha) {
	for i, v := range a.Pix {
		if v >= 0x80 {
			a.Pix[i] = 0xff
		} else {
			a.Pix[i] = 0
		}
	}
}
