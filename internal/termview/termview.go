// Package termview draws bitmaps on a terminal using upper half blocks: each
// character cell shows two vertically stacked pixels, the top one as the
// foreground colour and the bottom one as the background colour.
package termview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

const (
	halfBlock      = "▀"
	lowerHalfBlock = "▄"
)

// View converts images into styled terminal text.
type View struct {
	r *lipgloss.Renderer

	// Backdrop is blended under translucent pixels. Nil leaves fully
	// transparent pixels in the terminal's default colours.
	Backdrop color.Color
}

func New(r *lipgloss.Renderer) *View {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &View{r: r}
}

// ParseProfile maps a colour profile name to its termenv profile. "auto"
// and the empty string return ok=false so the renderer keeps detecting.
func ParseProfile(name string) (p termenv.Profile, ok bool, err error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "ascii", "none":
		return termenv.Ascii, true, nil
	case "ansi", "16":
		return termenv.ANSI, true, nil
	case "ansi256", "256":
		return termenv.ANSI256, true, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, true, nil
	}
	return termenv.Ascii, false, fmt.Errorf("unknown color profile %q", name)
}

// Render returns one line per two pixel rows. An odd last row gets an empty
// bottom half.
func (v *View) Render(img image.Image) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		v.renderRow(&sb, img, y)
	}
	return sb.String()
}

func (v *View) renderRow(sb *strings.Builder, img image.Image, y int) {
	b := img.Bounds()

	// Runs of cells with identical colours share one styled span.
	var (
		run            int
		runTop, runBot string
	)
	flush := func() {
		if run == 0 {
			return
		}
		st := v.r.NewStyle()
		glyph := halfBlock
		switch {
		case runTop == "" && runBot == "":
			glyph = " "
		case runTop == "":
			glyph = lowerHalfBlock
			st = st.Foreground(lipgloss.Color(runBot))
		default:
			st = st.Foreground(lipgloss.Color(runTop))
			if runBot != "" {
				st = st.Background(lipgloss.Color(runBot))
			}
		}
		sb.WriteString(st.Render(strings.Repeat(glyph, run)))
		run = 0
	}

	for x := b.Min.X; x < b.Max.X; x++ {
		top := v.hex(img.At(x, y))
		bot := ""
		if y+1 < b.Max.Y {
			bot = v.hex(img.At(x, y+1))
		}
		if run > 0 && top == runTop && bot == runBot {
			run++
			continue
		}
		flush()
		runTop, runBot, run = top, bot, 1
	}
	flush()
}

// hex returns the pixel colour as "#rrggbb", or "" when nothing should be
// drawn.
func (v *View) hex(c color.Color) string {
	_, _, _, a := c.RGBA()
	if a == 0 && v.Backdrop == nil {
		return ""
	}
	if a < 0xffff && v.Backdrop != nil {
		fg, _ := colorful.MakeColor(c)
		bg, _ := colorful.MakeColor(v.Backdrop)
		return bg.BlendRgb(fg, float64(a)/0xffff).Clamped().Hex()
	}
	col, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return col.Hex()
}
