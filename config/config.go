// Package config loads widget settings from TOML files.
//
// A file looks like:
//
//	text = "hello"
//
//	[style]
//	font = "gomono"
//	size = 24
//	color = "#e0e0e0"
//	background = "#202020"
//	antialias = true
//
//	[caret]
//	width = 2
//	color = "#ff5f5f"
//	off_ms = 500
//	on_ms = 500
//
//	[input]
//	word_delete = true
//	paste = true
//	word_joiners = "':"
//	digit_groupers = ",;."
//
// Every key is optional.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/caretline/editor"
	"github.com/iw2rmb/caretline/segment"
)

var ErrInvalidColor = errors.New("invalid color")

// File mirrors the TOML document.
type File struct {
	Text  string `toml:"text"`
	Style Style  `toml:"style"`
	Caret Caret  `toml:"caret"`
	Input Input  `toml:"input"`
}

type Style struct {
	Font       string `toml:"font,omitempty"`
	Size       int    `toml:"size,omitempty"`
	Color      string `toml:"color,omitempty"`
	Background string `toml:"background,omitempty"`
	Bold       bool   `toml:"bold"`
	Italic     bool   `toml:"italic"`
	Antialias  *bool  `toml:"antialias,omitempty"`
}

type Caret struct {
	Width int    `toml:"width,omitempty"`
	Color string `toml:"color,omitempty"`
	OffMS int    `toml:"off_ms,omitempty"`
	OnMS  int    `toml:"on_ms,omitempty"`
}

type Input struct {
	WordDelete *bool `toml:"word_delete,omitempty"`
	Paste      *bool `toml:"paste,omitempty"`

	// Nil keeps the default set; an empty string means every non-word
	// character.
	WordJoiners   *string `toml:"word_joiners,omitempty"`
	DigitGroupers *string `toml:"digit_groupers,omitempty"`
}

// ParseError reports a malformed document.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Default returns the settings a missing file stands for.
func Default() *File {
	aa, on := true, true
	return &File{
		Style: Style{
			Font:      "go",
			Size:      editor.DefaultSize,
			Color:     "#ffffff",
			Antialias: &aa,
		},
		Caret: Caret{
			Width: editor.DefaultCaretWidth,
			OffMS: 500,
			OnMS:  500,
		},
		Input: Input{WordDelete: &on, Paste: &on},
	}
}

// Load reads and validates the file at path. A missing file yields Default().
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse decodes and validates a TOML document.
func Parse(data []byte) (*File, error) {
	return parse("<data>", data)
}

func parse(source string, data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		pe := &ParseError{Path: source, Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return nil, pe
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &f, nil
}

// Validate checks colours and numeric ranges.
func (f *File) Validate() error {
	for name, s := range map[string]string{
		"style.color":      f.Style.Color,
		"style.background": f.Style.Background,
		"caret.color":      f.Caret.Color,
	} {
		if _, err := parseColor(s); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	switch {
	case f.Style.Size < 0:
		return fmt.Errorf("style.size: must not be negative, got %d", f.Style.Size)
	case f.Caret.Width < 0:
		return fmt.Errorf("caret.width: must not be negative, got %d", f.Caret.Width)
	case f.Caret.OffMS < 0 || f.Caret.OnMS < 0:
		return fmt.Errorf("caret: blink durations must not be negative")
	}
	return nil
}

// Encode renders the settings back to TOML.
func (f *File) Encode() ([]byte, error) {
	return toml.Marshal(f)
}

// EditorStyle returns the text style described by the file.
func (f *File) EditorStyle() (editor.Style, error) {
	fg, err := parseColor(f.Style.Color)
	if err != nil {
		return editor.Style{}, fmt.Errorf("style.color: %w", err)
	}
	bg, err := parseColor(f.Style.Background)
	if err != nil {
		return editor.Style{}, fmt.Errorf("style.background: %w", err)
	}
	st := editor.Style{
		Color:      fg,
		Background: bg,
		Font:       f.Style.Font,
		Size:       f.Style.Size,
		Bold:       f.Style.Bold,
		Italic:     f.Style.Italic,
		Antialias:  true,
	}
	if f.Style.Antialias != nil {
		st.Antialias = *f.Style.Antialias
	}
	return st, nil
}

// CaretStyle returns the caret settings described by the file.
func (f *File) CaretStyle() (editor.CaretStyle, error) {
	c, err := parseColor(f.Caret.Color)
	if err != nil {
		return editor.CaretStyle{}, fmt.Errorf("caret.color: %w", err)
	}
	return editor.CaretStyle{
		Width: f.Caret.Width,
		Color: c,
		Off:   time.Duration(f.Caret.OffMS) * time.Millisecond,
		On:    time.Duration(f.Caret.OnMS) * time.Millisecond,
	}, nil
}

// Editor returns a widget configuration. The caller supplies the rasterizer,
// clipboard, and logger.
func (f *File) Editor() (editor.Config, error) {
	st, err := f.EditorStyle()
	if err != nil {
		return editor.Config{}, err
	}
	cs, err := f.CaretStyle()
	if err != nil {
		return editor.Config{}, err
	}
	cfg := editor.Config{
		Text:  f.Text,
		Style: st,
		Caret: cs,
	}
	if f.Input.WordDelete != nil {
		cfg.DisableWordDelete = !*f.Input.WordDelete
	}
	if f.Input.Paste != nil {
		cfg.DisablePaste = !*f.Input.Paste
	}
	if f.Input.WordJoiners != nil || f.Input.DigitGroupers != nil {
		opt := segment.DefaultOptions()
		if f.Input.WordJoiners != nil {
			opt.WordJoiners = *f.Input.WordJoiners
		}
		if f.Input.DigitGroupers != nil {
			opt.DigitGroupers = *f.Input.DigitGroupers
		}
		cfg.Segmenter = &opt
	}
	return cfg, nil
}

// parseColor accepts "#rgb" and "#rrggbb". An empty string is nil.
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
