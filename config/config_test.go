package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/caretline/segment"
)

const sample = `
text = "hello"

[style]
font = "gomono"
size = 18
color = "#e0e0e0"
background = "202020"
bold = true
antialias = false

[caret]
width = 3
color = "#f00"
off_ms = 250
on_ms = 750

[input]
word_delete = false
word_joiners = ""
`

func TestParse_Sample(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := f.Editor()
	if err != nil {
		t.Fatalf("Editor: %v", err)
	}

	if cfg.Text != "hello" {
		t.Fatalf("text: got %q, want %q", cfg.Text, "hello")
	}
	if cfg.Style.Font != "gomono" || cfg.Style.Size != 18 || !cfg.Style.Bold || cfg.Style.Antialias {
		t.Fatalf("style: got %+v", cfg.Style)
	}
	if got, want := cfg.Style.Color, (color.RGBA{0xe0, 0xe0, 0xe0, 0xff}); got != want {
		t.Fatalf("color: got %v, want %v", got, want)
	}
	if got, want := cfg.Style.Background, (color.RGBA{0x20, 0x20, 0x20, 0xff}); got != want {
		t.Fatalf("background: got %v, want %v", got, want)
	}
	if got, want := cfg.Caret.Color, (color.RGBA{0xff, 0x00, 0x00, 0xff}); got != want {
		t.Fatalf("caret color: got %v, want %v", got, want)
	}
	if cfg.Caret.Width != 3 || cfg.Caret.Off != 250*time.Millisecond || cfg.Caret.On != 750*time.Millisecond {
		t.Fatalf("caret: got %+v", cfg.Caret)
	}
	if !cfg.DisableWordDelete || cfg.DisablePaste {
		t.Fatalf("toggles: word delete disabled=%v paste disabled=%v", cfg.DisableWordDelete, cfg.DisablePaste)
	}
	want := segment.Options{WordJoiners: "", DigitGroupers: segment.DefaultOptions().DigitGroupers}
	if cfg.Segmenter == nil {
		t.Fatalf("segmenter: got nil, want %+v", want)
	}
	if diff := cmp.Diff(want, *cfg.Segmenter); diff != "" {
		t.Fatalf("segmenter mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyDocumentKeepsDefaults(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := f.Editor()
	if err != nil {
		t.Fatalf("Editor: %v", err)
	}
	if cfg.Style.Color != nil || cfg.Style.Background != nil || cfg.Caret.Color != nil {
		t.Fatalf("colors: got %v/%v/%v, want all nil", cfg.Style.Color, cfg.Style.Background, cfg.Caret.Color)
	}
	if !cfg.Style.Antialias {
		t.Fatalf("antialias: got false, want true")
	}
	if cfg.Segmenter != nil {
		t.Fatalf("segmenter: got %+v, want nil", *cfg.Segmenter)
	}
	if cfg.DisableWordDelete || cfg.DisablePaste {
		t.Fatalf("toggles must default to enabled")
	}
}

func TestParse_InvalidColor(t *testing.T) {
	_, err := Parse([]byte("[caret]\ncolor = \"#zzzzzz\"\n"))
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("Parse: got %v, want %v", err, ErrInvalidColor)
	}
}

func TestParse_NegativeValues(t *testing.T) {
	for _, doc := range []string{
		"[style]\nsize = -1\n",
		"[caret]\nwidth = -2\n",
		"[caret]\noff_ms = -5\n",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("Parse(%q): got nil error", doc)
		}
	}
}

func TestParse_SyntaxErrorHasPosition(t *testing.T) {
	_, err := Parse([]byte("text = \"ok\"\n[style\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse: got %v, want *ParseError", err)
	}
	if pe.Line != 2 {
		t.Fatalf("line: got %d, want %d", pe.Line, 2)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	f, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if diff := cmp.Diff(Default(), f); diff != "" {
		t.Fatalf("missing file must load defaults (-want +got):\n%s", diff)
	}

	path := filepath.Join(dir, "caretline.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Style.Font != "gomono" {
		t.Fatalf("font: got %q, want %q", f.Style.Font, "gomono")
	}
}

func TestEncode_RoundTripsDefault(t *testing.T) {
	data, err := Default().Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(%s): %v", data, err)
	}
	if diff := cmp.Diff(Default(), f); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}
