// Command caretline-demo runs the caret widget in a terminal. The widget's
// bitmap is drawn with half-block characters, so a large font is readable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/iw2rmb/caretline"
	"github.com/iw2rmb/caretline/clipboard"
	"github.com/iw2rmb/caretline/config"
	"github.com/iw2rmb/caretline/editor"
	"github.com/iw2rmb/caretline/internal/termview"
	"github.com/iw2rmb/caretline/raster"
)

func main() {
	var (
		cfgPath   = flag.String("config", "caretline.toml", "TOML settings file")
		logPath   = flag.String("log", "", "write logs to this file")
		verbosity = flag.Int("v", 0, "log verbosity")
		profile   = flag.String("color", "auto", "color profile: auto, ascii, ansi, ansi256, truecolor")
		watch     = flag.Bool("watch", true, "reload the settings file when it changes")
		fps       = flag.Int("fps", 30, "frames per second")
		cells     = flag.Bool("cells", false, "draw with block cells instead of fonts")
		dump      = flag.Bool("dump-config", false, "print the effective settings and exit")
		version   = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(caretline.VersionTag())
		return
	}
	if err := run(options{
		cfgPath:   *cfgPath,
		logPath:   *logPath,
		verbosity: *verbosity,
		profile:   *profile,
		watch:     *watch,
		fps:       *fps,
		cells:     *cells,
		dump:      *dump,
	}); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

type options struct {
	cfgPath   string
	logPath   string
	verbosity int
	profile   string
	watch     bool
	fps       int
	cells     bool
	dump      bool
}

func run(opt options) error {
	file, err := config.Load(opt.cfgPath)
	if err != nil {
		return err
	}
	if opt.dump {
		data, err := file.Encode()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	logger, closeLog, err := newLogger(opt.logPath, opt.verbosity)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := file.Editor()
	if err != nil {
		return err
	}
	cfg.Logger = logger.WithName("editor")
	if cfg.Text == "" {
		cfg.Text = "Hello, caret"
	}

	if opt.cells {
		cfg.Rasterizer = raster.Cells{}
	} else {
		face := raster.NewFace()
		defer face.Close()
		cfg.Rasterizer = face
	}

	if sys := (clipboard.System{}); sys.Available() {
		cfg.Clipboard = sys
	} else {
		logger.Info("system clipboard unavailable, paste uses an empty in-process clipboard")
		cfg.Clipboard = clipboard.NewMemory("")
	}

	w, err := editor.New(cfg)
	if err != nil {
		return err
	}

	renderer := lipgloss.NewRenderer(os.Stdout)
	p, ok, err := termview.ParseProfile(opt.profile)
	if err != nil {
		return err
	}
	if ok {
		renderer.SetColorProfile(p)
	}

	m := newModel(w, termview.New(renderer), renderer, opt.fps, logger)
	prog := tea.NewProgram(m, tea.WithAltScreen())

	if opt.watch {
		stop, err := watchConfig(opt.cfgPath, prog, logger.WithName("watch"))
		if err != nil {
			logger.Error(err, "config watch disabled", "path", opt.cfgPath)
		} else {
			defer stop()
		}
	}

	_, err = prog.Run()
	return err
}

// newLogger logs to a file since the terminal belongs to the program.
func newLogger(path string, verbosity int) (logr.Logger, func(), error) {
	if path == "" {
		return logr.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Logger{}, nil, fmt.Errorf("opening log file: %w", err)
	}
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(f, "caretline ", log.LstdFlags|log.Lmicroseconds)), func() { _ = f.Close() }, nil
}
