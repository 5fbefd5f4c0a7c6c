package main

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"

	"github.com/iw2rmb/caretline/config"
)

// watchConfig sends a reloadMsg to p whenever the settings file is written
// or replaced. The parent directory is watched because editors often save
// by renaming a temporary file over the original.
func watchConfig(path string, p *tea.Program, log logr.Logger) (stop func(), err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				log.V(1).Info("settings changed", "path", ev.Name, "op", ev.Op.String())
				f, err := config.Load(abs)
				p.Send(reloadMsg{file: f, err: err})
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				log.Error(err, "watch error")
			}
		}
	}()

	return func() {
		_ = fsw.Close()
		<-done
	}, nil
}
