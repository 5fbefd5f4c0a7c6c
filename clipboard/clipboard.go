// Package clipboard provides clipboards for the editor's paste binding.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// System reads and writes the operating system clipboard.
type System struct{}

// Available reports whether a system clipboard backend was found
// (pbpaste, xclip, xsel, wl-paste, termux or the Windows API).
func (System) Available() bool { return !clipboard.Unsupported }

func (System) ReadText() (string, error) { return clipboard.ReadAll() }

func (System) WriteText(s string) error { return clipboard.WriteAll(s) }

// Memory is a process-local clipboard. The zero value is empty and ready to
// use. It is safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

func NewMemory(text string) *Memory { return &Memory{text: text} }

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}

// Fail makes subsequent reads return err until it is cleared with nil.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
