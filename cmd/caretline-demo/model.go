package main

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/iw2rmb/caretline/config"
	"github.com/iw2rmb/caretline/editor"
	"github.com/iw2rmb/caretline/internal/termview"
)

type frameMsg time.Time

type reloadMsg struct {
	file *config.File
	err  error
}

// keyMap adds the demo's own bindings to the widget's.
type keyMap struct {
	editor.KeyMap

	Focus, Enable, Help, Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		KeyMap: editor.DefaultKeyMap(),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle focus")),
		Enable: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "toggle enabled")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Focus, k.Enable, k.Help, k.Quit})
}

type model struct {
	w    *editor.Widget
	view *termview.View
	keys keyMap
	help help.Model
	log  logr.Logger

	start   time.Time
	frame   time.Duration
	pending []editor.KeyEvent

	status      string
	statusStyle lipgloss.Style
	errStyle    lipgloss.Style
	err         error
}

func newModel(w *editor.Widget, view *termview.View, r *lipgloss.Renderer, fps int, log logr.Logger) *model {
	if fps <= 0 {
		fps = 30
	}
	return &model{
		w:           w,
		view:        view,
		keys:        newKeyMap(),
		help:        help.New(),
		log:         log,
		frame:       time.Second / time.Duration(fps),
		statusStyle: r.NewStyle().Faint(true),
		errStyle:    r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *model) Init() tea.Cmd {
	m.start = time.Now()
	return m.tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Focus):
			m.w.SetFocused(!m.w.Focused())
		case key.Matches(msg, m.keys.Enable):
			m.w.SetEnabled(!m.w.Enabled())
		default:
			m.pending = append(m.pending, editor.KeyEventFromTea(msg))
		}
		return m, nil

	case frameMsg:
		now := time.Time(msg).Sub(m.start)
		m.err = m.w.Update(m.pending, now)
		m.pending = m.pending[:0]
		return m, m.tick()

	case reloadMsg:
		m.reload(msg)
		return m, nil
	}
	return m, nil
}

// reload applies the style parts of a changed settings file. Text, toggles
// and word rules only take effect on restart.
func (m *model) reload(msg reloadMsg) {
	if msg.err != nil {
		m.log.Error(msg.err, "config reload failed")
		m.status = "reload failed: " + msg.err.Error()
		return
	}
	st, err := msg.file.EditorStyle()
	if err == nil {
		var cs editor.CaretStyle
		cs, err = msg.file.CaretStyle()
		if err == nil {
			m.w.SetStyle(st)
			m.w.SetCaretStyle(cs)
		}
	}
	if err != nil {
		m.log.Error(err, "config reload failed")
		m.status = "reload failed: " + err.Error()
		return
	}
	m.log.Info("config reloaded", "font", st.Font, "size", st.Size)
	m.status = "settings reloaded"
}

func (m *model) View() string {
	out := m.view.Render(m.w.Bitmap()) + "\n\n"

	state := "focused"
	if !m.w.Focused() {
		state = "unfocused"
	}
	if !m.w.Enabled() {
		state += ", disabled"
	}
	line := state + " · caret " + strconv.Itoa(m.w.CaretPosition())
	if m.status != "" {
		line += " · " + m.status
	}
	out += m.statusStyle.Render(line) + "\n"
	if m.err != nil {
		out += m.errStyle.Render(m.err.Error()) + "\n"
	}
	return out + m.help.View(m.keys)
}
