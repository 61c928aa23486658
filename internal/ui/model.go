package ui

import (
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jtail/internal/stream"
)

// Options configures the UI.
type Options struct {
	State     *stream.State
	Console   *Console
	ShowHints bool
}

// Model is the bubbletea model that owns the stream state and the console.
// Records and keystrokes both arrive as messages, so they are applied one at
// a time in arrival order.
type Model struct {
	state   *stream.State
	console *Console
	keys    keyMap
	help    help.Model

	showHints  bool
	sourceDone bool
	err        error
}

// Messages

// LineMsg carries one raw record from the input.
type LineMsg string

// SourceDoneMsg reports that the input has ended. Err is nil on clean EOF.
type SourceDoneMsg struct {
	Err error
}

type hintMsg struct{}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	state := opts.State
	if state == nil {
		state = stream.New(stream.DefaultLimit)
	}
	console := opts.Console
	if console == nil {
		console = NewConsole(io.Discard, DefaultHeight)
	}
	return Model{
		state:     state,
		console:   console,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		showHints: opts.ShowHints,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if !m.showHints {
		return nil
	}
	return func() tea.Msg { return hintMsg{} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LineMsg:
		m.state.AddLine(string(msg), m.console)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
			m.state.SendKey(m.console, msg.Runes[0])
		}

	case tea.WindowSizeMsg:
		m.console.SetHeight(msg.Height)

	case hintMsg:
		m.console.CleanLastLine()
		m.console.Write(m.help.ShortHelpView(m.keys.ShortHelp()))
		m.console.Enter()

	case SourceDoneMsg:
		m.sourceDone = true
		if msg.Err != nil {
			log.Printf("input stopped after %d records: %v", m.state.LineCount(), msg.Err)
		} else {
			log.Printf("input closed after %d records", m.state.LineCount())
		}
	}

	if err := m.console.Err(); err != nil {
		log.Printf("console: %v", err)
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model. The console draws directly, so there is no view.
func (m Model) View() string {
	return ""
}

// Err reports the console failure that stopped the program, if any.
func (m Model) Err() error { return m.err }

// SourceDone reports whether the input has ended.
func (m Model) SourceDone() bool { return m.sourceDone }

// State returns the stream state the model drives.
func (m Model) State() *stream.State { return m.state }
