package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for batch lookup progress. Event types from
// the Bridge double as tea.Msg values, so no translation layer is needed.
type Model struct {
	total     int
	processed int
	failed    int
	last      string
	spinner   spinner.Model
	done      bool
	err       error
}

// NewModel creates a Model expecting total non-blank input lines.
func NewModel(total int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{total: total, spinner: s}
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LineMsg:
		m.processed++
		if msg.Failed {
			m.failed++
			m.last = fmt.Sprintf("%s failed: %s", msg.Input, msg.Reason)
		} else {
			m.last = fmt.Sprintf("%s %s (%s)", msg.Input, msg.Carrier, msg.Type)
		}
		return m, nil

	case BatchDoneMsg:
		m.done = true
		return m, tea.Quit

	case BatchErrorMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the progress line and the most recent outcome.
func (m Model) View() string {
	indicator := m.spinner.View()
	if m.done {
		indicator = "✓"
		if m.err != nil || m.failed > 0 {
			indicator = "✗"
		}
	}

	s := fmt.Sprintf("  %s looking up %d/%d", indicator, m.processed, m.total)
	if m.failed > 0 {
		s += fmt.Sprintf(" (%d failed)", m.failed)
	}
	s += "\n"

	if m.last != "" {
		s += fmt.Sprintf("  last: %s\n", m.last)
	}

	if m.done && m.err != nil {
		s += fmt.Sprintf("\n  Error: %s\n", m.err)
	}

	return s
}
