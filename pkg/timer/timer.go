// Package timer renders a named countdown with a progress bar in the
// terminal. The timer can be skipped with s, enter, or q.
package timer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

// Model is the bubbletea model for one countdown.
type Model struct {
	name      string
	total     int // seconds
	remaining int
	bar       progress.Model
	done      bool
}

// New creates a countdown model for the given duration.
func New(name string, d time.Duration) Model {
	total := int(d.Seconds())
	if total < 1 {
		total = 1
	}
	return Model{
		name:      name,
		total:     total,
		remaining: total,
		bar:       progress.New(progress.WithDefaultGradient()),
	}
}

// Done reports whether the countdown ran to zero (as opposed to being
// skipped).
func (m Model) Done() bool { return m.done }

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s", "q", "enter", "ctrl+c":
			m.remaining = 0
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}

	case tickMsg:
		if m.remaining > 0 {
			m.remaining--
		}
		if m.remaining == 0 {
			m.done = true
			return m, tea.Quit
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.done {
		return titleStyle.Render(fmt.Sprintf("%s complete!", m.name)) + "\n"
	}

	elapsed := float64(m.total-m.remaining) / float64(m.total)
	return fmt.Sprintf("%s\n%s\nTime remaining: %02d:%02d\n%s\n",
		titleStyle.Render(m.name+" Timer"),
		m.bar.ViewAs(elapsed),
		m.remaining/60, m.remaining%60,
		helpStyle.Render("press s to skip"),
	)
}

// Run blocks until the countdown finishes or the user skips it.
func Run(name string, d time.Duration) error {
	if _, err := tea.NewProgram(New(name, d)).Run(); err != nil {
		return fmt.Errorf("%s timer failed: %w", name, err)
	}
	return nil
}
