package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tickMsg fires once per second while the focus timer runs.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// FocusModel is a standalone countdown timer for focus sessions. It does not
// touch dashboard state; finishing a session is its own reward.
type FocusModel struct {
	total     time.Duration
	remaining time.Duration
	progress  progress.Model
	paused    bool
	done      bool
	width     int
}

func NewFocus(minutes int) FocusModel {
	total := time.Duration(minutes) * time.Minute
	return FocusModel{
		total:     total,
		remaining: total,
		progress:  progress.New(progress.WithDefaultGradient()),
	}
}

func (m FocusModel) Init() tea.Cmd {
	return tick()
}

func (m FocusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			return m, nil
		}

	case tickMsg:
		if m.done {
			return m, tea.Quit
		}
		if m.paused {
			return m, tick()
		}
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.done = true
		}
		return m, tick()
	}
	return m, nil
}

func (m FocusModel) View() string {
	if m.done {
		return greetingStyle.Render("Focus session complete! 🎉") + "\n"
	}

	elapsed := m.total - m.remaining
	pct := float64(elapsed) / float64(m.total)

	status := fmt.Sprintf("%02d:%02d remaining", int(m.remaining.Minutes()), int(m.remaining.Seconds())%60)
	if m.paused {
		status += "  (paused)"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		greetingStyle.Render("Focus"),
		"",
		"  "+m.progress.ViewAs(pct),
		"  "+status,
		"",
		quoteStyle.Render("space to pause, q to quit"),
	)
}
