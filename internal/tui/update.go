package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		m.statsView.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case habitlist.ToggleHabitMsg:
		m.dashboard.ToggleHabit(msg.ID, dates.Today())
		m.refresh()
		return m, nil

	case habitlist.AddHabitMsg:
		m.newHabitForm()
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			m.dashboard.ToggleTheme()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateStats:
		m.statsView, cmd = m.statsView.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		// Validation already ran in the form; a failure here is a no-op.
		m.dashboard.AddHabit(m.habitForm.Name, m.habitForm.Icon, m.habitForm.Color)
		m.refresh()
		m.state = StateHabits
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.state = StateHabits
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.dashboard.DeleteHabit(m.habitToDeleteID)
			m.habitToDeleteID = ""
			m.refresh()
			m.state = StateHabits
		case "n", "N", "esc", "q":
			m.habitToDeleteID = ""
			m.state = StateHabits
		}
	}
	return m, nil
}
