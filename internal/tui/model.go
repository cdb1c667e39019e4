package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/tui/components/habitlist"
	"github.com/julianstephens/lifedash/internal/tui/components/statsview"
	"github.com/julianstephens/lifedash/internal/validation"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateStats
	StateAddHabit
	StateConfirmDelete
)

// tabCount covers only the cyclable tabs, not the modal states.
const tabCount = 2

type HabitFormModel struct {
	Name  string
	Icon  string
	Color string
}

type Model struct {
	dashboard       *dashboard.Dashboard
	state           SessionState
	keys            KeyMap
	help            help.Model
	habitList       habitlist.Model
	statsView       statsview.Model
	form            *huh.Form
	habitForm       *HabitFormModel
	habitToDeleteID string
	quitting        bool
	width           int
	height          int
}

func NewModel(d *dashboard.Dashboard) Model {
	now := time.Now()
	return Model{
		dashboard: d,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(d.Habits, now, 0, 0),
		statsView: statsview.New(d, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHabits {
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Theme}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateHabits {
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// newHabitForm builds the add-habit form with the icon and color catalogs.
func (m *Model) newHabitForm() {
	m.habitForm = &HabitFormModel{
		Icon:  constants.HabitIcons[0],
		Color: constants.DefaultAccentColor,
	}

	iconOptions := make([]huh.Option[string], len(constants.HabitIcons))
	for i, icon := range constants.HabitIcons {
		iconOptions[i] = huh.NewOption(icon, icon)
	}
	colorOptions := make([]huh.Option[string], len(constants.HabitColors))
	for i, color := range constants.HabitColors {
		colorOptions[i] = huh.NewOption(color, color)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&m.habitForm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					if len(s) > validation.MaxNameLen {
						return fmt.Errorf("name is too long")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Icon").
				Options(iconOptions...).
				Value(&m.habitForm.Icon),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&m.habitForm.Color),
		),
	)
}

// refresh re-reads the dashboard into both components after a mutation.
func (m *Model) refresh() {
	m.habitList.SetHabits(m.dashboard.Habits)
	m.statsView.Render()
}
