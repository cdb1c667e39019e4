package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	program := tea.NewProgram(tui.NewModel(ctx.Dashboard), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard ui: %w", err)
	}
	return nil
}

type FocusCmd struct {
	Minutes int `arg:"" optional:"" help:"Session length in minutes." default:"25"`
}

func (c *FocusCmd) Validate() error {
	if c.Minutes < 1 || c.Minutes > 180 {
		return fmt.Errorf("session length must be between 1 and 180 minutes")
	}
	return nil
}

func (c *FocusCmd) Run(ctx *Context) error {
	if !ctx.Dashboard.ModuleEnabled(constants.ModulePomodoro) {
		ctx.Notify.Error("The pomodoro module is disabled in settings")
		return nil
	}

	program := tea.NewProgram(tui.NewFocus(c.Minutes))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run focus timer: %w", err)
	}
	return nil
}
