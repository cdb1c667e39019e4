package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/lifedash/internal/constants"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	s := ctx.Dashboard.Settings
	fmt.Printf("Name:      %s\n", s.FirstName)
	fmt.Printf("Theme:     %s\n", s.Theme)
	fmt.Printf("Accent:    %s\n", s.AccentColor)
	fmt.Printf("Reminders: %v\n", s.DailyReminders)
	fmt.Printf("Modules:   %s\n", strings.Join(s.EnabledModules, ", "))
	fmt.Printf("Data file: %s\n", ctx.DataPath)
	return nil
}

type SettingsThemeCmd struct{}

func (c *SettingsThemeCmd) Run(ctx *Context) error {
	ctx.Dashboard.ToggleTheme()
	ctx.Notify.Success(fmt.Sprintf("Theme is now %s", ctx.Dashboard.Settings.Theme))
	return nil
}

type SettingsModuleCmd struct {
	Module  string `arg:"" help:"Module id (habits|journal|finance|health|goals|tasks|pomodoro)."`
	Disable bool   `help:"Disable the module instead of enabling it."`
}

func (c *SettingsModuleCmd) Validate() error {
	if !slices.Contains(constants.DefaultEnabledModules, c.Module) {
		return fmt.Errorf("unknown module: %s", c.Module)
	}
	return nil
}

func (c *SettingsModuleCmd) Run(ctx *Context) error {
	settings := ctx.Dashboard.Settings
	enabled := append([]string(nil), settings.EnabledModules...)

	if c.Disable {
		enabled = slices.DeleteFunc(enabled, func(id string) bool { return id == c.Module })
	} else if !slices.Contains(enabled, c.Module) {
		enabled = append(enabled, c.Module)
	}
	settings.EnabledModules = enabled

	if err := ctx.report(ctx.Dashboard.SaveSettings(settings)); err != nil {
		return err
	}

	state := "enabled"
	if c.Disable {
		state = "disabled"
	}
	ctx.Notify.Success(fmt.Sprintf("Module %s %s", c.Module, state))
	return nil
}
