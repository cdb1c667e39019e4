package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

type InitCmd struct {
	Name  string `short:"n" help:"Your first name (skips the interactive form)."`
	Theme string `help:"Color theme (light|dark)."`
}

func (c *InitCmd) Validate() error {
	if c.Theme != "" && !models.Theme(c.Theme).Valid() {
		return fmt.Errorf("invalid theme: %s", c.Theme)
	}
	return nil
}

func (c *InitCmd) Run(ctx *Context) error {
	settings := ctx.Dashboard.Settings

	if c.Name != "" {
		settings.FirstName = c.Name
		if c.Theme != "" {
			settings.Theme = models.Theme(c.Theme)
		}
	} else {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("What should we call you?").
					Value(&settings.FirstName).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("name cannot be empty")
						}
						if len(s) > validation.MaxNameLen {
							return fmt.Errorf("name is too long")
						}
						return nil
					}),
				huh.NewSelect[models.Theme]().
					Title("Theme").
					Options(
						huh.NewOption("Light", models.ThemeLight),
						huh.NewOption("Dark", models.ThemeDark),
					).
					Value(&settings.Theme),
				huh.NewConfirm().
					Title("Daily reminders").
					Value(&settings.DailyReminders),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := ctx.report(ctx.Dashboard.SaveSettings(settings)); err != nil {
		return err
	}

	ctx.Notify.Success(fmt.Sprintf("Dashboard ready at %s. Welcome, %s!", ctx.DataPath, settings.FirstName))
	return nil
}
