package dashboard

import (
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

// SaveSettings validates and persists the settings singleton.
func (d *Dashboard) SaveSettings(settings models.Settings) error {
	if err := validation.Settings(settings); err != nil {
		return err
	}

	d.Settings = settings
	d.persistSettings()
	return nil
}

// ToggleTheme switches between light and dark.
func (d *Dashboard) ToggleTheme() {
	if d.Settings.Theme == models.ThemeLight {
		d.Settings.Theme = models.ThemeDark
	} else {
		d.Settings.Theme = models.ThemeLight
	}
	d.persistSettings()
}
