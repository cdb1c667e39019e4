package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings is the singleton dashboard configuration record.
type Settings struct {
	Theme          Theme    `json:"theme"`
	AccentColor    string   `json:"accentColor"`
	EnabledModules []string `json:"enabledModules"`
	DailyReminders bool     `json:"dailyReminders"`
	FirstName      string   `json:"firstName"`
}

// ModuleEnabled reports whether the given dashboard module is switched on.
func (s Settings) ModuleEnabled(moduleID string) bool {
	for _, m := range s.EnabledModules {
		if m == moduleID {
			return true
		}
	}
	return false
}
