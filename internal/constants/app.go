package constants

const (
	AppName        = "lifedash"
	AppDescription = "Track your habits, tasks, health, finances, and goals in one place"

	DefaultFirstName   = "Friend"
	DefaultAccentColor = "blue"
)

// Module identifiers, matched against Settings.EnabledModules.
const (
	ModuleHabits   = "habits"
	ModuleJournal  = "journal"
	ModuleFinance  = "finance"
	ModuleHealth   = "health"
	ModuleGoals    = "goals"
	ModuleTasks    = "tasks"
	ModulePomodoro = "pomodoro"
)

// DefaultEnabledModules is the module set for a fresh dashboard.
var DefaultEnabledModules = []string{
	ModuleHabits,
	ModuleJournal,
	ModuleFinance,
	ModuleHealth,
	ModuleGoals,
	ModuleTasks,
	ModulePomodoro,
}

// ExpenseCategories is the default spending category catalog.
var ExpenseCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Health & Fitness",
	"Education",
	"Other",
}

// HabitIcons is the icon picker catalog.
var HabitIcons = []string{"💪", "📚", "🏃", "🧘", "💧", "🎯", "✍️", "🎨", "🎵", "🌱"}

// HabitColors is the color picker catalog.
var HabitColors = []string{"blue", "green", "purple", "orange", "pink", "red", "indigo", "teal"}
