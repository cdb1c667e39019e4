// Package dashboard owns the in-memory collections and every mutation that
// touches them. State is an explicit context handed to callers, loaded once
// from storage at open and persisted key-by-key after each mutation. Each
// mutation replaces the whole collection value; collections are never aliased
// or mutated in place by callers.
package dashboard

import (
	"github.com/google/uuid"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/storage"
)

// Dashboard holds the six domain collections plus the settings singleton.
type Dashboard struct {
	store storage.Backend

	Habits         []models.Habit
	JournalEntries []models.JournalEntry
	Expenses       []models.Expense
	HealthLogs     []models.HealthLog
	Goals          []models.Goal
	Tasks          []models.Task
	Settings       models.Settings
}

// DefaultSettings returns the configuration for a fresh dashboard.
func DefaultSettings() models.Settings {
	return models.Settings{
		Theme:          models.ThemeLight,
		AccentColor:    constants.DefaultAccentColor,
		EnabledModules: append([]string(nil), constants.DefaultEnabledModules...),
		DailyReminders: false,
		FirstName:      constants.DefaultFirstName,
	}
}

// Open loads every collection from the backend, falling back to empty
// collections and default settings for absent or unparseable keys.
func Open(store storage.Backend) *Dashboard {
	return &Dashboard{
		store:          store,
		Habits:         storage.Load(store, storage.KeyHabits, []models.Habit{}),
		JournalEntries: storage.Load(store, storage.KeyJournal, []models.JournalEntry{}),
		Expenses:       storage.Load(store, storage.KeyExpenses, []models.Expense{}),
		HealthLogs:     storage.Load(store, storage.KeyHealth, []models.HealthLog{}),
		Goals:          storage.Load(store, storage.KeyGoals, []models.Goal{}),
		Tasks:          storage.Load(store, storage.KeyTasks, []models.Task{}),
		Settings:       storage.Load(store, storage.KeySettings, DefaultSettings()),
	}
}

// ModuleEnabled reports whether a dashboard module is switched on.
func (d *Dashboard) ModuleEnabled(moduleID string) bool {
	return d.Settings.ModuleEnabled(moduleID)
}

// Replacement carries wholesale collection overwrites for an import. Nil
// fields leave the corresponding collection untouched.
type Replacement struct {
	Habits         *[]models.Habit
	JournalEntries *[]models.JournalEntry
	Expenses       *[]models.Expense
	HealthLogs     *[]models.HealthLog
	Goals          *[]models.Goal
	Tasks          *[]models.Task
	Settings       *models.Settings
}

// Replace overwrites every collection present in r and persists the result.
// All assignments happen before any further reads, so analytics never observe
// a partially applied batch.
func (d *Dashboard) Replace(r Replacement) {
	if r.Habits != nil {
		d.Habits = *r.Habits
		d.persistHabits()
	}
	if r.JournalEntries != nil {
		d.JournalEntries = *r.JournalEntries
		d.persistJournal()
	}
	if r.Expenses != nil {
		d.Expenses = *r.Expenses
		d.persistExpenses()
	}
	if r.HealthLogs != nil {
		d.HealthLogs = *r.HealthLogs
		d.persistHealth()
	}
	if r.Goals != nil {
		d.Goals = *r.Goals
		d.persistGoals()
	}
	if r.Tasks != nil {
		d.Tasks = *r.Tasks
		d.persistTasks()
	}
	if r.Settings != nil {
		d.Settings = *r.Settings
		d.persistSettings()
	}
}

// ClearAll resets the six collections to empty. Settings are deliberately
// left untouched.
func (d *Dashboard) ClearAll() {
	d.Habits = []models.Habit{}
	d.JournalEntries = []models.JournalEntry{}
	d.Expenses = []models.Expense{}
	d.HealthLogs = []models.HealthLog{}
	d.Goals = []models.Goal{}
	d.Tasks = []models.Task{}

	d.persistHabits()
	d.persistJournal()
	d.persistExpenses()
	d.persistHealth()
	d.persistGoals()
	d.persistTasks()
}

func newID() string {
	return uuid.New().String()
}

func (d *Dashboard) persistHabits()   { storage.Save(d.store, storage.KeyHabits, d.Habits) }
func (d *Dashboard) persistJournal()  { storage.Save(d.store, storage.KeyJournal, d.JournalEntries) }
func (d *Dashboard) persistExpenses() { storage.Save(d.store, storage.KeyExpenses, d.Expenses) }
func (d *Dashboard) persistHealth()   { storage.Save(d.store, storage.KeyHealth, d.HealthLogs) }
func (d *Dashboard) persistGoals()    { storage.Save(d.store, storage.KeyGoals, d.Goals) }
func (d *Dashboard) persistTasks()    { storage.Save(d.store, storage.KeyTasks, d.Tasks) }
func (d *Dashboard) persistSettings() { storage.Save(d.store, storage.KeySettings, d.Settings) }
