// Package validation checks entity invariants before any mutation touches a
// collection. A failed check leaves the collection unchanged and surfaces as
// a user notification, never as a crash.
package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifedash/internal/models"
)

// Field length and range limits.
const (
	MaxNameLen        = 50
	MaxContentLen     = 5000
	MaxDescriptionLen = 500
	MaxShortDescLen   = 200
	MaxTitleLen       = 100
	MaxSleepHours     = 24
	MaxSteps          = 100000
	MaxWaterGlasses   = 30
	MaxCalories       = 10000
)

// MaxAmount caps a single expense or income amount.
var MaxAmount = decimal.NewFromInt(1_000_000)

// Error is a failed entity invariant.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func errf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Habit checks the creatable habit fields.
func Habit(h models.Habit) error {
	if h.Name == "" {
		return errf("name", "habit name is required")
	}
	if len(h.Name) > MaxNameLen {
		return errf("name", "name is too long (max %d)", MaxNameLen)
	}
	if h.Icon == "" {
		return errf("icon", "icon is required")
	}
	if h.Color == "" {
		return errf("color", "color is required")
	}
	return nil
}

// JournalEntry checks a journal upsert payload.
func JournalEntry(e models.JournalEntry) error {
	if e.Date == "" {
		return errf("date", "date is required")
	}
	if e.Content == "" {
		return errf("content", "content is required")
	}
	if len(e.Content) > MaxContentLen {
		return errf("content", "content is too long (max %d)", MaxContentLen)
	}
	if !e.Mood.Valid() {
		return errf("mood", "unknown mood %q", e.Mood)
	}
	return nil
}

// Expense checks an expense or income record. Amounts must be strictly
// positive; the direction lives in Type.
func Expense(e models.Expense) error {
	if e.Amount.Sign() <= 0 {
		return errf("amount", "amount must be positive")
	}
	if e.Amount.GreaterThan(MaxAmount) {
		return errf("amount", "amount is too large")
	}
	if e.Category == "" {
		return errf("category", "category is required")
	}
	if len(e.Description) > MaxShortDescLen {
		return errf("description", "description is too long (max %d)", MaxShortDescLen)
	}
	if e.Date == "" {
		return errf("date", "date is required")
	}
	if !e.Type.Valid() {
		return errf("type", "unknown type %q", e.Type)
	}
	return nil
}

// HealthLog checks one day's health metrics.
func HealthLog(l models.HealthLog) error {
	if l.Date == "" {
		return errf("date", "date is required")
	}
	if l.Steps < 0 || l.Steps > MaxSteps {
		return errf("steps", "steps must be between 0 and %d", MaxSteps)
	}
	if l.Sleep < 0 || l.Sleep > MaxSleepHours {
		return errf("sleep", "sleep hours must be between 0 and %d", MaxSleepHours)
	}
	if l.Water < 0 || l.Water > MaxWaterGlasses {
		return errf("water", "water glasses must be between 0 and %d", MaxWaterGlasses)
	}
	if l.Calories < 0 || l.Calories > MaxCalories {
		return errf("calories", "calories must be between 0 and %d", MaxCalories)
	}
	return nil
}

// Goal checks a goal and its milestones.
func Goal(g models.Goal) error {
	if g.Title == "" {
		return errf("title", "title is required")
	}
	if len(g.Title) > MaxTitleLen {
		return errf("title", "title is too long (max %d)", MaxTitleLen)
	}
	if len(g.Description) > MaxDescriptionLen {
		return errf("description", "description is too long (max %d)", MaxDescriptionLen)
	}
	if !g.Category.Valid() {
		return errf("category", "unknown category %q", g.Category)
	}
	if g.Progress < 0 || g.Progress > 100 {
		return errf("progress", "progress must be between 0 and 100")
	}
	if g.TargetDate == "" {
		return errf("targetDate", "target date is required")
	}
	for _, m := range g.Milestones {
		if m.Title == "" {
			return errf("milestones", "milestone title is required")
		}
	}
	return nil
}

// Task checks a board item.
func Task(t models.Task) error {
	if t.Title == "" {
		return errf("title", "title is required")
	}
	if len(t.Title) > MaxTitleLen {
		return errf("title", "title is too long (max %d)", MaxTitleLen)
	}
	if len(t.Description) > MaxDescriptionLen {
		return errf("description", "description is too long (max %d)", MaxDescriptionLen)
	}
	if !t.Status.Valid() {
		return errf("status", "unknown status %q", t.Status)
	}
	if !t.Priority.Valid() {
		return errf("priority", "unknown priority %q", t.Priority)
	}
	return nil
}

// Settings checks the singleton settings record.
func Settings(s models.Settings) error {
	if !s.Theme.Valid() {
		return errf("theme", "unknown theme %q", s.Theme)
	}
	if s.FirstName == "" {
		return errf("firstName", "name is required")
	}
	if len(s.FirstName) > MaxNameLen {
		return errf("firstName", "name is too long (max %d)", MaxNameLen)
	}
	return nil
}
