package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifedash/internal/models"
)

func TestHabit(t *testing.T) {
	valid := models.Habit{Name: "Read", Icon: "📚", Color: "blue"}
	if err := Habit(valid); err != nil {
		t.Errorf("valid habit rejected: %v", err)
	}

	if err := Habit(models.Habit{Icon: "📚", Color: "blue"}); err == nil {
		t.Error("expected error for missing name")
	}

	long := valid
	long.Name = strings.Repeat("x", MaxNameLen+1)
	if err := Habit(long); err == nil {
		t.Error("expected error for overlong name")
	}
}

func TestJournalEntry(t *testing.T) {
	valid := models.JournalEntry{Date: "2024-03-15", Content: "a good day", Mood: models.MoodGood}
	if err := JournalEntry(valid); err != nil {
		t.Errorf("valid entry rejected: %v", err)
	}

	bad := valid
	bad.Mood = "ecstatic"
	err := JournalEntry(bad)
	if err == nil {
		t.Fatal("expected error for unknown mood")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Errorf("error type = %T, want *validation.Error", err)
	} else if verr.Field != "mood" {
		t.Errorf("error field = %q, want mood", verr.Field)
	}
}

func TestExpense(t *testing.T) {
	valid := models.Expense{
		Amount:   decimal.NewFromFloat(12.50),
		Category: "Food & Dining",
		Date:     "2024-03-15",
		Type:     models.ExpenseTypeExpense,
	}
	if err := Expense(valid); err != nil {
		t.Errorf("valid expense rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*models.Expense)
	}{
		{"negative amount", func(e *models.Expense) { e.Amount = decimal.NewFromInt(-5) }},
		{"zero amount", func(e *models.Expense) { e.Amount = decimal.Zero }},
		{"huge amount", func(e *models.Expense) { e.Amount = MaxAmount.Add(decimal.NewFromInt(1)) }},
		{"missing category", func(e *models.Expense) { e.Category = "" }},
		{"unknown type", func(e *models.Expense) { e.Type = "transfer" }},
	}
	for _, tc := range cases {
		e := valid
		tc.mutate(&e)
		if err := Expense(e); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestHealthLog(t *testing.T) {
	valid := models.HealthLog{Date: "2024-03-15", Steps: 9000, Sleep: 7.5, Water: 8, Calories: 2100}
	if err := HealthLog(valid); err != nil {
		t.Errorf("valid log rejected: %v", err)
	}

	bad := valid
	bad.Sleep = 25
	if err := HealthLog(bad); err == nil {
		t.Error("expected error for sleep > 24h")
	}

	bad = valid
	bad.Steps = -1
	if err := HealthLog(bad); err == nil {
		t.Error("expected error for negative steps")
	}
}

func TestGoal(t *testing.T) {
	valid := models.Goal{
		Title:      "Run a marathon",
		Category:   models.GoalLongTerm,
		TargetDate: "2024-12-31",
		Milestones: []models.Milestone{{ID: "m1", Title: "Sign up"}},
	}
	if err := Goal(valid); err != nil {
		t.Errorf("valid goal rejected: %v", err)
	}

	bad := valid
	bad.Milestones = []models.Milestone{{ID: "m1"}}
	if err := Goal(bad); err == nil {
		t.Error("expected error for untitled milestone")
	}

	bad = valid
	bad.Progress = 150
	if err := Goal(bad); err == nil {
		t.Error("expected error for progress > 100")
	}
}

func TestTask(t *testing.T) {
	valid := models.Task{Title: "Ship it", Status: models.TaskStatusTodo, Priority: models.TaskPriorityHigh}
	if err := Task(valid); err != nil {
		t.Errorf("valid task rejected: %v", err)
	}

	bad := valid
	bad.Status = "blocked"
	if err := Task(bad); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestSettings(t *testing.T) {
	valid := models.Settings{Theme: models.ThemeDark, FirstName: "Sam"}
	if err := Settings(valid); err != nil {
		t.Errorf("valid settings rejected: %v", err)
	}

	if err := Settings(models.Settings{Theme: "sepia", FirstName: "Sam"}); err == nil {
		t.Error("expected error for unknown theme")
	}
	if err := Settings(models.Settings{Theme: models.ThemeLight}); err == nil {
		t.Error("expected error for empty first name")
	}
}
