package dashboard

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/storage"
	"github.com/julianstephens/lifedash/internal/validation"
)

func newTestDashboard() *Dashboard {
	return Open(storage.NewMemStore())
}

func TestAddHabit(t *testing.T) {
	d := newTestDashboard()

	habit, err := d.AddHabit("Read", "📚", "blue")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if habit.ID == "" {
		t.Error("expected a generated id")
	}
	if habit.CompletedDates == nil || len(habit.CompletedDates) != 0 {
		t.Errorf("CompletedDates = %v, want empty", habit.CompletedDates)
	}
	if len(d.Habits) != 1 {
		t.Errorf("collection size = %d, want 1", len(d.Habits))
	}

	if _, err := d.AddHabit("", "📚", "blue"); err == nil {
		t.Error("expected validation error for empty name")
	}
	if len(d.Habits) != 1 {
		t.Errorf("failed add changed the collection: size = %d", len(d.Habits))
	}
}

func TestToggleHabit_DoubleToggleRestores(t *testing.T) {
	d := newTestDashboard()
	habit, _ := d.AddHabit("Read", "📚", "blue")

	d.ToggleHabit(habit.ID, "2024-01-01")
	if !d.Habits[0].CompletedOn("2024-01-01") {
		t.Fatal("first toggle did not add the date")
	}

	d.ToggleHabit(habit.ID, "2024-01-01")
	if d.Habits[0].CompletedOn("2024-01-01") {
		t.Error("second toggle did not remove the date")
	}

	// Unknown id is a no-op.
	d.ToggleHabit("missing", "2024-01-01")
	if len(d.Habits) != 1 {
		t.Error("toggle with unknown id changed the collection")
	}
}

func TestDeleteHabit(t *testing.T) {
	d := newTestDashboard()
	habit, _ := d.AddHabit("Read", "📚", "blue")
	d.ToggleHabit(habit.ID, "2024-01-01")

	d.DeleteHabit(habit.ID)
	if len(d.Habits) != 0 {
		t.Errorf("collection size after delete = %d, want 0", len(d.Habits))
	}

	// Deleting again is a silent no-op.
	d.DeleteHabit(habit.ID)
}

func TestUpsertJournalEntry_Idempotent(t *testing.T) {
	d := newTestDashboard()

	entry := models.JournalEntry{Date: "2024-03-15", Content: "first", Mood: models.MoodGood}
	created, err := d.UpsertJournalEntry(entry)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	entry.Content = "rewritten"
	entry.Mood = models.MoodGreat
	updated, err := d.UpsertJournalEntry(entry)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if len(d.JournalEntries) != 1 {
		t.Fatalf("collection size = %d, want 1", len(d.JournalEntries))
	}
	if updated.ID != created.ID {
		t.Errorf("id changed on update: %s -> %s", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt changed on update")
	}
	if d.JournalEntries[0].Content != "rewritten" || d.JournalEntries[0].Mood != models.MoodGreat {
		t.Errorf("entry not updated in place: %+v", d.JournalEntries[0])
	}
}

func TestUpsertJournalEntry_NewEntriesPrepend(t *testing.T) {
	d := newTestDashboard()
	d.UpsertJournalEntry(models.JournalEntry{Date: "2024-03-14", Content: "older", Mood: models.MoodOkay})
	d.UpsertJournalEntry(models.JournalEntry{Date: "2024-03-15", Content: "newer", Mood: models.MoodGood})

	if d.JournalEntries[0].Date != "2024-03-15" {
		t.Errorf("most recent entry not first: %s", d.JournalEntries[0].Date)
	}
}

func TestAddExpense_RejectsNonPositiveAmount(t *testing.T) {
	d := newTestDashboard()

	_, err := d.AddExpense(models.Expense{
		Amount:   decimal.NewFromInt(-5),
		Category: "Food & Dining",
		Date:     "2024-03-15",
		Type:     models.ExpenseTypeExpense,
	})
	if err == nil {
		t.Fatal("expected validation error for negative amount")
	}

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Errorf("error type = %T, want *validation.Error", err)
	}
	if len(d.Expenses) != 0 {
		t.Errorf("failed add changed the collection: size = %d", len(d.Expenses))
	}
}

func TestAddExpense_Prepends(t *testing.T) {
	d := newTestDashboard()

	first, err := d.AddExpense(models.Expense{
		Amount:   decimal.NewFromFloat(9.99),
		Category: "Shopping",
		Date:     "2024-03-14",
		Type:     models.ExpenseTypeExpense,
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	second, _ := d.AddExpense(models.Expense{
		Amount:   decimal.NewFromInt(1200),
		Category: "Salary",
		Date:     "2024-03-15",
		Type:     models.ExpenseTypeIncome,
	})

	if d.Expenses[0].ID != second.ID || d.Expenses[1].ID != first.ID {
		t.Error("expenses are not most-recent-first")
	}
}

func TestUpsertHealthLog_KeepsIDReplacesFields(t *testing.T) {
	d := newTestDashboard()

	created, err := d.UpsertHealthLog(models.HealthLog{Date: "2024-03-15", Steps: 5000, Sleep: 8, Water: 6, Calories: 2000})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Second write for the same day replaces every field wholesale.
	updated, err := d.UpsertHealthLog(models.HealthLog{Date: "2024-03-15", Steps: 9000})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if len(d.HealthLogs) != 1 {
		t.Fatalf("collection size = %d, want 1", len(d.HealthLogs))
	}
	if updated.ID != created.ID {
		t.Errorf("id changed on update: %s -> %s", created.ID, updated.ID)
	}
	got := d.HealthLogs[0]
	if got.Steps != 9000 || got.Sleep != 0 || got.Water != 0 || got.Calories != 0 {
		t.Errorf("fields were merged instead of replaced: %+v", got)
	}
}

func TestAddGoal_ProgressStartsAtZero(t *testing.T) {
	d := newTestDashboard()

	goal, err := d.AddGoal(models.Goal{
		Title:      "Learn Go",
		Category:   models.GoalShortTerm,
		Progress:   80,
		TargetDate: "2024-12-31",
		Milestones: []models.Milestone{{Title: "Finish the tour", Completed: true}},
	})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}
	if goal.Progress != 0 {
		t.Errorf("progress = %d, want 0", goal.Progress)
	}
	if goal.Milestones[0].ID == "" {
		t.Error("milestone id was not assigned")
	}
	if goal.Milestones[0].Completed {
		t.Error("milestone completion was not reset")
	}
}

func TestUpdateGoalProgress_Clamps(t *testing.T) {
	d := newTestDashboard()
	goal, _ := d.AddGoal(models.Goal{Title: "Learn Go", Category: models.GoalShortTerm, TargetDate: "2024-12-31"})

	d.UpdateGoalProgress(goal.ID, 150)
	if d.Goals[0].Progress != 100 {
		t.Errorf("progress = %d, want clamped 100", d.Goals[0].Progress)
	}

	d.UpdateGoalProgress(goal.ID, -10)
	if d.Goals[0].Progress != 0 {
		t.Errorf("progress = %d, want clamped 0", d.Goals[0].Progress)
	}
}

func TestToggleMilestone(t *testing.T) {
	d := newTestDashboard()
	goal, _ := d.AddGoal(models.Goal{
		Title:      "Learn Go",
		Category:   models.GoalShortTerm,
		TargetDate: "2024-12-31",
		Milestones: []models.Milestone{{Title: "a"}, {Title: "b"}},
	})

	target := goal.Milestones[1].ID
	d.ToggleMilestone(goal.ID, target)
	if !d.Goals[0].Milestones[1].Completed {
		t.Error("milestone was not completed")
	}
	if d.Goals[0].Milestones[0].Completed {
		t.Error("sibling milestone was flipped")
	}

	// Missing ids are a no-op.
	d.ToggleMilestone("missing", target)
	d.ToggleMilestone(goal.ID, "missing")
	if !d.Goals[0].Milestones[1].Completed {
		t.Error("no-op toggle changed state")
	}
}

func TestAddTask_ForcesTodoStatus(t *testing.T) {
	d := newTestDashboard()

	task, err := d.AddTask(models.Task{Title: "Ship it", Status: models.TaskStatusDone, Priority: models.TaskPriorityHigh})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.Status != models.TaskStatusTodo {
		t.Errorf("status = %s, want todo", task.Status)
	}
}

func TestUpdateTaskStatus_AnyTransition(t *testing.T) {
	d := newTestDashboard()
	task, _ := d.AddTask(models.Task{Title: "Ship it", Priority: models.TaskPriorityLow})

	d.UpdateTaskStatus(task.ID, models.TaskStatusDone)
	if d.Tasks[0].Status != models.TaskStatusDone {
		t.Errorf("status = %s, want done", d.Tasks[0].Status)
	}

	// done -> todo is allowed; transitions are unrestricted.
	d.UpdateTaskStatus(task.ID, models.TaskStatusTodo)
	if d.Tasks[0].Status != models.TaskStatusTodo {
		t.Errorf("status = %s, want todo", d.Tasks[0].Status)
	}
}

func TestClearAll_KeepsSettings(t *testing.T) {
	d := newTestDashboard()
	d.AddHabit("Read", "📚", "blue")
	d.AddTask(models.Task{Title: "Ship it", Priority: models.TaskPriorityLow})
	settings := d.Settings
	settings.FirstName = "Sam"
	if err := d.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	d.ClearAll()

	if len(d.Habits) != 0 || len(d.Tasks) != 0 {
		t.Error("collections were not cleared")
	}
	if d.Settings.FirstName != "Sam" {
		t.Errorf("settings were cleared: firstName = %q", d.Settings.FirstName)
	}
}

func TestOpen_ReloadsPersistedState(t *testing.T) {
	store := storage.NewMemStore()
	d := Open(store)
	habit, _ := d.AddHabit("Read", "📚", "blue")
	d.ToggleHabit(habit.ID, "2024-03-15")

	reopened := Open(store)
	if len(reopened.Habits) != 1 {
		t.Fatalf("reopened habit count = %d, want 1", len(reopened.Habits))
	}
	if !reopened.Habits[0].CompletedOn("2024-03-15") {
		t.Error("completion history was not persisted")
	}
	if reopened.Settings.FirstName != DefaultSettings().FirstName {
		t.Errorf("settings default = %q", reopened.Settings.FirstName)
	}
}
