// Package analytics derives every dashboard metric from current collection
// snapshots. All functions are pure and stateless; nothing is cached, so a
// recompute after any mutation always reflects the latest state. The caller
// supplies the reference time, which keeps the date-window math testable.
package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/models"
)

// Insight thresholds. Each flag is advisory and independent.
const (
	StreakThreshold         = 7
	TaskCompletionThreshold = 80
	JournalDaysThreshold    = 5
	StepsThreshold          = 8000
)

// DayCompletion is one point of the habit completion series.
type DayCompletion struct {
	Day       string // YYYY-MM-DD
	Completed int    // habits completed that day
	Rate      int    // percentage 0-100, rounded
}

// HabitCompletionSeries returns, for each of the last `days` days ending on
// now's day, the share of habits completed that day. With no habits every
// rate is 0.
func HabitCompletionSeries(habits []models.Habit, now time.Time, days int) []DayCompletion {
	window := dates.DayWindow(now, days)
	series := make([]DayCompletion, 0, len(window))

	for _, day := range window {
		completed := 0
		for _, h := range habits {
			if h.CompletedOn(day) {
				completed++
			}
		}

		rate := 0
		if len(habits) > 0 {
			rate = roundPct(completed, len(habits))
		}
		series = append(series, DayCompletion{Day: day, Completed: completed, Rate: rate})
	}
	return series
}

// LongestStreak returns the maximum current streak across all habits.
func LongestStreak(habits []models.Habit, now time.Time) int {
	longest := 0
	for _, h := range habits {
		if s := dates.Streak(h.CompletedDates, now); s > longest {
			longest = s
		}
	}
	return longest
}

// TaskCompletionRate returns the rounded percentage of tasks with status
// done, or 0 when there are no tasks.
func TaskCompletionRate(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusDone {
			done++
		}
	}
	return roundPct(done, len(tasks))
}

// JournalDays counts the distinct day keys present across journal entries.
func JournalDays(entries []models.JournalEntry) int {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		seen[e.Date] = true
	}
	return len(seen)
}

// MoodDistribution counts entries per mood. All five moods are always
// present in the result, zero-filled.
func MoodDistribution(entries []models.JournalEntry) map[models.Mood]int {
	counts := make(map[models.Mood]int, len(models.Moods))
	for _, m := range models.Moods {
		counts[m] = 0
	}
	for _, e := range entries {
		if _, ok := counts[e.Mood]; ok {
			counts[e.Mood]++
		}
	}
	return counts
}

// AverageSteps returns the all-time mean daily step count across health
// logs, rounded, or 0 with no logs.
func AverageSteps(logs []models.HealthLog) int {
	if len(logs) == 0 {
		return 0
	}
	total := 0
	for _, l := range logs {
		total += l.Steps
	}
	return int(math.Round(float64(total) / float64(len(logs))))
}

// MonthSummary aggregates money movements for one calendar month.
type MonthSummary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal // income - expenses, signed
	// ByCategory sums expense-type amounts per category; categories with a
	// zero sum are omitted.
	ByCategory map[string]decimal.Decimal
}

// MonthlySummary aggregates expenses dated in now's calendar month.
func MonthlySummary(expenses []models.Expense, now time.Time) MonthSummary {
	summary := MonthSummary{
		Income:     decimal.Zero,
		Expenses:   decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}

	for _, e := range expenses {
		if !dates.SameMonth(e.Date, now) {
			continue
		}
		switch e.Type {
		case models.ExpenseTypeIncome:
			summary.Income = summary.Income.Add(e.Amount)
		case models.ExpenseTypeExpense:
			summary.Expenses = summary.Expenses.Add(e.Amount)
			current, ok := summary.ByCategory[e.Category]
			if !ok {
				current = decimal.Zero
			}
			summary.ByCategory[e.Category] = current.Add(e.Amount)
		}
	}

	summary.Net = summary.Income.Sub(summary.Expenses)
	return summary
}

// GoalProgress returns the displayed progress for a goal: derived from
// milestone completion when milestones exist, the stored value otherwise.
func GoalProgress(goal models.Goal) int {
	if len(goal.Milestones) == 0 {
		return goal.Progress
	}
	completed := 0
	for _, m := range goal.Milestones {
		if m.Completed {
			completed++
		}
	}
	return roundPct(completed, len(goal.Milestones))
}

// Insights are the qualitative flags shown alongside the raw numbers. Each
// flag is derived independently and has no side effects.
type Insights struct {
	StreakOnFire      bool // longest streak >= StreakThreshold
	TasksOnTrack      bool // completion rate >= TaskCompletionThreshold
	JournalConsistent bool // distinct journal days >= JournalDaysThreshold
	StepsActive       bool // average steps >= StepsThreshold
}

// BuildInsights evaluates every insight threshold against current snapshots.
func BuildInsights(habits []models.Habit, tasks []models.Task, entries []models.JournalEntry, logs []models.HealthLog, now time.Time) Insights {
	return Insights{
		StreakOnFire:      LongestStreak(habits, now) >= StreakThreshold,
		TasksOnTrack:      TaskCompletionRate(tasks) >= TaskCompletionThreshold,
		JournalConsistent: JournalDays(entries) >= JournalDaysThreshold,
		StepsActive:       AverageSteps(logs) >= StepsThreshold,
	}
}

func roundPct(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
