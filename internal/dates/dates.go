// Package dates holds the calendar math shared by every collection: the
// canonical day key, rolling day windows, and streak counting.
package dates

import "time"

// DayKeyFormat is the canonical calendar-day layout (local time, no time
// component) used as the temporal join key across all collections.
const DayKeyFormat = "2006-01-02"

// DayKey returns the day key for t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// Today returns the day key for the current local date.
func Today() string {
	return DayKey(time.Now())
}

// DayWindow returns the last n day keys ending on now's day, oldest first.
// The result always has exactly n entries.
func DayWindow(now time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, DayKey(now.AddDate(0, 0, -i)))
	}
	return keys
}

// Streak counts consecutive completed day keys walking backward one day at a
// time from now's day, stopping at the first gap. Yesterday still counts: a
// streak is only lost once two days pass without a completion, so the walk
// starts at yesterday when today is absent. Returns 0 when neither today nor
// yesterday is present, regardless of older dates.
func Streak(completedDates []string, now time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}

	completed := make(map[string]bool, len(completedDates))
	for _, d := range completedDates {
		completed[d] = true
	}

	cursor := now
	if !completed[DayKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !completed[DayKey(cursor)] {
			return 0
		}
	}

	streak := 0
	for completed[DayKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// DayName returns the full English weekday name for a day key. Returns an
// empty string for malformed keys.
func DayName(dayKey string) string {
	t, err := time.ParseInLocation(DayKeyFormat, dayKey, time.Local)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// MonthName returns the full English month name for t.
func MonthName(t time.Time) string {
	return t.Month().String()
}

// Greeting returns a time-of-day salutation for t.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// SameMonth reports whether a day key falls in the same calendar month and
// year as now.
func SameMonth(dayKey string, now time.Time) bool {
	t, err := time.ParseInLocation(DayKeyFormat, dayKey, time.Local)
	if err != nil {
		return false
	}
	return t.Year() == now.Year() && t.Month() == now.Month()
}
