package models

import "time"

// Habit represents a recurring practice to track.
// CompletedDates holds day keys (YYYY-MM-DD) with no duplicates; order is
// not significant.
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon"`
	Color          string    `json:"color"`
	CompletedDates []string  `json:"completedDates"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CompletedOn reports whether the habit was completed on the given day key.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
