package dashboard

import (
	"time"

	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

// AddHabit creates a habit with an empty completion history.
func (d *Dashboard) AddHabit(name, icon, color string) (models.Habit, error) {
	habit := models.Habit{
		ID:             newID(),
		Name:           name,
		Icon:           icon,
		Color:          color,
		CompletedDates: []string{},
		CreatedAt:      time.Now().UTC(),
	}
	if err := validation.Habit(habit); err != nil {
		return models.Habit{}, err
	}

	d.Habits = append(append([]models.Habit(nil), d.Habits...), habit)
	d.persistHabits()
	return habit, nil
}

// ToggleHabit flips the completion of one habit for the given day key:
// present dates are removed, absent ones added. Calling it twice with the
// same arguments restores the original membership. Unknown ids are a no-op.
func (d *Dashboard) ToggleHabit(id, day string) {
	habits := make([]models.Habit, len(d.Habits))
	for i, h := range d.Habits {
		if h.ID != id {
			habits[i] = h
			continue
		}

		if h.CompletedOn(day) {
			kept := make([]string, 0, len(h.CompletedDates)-1)
			for _, date := range h.CompletedDates {
				if date != day {
					kept = append(kept, date)
				}
			}
			h.CompletedDates = kept
		} else {
			h.CompletedDates = append(append([]string(nil), h.CompletedDates...), day)
		}
		habits[i] = h
	}

	d.Habits = habits
	d.persistHabits()
}

// DeleteHabit removes a habit and its entire completion history. A missing
// id is a silent no-op.
func (d *Dashboard) DeleteHabit(id string) {
	kept := make([]models.Habit, 0, len(d.Habits))
	for _, h := range d.Habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	d.Habits = kept
	d.persistHabits()
}
