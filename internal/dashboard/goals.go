package dashboard

import (
	"time"

	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

// AddGoal creates a goal. Progress always starts at 0 regardless of input;
// milestone ids are assigned here so callers only provide titles.
func (d *Dashboard) AddGoal(goal models.Goal) (models.Goal, error) {
	goal.ID = newID()
	goal.Progress = 0
	goal.CreatedAt = time.Now().UTC()
	for i := range goal.Milestones {
		if goal.Milestones[i].ID == "" {
			goal.Milestones[i].ID = newID()
		}
		goal.Milestones[i].Completed = false
	}

	if err := validation.Goal(goal); err != nil {
		return models.Goal{}, err
	}

	d.Goals = append(append([]models.Goal(nil), d.Goals...), goal)
	d.persistGoals()
	return goal, nil
}

// UpdateGoalProgress overwrites a goal's stored progress, clamped to
// [0,100]. Unknown ids are a no-op. When the goal has milestones the
// displayed progress is derived from them instead (see analytics).
func (d *Dashboard) UpdateGoalProgress(id string, progress int) {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	goals := make([]models.Goal, len(d.Goals))
	for i, g := range d.Goals {
		if g.ID == id {
			g.Progress = progress
		}
		goals[i] = g
	}
	d.Goals = goals
	d.persistGoals()
}

// ToggleMilestone flips completion on exactly the matching milestone within
// the matching goal. A missing goal or milestone id is a no-op.
func (d *Dashboard) ToggleMilestone(goalID, milestoneID string) {
	goals := make([]models.Goal, len(d.Goals))
	for i, g := range d.Goals {
		if g.ID == goalID {
			milestones := append([]models.Milestone(nil), g.Milestones...)
			for j, m := range milestones {
				if m.ID == milestoneID {
					milestones[j].Completed = !m.Completed
				}
			}
			g.Milestones = milestones
		}
		goals[i] = g
	}
	d.Goals = goals
	d.persistGoals()
}
