package models

import "time"

type GoalCategory string

const (
	GoalShortTerm GoalCategory = "short"
	GoalLongTerm  GoalCategory = "long"
)

func (c GoalCategory) Valid() bool {
	return c == GoalShortTerm || c == GoalLongTerm
}

// Milestone is a checkable step owned by exactly one goal; it has no
// lifecycle of its own.
type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Goal is a tracked objective. Progress is stored as 0-100; when milestones
// exist the displayed progress is derived from them instead (see analytics).
type Goal struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    GoalCategory `json:"category"`
	Progress    int          `json:"progress"`
	Milestones  []Milestone  `json:"milestones"`
	TargetDate  string       `json:"targetDate"` // YYYY-MM-DD
	CreatedAt   time.Time    `json:"createdAt"`
}
