package cli

import (
	"fmt"

	"github.com/julianstephens/lifedash/internal/analytics"
	"github.com/julianstephens/lifedash/internal/models"
)

type GoalAddCmd struct {
	Title       string   `arg:"" help:"Goal title."`
	Description string   `short:"D" help:"Goal description."`
	Category    string   `short:"c" help:"Goal horizon (short|long)." default:"short"`
	TargetDate  string   `short:"d" help:"Target day (YYYY-MM-DD)."`
	Milestones  []string `short:"m" help:"Comma-separated milestone titles."`
}

func (c *GoalAddCmd) Validate() error {
	if !models.GoalCategory(c.Category).Valid() {
		return fmt.Errorf("invalid category: %s", c.Category)
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	milestones := make([]models.Milestone, 0, len(c.Milestones))
	for _, title := range c.Milestones {
		milestones = append(milestones, models.Milestone{Title: title})
	}

	goal, err := ctx.Dashboard.AddGoal(models.Goal{
		Title:       c.Title,
		Description: c.Description,
		Category:    models.GoalCategory(c.Category),
		TargetDate:  c.TargetDate,
		Milestones:  milestones,
	})
	if err != nil {
		return ctx.report(err)
	}
	ctx.Notify.Success(fmt.Sprintf("Goal created: %s (%d milestones)", goal.Title, len(goal.Milestones)))
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	goals := ctx.Dashboard.Goals
	if len(goals) == 0 {
		fmt.Println("No goals yet.")
		return nil
	}

	for _, g := range goals {
		progress := analytics.GoalProgress(g)
		fmt.Printf("[%3d%%] %s (%s)\n", progress, g.Title, g.Category)
		if g.TargetDate != "" {
			fmt.Printf("       target %s\n", g.TargetDate)
		}
		for _, m := range g.Milestones {
			mark := "○"
			if m.Completed {
				mark = "✓"
			}
			fmt.Printf("       %s %s\n", mark, m.Title)
		}
	}
	return nil
}

type GoalProgressCmd struct {
	Title    string `arg:"" help:"Goal title or id."`
	Progress int    `arg:"" help:"Progress percentage 0-100."`
}

func (c *GoalProgressCmd) Run(ctx *Context) error {
	goal, ok := findGoal(ctx, c.Title)
	if !ok {
		ctx.Notify.Error(fmt.Sprintf("No goal named %q", c.Title))
		return nil
	}
	if len(goal.Milestones) > 0 {
		ctx.Notify.Error(fmt.Sprintf("%s tracks progress via milestones; toggle those instead", goal.Title))
		return nil
	}

	ctx.Dashboard.UpdateGoalProgress(goal.ID, c.Progress)
	if updated, ok := findGoal(ctx, goal.ID); ok {
		ctx.Notify.Success(fmt.Sprintf("%s is now at %d%%", updated.Title, updated.Progress))
	}
	return nil
}

type GoalMilestoneCmd struct {
	Title     string `arg:"" help:"Goal title or id."`
	Milestone string `arg:"" help:"Milestone title or id."`
}

func (c *GoalMilestoneCmd) Run(ctx *Context) error {
	goal, ok := findGoal(ctx, c.Title)
	if !ok {
		ctx.Notify.Error(fmt.Sprintf("No goal named %q", c.Title))
		return nil
	}

	var milestone models.Milestone
	found := false
	for _, m := range goal.Milestones {
		if m.ID == c.Milestone || m.Title == c.Milestone {
			milestone = m
			found = true
			break
		}
	}
	if !found {
		ctx.Notify.Error(fmt.Sprintf("No milestone named %q on %s", c.Milestone, goal.Title))
		return nil
	}

	ctx.Dashboard.ToggleMilestone(goal.ID, milestone.ID)
	if milestone.Completed {
		ctx.Notify.Success(fmt.Sprintf("Milestone reopened: %s", milestone.Title))
	} else {
		ctx.Notify.Success(fmt.Sprintf("Milestone completed: %s", milestone.Title))
	}
	return nil
}

func findGoal(ctx *Context, titleOrID string) (models.Goal, bool) {
	for _, g := range ctx.Dashboard.Goals {
		if g.ID == titleOrID {
			return g, true
		}
	}
	for _, g := range ctx.Dashboard.Goals {
		if g.Title == titleOrID {
			return g, true
		}
	}
	return models.Goal{}, false
}
