package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifedash/internal/analytics"
	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/models"
)

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Icon  string `short:"i" help:"Habit icon." default:"🎯"`
	Color string `short:"c" help:"Habit color." default:"blue"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Dashboard.AddHabit(c.Name, c.Icon, c.Color)
	if err != nil {
		return ctx.report(err)
	}
	ctx.Notify.Success(fmt.Sprintf("Habit created: %s %s", habit.Icon, habit.Name))
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name or id."`
	Date string `short:"d" help:"Day to toggle (YYYY-MM-DD), defaults to today."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	day, err := dayOrToday(c.Date)
	if err != nil {
		return err
	}

	habit, ok := findHabit(ctx, c.Name)
	if !ok {
		ctx.Notify.Error(fmt.Sprintf("No habit named %q", c.Name))
		return nil
	}

	ctx.Dashboard.ToggleHabit(habit.ID, day)
	if updated, ok := findHabit(ctx, habit.ID); ok && updated.CompletedOn(day) {
		ctx.Notify.Success(fmt.Sprintf("%s completed for %s", habit.Name, day))
	} else {
		ctx.Notify.Success(fmt.Sprintf("%s unmarked for %s", habit.Name, day))
	}
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Dashboard.Habits
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'lifedash habit add'.")
		return nil
	}

	now := time.Now()
	today := dates.DayKey(now)
	for _, h := range habits {
		mark := "○"
		if h.CompletedOn(today) {
			mark = "✓"
		}
		streak := dates.Streak(h.CompletedDates, now)
		fmt.Printf("%s %s %-20s streak: %d\n", mark, h.Icon, h.Name, streak)
	}

	series := analytics.HabitCompletionSeries(habits, now, 7)
	fmt.Println("\nLast 7 days:")
	for _, p := range series {
		fmt.Printf("  %s  %3d%%  (%d/%d)\n", p.Day, p.Rate, p.Completed, len(habits))
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, ok := findHabit(ctx, c.Name)
	if !ok {
		ctx.Notify.Error(fmt.Sprintf("No habit named %q", c.Name))
		return nil
	}

	ctx.Dashboard.DeleteHabit(habit.ID)
	ctx.Notify.Success(fmt.Sprintf("Habit deleted: %s", habit.Name))
	return nil
}

// findHabit resolves a habit by exact id first, then by name.
func findHabit(ctx *Context, nameOrID string) (models.Habit, bool) {
	for _, h := range ctx.Dashboard.Habits {
		if h.ID == nameOrID {
			return h, true
		}
	}
	for _, h := range ctx.Dashboard.Habits {
		if h.Name == nameOrID {
			return h, true
		}
	}
	return models.Habit{}, false
}
