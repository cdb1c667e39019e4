package cli

import (
	"fmt"

	"github.com/julianstephens/lifedash/internal/analytics"
	"github.com/julianstephens/lifedash/internal/models"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"D" help:"Task description."`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
}

func (c *TaskAddCmd) Validate() error {
	if !models.TaskPriority(c.Priority).Valid() {
		return fmt.Errorf("invalid priority: %s", c.Priority)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	task, err := ctx.Dashboard.AddTask(models.Task{
		Title:       c.Title,
		Description: c.Description,
		Priority:    models.TaskPriority(c.Priority),
	})
	if err != nil {
		return ctx.report(err)
	}
	ctx.Notify.Success(fmt.Sprintf("Task created: %s (%s)", task.Title, task.Priority))
	return nil
}

type TaskStatusCmd struct {
	Title  string `arg:"" help:"Task title or id."`
	Status string `arg:"" help:"New status (todo|inprogress|done)."`
}

func (c *TaskStatusCmd) Validate() error {
	if !models.TaskStatus(c.Status).Valid() {
		return fmt.Errorf("invalid status: %s", c.Status)
	}
	return nil
}

func (c *TaskStatusCmd) Run(ctx *Context) error {
	task, ok := findTask(ctx, c.Title)
	if !ok {
		ctx.Notify.Error(fmt.Sprintf("No task named %q", c.Title))
		return nil
	}

	ctx.Dashboard.UpdateTaskStatus(task.ID, models.TaskStatus(c.Status))
	ctx.Notify.Success(fmt.Sprintf("%s is now %s", task.Title, c.Status))
	return nil
}

type TaskListCmd struct {
	All bool `short:"a" help:"Include done tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks := ctx.Dashboard.Tasks
	if len(tasks) == 0 {
		fmt.Println("No tasks yet.")
		return nil
	}

	for _, t := range tasks {
		if !c.All && t.Status == models.TaskStatusDone {
			continue
		}
		mark := "○"
		switch t.Status {
		case models.TaskStatusInProgress:
			mark = "◐"
		case models.TaskStatusDone:
			mark = "✓"
		}
		fmt.Printf("%s [%s] %s\n", mark, t.Priority, t.Title)
		if t.Description != "" {
			fmt.Printf("    %s\n", t.Description)
		}
	}

	fmt.Printf("\nCompletion: %d%%\n", analytics.TaskCompletionRate(tasks))
	return nil
}

type TaskDeleteCmd struct {
	Title string `arg:"" help:"Task title or id."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	task, ok := findTask(ctx, c.Title)
	if !ok {
		ctx.Notify.Error(fmt.Sprintf("No task named %q", c.Title))
		return nil
	}

	ctx.Dashboard.DeleteTask(task.ID)
	ctx.Notify.Success(fmt.Sprintf("Task deleted: %s", task.Title))
	return nil
}

func findTask(ctx *Context, titleOrID string) (models.Task, bool) {
	for _, t := range ctx.Dashboard.Tasks {
		if t.ID == titleOrID {
			return t, true
		}
	}
	for _, t := range ctx.Dashboard.Tasks {
		if t.Title == titleOrID {
			return t, true
		}
	}
	return models.Task{}, false
}
