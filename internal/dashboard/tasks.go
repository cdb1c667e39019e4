package dashboard

import (
	"time"

	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

// AddTask creates a board item. The status is forced to todo regardless of
// what the caller supplied.
func (d *Dashboard) AddTask(task models.Task) (models.Task, error) {
	task.ID = newID()
	task.Status = models.TaskStatusTodo
	task.CreatedAt = time.Now().UTC()

	if err := validation.Task(task); err != nil {
		return models.Task{}, err
	}

	d.Tasks = append(append([]models.Task(nil), d.Tasks...), task)
	d.persistTasks()
	return task, nil
}

// UpdateTaskStatus unconditionally overwrites a task's status; any
// transition is allowed. Unknown ids are a no-op.
func (d *Dashboard) UpdateTaskStatus(id string, status models.TaskStatus) {
	tasks := make([]models.Task, len(d.Tasks))
	for i, t := range d.Tasks {
		if t.ID == id {
			t.Status = status
		}
		tasks[i] = t
	}
	d.Tasks = tasks
	d.persistTasks()
}

// DeleteTask removes a task by id. A missing id is a silent no-op.
func (d *Dashboard) DeleteTask(id string) {
	kept := make([]models.Task, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	d.Tasks = kept
	d.persistTasks()
}
