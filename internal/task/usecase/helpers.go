package usecase

import (
	"fmt"
	"strings"

	"task-management/internal/model"
	"task-management/internal/task"
)

// buildTask normalizes form input into a task ready to be sent.
func buildTask(title, description, status string) (model.Task, error) {
	t := model.Task{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      model.StatusToDo,
	}
	if t.Title == "" {
		return model.Task{}, task.ErrTitleRequired
	}
	if strings.TrimSpace(status) != "" {
		st, err := model.ParseStatus(status)
		if err != nil {
			return model.Task{}, err
		}
		t.Status = st
	}
	return t, nil
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", task.ErrInvalidID, id)
	}
	return nil
}

func filterByStatus(tasks []model.Task, status model.Status) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
