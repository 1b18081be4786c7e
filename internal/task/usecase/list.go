package usecase

import (
	"context"
	"strings"

	"task-management/internal/model"
	"task-management/internal/task"
)

// List fetches all tasks and applies the optional status filter locally.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	var status model.Status
	if strings.TrimSpace(input.Status) != "" {
		st, err := model.ParseStatus(input.Status)
		if err != nil {
			return task.ListOutput{}, err
		}
		status = st
	}

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, err
	}

	if status != "" {
		tasks = filterByStatus(tasks, status)
	}

	uc.l.Debugf(ctx, "task.usecase.List: %d tasks (status=%q)", len(tasks), status)
	return task.ListOutput{
		Tasks: tasks,
		Count: len(tasks),
	}, nil
}
