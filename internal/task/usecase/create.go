package usecase

import (
	"context"

	"task-management/internal/model"
	"task-management/internal/task"
)

func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	t, err := buildTask(input.Title, input.Description, input.Status)
	if err != nil {
		return model.Task{}, err
	}

	created, err := uc.repo.CreateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task %d %q", created.ID, created.Title)
	return created, nil
}
