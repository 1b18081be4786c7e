package usecase

import (
	"context"

	"task-management/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	if err := validateID(id); err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Detail: id=%d: %v", id, err)
		return model.Task{}, err
	}
	return t, nil
}
