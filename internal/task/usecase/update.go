package usecase

import (
	"context"

	"task-management/internal/model"
	"task-management/internal/task"
)

// Update sends the full record, keeping the id of the task being edited.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	if err := validateID(input.ID); err != nil {
		return model.Task{}, err
	}
	t, err := buildTask(input.Title, input.Description, input.Status)
	if err != nil {
		return model.Task{}, err
	}
	t.ID = input.ID

	updated, err := uc.repo.UpdateTask(ctx, input.ID, t)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: id=%d: %v", input.ID, err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Update: updated task %d", updated.ID)
	return updated, nil
}
