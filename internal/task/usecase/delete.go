package usecase

import (
	"context"

	"task-management/internal/task/repository/rest"
)

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if rest.IsNotFound(err) {
			uc.l.Warnf(ctx, "task.usecase.Delete: task %d already gone", id)
			return nil
		}
		uc.l.Errorf(ctx, "task.usecase.Delete: id=%d: %v", id, err)
		return err
	}

	uc.l.Infof(ctx, "task.usecase.Delete: deleted task %d", id)
	return nil
}
