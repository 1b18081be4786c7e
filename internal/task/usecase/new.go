package usecase

import (
	"task-management/internal/task"
	"task-management/internal/task/repository"
	pkgLog "task-management/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository) task.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
