package repository

import (
	"context"

	"task-management/internal/model"
)

// TaskRepository is the data access interface for tasks held by the remote
// REST store. Results are returned in server order.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	CreateTask(ctx context.Context, task model.Task) (model.Task, error)
	UpdateTask(ctx context.Context, id int64, task model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
