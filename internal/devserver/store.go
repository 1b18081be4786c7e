package devserver

import (
	"context"
	"errors"

	"task-management/internal/model"
)

// ErrNotFound is returned by a Store when no task has the given id.
var ErrNotFound = errors.New("task not found")

// Store persists tasks for the development server. List returns tasks in
// insertion order.
type Store interface {
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	Create(ctx context.Context, task model.Task) (model.Task, error)
	Update(ctx context.Context, id int64, task model.Task) (model.Task, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}

const (
	StorageMemory   = "memory"
	StorageMySQL    = "mysql"
	StoragePostgres = "postgres"
)
