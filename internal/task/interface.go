package task

import (
	"context"

	"task-management/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// List returns every task in server order, optionally narrowed to one status.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Detail fetches a single task by id.
	Detail(ctx context.Context, id int64) (model.Task, error)

	// Create validates the input and creates a task. Status defaults to TO_DO.
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// Update replaces the title, description and status of an existing task.
	Update(ctx context.Context, input UpdateInput) (model.Task, error)

	// Delete removes a task. Deleting a task that is already gone succeeds.
	Delete(ctx context.Context, id int64) error
}
