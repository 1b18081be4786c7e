package task

import "task-management/internal/model"

// ListInput is the input for listing tasks. An empty Status means all tasks.
type ListInput struct {
	Status string
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// CreateInput is the input for task creation.
type CreateInput struct {
	Title       string
	Description string
	Status      string // TO_DO when empty
}

// UpdateInput is the input for a full task update.
type UpdateInput struct {
	ID          int64
	Title       string
	Description string
	Status      string
}
