package task

import (
	"errors"

	"task-management/internal/model"
)

// Domain-specific errors for the task package.
var (
	ErrInvalidID     = errors.New("task id must be a positive integer")
	ErrTitleRequired = model.ErrTitleRequired
	ErrInvalidStatus = model.ErrInvalidStatus
)
