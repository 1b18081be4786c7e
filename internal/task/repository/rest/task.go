package rest

import (
	"context"

	"task-management/internal/model"
	"task-management/internal/task/repository"
	pkgLog "task-management/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a task repository backed by the REST API client.
func New(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	items, err := r.client.ListTasks(ctx)
	if err != nil {
		r.l.Warnf(ctx, "rest repository: list tasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(items))
	for _, it := range items {
		tasks = append(tasks, toModel(it))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	item, err := r.client.GetTask(ctx, id)
	if err != nil {
		r.l.Warnf(ctx, "rest repository: get task %d: %v", id, err)
		return model.Task{}, err
	}
	return toModel(*item), nil
}

func (r *implRepository) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	item, err := r.client.CreateTask(ctx, fromModel(task))
	if err != nil {
		r.l.Warnf(ctx, "rest repository: create task: %v", err)
		return model.Task{}, err
	}
	return toModel(*item), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, id int64, task model.Task) (model.Task, error) {
	task.ID = id
	item, err := r.client.UpdateTask(ctx, id, fromModel(task))
	if err != nil {
		r.l.Warnf(ctx, "rest repository: update task %d: %v", id, err)
		return model.Task{}, err
	}
	return toModel(*item), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	if err := r.client.DeleteTask(ctx, id); err != nil {
		r.l.Warnf(ctx, "rest repository: delete task %d: %v", id, err)
		return err
	}
	return nil
}

func toModel(t Task) model.Task {
	return model.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      model.Status(t.Status),
	}
}

func fromModel(t model.Task) Task {
	return Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
	}
}
