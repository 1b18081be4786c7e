package usecase_test

import (
	"context"

	"task-management/internal/model"
)

// Mock logger for testing
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnings = append(m.warnings, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository recording the last write it received.
type mockRepo struct {
	tasks     []model.Task
	err       error
	lastWrite model.Task
	lastID    int64
	calls     int
}

func (m *mockRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	m.calls++
	return m.tasks, m.err
}

func (m *mockRepo) GetTask(ctx context.Context, id int64) (model.Task, error) {
	m.calls++
	m.lastID = id
	if m.err != nil {
		return model.Task{}, m.err
	}
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	m.calls++
	m.lastWrite = t
	if m.err != nil {
		return model.Task{}, m.err
	}
	t.ID = 42
	return t, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, id int64, t model.Task) (model.Task, error) {
	m.calls++
	m.lastID = id
	m.lastWrite = t
	if m.err != nil {
		return model.Task{}, m.err
	}
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id int64) error {
	m.calls++
	m.lastID = id
	return m.err
}
