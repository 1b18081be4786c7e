package rest_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"task-management/internal/devserver"
	"task-management/internal/model"
	"task-management/internal/task/repository/rest"
)

type mockLogger struct {
	warnings int
}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   { m.warnings++ }
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   { m.warnings++ }
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestRepositoryAgainstDevServer(t *testing.T) {
	ts := httptest.NewServer(devserver.NewHandler(devserver.NewMemoryStore(), &mockLogger{}))
	defer ts.Close()

	l := &mockLogger{}
	repo := rest.New(rest.NewClient(ts.URL+"/api").WithHTTPClient(ts.Client()), l)
	ctx := context.Background()

	first, err := repo.CreateTask(ctx, model.Task{Title: "First", Description: "d1", Status: model.StatusToDo})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.CreateTask(ctx, model.Task{Title: "Second", Status: model.StatusInProgress})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("Create then get returns the created task", func(t *testing.T) {
		got, err := repo.GetTask(ctx, first.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != first {
			t.Errorf("got %+v, want %+v", got, first)
		}
	})

	t.Run("List returns tasks in server order", func(t *testing.T) {
		tasks, err := repo.ListTasks(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(tasks) != 2 || tasks[0].ID != first.ID || tasks[1].ID != second.ID {
			t.Errorf("unexpected list: %+v", tasks)
		}
	})

	t.Run("Update then get reflects the change", func(t *testing.T) {
		changed := first
		changed.Status = model.StatusDone
		changed.Description = "finished"
		if _, err := repo.UpdateTask(ctx, first.ID, changed); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := repo.GetTask(ctx, first.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status != model.StatusDone || got.Description != "finished" {
			t.Errorf("update not visible: %+v", got)
		}
	})

	t.Run("Delete then get is a 404 server error", func(t *testing.T) {
		if err := repo.DeleteTask(ctx, second.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		_, err := repo.GetTask(ctx, second.ID)
		if !rest.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
		want := `An error occurred while connecting to the server. Server returned code 404. Error: {"error":"task not found"}`
		if err.Error() != want {
			t.Errorf("unexpected message %q", err.Error())
		}
		if l.warnings == 0 {
			t.Errorf("expected the failure to be logged")
		}
	})
}
