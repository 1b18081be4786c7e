package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"task-management/internal/model"
	"task-management/internal/task"
	"task-management/internal/task/repository/rest"
	"task-management/internal/task/usecase"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: 3, Title: "c", Status: model.StatusDone},
		{ID: 1, Title: "a", Status: model.StatusToDo},
		{ID: 2, Title: "b", Status: model.StatusDone},
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("All tasks in server order", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{tasks: sampleTasks()})
		out, err := uc.List(ctx, task.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 3 || out.Tasks[0].ID != 3 || out.Tasks[2].ID != 2 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Status filter keeps order", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{tasks: sampleTasks()})
		out, err := uc.List(ctx, task.ListInput{Status: "done"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 || out.Tasks[0].ID != 3 || out.Tasks[1].ID != 2 {
			t.Errorf("unexpected filtered output: %+v", out)
		}
	})

	t.Run("Invalid status is rejected before fetching", func(t *testing.T) {
		repo := &mockRepo{tasks: sampleTasks()}
		uc := usecase.New(&mockLogger{}, repo)
		_, err := uc.List(ctx, task.ListInput{Status: "blocked"})
		if !errors.Is(err, task.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
		if repo.calls != 0 {
			t.Errorf("expected no repository call")
		}
	})

	t.Run("Repository error is returned unchanged", func(t *testing.T) {
		cause := &rest.Error{Kind: rest.KindUnreachable, Endpoint: "http://localhost:8081/api/tasks"}
		uc := usecase.New(&mockLogger{}, &mockRepo{err: cause})
		_, err := uc.List(ctx, task.ListInput{})
		if err != cause {
			t.Errorf("expected the client error itself, got %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid id", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		if _, err := uc.Detail(ctx, 0); !errors.Is(err, task.ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("Found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{tasks: sampleTasks()})
		got, err := uc.Detail(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "b" {
			t.Errorf("unexpected task: %+v", got)
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Title required", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, repo)
		_, err := uc.Create(ctx, task.CreateInput{Title: "   "})
		if !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
		if repo.calls != 0 {
			t.Errorf("expected no repository call")
		}
	})

	t.Run("Defaults to TO_DO and trims", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, repo)
		created, err := uc.Create(ctx, task.CreateInput{Title: "  Write docs ", Description: " d "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastWrite.Title != "Write docs" || repo.lastWrite.Description != "d" {
			t.Errorf("input not trimmed: %+v", repo.lastWrite)
		}
		if repo.lastWrite.Status != model.StatusToDo || repo.lastWrite.ID != 0 {
			t.Errorf("unexpected request: %+v", repo.lastWrite)
		}
		if created.ID != 42 {
			t.Errorf("expected server id, got %d", created.ID)
		}
	})

	t.Run("Invalid status", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		_, err := uc.Create(ctx, task.CreateInput{Title: "x", Status: "later"})
		if !errors.Is(err, task.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends full record with same id", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, repo)
		_, err := uc.Update(ctx, task.UpdateInput{ID: 5, Title: "t", Description: "d", Status: "IN_PROGRESS"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := model.Task{ID: 5, Title: "t", Description: "d", Status: model.StatusInProgress}
		if repo.lastID != 5 || repo.lastWrite != want {
			t.Errorf("unexpected request: id=%d task=%+v", repo.lastID, repo.lastWrite)
		}
	})

	t.Run("Invalid id", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		_, err := uc.Update(ctx, task.UpdateInput{ID: -1, Title: "t"})
		if !errors.Is(err, task.ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found is success", func(t *testing.T) {
		l := &mockLogger{}
		notFound := &rest.Error{Kind: rest.KindServer, StatusCode: http.StatusNotFound, Payload: `{"error":"task not found"}`}
		uc := usecase.New(l, &mockRepo{err: notFound})
		if err := uc.Delete(ctx, 9); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
		if len(l.warnings) != 1 {
			t.Errorf("expected a warning to be logged")
		}
	})

	t.Run("Server error is returned", func(t *testing.T) {
		boom := &rest.Error{Kind: rest.KindServer, StatusCode: http.StatusInternalServerError, Payload: "boom"}
		uc := usecase.New(&mockLogger{}, &mockRepo{err: boom})
		err := uc.Delete(ctx, 9)
		if rest.StatusCode(err) != http.StatusInternalServerError {
			t.Errorf("expected 500 error, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, repo)
		if err := uc.Delete(ctx, 9); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastID != 9 {
			t.Errorf("expected id 9, got %d", repo.lastID)
		}
	})
}
