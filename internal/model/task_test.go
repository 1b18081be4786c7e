package model_test

import (
	"errors"
	"testing"

	"task-management/internal/model"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]model.Status{
		"TO_DO":       model.StatusToDo,
		"todo":        model.StatusToDo,
		"to-do":       model.StatusToDo,
		"in progress": model.StatusInProgress,
		"IN_PROGRESS": model.StatusInProgress,
		" done ":      model.StatusDone,
	}
	for in, want := range cases {
		got, err := model.ParseStatus(in)
		if err != nil {
			t.Errorf("ParseStatus(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseStatus(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := model.ParseStatus("blocked"); !errors.Is(err, model.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		task := model.Task{Title: "Write report", Status: model.StatusInProgress}
		if err := task.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Blank title", func(t *testing.T) {
		task := model.Task{Title: "   ", Status: model.StatusToDo}
		if err := task.Validate(); !errors.Is(err, model.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})

	t.Run("Unknown status", func(t *testing.T) {
		task := model.Task{Title: "x", Status: "LATER"}
		if err := task.Validate(); !errors.Is(err, model.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestStatusLabel(t *testing.T) {
	if model.StatusInProgress.Label() != "In Progress" {
		t.Errorf("unexpected label %q", model.StatusInProgress.Label())
	}
	if len(model.Statuses) != 3 || model.Statuses[0] != model.StatusToDo {
		t.Errorf("unexpected status order: %v", model.Statuses)
	}
}
