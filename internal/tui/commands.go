package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"task-management/internal/model"
	"task-management/internal/task"
)

type tasksLoadedMsg struct {
	tasks []model.Task
}

type taskSavedMsg struct {
	task    model.Task
	created bool
}

type taskDeletedMsg struct {
	id int64
}

// errMsg carries a failed call. Its message is shown in the status line.
type errMsg struct {
	err error
}

func loadTasks(ctx context.Context, uc task.UseCase, status model.Status) tea.Cmd {
	return func() tea.Msg {
		out, err := uc.List(ctx, task.ListInput{Status: string(status)})
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks: out.Tasks}
	}
}

func saveTask(ctx context.Context, uc task.UseCase, t model.Task) tea.Cmd {
	return func() tea.Msg {
		if t.ID == 0 {
			created, err := uc.Create(ctx, task.CreateInput{
				Title:       t.Title,
				Description: t.Description,
				Status:      string(t.Status),
			})
			if err != nil {
				return errMsg{err}
			}
			return taskSavedMsg{task: created, created: true}
		}

		updated, err := uc.Update(ctx, task.UpdateInput{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      string(t.Status),
		})
		if err != nil {
			return errMsg{err}
		}
		return taskSavedMsg{task: updated}
	}
}

func deleteTask(ctx context.Context, uc task.UseCase, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := uc.Delete(ctx, id); err != nil {
			return errMsg{err}
		}
		return taskDeletedMsg{id: id}
	}
}
