package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"task-management/internal/model"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldStatus
	fieldCount
)

// form edits one task. id is zero when creating.
type form struct {
	id          int64
	title       textinput.Model
	description textinput.Model
	status      int // index into model.Statuses
	focus       int
}

func newForm(t model.Task) form {
	title := textinput.New()
	title.Prompt = "> "
	title.Placeholder = "What needs to be done?"
	title.CharLimit = 255
	title.Cursor.SetMode(cursor.CursorStatic)
	title.SetValue(t.Title)
	title.CursorEnd()

	desc := textinput.New()
	desc.Prompt = "> "
	desc.Placeholder = "Optional details"
	desc.CharLimit = 2000
	desc.Cursor.SetMode(cursor.CursorStatic)
	desc.SetValue(t.Description)
	desc.CursorEnd()

	f := form{id: t.ID, title: title, description: desc}
	for i, s := range model.Statuses {
		if s == t.Status {
			f.status = i
		}
	}
	return f
}

// setFocus moves focus to field i, wrapping around.
func (f *form) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	f.title.Blur()
	f.description.Blur()
	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldDescription:
		return f.description.Focus()
	}
	return nil
}

func (f form) task() model.Task {
	return model.Task{
		ID:          f.id,
		Title:       strings.TrimSpace(f.title.Value()),
		Description: strings.TrimSpace(f.description.Value()),
		Status:      model.Statuses[f.status],
	}
}

// update handles field navigation and input. Submit and cancel are handled
// by the parent model.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, formKeys.Next):
			cmd := f.setFocus(f.focus + 1)
			return f, cmd
		case key.Matches(msg, formKeys.Prev):
			cmd := f.setFocus(f.focus - 1)
			return f, cmd
		case f.focus == fieldStatus && key.Matches(msg, formKeys.Cycle):
			if msg.String() == "left" {
				f.status = (f.status + len(model.Statuses) - 1) % len(model.Statuses)
			} else {
				f.status = (f.status + 1) % len(model.Statuses)
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}

func (f form) view() string {
	heading := "New task"
	if f.id != 0 {
		heading = fmt.Sprintf("Edit task #%d", f.id)
	}

	label := func(i int, s string) string {
		if f.focus == i {
			return focusedStyle.Inherit(labelStyle).Render(s)
		}
		return labelStyle.Render(s)
	}

	statuses := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		if i == f.status {
			statuses[i] = "[" + renderStatus(s) + "]"
		} else {
			statuses[i] = " " + mutedStyle.Render(s.Label()) + " "
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(heading),
		"",
		label(fieldTitle, "Title *")+f.title.View(),
		label(fieldDescription, "Description")+f.description.View(),
		label(fieldStatus, "Status")+strings.Join(statuses, " "),
	)
}
