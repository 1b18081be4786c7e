package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"task-management/internal/model"
	"task-management/internal/task"
)

type view int

const (
	viewList view = iota
	viewForm
)

// filters is the cycle order of the status filter. The empty status means all.
var filters = []model.Status{"", model.StatusToDo, model.StatusInProgress, model.StatusDone}

// Model is the Bubble Tea model of the task list and its create/edit form.
type Model struct {
	ctx context.Context
	uc  task.UseCase

	view   view
	table  table.Model
	form   form
	help   help.Model
	tasks  []model.Task
	filter int

	loading bool
	status  string
	err     error
}

// New builds the model. The first load is started by Init.
func New(ctx context.Context, uc task.UseCase) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Title", Width: 30},
			{Title: "Description", Width: 40},
			{Title: "Status", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return Model{
		ctx:     ctx,
		uc:      uc,
		table:   t,
		help:    help.New(),
		loading: true,
	}
}

// Run starts the terminal UI and blocks until the user quits or ctx ends.
func Run(ctx context.Context, uc task.UseCase) error {
	p := tea.NewProgram(New(ctx, uc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	return loadTasks(m.ctx, m.uc, filters[m.filter])
}

func (m Model) selected() (model.Task, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[i], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-9, 3))
		m.help.Width = msg.Width
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		m.err = nil
		m.tasks = msg.tasks
		m.table.SetRows(toRows(msg.tasks))
		if c := m.table.Cursor(); c >= len(msg.tasks) {
			m.table.SetCursor(max(len(msg.tasks)-1, 0))
		}
		return m, nil

	case taskSavedMsg:
		m.view = viewList
		m.err = nil
		m.loading = true
		if msg.created {
			m.status = fmt.Sprintf("Created task #%d", msg.task.ID)
		} else {
			m.status = fmt.Sprintf("Updated task #%d", msg.task.ID)
		}
		return m, m.load()

	case taskDeletedMsg:
		m.err = nil
		m.loading = true
		m.status = fmt.Sprintf("Deleted task #%d", msg.id)
		return m, m.load()

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view == viewForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.view == viewForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, listKeys.New):
		return m.openForm(model.Task{Status: model.StatusToDo})

	case key.Matches(msg, listKeys.Edit):
		if t, ok := m.selected(); ok {
			return m.openForm(t)
		}
		return m, nil

	case key.Matches(msg, listKeys.Delete):
		if t, ok := m.selected(); ok {
			m.status = fmt.Sprintf("Deleting task #%d...", t.ID)
			return m, deleteTask(m.ctx, m.uc, t.ID)
		}
		return m, nil

	case key.Matches(msg, listKeys.Filter):
		m.filter = (m.filter + 1) % len(filters)
		m.loading = true
		return m, m.load()

	case key.Matches(msg, listKeys.Reload):
		m.loading = true
		return m, m.load()

	case key.Matches(msg, listKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) openForm(t model.Task) (tea.Model, tea.Cmd) {
	m.view = viewForm
	m.err = nil
	m.form = newForm(t)
	cmd := m.form.setFocus(fieldTitle)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeys.Cancel):
		m.view = viewList
		m.err = nil
		return m, nil

	case key.Matches(msg, formKeys.Submit):
		t := m.form.task()
		if t.Title == "" {
			m.err = task.ErrTitleRequired
			return m, nil
		}
		m.err = nil
		m.status = "Saving..."
		return m, saveTask(m.ctx, m.uc, t)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) View() string {
	var body, helpView string
	if m.view == viewForm {
		body = m.form.view()
		helpView = m.help.View(formKeys)
	} else {
		body = m.headerView() + "\n" + m.table.View()
		helpView = m.help.View(listKeys)
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		m.statusView(),
		helpView,
	))
}

func (m Model) headerView() string {
	label := "All"
	if s := filters[m.filter]; s != "" {
		label = s.Label()
	}
	return fmt.Sprintf("%s %s   %s %s",
		titleStyle.Render("Tasks"),
		mutedStyle.Render(fmt.Sprintf("(%d)", len(m.tasks))),
		mutedStyle.Render("filter:"),
		accentStyle.Render(label),
	)
}

func (m Model) statusView() string {
	switch {
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	case m.loading:
		return mutedStyle.Render("Loading...")
	case m.status != "":
		return successStyle.Render(m.status)
	}
	return ""
}

func toRows(tasks []model.Task) []table.Row {
	rows := make([]table.Row, len(tasks))
	for i, t := range tasks {
		rows[i] = table.Row{fmt.Sprint(t.ID), t.Title, t.Description, t.Status.Label()}
	}
	return rows
}
