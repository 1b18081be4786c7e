package tui

import (
	"github.com/charmbracelet/lipgloss"

	"task-management/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(12)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

var statusStyles = map[model.Status]lipgloss.Style{
	model.StatusToDo:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	model.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	model.StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
}

func renderStatus(s model.Status) string {
	if st, ok := statusStyles[s]; ok {
		return st.Render(s.Label())
	}
	return s.Label()
}
