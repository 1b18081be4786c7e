package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"task-management/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(13)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func renderTasks(tasks []model.Task) string {
	if len(tasks) == 0 {
		return mutedStyle.Render("No tasks.")
	}

	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{fmt.Sprint(t.ID), t.Title, t.Description, t.Status.Label()}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "TITLE", "DESCRIPTION", "STATUS").
		Rows(rows...).
		String()
}

func renderTask(t model.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%d\n", labelStyle.Render("ID"), t.ID)
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("Title"), t.Title)
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("Description"), t.Description)
	fmt.Fprintf(&sb, "%s%s", labelStyle.Render("Status"), t.Status.Label())
	return sb.String()
}
