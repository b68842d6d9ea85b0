package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/taskdeck/internal/todo"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	clockStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4136")).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC40"))
	promptStyle   = lipgloss.NewStyle().Bold(true)
	barDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#008000"))
	barOpenStyle  = lipgloss.NewStyle().Faint(true)

	statusStyles = map[todo.Status]lipgloss.Style{
		todo.StatusOpen:       lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		todo.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
		todo.StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("#008000")),
	}

	priorityStyles = map[todo.Priority]lipgloss.Style{
		todo.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7FDBFF")),
		todo.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFDC00")),
		todo.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4136")),
	}
)

func renderStatus(s todo.Status, width int) string {
	style, ok := statusStyles[s]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Width(width).Render(string(s))
}

func renderPriority(p todo.Priority, width int) string {
	style, ok := priorityStyles[p]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Width(width).Render(string(p))
}
