package cmd

import (
	"github.com/fatih/color"

	"github.com/nibzard/taskdeck/internal/todo"
)

// Sprint color functions for building styled strings.
var (
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// statusLabel returns a colored, padded status name.
func statusLabel(s todo.Status) string {
	padded := pad(string(s), 11)
	switch s {
	case todo.StatusInProgress:
		return yellow(padded)
	case todo.StatusDone:
		return green(padded)
	default:
		return dim(padded)
	}
}

// statusIcon returns the checkbox shown in front of a task.
func statusIcon(s todo.Status) string {
	switch s {
	case todo.StatusInProgress:
		return yellow("[~]")
	case todo.StatusDone:
		return green("[x]")
	default:
		return "[ ]"
	}
}

// priorityLabel returns a colored, padded priority name.
func priorityLabel(p todo.Priority) string {
	padded := pad(string(p), 6)
	switch p {
	case todo.PriorityLow:
		return cyan(padded)
	case todo.PriorityHigh:
		return red(padded)
	default:
		return yellow(padded)
	}
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
