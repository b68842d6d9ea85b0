package ui

import (
	"fmt"
	"strings"

	"github.com/nibzard/taskdeck/internal/todo"
	"github.com/nibzard/taskdeck/internal/utils"
)

const (
	progressBarWidth = 20
	maxTextWidth     = 48
)

func (m *tuiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	writeTitle(&b)
	if m.cfg.clock {
		writeClock(&b, m)
	}

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	writeSummary(&b, m.store.Summary())
	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", m.filter))
	}
	writeTasks(&b, m)
	writeInput(&b, m)
	writeMessage(&b, m)
	writeFooter(&b)
	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "taskdeck"
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n")
}

func writeClock(b *strings.Builder, m *tuiModel) {
	b.WriteString(clockStyle.Render("Current Time: "+m.clock.Format("15:04:05")) + "\n")
}

func writeSummary(b *strings.Builder, s todo.Summary) {
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Tasks: %d | Done: %d | Open: %d\n", s.Total, s.Done, s.Open))
	b.WriteString(fmt.Sprintf("Progress: %d%% %s\n\n", s.PercentDone, progressBar(s.PercentDone, progressBarWidth)))
}

// progressBar renders percent as a bar of the given width.
func progressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100
	return "[" + barDoneStyle.Render(strings.Repeat("#", filled)) +
		barOpenStyle.Render(strings.Repeat("-", width-filled)) + "]"
}

func writeTasks(b *strings.Builder, m *tuiModel) {
	tasks := m.visible()
	if len(tasks) == 0 {
		if m.filter != "" {
			b.WriteString(fmt.Sprintf("  No %s tasks.\n\n", m.filter))
		} else {
			b.WriteString("  No tasks yet. Press a to add one.\n\n")
		}
		return
	}

	b.WriteString(fmt.Sprintf("    %-4s %-*s %-8s %s\n", "#", maxTextWidth, "Task", "Priority", "Status"))
	for i, t := range tasks {
		cursor := " "
		if i == m.cursor && m.mode == modeList {
			cursor = ">"
		}
		pos := fmt.Sprintf("%d", m.store.IndexOf(t.ID)+1)
		text := fmt.Sprintf("%-*s", maxTextWidth, utils.Truncate(t.Text, maxTextWidth))
		if i == m.cursor {
			text = selectedStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("  %s %-4s %s %s %s\n",
			cursor, pos, text, renderPriority(t.Priority, 8), renderStatus(t.Status, 11)))
	}
	b.WriteString("\n")
}

func writeInput(b *strings.Builder, m *tuiModel) {
	switch m.mode {
	case modeAdd:
		b.WriteString(m.input.View() + "\n")
		b.WriteString("Priority: " + renderPriority(m.priority, 0) + " (tab to change)\n")
		b.WriteString("enter to save | esc to cancel\n\n")
	case modeEdit:
		b.WriteString(m.input.View() + "\n")
		b.WriteString("enter to save | esc to cancel | left/right to move\n\n")
	}
}

func writeMessage(b *strings.Builder, m *tuiModel) {
	if m.message == "" {
		return
	}
	if m.isError {
		b.WriteString(warnStyle.Render(m.message) + "\n\n")
		return
	}
	b.WriteString(infoStyle.Render(m.message) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("\nKeyboard Shortcuts\n\n")
	b.WriteString("  up/k, down/j  Move selection\n")
	b.WriteString("  a             Add a task (tab changes priority)\n")
	b.WriteString("  e, enter      Edit selected task\n")
	b.WriteString("  space, s      Cycle status (Open > In Progress > Done)\n")
	b.WriteString("  o / p / c     Mark Open / In Progress / Done\n")
	b.WriteString("  d, x          Delete selected task\n")
	b.WriteString("  1 / 2 / 3     Show Open / In Progress / Done\n")
	b.WriteString("  0             Show all tasks\n")
	b.WriteString("  r, F5         Reload from disk\n")
	b.WriteString("  h, ?          Toggle this help screen\n")
	b.WriteString("  q, ctrl+c     Quit\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("Press h for help | q to quit\n")
}
