package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nibzard/taskdeck/internal/todo"
	"github.com/nibzard/taskdeck/internal/utils"
)

const listTextWidth = 50

// errBlankTask mirrors the warning shown in the TUI.
var errBlankTask = errors.New("please enter a task")

// addCommand appends a task.
func (a *app) addCommand(args []string) error {
	fs := newFlagSet("add")
	priority := fs.String("p", "", "Priority (Low, Medium, High); defaults to default_priority")
	fs.StringVar(priority, "priority", "", "Priority (Low, Medium, High)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := a.cfg.Priority()
	if *priority != "" {
		parsed, err := todo.ParsePriority(*priority)
		if err != nil {
			return err
		}
		p = parsed
	}

	store := a.openStore()
	task, err := store.Add(strings.Join(fs.Args(), " "), p)
	if errors.Is(err, todo.ErrBlankText) {
		return errBlankTask
	}
	if err != nil {
		return fmt.Errorf("adding task: %w", err)
	}
	fmt.Fprintf(stdout, "Added task #%d (%s): %s\n", store.IndexOf(task.ID)+1, task.ShortID(), task.Text)
	return nil
}

// lsCommand lists tasks in insertion order with their positions.
func (a *app) lsCommand(args []string) error {
	fs := newFlagSet("ls")
	statusFilter := fs.String("status", "", "Filter by status (open, in-progress, done)")
	verbose := fs.Bool("v", false, "Show IDs and timestamps")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 0 && *statusFilter == "" {
		*statusFilter = strings.Join(remaining, " ")
		remaining = nil
	}
	if len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	var filter todo.Status
	if *statusFilter != "" {
		s, err := todo.ParseStatus(*statusFilter)
		if err != nil {
			return err
		}
		filter = s
	}

	store := a.openStore()
	tasks := store.Filter(filter)
	if len(tasks) == 0 {
		if filter != "" {
			fmt.Fprintf(stdout, "No %s tasks.\n", filter)
		} else {
			fmt.Fprintln(stdout, "No tasks found.")
		}
	}
	for _, t := range tasks {
		printTask(store.IndexOf(t.ID)+1, t, *verbose)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, summaryLine(store.Summary()))
	return nil
}

// printTask prints a single task row.
func printTask(pos int, t todo.Task, verbose bool) {
	text := fmt.Sprintf("%-*s", listTextWidth, utils.Truncate(t.Text, listTextWidth))
	if t.Status == todo.StatusDone {
		text = dim(text)
	}
	fmt.Fprintf(stdout, "%3d. %s %s %s %s\n", pos, statusIcon(t.Status), text, priorityLabel(t.Priority), statusLabel(t.Status))
	if !verbose {
		return
	}
	fmt.Fprintf(stdout, "       %s %s\n", dim("id:"), t.ID)
	if t.CreatedAt != nil {
		fmt.Fprintf(stdout, "       %s %s\n", dim("created:"), t.CreatedAt.Local().Format(time.DateTime))
	}
	if t.UpdatedAt != nil {
		fmt.Fprintf(stdout, "       %s %s\n", dim("updated:"), t.UpdatedAt.Local().Format(time.DateTime))
	}
}

func summaryLine(s todo.Summary) string {
	return fmt.Sprintf("Tasks: %d | Done: %d | Open: %d | Progress: %d%%", s.Total, s.Done, s.Open, s.PercentDone)
}

// editCommand replaces the text of a task.
func (a *app) editCommand(args []string) error {
	fs := newFlagSet("edit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: taskdeck edit REF TEXT")
	}

	store := a.openStore()
	task, err := store.Resolve(fs.Arg(0))
	if err != nil {
		return err
	}
	updated, err := store.EditText(task.ID, strings.Join(fs.Args()[1:], " "))
	if errors.Is(err, todo.ErrBlankText) {
		return errBlankTask
	}
	if err != nil {
		return fmt.Errorf("editing task: %w", err)
	}
	fmt.Fprintf(stdout, "Updated task #%d: %s\n", store.IndexOf(updated.ID)+1, updated.Text)
	return nil
}

// statusCommand sets the status of a task.
func (a *app) statusCommand(args []string) error {
	fs := newFlagSet("status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: taskdeck status REF STATUS")
	}
	status, err := todo.ParseStatus(strings.Join(fs.Args()[1:], " "))
	if err != nil {
		return err
	}
	return a.updateStatus(fs.Arg(0), status)
}

// setStatusCommand implements start, done and reopen.
func (a *app) setStatusCommand(name string, status todo.Status, args []string) error {
	fs := newFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: taskdeck %s REF", name)
	}
	return a.updateStatus(fs.Arg(0), status)
}

func (a *app) updateStatus(ref string, status todo.Status) error {
	store := a.openStore()
	task, err := store.Resolve(ref)
	if err != nil {
		return err
	}
	updated, err := store.UpdateStatus(task.ID, status)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	fmt.Fprintf(stdout, "Task #%d is now %s: %s\n", store.IndexOf(updated.ID)+1, updated.Status, updated.Text)
	return nil
}

// rmCommand deletes a task.
func (a *app) rmCommand(args []string) error {
	fs := newFlagSet("rm")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: taskdeck rm REF")
	}

	store := a.openStore()
	task, err := store.Resolve(fs.Arg(0))
	if err != nil {
		return err
	}
	pos := store.IndexOf(task.ID) + 1
	if _, err := store.Delete(task.ID); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	fmt.Fprintf(stdout, "Deleted task #%d: %s\n", pos, task.Text)
	return nil
}

// summaryCommand prints the counters.
func (a *app) summaryCommand(args []string) error {
	fs := newFlagSet("summary")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := a.openStore()
	summary := store.Summary()
	if !*asJSON {
		fmt.Fprintln(stdout, summaryLine(summary))
		return nil
	}

	counts := store.Counts()
	out := struct {
		todo.Summary
		InProgress int `json:"in_progress"`
	}{summary, counts[todo.StatusInProgress]}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
