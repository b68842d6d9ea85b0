// Package hooks invokes the external command configured to run after every
// saved task change.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/nibzard/taskdeck/internal/todo"
)

// Options configures a hook invocation.
type Options struct {
	Command   string
	Action    string
	Task      todo.Task
	TasksPath string
	WorkDir   string

	// Stdout and Stderr receive the hook's output; nil means os.Stdout and
	// os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Result captures the outcome of a hook invocation.
type Result struct {
	Ran      bool
	Command  []string
	ExitCode int
	Action   string
	TaskID   string
}

// Invoke runs the hook as: <command> <action> <task-id> <tasks-file>.
// The task text, status and priority are exported as TASKDECK_TASK_TEXT,
// TASKDECK_TASK_STATUS and TASKDECK_TASK_PRIORITY.
func Invoke(ctx context.Context, opts Options) (Result, error) {
	if opts.Command == "" {
		return Result{}, nil
	}
	if opts.Action == "" {
		return Result{}, fmt.Errorf("hook action is empty")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	args := []string{opts.Action, opts.Task.ID, opts.TasksPath}
	cmd := exec.CommandContext(ctx, opts.Command, args...)
	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}
	cmd.Env = append(os.Environ(),
		"TASKDECK_ACTION="+opts.Action,
		"TASKDECK_TASK_ID="+opts.Task.ID,
		"TASKDECK_TASK_TEXT="+opts.Task.Text,
		"TASKDECK_TASK_STATUS="+string(opts.Task.Status),
		"TASKDECK_TASK_PRIORITY="+string(opts.Task.Priority),
		"TASKDECK_FILE="+opts.TasksPath,
	)
	cmd.Stdout = writerOr(opts.Stdout, os.Stdout)
	cmd.Stderr = writerOr(opts.Stderr, os.Stderr)

	err := cmd.Run()
	result := Result{
		Ran:      true,
		Command:  cmd.Args,
		ExitCode: exitCodeFromError(err),
		Action:   opts.Action,
		TaskID:   opts.Task.ID,
	}
	if err != nil {
		return result, fmt.Errorf("hook command failed: %w", err)
	}
	return result, nil
}

// Notifier returns a todo.Store change callback that invokes the hook for
// every change. Hook failures are logged and never undo the change.
func Notifier(ctx context.Context, logger *log.Logger, base Options) func(todo.Change) {
	if base.Command == "" {
		return nil
	}
	return func(c todo.Change) {
		opts := base
		opts.Action = string(c.Action)
		opts.Task = c.Task
		result, err := Invoke(ctx, opts)
		if err != nil {
			logger.Warn("hook failed", "command", base.Command, "action", opts.Action, "exit_code", result.ExitCode, "err", err)
			return
		}
		logger.Debug("hook ran", "command", base.Command, "action", opts.Action, "task", c.Task.ShortID())
	}
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
