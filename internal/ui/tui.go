// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/taskdeck/internal/todo"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	clock           bool
	tickInterval    time.Duration
	defaultPriority todo.Priority
}

// WithClock shows or hides the clock in the header.
func WithClock(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.clock = enabled
	}
}

// WithTickInterval sets how often the clock refreshes.
func WithTickInterval(d time.Duration) TUIOption {
	return func(c *tuiConfig) {
		if d > 0 {
			c.tickInterval = d
		}
	}
}

// WithDefaultPriority sets the priority preselected when adding a task.
func WithDefaultPriority(p todo.Priority) TUIOption {
	return func(c *tuiConfig) {
		if p.Valid() {
			c.defaultPriority = p
		}
	}
}

func newTUIConfig(opts []TUIOption) tuiConfig {
	c := tuiConfig{
		clock:           true,
		tickInterval:    time.Second,
		defaultPriority: todo.DefaultPriority,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// RunTUI starts the TUI over store and blocks until the user quits or ctx
// is cancelled.
func RunTUI(ctx context.Context, store *todo.Store, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newTUIModel(store, newTUIConfig(opts))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
