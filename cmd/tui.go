package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/nibzard/taskdeck/internal/logging"
	"github.com/nibzard/taskdeck/internal/ui"
)

// tuiCommand launches the terminal UI. While it runs, log lines and hook
// output go to the log file only so they do not draw over the screen.
func (a *app) tuiCommand(args []string) error {
	fs := newFlagSet("tui")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logger := logging.Discard()
	hookOut := io.Discard
	if a.logFile != nil {
		l, err := logging.New(a.logFile.Writer(), a.logOptions())
		if err != nil {
			return err
		}
		logger = l
		hookOut = a.logFile.Writer()
	}

	store := a.openStoreWith(logger, hookOut, hookOut)
	return ui.RunTUI(a.ctx, store,
		ui.WithClock(a.cfg.UI.Clock),
		ui.WithTickInterval(time.Duration(a.cfg.UI.RefreshSeconds)*time.Second),
		ui.WithDefaultPriority(a.cfg.Priority()),
	)
}
