package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/taskdeck/internal/appdir"
	"github.com/nibzard/taskdeck/internal/logging"
)

// logsCommand prints the project log file.
func (a *app) logsCommand(args []string) error {
	fs := newFlagSet("logs")
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 50, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if a.cfg.LogDir == "" {
		return errors.New("log_dir is not configured (set log_dir, TASKDECK_LOG_DIR or -log-dir)")
	}
	logDir, err := logging.FindLogDir(a.cfg.LogDir, a.cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("finding log directory: %w", err)
	}
	logPath := filepath.Join(logDir, appdir.LogFile)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(stdout, "No log file found.")
		return nil
	}
	if *follow {
		fmt.Fprintf(stderr, "Following %s (Ctrl+C to stop)\n", logPath)
	}
	return logging.TailLog(a.ctx, stdout, logPath, *n, *follow)
}
