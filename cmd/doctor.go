package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nibzard/taskdeck/internal/logging"
	"github.com/nibzard/taskdeck/internal/todo"
	"github.com/nibzard/taskdeck/internal/utils"
)

// doctorCommand checks config, the tasks file, the log dir and the hook.
func (a *app) doctorCommand(args []string) error {
	flags := newFlagSet("doctor")
	verbose := flags.Bool("v", false, "Verbose output")
	if err := flags.Parse(args); err != nil {
		return err
	}

	fmt.Fprintln(stdout, bold("taskdeck doctor"))
	fmt.Fprintln(stdout, "===============")
	fmt.Fprintln(stdout)

	allOK := true
	check := func(ok bool) {
		allOK = allOK && ok
	}

	check(a.checkProjectRoot())
	check(a.checkConfig(*verbose))
	check(a.checkTasksFile(*verbose))
	check(a.checkLogDir())
	check(a.checkHook())

	if allOK {
		fmt.Fprintln(stdout, green("✅ All checks passed!"))
		return nil
	}
	fmt.Fprintln(stdout, yellow("⚠️  Some checks failed."))
	return fmt.Errorf("doctor checks failed")
}

func okLine(format string, args ...any) {
	fmt.Fprintf(stdout, "  %s %s\n", green("✅"), fmt.Sprintf(format, args...))
}

func warnLine(format string, args ...any) {
	fmt.Fprintf(stdout, "  %s %s\n", yellow("⚠️ "), fmt.Sprintf(format, args...))
}

func failLine(format string, args ...any) {
	fmt.Fprintf(stdout, "  %s %s\n", red("❌"), fmt.Sprintf(format, args...))
}

func (a *app) checkProjectRoot() bool {
	defer fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Project root: %s\n", a.cfg.ProjectRoot)
	if _, err := os.Stat(a.cfg.ProjectRoot); err != nil {
		failLine("Error: %v", err)
		return false
	}
	okLine("OK")
	return true
}

func (a *app) checkConfig(verbose bool) bool {
	defer fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Config:")
	if len(a.sources.Files) == 0 {
		okLine("No config files (using defaults)")
	}
	for _, f := range a.sources.Files {
		okLine("Loaded %s", f)
	}
	if err := a.cfg.Validate(); err != nil {
		failLine("Invalid: %v", err)
		return false
	}
	if verbose {
		okLine("Default priority: %s", a.cfg.Priority())
		okLine("Log level: %s (%s)", a.cfg.LogLevel, a.cfg.LogFormat)
	}
	return true
}

func (a *app) checkTasksFile(verbose bool) bool {
	defer fmt.Fprintln(stdout)
	path := a.cfg.TasksFile
	fmt.Fprintf(stdout, "Tasks file: %s\n", path)

	tasks, err := todo.ReadFile(path)
	var corrupt *todo.CorruptError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		warnLine("Not found (it is created on the first change; run 'taskdeck init' to create it now)")
		return true
	case errors.As(err, &corrupt):
		failLine("Corrupt: the file cannot be loaded and would be treated as empty")
		if corrupt.Err != nil {
			fmt.Fprintf(stdout, "      %v\n", corrupt.Err)
		}
		for _, p := range corrupt.Problems {
			fmt.Fprintf(stdout, "      %s\n", p)
		}
		return false
	case err != nil:
		failLine("Error: %v", err)
		return false
	}

	if len(tasks) == 0 {
		okLine("Valid (empty)")
		return true
	}
	counts := todo.Counts(tasks)
	okLine("Valid: %d tasks (Open %d, In Progress %d, Done %d)",
		len(tasks), counts[todo.StatusOpen], counts[todo.StatusInProgress], counts[todo.StatusDone])
	if verbose {
		okLine("%s", summaryLine(todo.Summarize(tasks)))
	}
	return true
}

func (a *app) checkLogDir() bool {
	defer fmt.Fprintln(stdout)
	if a.cfg.LogDir == "" {
		fmt.Fprintln(stdout, "Log directory: (not configured)")
		okLine("Logging to stderr only")
		return true
	}
	logDir, err := logging.FindLogDir(a.cfg.LogDir, a.cfg.ProjectRoot)
	if err != nil {
		fmt.Fprintf(stdout, "Log directory: %s\n", a.cfg.LogDir)
		failLine("Error: %v", err)
		return false
	}
	fmt.Fprintf(stdout, "Log directory: %s\n", logDir)
	info, err := os.Stat(logDir)
	if err != nil {
		failLine("Error: %v", err)
		return false
	}
	if !info.IsDir() {
		failLine("Error: path is not a directory")
		return false
	}
	okLine("OK")
	return true
}

func (a *app) checkHook() bool {
	defer fmt.Fprintln(stdout)
	if a.cfg.HookCommand == "" {
		fmt.Fprintln(stdout, "Hook: (not configured)")
		okLine("OK")
		return true
	}
	fmt.Fprintf(stdout, "Hook: %s\n", a.cfg.HookCommand)
	resolved, err := utils.FindExecutable(a.cfg.HookCommand)
	if err != nil {
		failLine("%v", err)
		return false
	}
	if resolved != a.cfg.HookCommand {
		okLine("OK (found in PATH: %s)", resolved)
		return true
	}
	okLine("OK")
	return true
}
