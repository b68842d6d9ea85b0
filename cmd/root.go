// Package cmd implements the CLI command structure for taskdeck.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/taskdeck/internal/config"
	"github.com/nibzard/taskdeck/internal/hooks"
	"github.com/nibzard/taskdeck/internal/logging"
	"github.com/nibzard/taskdeck/internal/todo"
	"github.com/nibzard/taskdeck/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// app carries what every command needs once configuration is loaded.
type app struct {
	ctx     context.Context
	cfg     *config.Config
	sources *config.ConfigWithSources
	logger  *log.Logger
	logFile *logging.File
}

// Run executes the taskdeck CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskdeck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	a, err := newApp(ctx, cws)
	if err != nil {
		return err
	}
	defer a.close()

	// With no subcommand, open the TUI on a terminal and list tasks otherwise.
	remaining := fs.Args()
	subcommand := "ls"
	if ui.IsTTY(os.Stdout) && stdout == os.Stdout {
		subcommand = "tui"
	}
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	err = a.dispatch(subcommand, remaining, fs)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (a *app) dispatch(subcommand string, args []string, fs *flag.FlagSet) error {
	switch subcommand {
	case "add":
		return a.addCommand(args)
	case "ls", "list":
		return a.lsCommand(args)
	case "edit":
		return a.editCommand(args)
	case "status":
		return a.statusCommand(args)
	case "start":
		return a.setStatusCommand("start", todo.StatusInProgress, args)
	case "done":
		return a.setStatusCommand("done", todo.StatusDone, args)
	case "reopen":
		return a.setStatusCommand("reopen", todo.StatusOpen, args)
	case "rm", "delete":
		return a.rmCommand(args)
	case "summary":
		return a.summaryCommand(args)
	case "tui":
		return a.tuiCommand(args)
	case "export":
		return a.exportCommand(args)
	case "init":
		return a.initCommand(args)
	case "doctor":
		return a.doctorCommand(args)
	case "config":
		return a.configCommand(args)
	case "logs", "tail":
		return a.logsCommand(args)
	case "completion":
		return completionCommand(args)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newApp builds the logger described by the config. Log lines go to stderr
// and, when log_dir is set, to the project's log file as well.
func newApp(ctx context.Context, cws *config.ConfigWithSources) (*app, error) {
	cfg := cws.Config
	a := &app{ctx: ctx, cfg: cfg, sources: cws}

	var w io.Writer = stderr
	if cfg.LogDir != "" {
		f, err := logging.OpenFile(cfg.LogDir, cfg.ProjectRoot)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
		w = io.MultiWriter(stderr, f.Writer())
	}

	logger, err := logging.New(w, a.logOptions())
	if err != nil {
		a.close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	a.logger = logger
	return a, nil
}

func (a *app) logOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = a.cfg.LogLevel
	opts.Format = a.cfg.LogFormat
	opts.Timestamps = a.cfg.LogTimestamps
	opts.Caller = a.cfg.LogCaller
	return opts
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// openStore loads the tasks file with the app logger and hook wired in.
func (a *app) openStore() *todo.Store {
	return a.openStoreWith(a.logger, nil, nil)
}

func (a *app) openStoreWith(logger *log.Logger, hookOut, hookErr io.Writer) *todo.Store {
	if hookOut == nil {
		hookOut = stdout
	}
	if hookErr == nil {
		hookErr = stderr
	}
	onChange := hooks.Notifier(a.ctx, logger, hooks.Options{
		Command:   a.cfg.HookCommand,
		TasksPath: a.cfg.TasksFile,
		WorkDir:   a.cfg.ProjectRoot,
		Stdout:    hookOut,
		Stderr:    hookErr,
	})
	opts := []todo.StoreOption{todo.WithLogger(logger)}
	if onChange != nil {
		opts = append(opts, todo.WithOnChange(onChange))
	}
	return todo.Open(a.cfg.TasksFile, opts...)
}

// newFlagSet returns a subcommand flag set that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("taskdeck "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Fprintf(stdout, "taskdeck version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "taskdeck - a small to-do list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskdeck [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                      Launch the terminal UI (default on a terminal)")
	fmt.Fprintln(w, "  add [-p priority] TEXT   Add a task")
	fmt.Fprintln(w, "  ls [-status s] [-v]      List tasks (default when not on a terminal)")
	fmt.Fprintln(w, "  edit REF TEXT            Replace the text of a task")
	fmt.Fprintln(w, "  status REF STATUS        Set status (Open, \"In Progress\", Done)")
	fmt.Fprintln(w, "  start REF                Mark a task In Progress")
	fmt.Fprintln(w, "  done REF                 Mark a task Done")
	fmt.Fprintln(w, "  reopen REF               Mark a task Open")
	fmt.Fprintln(w, "  rm REF                   Delete a task")
	fmt.Fprintln(w, "  summary [-json]          Show task counters")
	fmt.Fprintln(w, "  export [-format f] [-o path]  Export tasks as json or yaml")
	fmt.Fprintln(w, "  init                     Create the tasks file and taskdeck.toml")
	fmt.Fprintln(w, "  doctor [-v]              Check config, tasks file, log dir and hook")
	fmt.Fprintln(w, "  config [-sources|example]  Show the effective configuration")
	fmt.Fprintln(w, "  logs [-n N] [-f]         Show the project log file")
	fmt.Fprintln(w, "  completion SHELL         Print a shell completion script")
	fmt.Fprintln(w, "  version                  Show version information")
	fmt.Fprintln(w, "  help                     Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "REF is a 1-based position as shown by ls, or a task ID prefix (4+ characters).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(stderr)
}
