package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nibzard/taskdeck/internal/config"
)

// configCommand prints the effective configuration.
func (a *app) configCommand(args []string) error {
	fs := newFlagSet("config")
	showSources := fs.Bool("sources", false, "Show where each value came from")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch fs.Arg(0) {
	case "":
	case "example":
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s", fs.Arg(0))
	}

	if *showSources {
		return a.printSources()
	}
	fmt.Fprintf(stdout, "# project root: %s\n", a.cfg.ProjectRoot)
	for _, f := range a.sources.Files {
		fmt.Fprintf(stdout, "# loaded: %s\n", f)
	}
	return a.cfg.Encode(stdout)
}

func (a *app) printSources() error {
	values := map[string]any{
		"tasks_file":         a.cfg.TasksFile,
		"log_dir":            a.cfg.LogDir,
		"default_priority":   a.cfg.DefaultPriority,
		"hook_command":       a.cfg.HookCommand,
		"log_level":          a.cfg.LogLevel,
		"log_format":         a.cfg.LogFormat,
		"log_timestamps":     a.cfg.LogTimestamps,
		"log_caller":         a.cfg.LogCaller,
		"ui.clock":           a.cfg.UI.Clock,
		"ui.refresh_seconds": a.cfg.UI.RefreshSeconds,
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, key := range config.Fields() {
		fmt.Fprintf(tw, "%s\t%v\t%s\n", key, values[key], a.sources.Sources[key])
	}
	return tw.Flush()
}
