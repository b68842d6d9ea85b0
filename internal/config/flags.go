package config

import "flag"

// parseFlags defines the global flags on fs, parses args and applies the
// flags that were explicitly set.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskdeck", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.TasksFile, "file", cfg.TasksFile, "Path to the tasks file")
	fs.StringVar(&cfg.DefaultPriority, "default-priority", cfg.DefaultPriority, "Priority for new tasks (Low, Medium, High)")
	fs.StringVar(&cfg.HookCommand, "hook", cfg.HookCommand, "Hook command to run after each saved change")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory (empty disables the log file)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")
	fs.BoolVar(&cfg.UI.Clock, "clock", cfg.UI.Clock, "Show the clock in the terminal UI")

	if err := fs.Parse(args); err != nil {
		return err
	}

	flagToSource := map[string]string{
		"file":             "tasks_file",
		"default-priority": "default_priority",
		"hook":             "hook_command",
		"log-dir":          "log_dir",
		"log-level":        "log_level",
		"log-format":       "log_format",
		"log-timestamps":   "log_timestamps",
		"log-caller":       "log_caller",
		"clock":            "ui.clock",
	}
	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagToSource[f.Name]; ok {
			sources[field] = SourceFlag
		}
	})
	return nil
}
