package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvTasksFile       = "TASKDECK_FILE"
	EnvDefaultPriority = "TASKDECK_DEFAULT_PRIORITY"
	EnvHook            = "TASKDECK_HOOK"
	EnvLogDir          = "TASKDECK_LOG_DIR"
	EnvLogLevel        = "TASKDECK_LOG_LEVEL"
	EnvLogFormat       = "TASKDECK_LOG_FORMAT"
	EnvLogTimestamps   = "TASKDECK_LOG_TIMESTAMPS"
	EnvLogCaller       = "TASKDECK_LOG_CALLER"
	EnvClock           = "TASKDECK_CLOCK"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) error {
		v := os.Getenv(env)
		if v == "" {
			return nil
		}
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
		*target = b
		sources[field] = SourceEnv
		return nil
	}

	setString(EnvTasksFile, "tasks_file", &cfg.TasksFile)
	setString(EnvDefaultPriority, "default_priority", &cfg.DefaultPriority)
	setString(EnvHook, "hook_command", &cfg.HookCommand)
	setString(EnvLogDir, "log_dir", &cfg.LogDir)
	setString(EnvLogLevel, "log_level", &cfg.LogLevel)
	setString(EnvLogFormat, "log_format", &cfg.LogFormat)

	if err := setBool(EnvLogTimestamps, "log_timestamps", &cfg.LogTimestamps); err != nil {
		return err
	}
	if err := setBool(EnvLogCaller, "log_caller", &cfg.LogCaller); err != nil {
		return err
	}
	return setBool(EnvClock, "ui.clock", &cfg.UI.Clock)
}

// parseBool accepts the strconv forms plus yes/no and on/off.
func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}
