package config

import (
	"github.com/nibzard/taskdeck/internal/appdir"
	"github.com/nibzard/taskdeck/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, user file first.
	Files []string
}

// Default values.
const (
	DefaultTasksFile      = appdir.DefaultTasksFile
	DefaultPriority       = string(todo.DefaultPriority)
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultClock          = true
	DefaultRefreshSeconds = 1
)

// Config holds the full configuration for taskdeck.
type Config struct {
	// Paths
	TasksFile string `toml:"tasks_file"`
	LogDir    string `toml:"log_dir"`

	// Priority given to new tasks when none is chosen
	DefaultPriority string `toml:"default_priority"`

	// Hook command run after every saved change
	HookCommand string `toml:"hook_command"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	UI UIConfig `toml:"ui"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Clock          bool `toml:"clock"`
	RefreshSeconds int  `toml:"refresh_seconds"`
}

// Priority returns the configured default priority, falling back to Medium.
func (c *Config) Priority() todo.Priority {
	p, err := todo.ParsePriority(c.DefaultPriority)
	if err != nil {
		return todo.DefaultPriority
	}
	return p
}

// Fields returns the configurable keys in display order.
func Fields() []string {
	return []string{
		"tasks_file",
		"log_dir",
		"default_priority",
		"hook_command",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"ui.clock",
		"ui.refresh_seconds",
	}
}
