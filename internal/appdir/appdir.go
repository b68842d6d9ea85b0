// Package appdir provides constants and utilities for taskdeck's file layout.
package appdir

import "path/filepath"

const (
	// Name is the application name used for OS config directories.
	Name = "taskdeck"

	// Dir is the name of the per-user taskdeck directory (inside $HOME).
	Dir = ".taskdeck"

	// DefaultTasksFile is the default tasks file name (inside the project root).
	DefaultTasksFile = "tasks.json"

	// DefaultConfigFile is the config file name.
	DefaultConfigFile = "taskdeck.toml"

	// HiddenConfigFile is the alternate project config file name.
	HiddenConfigFile = ".taskdeck.toml"

	// LogFile is the log file name inside a per-project log directory.
	LogFile = "taskdeck.log"
)

// TasksPath returns the full path to the default tasks file within a work directory.
func TasksPath(workDir string) string {
	return joinPath(workDir, DefaultTasksFile)
}

// ProjectConfigPaths returns the project config candidates in lookup order.
func ProjectConfigPaths(workDir string) []string {
	return []string{
		joinPath(workDir, DefaultConfigFile),
		joinPath(workDir, HiddenConfigFile),
	}
}

// UserDirPath returns the per-user taskdeck directory under home.
func UserDirPath(home string) string {
	return filepath.Join(home, Dir)
}

// UserConfigPath returns the preferred user config file under home.
func UserConfigPath(home string) string {
	return filepath.Join(home, Dir, DefaultConfigFile)
}

func joinPath(workDir, file string) string {
	if workDir == "." || workDir == "" {
		return file
	}
	return filepath.Join(workDir, file)
}
