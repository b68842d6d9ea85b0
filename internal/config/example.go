package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# taskdeck configuration file
# Values can be overridden by TASKDECK_* environment variables or CLI flags

# Tasks file (relative to the project root)
tasks_file = "tasks.json"

# Priority given to new tasks: Low, Medium or High
default_priority = "Medium"

# Hook command run after every saved change.
# Called as: <hook> <action> <task-id> <tasks-file>
# hook_command = "/path/to/hook.sh"

# Log directory (supports ~ expansion and %VAR% on Windows).
# Leave empty to log to stderr only.
# log_dir = "~/.taskdeck"

# Logging: debug, info, warn, error
log_level = "info"
# Log format: text, json, logfmt
log_format = "text"
log_timestamps = false
log_caller = false

[ui]
# Show the clock in the terminal UI header
clock = true
# Clock refresh interval (seconds)
refresh_seconds = 1
`
}
