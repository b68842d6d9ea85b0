package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nibzard/taskdeck/internal/todo"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error", "fatal"}
	validLogFormats = []string{"text", "json", "logfmt"}
)

// Validate reports every invalid value in c.
func (c *Config) Validate() error {
	var errs []error
	if _, err := todo.ParsePriority(c.DefaultPriority); err != nil {
		errs = append(errs, fmt.Errorf("default_priority: %w", err))
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("log_level: unknown level %q (expected debug, info, warn, error)", c.LogLevel))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		errs = append(errs, fmt.Errorf("log_format: unknown format %q (expected text, json, logfmt)", c.LogFormat))
	}
	if c.UI.RefreshSeconds < 0 {
		errs = append(errs, fmt.Errorf("ui.refresh_seconds: must not be negative, got %d", c.UI.RefreshSeconds))
	}
	return errors.Join(errs...)
}
