package todo

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Next returns the status that follows s in the Open -> In Progress -> Done cycle.
func (s Status) Next() Status {
	switch s {
	case StatusOpen:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusOpen
	}
}

// ParseStatus parses user input into a Status. Matching is case-insensitive
// and accepts a few common aliases.
func ParseStatus(input string) (Status, error) {
	switch normalize(input) {
	case "open", "todo":
		return StatusOpen, nil
	case "in progress", "in-progress", "in_progress", "inprogress", "progress", "doing":
		return StatusInProgress, nil
	case "done", "closed":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q (expected open, in-progress or done)", ErrInvalidStatus, input)
}

// Priority represents the user-assigned urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// DefaultPriority is applied when a task is created without one.
const DefaultPriority = PriorityMedium

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Next returns the priority that follows p, wrapping from High to Low.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// ParsePriority parses user input into a Priority. An empty input yields
// DefaultPriority.
func ParsePriority(input string) (Priority, error) {
	switch normalize(input) {
	case "":
		return DefaultPriority, nil
	case "low", "l":
		return PriorityLow, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("%w: %q (expected low, medium or high)", ErrInvalidPriority, input)
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Task represents a single to-do item.
type Task struct {
	ID        string     `json:"id" yaml:"id"`
	Text      string     `json:"text" yaml:"text"`
	Status    Status     `json:"status" yaml:"status"`
	Priority  Priority   `json:"priority" yaml:"priority"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ShortID returns the first eight characters of the task ID.
func (t Task) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}

// IsZero returns true if the task is empty (has no ID).
func (t Task) IsZero() bool {
	return t.ID == ""
}
