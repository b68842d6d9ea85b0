package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBlankText is returned when a task text is empty or whitespace only.
	ErrBlankText = errors.New("task text is blank")
	// ErrTaskNotFound is returned when no task has the requested ID.
	ErrTaskNotFound = errors.New("task not found")
	// ErrIndexOutOfRange is returned for positions outside the sequence.
	ErrIndexOutOfRange = errors.New("task index out of range")
	// ErrAmbiguousRef is returned when an ID prefix matches several tasks.
	ErrAmbiguousRef = errors.New("ambiguous task reference")
	// ErrInvalidStatus is returned for a status outside Open, In Progress and Done.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidPriority is returned for a priority outside Low, Medium and High.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrCorrupt is matched by every *CorruptError.
	ErrCorrupt = errors.New("tasks file is corrupted")
)

// IndexError reports a position outside a sequence of Len tasks.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, %d tasks", ErrIndexOutOfRange, e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ValidationError represents a structural problem at a location in the file.
type ValidationError struct {
	Path string // location, e.g. "[0].status"
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CorruptError reports a tasks file that could not be decoded or that does
// not match the expected structure.
type CorruptError struct {
	Path     string
	Problems []*ValidationError
	Err      error
}

func (e *CorruptError) Error() string {
	var b strings.Builder
	b.WriteString(ErrCorrupt.Error())
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	for i, p := range e.Problems {
		if i == 0 && e.Err == nil {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(p.Error())
	}
	return b.String()
}

// Unwrap returns the decode error, if any.
func (e *CorruptError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCorrupt.
func (e *CorruptError) Is(target error) bool {
	return target == ErrCorrupt
}
