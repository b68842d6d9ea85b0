package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MinIDPrefix is the shortest ID prefix accepted by ResolveRef.
const MinIDPrefix = 4

// ErrRefRequired indicates no task reference was provided.
var ErrRefRequired = errors.New("task reference required")

// ResolveRef resolves a user-supplied reference to a task.
//
// A reference is either a 1-based position in tasks (all digits), or a
// prefix of a task ID at least MinIDPrefix characters long. All-digit
// references of MinIDPrefix or more characters are tried both ways; if the
// position and the ID prefix point at different tasks the reference is
// ambiguous.
func ResolveRef(tasks []Task, ref string) (Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Task{}, ErrRefRequired
	}

	if !isAllDigits(ref) {
		if len(ref) < MinIDPrefix {
			return Task{}, fmt.Errorf("invalid task reference: %s (ID prefixes need at least %d characters)", ref, MinIDPrefix)
		}
		return resolveIDPrefix(tasks, ref)
	}

	byPos, posErr := resolvePosition(tasks, ref)
	if len(ref) < MinIDPrefix {
		return byPos, posErr
	}
	matches := matchIDPrefix(tasks, ref)
	switch {
	case len(matches) == 0:
		return byPos, posErr
	case posErr != nil && len(matches) == 1:
		return matches[0], nil
	case posErr == nil && len(matches) == 1 && matches[0].ID == byPos.ID:
		return byPos, nil
	case posErr == nil:
		return Task{}, fmt.Errorf("%w: %s is both a position and an ID prefix of another task", ErrAmbiguousRef, ref)
	default:
		return Task{}, fmt.Errorf("%w: %s matches %d tasks", ErrAmbiguousRef, ref, len(matches))
	}
}

func resolvePosition(tasks []Task, ref string) (Task, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return Task{}, fmt.Errorf("invalid task reference: %s", ref)
	}
	task, err := At(tasks, n-1)
	if err != nil {
		return Task{}, fmt.Errorf("task #%d: %w", n, err)
	}
	return task, nil
}

func resolveIDPrefix(tasks []Task, ref string) (Task, error) {
	matches := matchIDPrefix(tasks, ref)
	switch len(matches) {
	case 0:
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return Task{}, fmt.Errorf("%w: %s matches %d tasks", ErrAmbiguousRef, ref, len(matches))
	}
}

func matchIDPrefix(tasks []Task, prefix string) []Task {
	var matches []Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}
	return matches
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
