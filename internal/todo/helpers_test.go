package todo

import (
	"fmt"
	"testing"
	"time"
)

// stubIDs makes newID and now deterministic for the duration of a test.
func stubIDs(t *testing.T) {
	t.Helper()
	origID, origNow := newID, now
	n := 0
	newID = func() string {
		n++
		return fmt.Sprintf("task-%04d-0000-0000-000000000000", n)
	}
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() {
		newID, now = origID, origNow
	})
}

func mustAdd(t *testing.T, tasks []Task, text string, p Priority) []Task {
	t.Helper()
	out, _, err := Add(tasks, text, p)
	if err != nil {
		t.Fatalf("Add(%q): %v", text, err)
	}
	return out
}

func texts(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Text
	}
	return out
}
