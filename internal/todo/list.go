package todo

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Overridden in tests.
var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC() }
)

// Summary aggregates a task sequence. Open counts every task that is not
// Done, so In Progress tasks are included.
type Summary struct {
	Total       int `json:"total"`
	Done        int `json:"done"`
	Open        int `json:"open"`
	PercentDone int `json:"percent_done"`
}

// NewTask builds a task with a fresh ID, status Open and timestamps set.
// An empty priority becomes DefaultPriority.
func NewTask(text string, priority Priority) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrBlankText
	}
	if priority == "" {
		priority = DefaultPriority
	}
	if !priority.Valid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	ts := now()
	return Task{
		ID:        newID(),
		Text:      text,
		Status:    StatusOpen,
		Priority:  priority,
		CreatedAt: &ts,
		UpdatedAt: &ts,
	}, nil
}

// Add appends a new task to a copy of tasks and returns the copy together
// with the new task. Blank text is rejected with ErrBlankText.
func Add(tasks []Task, text string, priority Priority) ([]Task, Task, error) {
	task, err := NewTask(text, priority)
	if err != nil {
		return tasks, Task{}, err
	}
	return append(slices.Clip(tasks), task), task, nil
}

// UpdateStatus replaces the status of the task with the given ID.
func UpdateStatus(tasks []Task, id string, status Status) ([]Task, error) {
	if !status.Valid() {
		return tasks, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return update(tasks, id, func(t *Task) {
		t.Status = status
	})
}

// EditText replaces the text of the task with the given ID. Blank text is
// rejected with ErrBlankText and leaves tasks untouched.
func EditText(tasks []Task, id string, text string) ([]Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return tasks, ErrBlankText
	}
	return update(tasks, id, func(t *Task) {
		t.Text = text
	})
}

// Delete removes the task with the given ID. Later tasks shift down by one.
func Delete(tasks []Task, id string) ([]Task, error) {
	i := IndexOf(tasks, id)
	if i < 0 {
		return tasks, ErrTaskNotFound
	}
	return slices.Delete(slices.Clone(tasks), i, i+1), nil
}

func update(tasks []Task, id string, fn func(*Task)) ([]Task, error) {
	i := IndexOf(tasks, id)
	if i < 0 {
		return tasks, ErrTaskNotFound
	}
	out := slices.Clone(tasks)
	fn(&out[i])
	ts := now()
	out[i].UpdatedAt = &ts
	return out, nil
}

// IndexOf returns the position of the task with the given ID, or -1.
func IndexOf(tasks []Task, id string) int {
	return slices.IndexFunc(tasks, func(t Task) bool {
		return t.ID == id
	})
}

// At returns the task at a zero-based position.
func At(tasks []Task, index int) (Task, error) {
	if index < 0 || index >= len(tasks) {
		return Task{}, &IndexError{Index: index, Len: len(tasks)}
	}
	return tasks[index], nil
}

// Filter returns the tasks with the given status in their original order.
// The zero Status means "all" and returns tasks unchanged.
func Filter(tasks []Task, status Status) []Task {
	if status == "" {
		return tasks
	}
	var filtered []Task
	for _, t := range tasks {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Summarize counts tasks and computes the completion percentage, rounded
// down. An empty sequence yields the zero Summary.
func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == StatusDone {
			s.Done++
		}
	}
	s.Open = s.Total - s.Done
	if s.Total > 0 {
		s.PercentDone = s.Done * 100 / s.Total
	}
	return s
}

// Counts returns the number of tasks per status. Every known status is
// present in the result.
func Counts(tasks []Task) map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}
