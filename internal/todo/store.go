package todo

import (
	"errors"
	"io/fs"
	"slices"

	"github.com/charmbracelet/log"
)

// Action names the kind of mutation reported in a Change.
type Action string

const (
	ActionAdd    Action = "add"
	ActionStatus Action = "status"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Change describes a mutation that has been saved.
type Change struct {
	Action Action
	Task   Task // state after the change; state before it for ActionDelete
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithOnChange registers a callback invoked after every successful save.
func WithOnChange(fn func(Change)) StoreOption {
	return func(s *Store) {
		s.onChange = fn
	}
}

// Store owns the ordered task sequence and the file it is persisted to.
// Every mutation is followed by a full save; the in-memory sequence is only
// replaced once that save succeeds.
//
// A Store is meant for a single reader/writer and does no locking.
type Store struct {
	path     string
	tasks    []Task
	loadErr  error
	logger   *log.Logger
	onChange func(Change)
}

// Open creates a Store for path and loads it. Load failures are recovered:
// the store starts empty and the condition is logged and kept in LoadErr.
func Open(path string, opts ...StoreOption) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.load()
	return s
}

// Path returns the tasks file path.
func (s *Store) Path() string {
	return s.path
}

// LoadErr returns the condition recovered from during the last load, or nil.
func (s *Store) LoadErr() error {
	return s.loadErr
}

// Reload discards the in-memory sequence and loads the file again.
func (s *Store) Reload() {
	s.load()
}

func (s *Store) load() {
	tasks, assigned, err := readFile(s.path)
	s.loadErr = err
	switch {
	case err == nil:
		s.tasks = tasks
		if assigned > 0 {
			s.persistAssignedIDs(assigned)
		}
		return
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debug("tasks file not found, starting empty", "path", s.path)
	case errors.Is(err, ErrCorrupt):
		s.logger.Warn("failed to load tasks, file might be corrupted", "path", s.path, "err", err)
	default:
		s.logger.Warn("failed to load tasks", "path", s.path, "err", err)
	}
	s.tasks = nil
}

// persistAssignedIDs writes back IDs given to tasks that had none, so the
// same IDs are seen by the next load.
func (s *Store) persistAssignedIDs(n int) {
	if err := WriteFile(s.path, s.tasks); err != nil {
		s.logger.Warn("failed to save assigned task IDs", "path", s.path, "count", n, "err", err)
		return
	}
	s.logger.Info("assigned IDs to tasks without one", "path", s.path, "count", n)
}

// Save writes the full sequence to the tasks file.
func (s *Store) Save() error {
	return WriteFile(s.path, s.tasks)
}

// Tasks returns a copy of the ordered sequence.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (Task, error) {
	i := IndexOf(s.tasks, id)
	if i < 0 {
		return Task{}, ErrTaskNotFound
	}
	return s.tasks[i], nil
}

// IndexOf returns the zero-based position of the task with the given ID, or -1.
func (s *Store) IndexOf(id string) int {
	return IndexOf(s.tasks, id)
}

// Resolve resolves a position or ID prefix; see ResolveRef.
func (s *Store) Resolve(ref string) (Task, error) {
	return ResolveRef(s.tasks, ref)
}

// Filter returns the tasks with the given status; "" returns all tasks.
func (s *Store) Filter(status Status) []Task {
	return slices.Clone(Filter(s.tasks, status))
}

// Summary summarizes the current sequence.
func (s *Store) Summary() Summary {
	return Summarize(s.tasks)
}

// Counts returns per-status counts.
func (s *Store) Counts() map[Status]int {
	return Counts(s.tasks)
}

// Add appends a new task and saves.
func (s *Store) Add(text string, priority Priority) (Task, error) {
	tasks, task, err := Add(s.tasks, text, priority)
	if err != nil {
		return Task{}, err
	}
	if err := s.commit(tasks, Change{Action: ActionAdd, Task: task}); err != nil {
		return Task{}, err
	}
	return task, nil
}

// UpdateStatus sets the status of a task and saves.
func (s *Store) UpdateStatus(id string, status Status) (Task, error) {
	tasks, err := UpdateStatus(s.tasks, id, status)
	if err != nil {
		return Task{}, err
	}
	task := tasks[IndexOf(tasks, id)]
	if err := s.commit(tasks, Change{Action: ActionStatus, Task: task}); err != nil {
		return Task{}, err
	}
	return task, nil
}

// EditText replaces the text of a task and saves.
func (s *Store) EditText(id string, text string) (Task, error) {
	tasks, err := EditText(s.tasks, id, text)
	if err != nil {
		return Task{}, err
	}
	task := tasks[IndexOf(tasks, id)]
	if err := s.commit(tasks, Change{Action: ActionEdit, Task: task}); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Delete removes a task and saves.
func (s *Store) Delete(id string) (Task, error) {
	old, err := s.Get(id)
	if err != nil {
		return Task{}, err
	}
	tasks, err := Delete(s.tasks, id)
	if err != nil {
		return Task{}, err
	}
	if err := s.commit(tasks, Change{Action: ActionDelete, Task: old}); err != nil {
		return Task{}, err
	}
	return old, nil
}

func (s *Store) commit(tasks []Task, change Change) error {
	if err := WriteFile(s.path, tasks); err != nil {
		return err
	}
	s.tasks = tasks
	s.loadErr = nil
	if s.onChange != nil {
		s.onChange(change)
	}
	return nil
}
