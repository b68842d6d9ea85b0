package todo

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestOpenMissingFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "tasks.json")

	s := Open(path, WithLogger(newTestLogger(&buf)))
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if !errors.Is(s.LoadErr(), fs.ErrNotExist) {
		t.Errorf("LoadErr() = %v, want fs.ErrNotExist", s.LoadErr())
	}
	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("expected debug log, got %q", buf.String())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("opening must not create the file")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{{{ not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := Open(path, WithLogger(newTestLogger(&buf)))
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if !errors.Is(s.LoadErr(), ErrCorrupt) {
		t.Errorf("LoadErr() = %v, want ErrCorrupt", s.LoadErr())
	}
	if !strings.Contains(buf.String(), "corrupted") {
		t.Errorf("expected warning, got %q", buf.String())
	}

	// The next successful save replaces the corrupt file.
	if _, err := s.Add("fresh start", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.LoadErr() != nil {
		t.Errorf("LoadErr() = %v after save, want nil", s.LoadErr())
	}
	tasks, err := ReadFile(path)
	if err != nil || len(tasks) != 1 {
		t.Errorf("ReadFile = %v, %v", tasks, err)
	}
}

func TestStoreMutationsPersist(t *testing.T) {
	stubIDs(t)
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := Open(path, WithLogger(log.New(&bytes.Buffer{})))

	milk, err := s.Add("Buy milk", PriorityMedium)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	dog, err := s.Add("Walk dog", PriorityHigh)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.UpdateStatus(milk.ID, StatusDone); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	want := Summary{Total: 2, Done: 1, Open: 1, PercentDone: 50}
	if got := s.Summary(); got != want {
		t.Errorf("Summary() = %+v, want %+v", got, want)
	}

	edited, err := s.EditText(dog.ID, "Walk the dog")
	if err != nil {
		t.Fatalf("EditText: %v", err)
	}
	if edited.Text != "Walk the dog" {
		t.Errorf("EditText returned %q", edited.Text)
	}

	// A second store sees exactly what the first one saved.
	reopened := Open(path)
	if !reflect.DeepEqual(reopened.Tasks(), s.Tasks()) {
		t.Errorf("reopened tasks differ:\n got %+v\nwant %+v", reopened.Tasks(), s.Tasks())
	}

	deleted, err := s.Delete(milk.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != milk.ID {
		t.Errorf("Delete returned %q", deleted.ID)
	}
	reopened.Reload()
	if got := texts(reopened.Tasks()); !reflect.DeepEqual(got, []string{"Walk the dog"}) {
		t.Errorf("after delete: %v", got)
	}
}

func TestStoreRejectsInvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := Open(path)

	if _, err := s.Add("   ", ""); !errors.Is(err, ErrBlankText) {
		t.Errorf("Add blank error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rejected input must not save")
	}

	task, err := s.Add("real", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.EditText(task.ID, ""); !errors.Is(err, ErrBlankText) {
		t.Errorf("EditText blank error = %v", err)
	}
	if _, err := s.UpdateStatus("nope", StatusDone); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("UpdateStatus error = %v", err)
	}
	if _, err := s.Delete("nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Delete error = %v", err)
	}
	if got, _ := s.Get(task.ID); got.Text != "real" {
		t.Errorf("task changed: %+v", got)
	}
}

func TestStoreSaveFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	s := Open(path)
	if _, err := s.Add("kept", ""); err != nil {
		t.Fatal(err)
	}

	// Replace the file with a directory so the next write fails.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Add("lost", ""); err == nil {
		t.Fatal("expected save error")
	}
	if got := texts(s.Tasks()); !reflect.DeepEqual(got, []string{"kept"}) {
		t.Errorf("in-memory tasks = %v, want [kept]", got)
	}
}

func TestStoreOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	var changes []Change
	s := Open(path, WithOnChange(func(c Change) {
		changes = append(changes, c)
	}))

	task, _ := s.Add("a", "")
	_, _ = s.UpdateStatus(task.ID, StatusInProgress)
	_, _ = s.EditText(task.ID, "b")
	_, _ = s.Add("", "") // rejected, no change
	_, _ = s.Delete(task.ID)

	var actions []Action
	for _, c := range changes {
		actions = append(actions, c.Action)
		if c.Task.ID != task.ID {
			t.Errorf("change %s has task %q, want %q", c.Action, c.Task.ID, task.ID)
		}
	}
	want := []Action{ActionAdd, ActionStatus, ActionEdit, ActionDelete}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("actions = %v, want %v", actions, want)
	}
	if changes[3].Task.Text != "b" {
		t.Errorf("delete change should carry the removed task, got %+v", changes[3].Task)
	}
}

func TestStoreReadsReturnCopies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := Open(path)
	if _, err := s.Add("a", ""); err != nil {
		t.Fatal(err)
	}

	tasks := s.Tasks()
	tasks[0].Text = "mutated"
	filtered := s.Filter("")
	filtered[0].Text = "mutated"

	if got, _ := s.Resolve("1"); got.Text != "a" {
		t.Errorf("store was mutated through a returned slice: %q", got.Text)
	}
	if s.Counts()[StatusOpen] != 1 {
		t.Errorf("Counts() = %v", s.Counts())
	}
	if s.Path() != path {
		t.Errorf("Path() = %q", s.Path())
	}
}

func TestOpenAssignsStableIDs(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "tasks.json")
	legacy := `[{"text": "Buy milk", "status": "Open", "priority": "High"}, {"text": "Walk dog", "status": "Done"}]`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	first := Open(path, WithLogger(newTestLogger(&buf))).Tasks()
	if !strings.Contains(buf.String(), "assigned IDs") {
		t.Errorf("expected a log line for assigned IDs, got %q", buf.String())
	}

	buf.Reset()
	second := Open(path, WithLogger(newTestLogger(&buf)))
	if !reflect.DeepEqual(second.Tasks(), first) {
		t.Fatalf("IDs changed between loads:\nfirst  %+v\nsecond %+v", first, second.Tasks())
	}
	if strings.Contains(buf.String(), "assigned IDs") {
		t.Error("a file that already has IDs must not be rewritten")
	}

	got, err := second.Resolve(first[0].ShortID())
	if err != nil || got.Text != "Buy milk" {
		t.Errorf("Resolve(%q) = %+v, %v", first[0].ShortID(), got, err)
	}
}

func TestOpenLeavesFilesWithIDsUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[{"id": "abcd-1", "text": "a", "status": "Open", "priority": "Low"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	Open(path, WithLogger(newTestLogger(&bytes.Buffer{})))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("file was rewritten:\n%s", data)
	}
}
