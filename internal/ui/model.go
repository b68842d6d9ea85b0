package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/taskdeck/internal/todo"
)

// blankTaskWarning is shown when an empty task is submitted.
const blankTaskWarning = "Please enter a task!"

type inputMode int

const (
	modeList inputMode = iota
	modeAdd
	modeEdit
)

type tuiModel struct {
	store *todo.Store
	cfg   tuiConfig
	now   func() time.Time
	clock time.Time

	filter   todo.Status
	cursor   int
	showHelp bool

	mode     inputMode
	input    textinput.Model
	priority todo.Priority
	editID   string

	message  string
	isError  bool
	quitting bool
}

type tickMsg time.Time

func newTUIModel(store *todo.Store, cfg tuiConfig) *tuiModel {
	m := &tuiModel{
		store:    store,
		cfg:      cfg,
		now:      time.Now,
		priority: cfg.defaultPriority,
		input:    newTextInput(),
	}
	m.clock = m.now()
	if err := store.LoadErr(); err != nil && errors.Is(err, todo.ErrCorrupt) {
		m.setError(fmt.Errorf("failed to load tasks, file might be corrupted: %w", err))
	}
	return m
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.PromptStyle = promptStyle
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func (m *tuiModel) Init() tea.Cmd {
	if !m.cfg.clock {
		return nil
	}
	return tickCmd(m.cfg.tickInterval)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode != modeList {
			return m, m.updateInput(msg)
		}
		return m.updateList(msg)
	case tickMsg:
		m.clock = time.Time(msg)
		return m, tickCmd(m.cfg.tickInterval)
	}
	if m.mode != modeList {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *tuiModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "h", "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "h", "?":
		m.showHelp = true
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.visible()) - 1
		m.clampCursor()
	case "a":
		return m, m.startInput(modeAdd, "")
	case "e", "enter":
		if task, ok := m.selected(); ok {
			m.editID = task.ID
			return m, m.startInput(modeEdit, task.Text)
		}
	case " ", "s":
		if task, ok := m.selected(); ok {
			m.setStatus(task, task.Status.Next())
		}
	case "o":
		m.setSelectedStatus(todo.StatusOpen)
	case "p":
		m.setSelectedStatus(todo.StatusInProgress)
	case "c":
		m.setSelectedStatus(todo.StatusDone)
	case "d", "x", "delete":
		m.deleteSelected()
	case "r", "f5":
		m.store.Reload()
		m.clampCursor()
		if err := m.store.LoadErr(); err != nil && errors.Is(err, todo.ErrCorrupt) {
			m.setError(err)
		} else {
			m.setInfo(fmt.Sprintf("Reloaded %d tasks", m.store.Len()))
		}
	case "0":
		m.setFilter("")
	case "1":
		m.setFilter(todo.StatusOpen)
	case "2":
		m.setFilter(todo.StatusInProgress)
	case "3":
		m.setFilter(todo.StatusDone)
	}
	return m, nil
}

// updateInput handles enter, esc and the priority keys; everything else goes
// to the line editor.
func (m *tuiModel) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.submitInput()
		return nil
	case tea.KeyEsc:
		m.stopInput()
		m.setInfo("Cancelled")
		return nil
	case tea.KeyTab:
		if m.mode == modeAdd {
			m.priority = m.priority.Next()
		}
		return nil
	case tea.KeyShiftTab:
		if m.mode == modeAdd {
			m.priority = m.priority.Next().Next()
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *tuiModel) startInput(mode inputMode, text string) tea.Cmd {
	m.mode = mode
	m.priority = m.cfg.defaultPriority
	m.message = ""
	m.input.Prompt = "New task: "
	if mode == modeEdit {
		m.input.Prompt = "Edit task: "
	}
	m.input.Reset()
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *tuiModel) stopInput() {
	m.mode = modeList
	m.input.Blur()
	m.input.Reset()
	m.editID = ""
}

func (m *tuiModel) submitInput() {
	text := m.input.Value()
	switch m.mode {
	case modeAdd:
		task, err := m.store.Add(text, m.priority)
		if errors.Is(err, todo.ErrBlankText) {
			m.setWarning(blankTaskWarning)
			return
		}
		if err != nil {
			m.setError(err)
			return
		}
		m.stopInput()
		m.selectID(task.ID)
		m.setInfo(fmt.Sprintf("Added task #%d", m.store.IndexOf(task.ID)+1))
	case modeEdit:
		_, err := m.store.EditText(m.editID, text)
		if errors.Is(err, todo.ErrBlankText) {
			m.setWarning(blankTaskWarning)
			return
		}
		if err != nil {
			m.setError(err)
			return
		}
		id := m.editID
		m.stopInput()
		m.selectID(id)
		m.setInfo("Task updated")
	}
}

func (m *tuiModel) setSelectedStatus(status todo.Status) {
	if task, ok := m.selected(); ok {
		m.setStatus(task, status)
	}
}

func (m *tuiModel) setStatus(task todo.Task, status todo.Status) {
	updated, err := m.store.UpdateStatus(task.ID, status)
	if err != nil {
		m.setError(err)
		return
	}
	m.clampCursor()
	m.setInfo(fmt.Sprintf("Task #%d is now %s", m.store.IndexOf(updated.ID)+1, updated.Status))
}

func (m *tuiModel) deleteSelected() {
	task, ok := m.selected()
	if !ok {
		return
	}
	if _, err := m.store.Delete(task.ID); err != nil {
		m.setError(err)
		return
	}
	m.clampCursor()
	m.setInfo(fmt.Sprintf("Deleted %q", task.Text))
}

func (m *tuiModel) setFilter(status todo.Status) {
	m.filter = status
	m.cursor = 0
	m.clampCursor()
}

// visible returns the tasks shown under the active filter.
func (m *tuiModel) visible() []todo.Task {
	return m.store.Filter(m.filter)
}

// selected maps the cursor row to a task.
func (m *tuiModel) selected() (todo.Task, bool) {
	tasks := m.visible()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *tuiModel) selectID(id string) {
	for i, t := range m.visible() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *tuiModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *tuiModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) setInfo(msg string) {
	m.message = msg
	m.isError = false
}

func (m *tuiModel) setWarning(msg string) {
	m.message = msg
	m.isError = true
}

func (m *tuiModel) setError(err error) {
	m.message = "Error: " + err.Error()
	m.isError = true
}
