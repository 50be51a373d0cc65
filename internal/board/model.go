// Package board implements the interactive task board: an in-memory task
// collection with a status filter, a create/edit form and confirmed deletes,
// kept in sync with the API through service.Service.
package board

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskflow/internal/service"
)

// Filter selects which tasks the board shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterCompleted
)

// Matches reports whether a task passes the filter.
func (f Filter) Matches(task service.Task) bool {
	switch f {
	case FilterPending:
		return task.Status == service.StatusPending
	case FilterCompleted:
		return task.Status == service.StatusCompleted
	}
	return true
}

// String returns the filter's display label.
func (f Filter) String() string {
	switch f {
	case FilterPending:
		return "pending"
	case FilterCompleted:
		return "completed"
	}
	return "all"
}

// mode is the board's input mode.
type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirm
)

// Messages delivered by gateway commands.
type (
	// tasksLoadedMsg carries the result of a load.
	tasksLoadedMsg struct {
		tasks []service.Task
		err   error
	}

	// taskSavedMsg carries the result of a create or update.
	taskSavedMsg struct {
		task    service.Task
		created bool
		err     error
	}

	// taskDeletedMsg carries the result of a delete.
	taskDeletedMsg struct {
		id  string
		err error
	}
)

// Model is the board state.
type Model struct {
	ctx  context.Context
	svc  service.Service
	user *service.User

	// Task collection and its derived view. filtered is always a fresh
	// slice, never an alias of tasks.
	tasks    []service.Task
	filtered []service.Task
	filter   Filter

	// Form state. editID is set while editing an existing task.
	titleInput textinput.Model
	descInput  textinput.Model
	formFocus  int
	editID     string

	// Pending delete confirmation.
	confirmID    string
	confirmTitle string

	cursor  int
	mode    mode
	loading bool
	spinner spinner.Model
	status  string

	width  int
	height int
	styles Styles
}

// New creates a board model. The context bounds every gateway call the
// board issues; cancelling it (interrupt) abandons in-flight requests.
func New(ctx context.Context, svc service.Service, user *service.User) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Focus()

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		svc:        svc,
		user:       user,
		tasks:      []service.Task{},
		filtered:   []service.Task{},
		titleInput: title,
		descInput:  desc,
		spinner:    sp,
		loading:    true,
		styles:     NewStyles(),
	}
}

// Init starts the spinner and issues the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTasks())
}

// applyFilter computes the filtered view of tasks under f.
// The result is always a freshly allocated slice, even for FilterAll, so a
// consumer comparing identities always sees a new value after a mutation.
// A nil collection yields an empty view.
func applyFilter(tasks []service.Task, f Filter) []service.Task {
	filtered := make([]service.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// refilter recomputes the derived view and keeps the cursor in range.
func (m *Model) refilter() {
	m.filtered = applyFilter(m.tasks, m.filter)
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// PendingCount counts pending tasks over the whole collection.
func (m Model) PendingCount() int {
	n := 0
	for _, task := range m.tasks {
		if task.Status == service.StatusPending {
			n++
		}
	}
	return n
}

// CompletedCount counts completed tasks over the whole collection.
func (m Model) CompletedCount() int {
	n := 0
	for _, task := range m.tasks {
		if task.Status == service.StatusCompleted {
			n++
		}
	}
	return n
}

// Filtered returns the current derived view.
func (m Model) Filtered() []service.Task {
	return m.filtered
}

// Loading reports whether a load is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// resetForm clears the form fields and edit target.
func (m *Model) resetForm() {
	m.titleInput.SetValue("")
	m.descInput.SetValue("")
	m.formFocus = 0
	m.titleInput.Focus()
	m.descInput.Blur()
	m.editID = ""
}

// beginEdit seeds the form from a task and records the edit target.
func (m *Model) beginEdit(task service.Task) {
	m.editID = task.ID
	m.titleInput.SetValue(task.Title)
	m.descInput.SetValue(task.Description)
	m.formFocus = 0
	m.titleInput.Focus()
	m.descInput.Blur()
	m.mode = modeForm
}

// Gateway commands. Each issues one request and resolves to a message.

func (m Model) loadTasks() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		tasks, err := svc.ListTasks(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m Model) createTask(title, description string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		task, err := svc.CreateTask(ctx, title, description)
		return taskSavedMsg{task: task, created: true, err: err}
	}
}

func (m Model) updateTask(id string, patch service.TaskPatch) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		task, err := svc.UpdateTask(ctx, id, patch)
		return taskSavedMsg{task: task, err: err}
	}
}

func (m Model) deleteTask(id string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		err := svc.DeleteTask(ctx, id)
		return taskDeletedMsg{id: id, err: err}
	}
}
