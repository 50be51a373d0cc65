package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskflow/internal/service"
)

// Update handles all board messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		// The loading flag clears on every outcome; the spinner can never
		// be left running after a failed load.
		m.loading = false
		if msg.err != nil {
			m.tasks = []service.Task{}
			m.filtered = []service.Task{}
			m.status = fmt.Sprintf("load failed: %v", msg.err)
			return m, nil
		}
		m.tasks = msg.tasks
		if m.tasks == nil {
			m.tasks = []service.Task{}
		}
		m.status = ""
		m.refilter()
		return m, nil

	case taskSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		if msg.created {
			m.tasks = append([]service.Task{msg.task}, m.tasks...)
		} else {
			// In-place replace by id; a no-op when the task vanished.
			for i := range m.tasks {
				if m.tasks[i].ID == msg.task.ID {
					m.tasks[i] = msg.task
					break
				}
			}
		}
		m.status = ""
		m.refilter()
		return m, nil

	case taskDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		kept := make([]service.Task, 0, len(m.tasks))
		for _, task := range m.tasks {
			if task.ID != msg.id {
				kept = append(kept, task)
			}
		}
		m.tasks = kept
		m.status = ""
		m.refilter()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateBrowse handles keys in browse mode.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.loadTasks())

	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "1":
		m.filter = FilterAll
		m.refilter()
		return m, nil

	case "2":
		m.filter = FilterPending
		m.refilter()
		return m, nil

	case "3":
		m.filter = FilterCompleted
		m.refilter()
		return m, nil

	case "tab", "f":
		m.filter = (m.filter + 1) % 3
		m.refilter()
		return m, nil

	case "n", "a":
		m.resetForm()
		m.mode = modeForm
		return m, nil

	case "e", "enter":
		if task, ok := m.selected(); ok {
			m.beginEdit(task)
		}
		return m, nil

	case "d", "x":
		if task, ok := m.selected(); ok {
			m.confirmID = task.ID
			m.confirmTitle = task.Title
			m.mode = modeConfirm
		}
		return m, nil

	case " ":
		if task, ok := m.selected(); ok {
			next := task.Status.Toggle()
			return m, m.updateTask(task.ID, service.TaskPatch{Status: &next})
		}
		return m, nil
	}

	return m, nil
}

// updateForm handles keys while the create/edit form is open.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.resetForm()
		m.mode = modeBrowse
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.formFocus = (m.formFocus + 1) % 2
		if m.formFocus == 0 {
			m.titleInput.Focus()
			m.descInput.Blur()
		} else {
			m.descInput.Focus()
			m.titleInput.Blur()
		}
		return m, nil

	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

// submit validates the form and dispatches a create or update.
// An invalid form (empty title or description) dispatches nothing and shows
// no error; the form simply stays open.
func (m Model) submit() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	description := strings.TrimSpace(m.descInput.Value())
	if title == "" || description == "" {
		return m, nil
	}

	editID := m.editID
	m.resetForm()
	m.mode = modeBrowse

	if editID != "" {
		patch := service.TaskPatch{Title: &title, Description: &description}
		return m, m.updateTask(editID, patch)
	}
	return m, m.createTask(title, description)
}

// updateConfirm handles keys while a delete confirmation is armed.
// The delete request is only issued on an affirmative answer.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := m.confirmID
		m.confirmID = ""
		m.confirmTitle = ""
		m.mode = modeBrowse
		return m, m.deleteTask(id)

	case "n", "N", "esc":
		m.confirmID = ""
		m.confirmTitle = ""
		m.mode = modeBrowse
		return m, nil
	}
	return m, nil
}

// selected returns the task under the cursor in the filtered view.
func (m Model) selected() (service.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return service.Task{}, false
	}
	return m.filtered[m.cursor], true
}
