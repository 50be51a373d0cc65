package board

import (
	"fmt"
	"strings"

	"taskflow/internal/service"
)

// View renders the board.
func (m Model) View() string {
	var b strings.Builder

	// Header: user + counts
	name := "tasks"
	if m.user != nil && m.user.Name != "" {
		name = m.user.Name
	}
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("taskflow — %s", name)))
	b.WriteString("  ")
	b.WriteString(m.styles.Help.Render(
		fmt.Sprintf("%d pending · %d completed", m.PendingCount(), m.CompletedCount())))
	b.WriteString("\n\n")

	// Filter tabs
	for _, f := range []Filter{FilterAll, FilterPending, FilterCompleted} {
		style := m.styles.FilterTab
		if f == m.filter {
			style = m.styles.FilterActive
		}
		b.WriteString(style.Render(f.String()))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading tasks...\n")
	case m.mode == modeForm:
		b.WriteString(m.viewForm())
	default:
		b.WriteString(m.viewList())
	}

	if m.mode == modeConfirm {
		b.WriteString("\n")
		b.WriteString(m.styles.Confirm.Render(
			fmt.Sprintf("delete %q? [y/N]", m.confirmTitle)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewList() string {
	if len(m.filtered) == 0 {
		return m.styles.Help.Render("no tasks") + "\n"
	}

	var b strings.Builder
	for i, task := range m.filtered {
		marker := "[ ]"
		style := m.styles.Task
		if task.Status == service.StatusCompleted {
			marker = "[x]"
			style = m.styles.TaskDone
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			style = m.styles.TaskSelected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %s", cursor, marker, task.Title)))
		b.WriteString("\n")
		if i == m.cursor && task.Description != "" {
			b.WriteString(m.styles.Description.Render(task.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	heading := "new task"
	if m.editID != "" {
		heading = "edit task"
	}
	b.WriteString(m.styles.FormLabel.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n")
	return b.String()
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeForm:
		return "tab: next field • enter: save • esc: cancel"
	case modeConfirm:
		return "y: delete • n/esc: keep"
	}
	return "n: new • e: edit • space: toggle • d: delete • 1/2/3: filter • r: reload • q: quit"
}
