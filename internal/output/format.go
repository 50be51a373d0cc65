// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskflow/internal/service"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }] {TITLE}\n" with the description, when present,
// indented underneath.
func FormatTask(w io.Writer, num int, task service.Task) {
	marker := " "
	if task.Status == service.StatusCompleted {
		marker = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, marker, normalizeLine(task.Title))
	if strings.TrimSpace(task.Description) != "" {
		fmt.Fprintf(w, "          %s\n", normalizeLine(task.Description))
	}
}

// FormatCounts formats the pending/completed summary footer.
func FormatCounts(w io.Writer, pending, completed int) {
	fmt.Fprintf(w, "%d pending, %d completed\n", pending, completed)
}

// FormatUser formats the current user for whoami.
func FormatUser(w io.Writer, user service.User) {
	if user.Name != "" {
		fmt.Fprintf(w, "%s <%s>\n", user.Name, user.Email)
		return
	}
	fmt.Fprintln(w, user.Email)
}

// normalizeLine normalizes a task field for single-line display.
// Empty or whitespace-only titles become "(untitled)"; newlines are
// replaced with spaces.
func normalizeLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return strings.TrimSpace(s)
}
