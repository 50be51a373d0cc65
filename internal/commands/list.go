package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/output"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskflow` (no args) and `taskflow list [--status <s>]`.
type ListCmd struct {
	status string
}

// SetStatus sets the status filter (for testing).
func (c *ListCmd) SetStatus(status string) {
	c.status = status
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskflow list [--status all|pending|completed]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "all", "")
	fs.StringVar(&c.status, "s", "all", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	filter := service.Status(c.status)
	if c.status != "all" && !filter.Valid() {
		fmt.Fprintf(errOut, "error: invalid status filter: %s\n", c.status)
		return exitcode.UserError
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	pending, completed := 0, 0
	shown := 0
	for i, task := range tasks {
		switch task.Status {
		case service.StatusPending:
			pending++
		case service.StatusCompleted:
			completed++
		}
		if c.status == "all" || task.Status == filter {
			// Numbering follows the full API order so refs stay stable
			// across filters.
			output.FormatTask(out, i+1, task)
			shown++
		}
	}

	if shown == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	if !cfg.Quiet {
		output.FormatCounts(out, pending, completed)
	}
	return exitcode.Success
}
