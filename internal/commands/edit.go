package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: a partial update of title and/or
// description.
type EditCmd struct {
	title       string
	description string
}

// SetFields sets the new field values (for testing).
func (c *EditCmd) SetFields(title, description string) {
	c.title = title
	c.description = description
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task's title or description" }
func (c *EditCmd) Usage() string {
	return "taskflow edit [--title <title>] [--desc <description>] <ref>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskRef(args)
	if err != nil {
		if errors.Is(err, ErrTaskRefRequired) {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	var patch service.TaskPatch
	if t := strings.TrimSpace(c.title); t != "" {
		patch.Title = &t
	}
	if d := strings.TrimSpace(c.description); d != "" {
		patch.Description = &d
	}
	if patch.IsEmpty() {
		fmt.Fprintln(errOut, "error: nothing to change (--title or --desc required)")
		return exitcode.UserError
	}

	task, err := findTaskByNumber(ctx, svc, num)
	if err != nil {
		if strings.Contains(err.Error(), "out of range") {
			fmt.Fprintf(errOut, "error: task number out of range: %d\n", num)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if _, err := svc.UpdateTask(ctx, task.ID, patch); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
