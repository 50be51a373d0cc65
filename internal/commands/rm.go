package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
// Deletion asks for confirmation first; no request is issued unless the
// user affirms or --force is given.
type RmCmd struct {
	force bool

	// confirm is swapped out in tests.
	confirm func(errOut io.Writer, prompt string) bool
}

// SetForce skips the confirmation prompt (for testing).
func (c *RmCmd) SetForce(force bool) {
	c.force = force
}

// SetConfirm overrides the confirmation prompt (for testing).
func (c *RmCmd) SetConfirm(fn func(io.Writer, string) bool) {
	c.confirm = fn
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "taskflow rm [--force] <ref>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.BoolVar(&c.force, "f", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskRef(args)
	if err != nil {
		if errors.Is(err, ErrTaskRefRequired) {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
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

	if !c.force {
		ask := c.confirm
		if ask == nil {
			ask = confirmStdin
		}
		if !ask(errOut, fmt.Sprintf("delete task %d: %q? [y/N] ", num, task.Title)) {
			if !cfg.Quiet {
				fmt.Fprintln(out, "aborted")
			}
			return exitcode.Success
		}
	}

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// confirmStdin asks on stderr and reads a y/yes answer from stdin.
func confirmStdin(errOut io.Writer, prompt string) bool {
	fmt.Fprint(errOut, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
