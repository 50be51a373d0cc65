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
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the stored user profile.
// Reads only the local session; no API call is made.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Print the logged-in user" }
func (c *WhoamiCmd) Usage() string     { return "taskflow whoami [common flags]" }
func (c *WhoamiCmd) NeedsAuth() bool   { return false }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if !sessions.IsLoggedIn() {
		fmt.Fprintln(errOut, "error: not logged in (run: taskflow login)")
		return exitcode.AuthError
	}

	user := sessions.CurrentUser()
	if user == nil {
		// Token present but profile missing or corrupt; still logged in.
		fmt.Fprintln(out, "(unknown user)")
		return exitcode.Success
	}

	output.FormatUser(out, *user)
	return exitcode.Success
}
