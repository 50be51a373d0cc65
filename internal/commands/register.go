package commands

import (
	"context"
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
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct {
	email    string
	password string
	name     string
}

// SetDetails sets account details (for testing).
func (c *RegisterCmd) SetDetails(email, password, name string) {
	c.email = email
	c.password = password
	c.name = name
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account and log in" }
func (c *RegisterCmd) Usage() string {
	return "taskflow register [common flags] [--email <email>] [--password <password>] [--name <name>]"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.name, "name", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if sessions.IsLoggedIn() {
		fmt.Fprintln(errOut, "error: already logged in (run: taskflow logout first)")
		return exitcode.UserError
	}

	email := strings.TrimSpace(c.email)
	name := strings.TrimSpace(c.name)
	password := c.password

	var err error
	if email == "" {
		if email, err = promptLine(errOut, "Email: "); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}
	if name == "" {
		if name, err = promptLine(errOut, "Name: "); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}
	if password == "" {
		if password, err = promptPassword(errOut, "Password: "); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	if email == "" || name == "" || password == "" {
		fmt.Fprintln(errOut, "error: email, name and password required")
		return exitcode.UserError
	}

	token, user, err := svc.Register(ctx, email, password, name)
	if err != nil {
		fmt.Fprintf(errOut, "error: registration failed: %v\n", err)
		return exitcode.AuthError
	}

	if err := sessions.Save(token, user); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "registered as %s\n", user.Email)
	}
	return exitcode.Success
}
