package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskflow help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskflow                                           List all tasks
  taskflow list [common flags] [--status all|pending|completed]
  taskflow add [common flags] --desc <description> <title...>
  taskflow edit [common flags] [--title <title>] [--desc <description>] <ref>
  taskflow done [common flags] <ref>
  taskflow rm [common flags] [--force] <ref>
  taskflow board [common flags]
  taskflow login [common flags] [--email <email>] [--password <password>]
  taskflow register [common flags] [--email <email>] [--password <password>] [--name <name>]
  taskflow logout [common flags]
  taskflow whoami [common flags]
  taskflow help
  taskflow version

Common flags:
  --config <dir>   Override config directory
  --api <url>      Override API base URL (also TASKFLOW_API_URL)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
