// Package cli contains rvctl's command-line interface: a small
// flag.FlagSet-based sub-command dispatcher, not a config-file or
// cobra/viper-style framework, matching the flag-based CLI this corpus's
// own emulator tooling uses.
package cli

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/mazrv/svkernel/internal/klog"
)

// Command represents a rvctl sub-command: build, boot, run, demo, or help. Each has its
// own flags, its own usage text, and its own Run.
type Command interface {
	FlagSet() *flag.FlagSet
	Description() string
	Usage(out io.Writer) error
	Run(ctx context.Context, args []string, out io.Writer, logger *klog.Logger) int
}

// Commander dispatches a parsed argv to the matching Command.
type Commander struct {
	ctx context.Context
	log *klog.Logger

	help     Command
	commands []Command
}

// New creates a Commander bound to ctx.
func New(ctx context.Context) *Commander {
	return &Commander{ctx: ctx}
}

// WithCommands registers the sub-commands rvctl accepts.
func (c *Commander) WithCommands(cmds []Command) *Commander {
	c.commands = append([]Command(nil), cmds...)
	return c
}

// WithHelp sets the command run when no sub-command (or an unknown one) is
// given.
func (c *Commander) WithHelp(cmd Command) *Commander {
	c.help = cmd
	return c
}

// WithLogger installs a klog.Logger writing to stderr, leaving stdout free
// for the running kernel's own console output.
func (c *Commander) WithLogger() *Commander {
	c.log = klog.NewFormattedLogger(os.Stderr)
	return c
}

// Execute finds the sub-command named by args[0], parses the remaining
// flags, and runs it. It returns the command's exit code.
func (c *Commander) Execute(args []string) int {
	if len(args) == 0 {
		return c.help.Run(c.ctx, nil, os.Stdout, c.log)
	}

	found := c.help
	for _, cmd := range c.commands {
		if args[0] == cmd.FlagSet().Name() {
			found = cmd
			break
		}
	}

	fs := found.FlagSet()
	if err := fs.Parse(args[1:]); err != nil {
		c.log.Error("parse error", "err", err)
		return 1
	}

	return found.Run(c.ctx, fs.Args(), os.Stdout, c.log)
}

type FlagSet = flag.FlagSet
