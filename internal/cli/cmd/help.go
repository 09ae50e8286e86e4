package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/mazrv/svkernel/internal/cli"
	"github.com/mazrv/svkernel/internal/klog"
)

// Help lists every registered sub-command. It is the Commander's fallback
// when no argument, or an unrecognized one, is given.
func Help(cmds []cli.Command) cli.Command {
	return &help{cmds: cmds}
}

type help struct {
	cmds []cli.Command
}

func (help) Description() string { return "show this help message" }

func (h help) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, "rvctl <command> [flags]")
	return err
}

func (h help) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("help", flag.ExitOnError)
}

func (h help) Run(ctx context.Context, args []string, out io.Writer, _ *klog.Logger) int {
	h.Usage(out)
	fmt.Fprintln(out)
	for _, c := range h.cmds {
		fmt.Fprintf(out, "  %-10s %s\n", c.FlagSet().Name(), c.Description())
	}
	return 1
}
