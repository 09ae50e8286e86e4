package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/mazrv/svkernel/internal/cli"
	"github.com/mazrv/svkernel/internal/klog"
	"github.com/mazrv/svkernel/internal/qemurunner"
)

// Demo boots the kernel's default idle+A+B process set with the host
// terminal in raw mode and prints its console live, mirroring this corpus's
// own emulator demo command. Keyboard input is not forwarded to the guest.
func Demo() cli.Command {
	return new(demo)
}

type demo struct {
	kernel string
}

func (demo) Description() string { return "boot the kernel and attach interactively" }

func (demo) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `
demo [ -kernel <path> ]

Boot the default idle+A+B demonstration kernel and print its console live.`)
	return err
}

func (d *demo) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	fs.StringVar(&d.kernel, "kernel", "kernel.elf", "kernel image path")
	return fs
}

func (d demo) Run(ctx context.Context, args []string, out io.Writer, logger *klog.Logger) int {
	runner := &qemurunner.Runner{Stdout: out}

	detach, err := qemurunner.Attach(ctx, runner)
	if err != nil {
		logger.Error("terminal attach failed", "err", err)
		return 1
	}
	defer detach()

	logger.Info("starting demo", "kernel", d.kernel)

	if err := runner.Boot(ctx, d.kernel); err != nil {
		logger.Error("boot failed", "err", err)
		return 1
	}

	<-ctx.Done()
	runner.Kill()

	return 0
}
