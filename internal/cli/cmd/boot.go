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

// Boot launches the kernel image under qemu-system-riscv32 and relays its
// console to stdout until the context is canceled. It does not return when
// qemu exits on its own; it keeps waiting for cancellation.
func Boot() cli.Command {
	return new(boot)
}

type boot struct {
	kernel string
}

func (boot) Description() string { return "boot the kernel image under qemu" }

func (boot) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `
boot [ -kernel <path> ]

Launch qemu-system-riscv32 against a built kernel image.`)
	return err
}

func (b *boot) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("boot", flag.ExitOnError)
	fs.StringVar(&b.kernel, "kernel", "kernel.elf", "kernel image path")
	return fs
}

func (b boot) Run(ctx context.Context, args []string, out io.Writer, logger *klog.Logger) int {
	runner := &qemurunner.Runner{Stdout: out}

	logger.Info("booting kernel", "kernel", b.kernel)

	if err := runner.Boot(ctx, b.kernel); err != nil {
		logger.Error("boot failed", "err", err)
		return 1
	}

	<-ctx.Done()
	runner.Kill()

	return 0
}
