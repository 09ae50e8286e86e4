package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os/exec"

	"github.com/mazrv/svkernel/internal/cli"
	"github.com/mazrv/svkernel/internal/klog"
)

// Build compiles cmd/kernel into a freestanding ELF image using the
// rv32+qemuvirt build tags.
func Build() cli.Command {
	return new(build)
}

type build struct {
	out string
}

func (build) Description() string { return "build the kernel image" }

func (build) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `
build [ -out <path> ]

Cross-compile cmd/kernel with the rv32,qemuvirt build tags.`)
	return err
}

func (b *build) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	fs.StringVar(&b.out, "out", "kernel.elf", "output image path")
	return fs
}

func (b build) Run(ctx context.Context, args []string, out io.Writer, logger *klog.Logger) int {
	logger.Info("building kernel image", "out", b.out)

	cmd := exec.CommandContext(ctx, "go", "build",
		"-tags", "rv32,qemuvirt",
		"-o", b.out,
		"./cmd/kernel",
	)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		logger.Error("build failed", "err", err)
		return 1
	}

	logger.Info("build complete", "out", b.out)
	return 0
}
