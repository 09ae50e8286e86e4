package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/mazrv/svkernel/internal/cli"
	"github.com/mazrv/svkernel/internal/klog"
	"github.com/mazrv/svkernel/internal/qemurunner"
)

// Run is "boot" plus a -timeout and -expect gate: it asserts a pattern
// appears on the console before qemu is killed, the primitive behind CI
// assertions on observable kernel behavior.
func Run() cli.Command {
	return &run{timeout: 10 * time.Second}
}

type run struct {
	kernel  string
	expect  string
	timeout time.Duration
}

func (run) Description() string { return "boot the kernel and assert console output" }

func (run) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `
run [ -kernel <path> ] [ -expect <regexp> ] [ -timeout <duration> ]

Boot the kernel image and wait for -expect to match a console line,
exiting non-zero if it never does within -timeout.`)
	return err
}

func (r *run) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.StringVar(&r.kernel, "kernel", "kernel.elf", "kernel image path")
	fs.StringVar(&r.expect, "expect", "", "regexp to wait for on the console")
	fs.DurationVar(&r.timeout, "timeout", r.timeout, "max time to wait for -expect")
	return fs
}

func (r run) Run(ctx context.Context, args []string, out io.Writer, logger *klog.Logger) int {
	if r.expect == "" {
		logger.Error("run requires -expect")
		return 2
	}

	pattern, err := regexp.Compile(r.expect)
	if err != nil {
		logger.Error("invalid -expect pattern", "err", err)
		return 2
	}

	runner := &qemurunner.Runner{Stdout: out}

	logger.Info("running kernel", "kernel", r.kernel, "expect", r.expect, "timeout", r.timeout)

	if err := runner.Run(ctx, r.kernel, pattern, r.timeout); err != nil {
		logger.Error("run failed", "err", err)
		return 1
	}

	logger.Info("expect pattern matched")
	return 0
}
