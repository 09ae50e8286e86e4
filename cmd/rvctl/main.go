// Command rvctl builds, boots, and tests the freestanding kernel under
// qemu-system-riscv32. Unlike cmd/kernel, this is an ordinary hosted Go
// program with the full standard library and module graph available.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mazrv/svkernel/internal/cli"
	"github.com/mazrv/svkernel/internal/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands := []cli.Command{
		cmd.Build(),
		cmd.Boot(),
		cmd.Run(),
		cmd.Demo(),
	}

	code := cli.New(ctx).
		WithLogger().
		WithCommands(commands).
		WithHelp(cmd.Help(commands)).
		Execute(os.Args[1:])

	os.Exit(code)
}
