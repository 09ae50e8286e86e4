// Package qemurunner launches qemu-system-riscv32 against a built kernel
// image and plumbs its console. There is no physical UART on the host
// side to open the way go.bug.st/serial would open one; the subprocess's
// stdio, wired with -serial stdio, is this corpus's direct substitute for
// it, scanned the same line-oriented way this corpus's serial tooling
// scans a real device file.
package qemurunner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrExpectTimeout is returned by Run when -expect's pattern never appears
// before the deadline.
var ErrExpectTimeout = errors.New("qemurunner: expect pattern not seen before timeout")

// CommandFunc builds the *exec.Cmd to run, so tests can substitute a fake
// process (e.g. "cat" echoing a fixture) for the real qemu-system-riscv32
// binary without touching package exec directly in test code.
type CommandFunc func(ctx context.Context, kernelELF string) *exec.Cmd

// DefaultCommand launches qemu-system-riscv32 against the virt machine
// with OpenSBI's default firmware and the guest's UART on stdio.
func DefaultCommand(ctx context.Context, kernelELF string) *exec.Cmd {
	return exec.CommandContext(ctx, "qemu-system-riscv32",
		"-machine", "virt",
		"-bios", "default",
		"-nographic",
		"-serial", "stdio",
		"-kernel", kernelELF,
	)
}

// Runner supervises one qemu-system-riscv32 subprocess.
type Runner struct {
	Command CommandFunc
	Stdout  io.Writer // relay destination for console bytes; defaults to os.Stdout

	mu  sync.Mutex
	cmd *exec.Cmd
}

// Boot starts qemu against kernelELF and returns once the process has been
// launched (not once it has finished); the caller drives lifetime via ctx.
func (r *Runner) Boot(ctx context.Context, kernelELF string) error {
	cmdFn := r.Command
	if cmdFn == nil {
		cmdFn = DefaultCommand
	}

	cmd := cmdFn(ctx, kernelELF)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("qemurunner: stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("qemurunner: start: %w", err)
	}

	r.mu.Lock()
	r.cmd = cmd
	r.mu.Unlock()

	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}

	go relay(stdout, out)

	return nil
}

// relay copies scanner lines from src to dst, restoring the trailing
// newline bufio.Scanner strips.
func relay(src io.Reader, dst io.Writer) {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		fmt.Fprintln(dst, scanner.Text())
	}
}

// Run boots qemu and blocks until pattern matches a line of console
// output or timeout elapses, whichever comes first. If the process exits
// without a match, Run still waits out the timeout and then returns
// ErrExpectTimeout. It is the primitive behind "rvctl run -expect".
func (r *Runner) Run(ctx context.Context, kernelELF string, pattern *regexp.Regexp, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmdFn := r.Command
	if cmdFn == nil {
		cmdFn = DefaultCommand
	}

	cmd := cmdFn(ctx, kernelELF)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("qemurunner: stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("qemurunner: start: %w", err)
	}

	r.mu.Lock()
	r.cmd = cmd
	r.mu.Unlock()

	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}

	matched := make(chan struct{})

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := scanner.Text()
			fmt.Fprintln(out, line)
			if pattern.MatchString(line) {
				close(matched)
				return
			}
		}
	}()

	select {
	case <-matched:
		r.Kill()
		return nil
	case <-ctx.Done():
		r.Kill()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrExpectTimeout
		}
		return ctx.Err()
	}
}

// Kill tears down the whole process group qemu was started in, so any
// helper processes it spawned die with it. Safe to call multiple times or
// on a Runner that never started.
func (r *Runner) Kill() {
	r.mu.Lock()
	cmd := r.cmd
	r.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}

	pgid, err := unix.Getpgid(cmd.Process.Pid)
	if err != nil {
		_ = cmd.Process.Kill()
		return
	}

	_ = unix.Kill(-pgid, unix.SIGKILL)
}

// Attach puts the host's own controlling terminal into raw mode and returns
// a detach func that restores its previous state; when stdin is not a
// terminal it changes nothing. It reads no input and forwards no
// keystrokes (^C included) to qemu or to ctx. Used by "rvctl demo".
func Attach(ctx context.Context, r *Runner) (detach func(), err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}

	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("qemurunner: raw mode: %w", err)
	}

	return func() {
		_ = term.Restore(fd, saved)
	}, nil
}
