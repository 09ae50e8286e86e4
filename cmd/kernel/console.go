//go:build rv32 && qemuvirt

package main

import "github.com/mazrv/svkernel/internal/kfmt"

// consoleEmit feeds one formatted byte at a time to the firmware console.
// This is the entire adapter between the architecture-independent formatter
// in internal/kfmt and the real hardware: kfmt never sees a CSR or an
// ecall, and this function never parses a format string.
//
//go:nosplit
func consoleEmit(b byte) {
	ConsolePutChar(b)
}

// Printf writes a formatted diagnostic line to the firmware console. Only
// %s, %d, %x, and %% are recognized; see internal/kfmt for the exact
// behavior of each.
//
//go:nosplit
func Printf(format string, args ...kfmt.Arg) {
	kfmt.Printf(consoleEmit, format, args...)
}

// Panic prints "PANIC: <file>:<line>: <msg>" to the console and halts the
// hart forever. Every fatal condition in this kernel (out of memory, no
// free process slots, an unexpected trap, scheduler reentry) routes through
// here; there is no recoverable path.
//
// file and line identify the call site and are supplied by the caller as
// literals, the same way the upstream C kernel's PANIC macro expands
// __FILE__ and __LINE__ at compile time: Go has no preprocessor to do that
// substitution for us, and runtime.Caller needs symbol and pcln-table
// machinery this no-heap, no-runtime-init image never brings up.
//
//go:nosplit
//go:noinline
func Panic(file string, line int, format string, args ...kfmt.Arg) {
	Printf("PANIC: %s:%d: ", kfmt.Str(file), kfmt.Int(int32(line)))
	Printf(format, args...)
	Printf("\n")
	haltForever()
}

// haltForever spins the hart after a panic, issuing wfi (see csr_rv32.s)
// on each iteration of an endless loop.
//
//go:nosplit
func haltForever() {
	for {
		wfi()
	}
}
