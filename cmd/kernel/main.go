//go:build rv32 && qemuvirt

package main

import "github.com/mazrv/svkernel/internal/kfmt"

// processA and processB are the two demonstration processes started by
// KernelMain: each prints its own letter and yields, forever, so the
// console shows the scheduler alternating between them.
//
//go:nosplit
func processA() {
	Printf("%s", kfmt.Str("starting process A\n"))
	for {
		Printf("%s", kfmt.Str("A"))
		Yield()
	}
}

//go:nosplit
func processB() {
	Printf("%s", kfmt.Str("starting process B\n"))
	for {
		Printf("%s", kfmt.Str("B"))
		Yield()
	}
}

// KernelMain is the entry point jumped to by the boot trampoline, by way
// of the linker's __stack_top-initialized sp. It zeroes BSS, wires up
// traps, sets up the page allocator, creates idle and the two
// demonstration processes, then calls Yield once. Yield should never
// return back into KernelMain: it always hands off to some process, and
// processes never return.
//
//go:nosplit
//go:noinline
func KernelMain() {
	zeroBSS()
	installTrapVector()
	initPageAllocator()

	createIdle()
	CreateProcess(processA)
	CreateProcess(processB)

	Yield()

	// Per design, reaching here is a fatal scheduler-reentry bug: Yield
	// handed control to idle or a process, and that control flow should
	// never return to KernelMain's own stack frame.
	Panic("main.go", 52, "switched to idle process")
}

// Dummy main() ensures KernelMain is reachable from the compiled object so
// the linker can't discard it as dead code; boot_rv32.s calls KernelMain
// directly by symbol name and this main is never actually executed.
func main() {
	KernelMain()
	for {
	}
}
