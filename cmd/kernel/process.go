//go:build rv32 && qemuvirt

package main

import (
	"unsafe"

	"github.com/mazrv/svkernel/internal/kproc"
)

// stackWords is each process's kernel stack size, in 32-bit words (8 KiB).
// Design value, not spec-mandated: large enough for Panic's formatting path
// plus a few call frames of headroom, matching this corpus's own fixed,
// generously-sized kernel stacks.
const stackWords = 2048

// process is one process table entry: the pid/state bookkeeping lives in
// procTable (kproc.Table), factored out so it's unit-testable without a
// real stack in sight; this struct owns the parts that only make sense
// against real memory -- the stack array, the fixed top-of-stack address
// (the emergency stack pointer programmed into sscratch while this process
// runs), and the saved stack pointer switch_context resumes from.
type process struct {
	top   uintptr
	sp    uintptr
	stack [stackWords]uint32
}

var (
	procTable  kproc.Table
	procs      [kproc.ProcsMax]process
	currentPID int
	idleSlot   int
)

// Link to the external context-switch primitive in switch_rv32.s.
//
//go:linkname switch_context switch_context
//go:nosplit
func switch_context(prevSP, nextSP *uintptr)

// idleEntryPoint is the idle process's body: a WFI loop. Idle is
// constructed exactly like any other process (its stack is seeded with
// this real return address) rather than left with an entry of 0.
// KernelMain starts with idle as the current process, though, so the first
// Yield away from idle saves KernelMain's own context over that seeded
// frame: a later switch back to idle resumes KernelMain, which panics.
// Nothing in this kernel ever resumes idle at this loop.
//
//go:nosplit
func idleEntryPoint() {
	for {
		wfi()
	}
}

// funcPC recovers a func value's code entry point. A Go func value is a
// pointer to a closure record whose first word is the code address; taking
// that word is the same trick this corpus's own stack_growth.go relies on
// to manipulate raw stack/return-address state below the language's normal
// abstractions.
//
//go:nosplit
func funcPC(f func()) uintptr {
	return **(**uintptr)(unsafe.Pointer(&f))
}

// CreateProcess allocates the first UNUSED process table slot, seeds its
// kernel stack with the 13 callee-saved words switch_context expects to
// find on first resume (s11..s0 zero, ra = entry), and returns its pid.
// Panics "no free process slots" if the table is full.
//
//go:nosplit
func CreateProcess(entry func()) int {
	slot, pid, err := procTable.Create()
	if err != nil {
		Panic("process.go", 75, "no free process slots")
	}

	p := &procs[slot]
	p.top = uintptr(unsafe.Pointer(&p.stack[stackWords-1])) + 4

	// Push 13 words, highest address first: s11..s0 zero, then ra=entry
	// last, so ra lands at the lowest address -- the final sp switch_context
	// restores from first (lw ra, 0*4(sp) in switch_rv32.s).
	sp := p.top
	push := func(v uint32) {
		sp -= 4
		*(*uint32)(unsafe.Pointer(sp)) = v
	}
	for i := 0; i < 12; i++ {
		push(0) // s11..s0
	}
	push(uint32(funcPC(entry))) // ra

	p.sp = sp
	return pid
}

// createIdle builds the idle process the same way as any other, then
// forces its pid to 0 and caches its slot, per design.
//
//go:nosplit
func createIdle() {
	pid := CreateProcess(idleEntryPoint)
	slot := pid - 1
	procTable.ForceIdlePID(slot)
	idleSlot = slot
	currentPID = 0
}

// slotOf recovers a process's table slot from its pid: pid == slot+1 for
// every process created through CreateProcess, except idle, whose pid is
// forced to 0 after creation but whose slot never moves.
func slotOf(pid int) int {
	if pid == 0 {
		return idleSlot
	}
	return pid - 1
}

// Yield implements the scheduler's round-robin scan: starting one slot
// past the current process, i = 1..PROCS_MAX, the first RUNNABLE slot with
// pid > 0 wins; otherwise idle runs. A no-op if the winner is already
// current. Otherwise sscratch is programmed to the winner's stack top,
// current is updated, and switch_context performs the actual stack swap.
//
//go:nosplit
func Yield() {
	nextSlot, ok := procTable.NextRunnable(currentPID)
	if !ok {
		nextSlot = idleSlot
	}

	nextPID := procTable.PID(nextSlot)
	if nextPID == currentPID {
		return
	}

	prev := &procs[slotOf(currentPID)]
	next := &procs[nextSlot]

	write_sscratch(uint32(next.top))
	currentPID = nextPID
	switch_context(&prev.sp, &next.sp)
}
