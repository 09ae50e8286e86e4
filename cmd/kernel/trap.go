//go:build rv32 && qemuvirt

package main

import (
	"unsafe"

	"github.com/mazrv/svkernel/internal/kfmt"
)

// trapFrameWords is the fixed number of saved general-purpose registers a
// trap spills to the stack before calling handle_trap: ra, gp, tp, t0-t6,
// a0-a7, s0-s11, sp. Any trap this kernel takes is fatal, so the frame
// exists purely for diagnostics, not for resuming the interrupted context.
const trapFrameWords = 31

// TrapFrame mirrors the fixed layout kernel_entry spills registers into,
// word for word. Field order must match kernel_entry's store sequence in
// trap_rv32.s exactly; a mismatch here silently mislabels every register in
// a panic dump.
type TrapFrame struct {
	RA                 uint32
	GP                 uint32
	TP                 uint32
	T0, T1, T2         uint32
	T3, T4, T5, T6     uint32
	A0, A1, A2, A3     uint32
	A4, A5, A6, A7     uint32
	S0, S1, S2, S3     uint32
	S4, S5, S6, S7     uint32
	S8, S9, S10, S11   uint32
	SP                 uint32
}

// kernel_entry is the external trap entry point in trap_rv32.s. stvec is
// programmed to point directly at it; Go code never calls it, only takes
// its address, so it's declared as a zero-size linker symbol rather than a
// func value, the same way exception vector tables are referenced in this
// corpus's other freestanding kernel.
var kernel_entry [0]byte

// installTrapVector programs stvec once, in direct mode (mode bits 00),
// pointing at kernel_entry. kernel_entry is 4-byte aligned by construction
// of trap_rv32.s's .align directive, which direct mode requires.
//
//go:nosplit
func installTrapVector() {
	write_stvec(uint32(uintptr(unsafe.Pointer(&kernel_entry))))
}

// handle_trap is called from kernel_entry once all 31 registers are spilled
// to *frame. This kernel does no classification of scause: per design,
// every trap taken here is a fatal condition (there is no user mode to
// fault from, no interrupts are enabled, and no recoverable exception is
// expected), so the only thing this function does is panic with the raw
// CSR state.
//
//go:nosplit
func handle_trap(frame *TrapFrame) {
	_ = frame // available for a future register dump; not needed to panic
	scause := read_scause()
	stval := read_stval()
	sepc := read_sepc()
	Panic("trap.go", 64, "unexpected trap: scause=%x stval=%x sepc=%x", kfmt.Hex(scause), kfmt.Hex(stval), kfmt.Hex(sepc))
}
