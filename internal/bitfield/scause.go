// Package bitfield packs and unpacks the handful of CSR bitfields this
// kernel cares about. It is adapted from, not copied from,
// iansmith-mazarin's src/bitfield package: that package packs arbitrary
// struct fields via reflection and struct tags, which has no place in a
// //go:nosplit trap-entry path (reflection allocates and walks type
// metadata). This package keeps the idea -- a small, named type standing in
// for a raw register value -- and drops the reflection, because the only
// thing this kernel ever needs to pack or unpack is scause's two fields.
//
// Within this repository it is used only by its own tests asserting on
// named exception codes; the freestanding trap dispatcher itself only ever
// prints the raw scause word (see spec: the dispatcher does no
// classification), so it never imports this package.
package bitfield

import "fmt"

// scauseInterruptBit is bit 31 of scause: set for interrupts, clear for
// synchronous exceptions.
const scauseInterruptBit = uint32(1) << 31

// Scause is the decoded form of the scause CSR.
type Scause struct {
	Interrupt bool
	Code      uint32
}

// UnpackScause splits a raw scause value into its Interrupt flag and
// Code (exception or interrupt cause number).
func UnpackScause(raw uint32) Scause {
	return Scause{
		Interrupt: raw&scauseInterruptBit != 0,
		Code:      raw &^ scauseInterruptBit,
	}
}

// Pack reassembles a raw scause value from its fields.
func (s Scause) Pack() uint32 {
	v := s.Code &^ scauseInterruptBit
	if s.Interrupt {
		v |= scauseInterruptBit
	}
	return v
}

// exceptionNames covers the synchronous exception causes relevant to a
// supervisor-mode RISC-V32 kernel (RISC-V privileged spec, table of
// standard exception codes).
var exceptionNames = map[uint32]string{
	0:  "instruction address misaligned",
	1:  "instruction access fault",
	2:  "illegal instruction",
	3:  "breakpoint",
	4:  "load address misaligned",
	5:  "load access fault",
	6:  "store/AMO address misaligned",
	7:  "store/AMO access fault",
	8:  "environment call from U-mode",
	9:  "environment call from S-mode",
	11: "environment call from M-mode",
	12: "instruction page fault",
	13: "load page fault",
	15: "store/AMO page fault",
}

// Name returns a human-readable description of a synchronous exception's
// code, or "unknown exception" if the code is not one of the standard
// RISC-V synchronous exception causes. It is meaningless for s.Interrupt
// == true and exists only for diagnostics on the host side.
func (s Scause) Name() string {
	if name, ok := exceptionNames[s.Code]; ok {
		return name
	}
	return "unknown exception"
}

// String renders the decoded cause as "interrupt(code=N)" or
// "exception(code=N, <name>)".
func (s Scause) String() string {
	if s.Interrupt {
		return fmt.Sprintf("interrupt(code=%d)", s.Code)
	}
	return fmt.Sprintf("exception(code=%d, %s)", s.Code, s.Name())
}
