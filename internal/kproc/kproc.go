// Package kproc holds the process table and scheduling DECISION that sit
// behind the kernel's cooperative scheduler: which pid/state slot combination
// exists, and which slot yield should switch to next. It deliberately knows
// nothing about registers, stacks, or sscratch -- those live in cmd/kernel's
// freestanding process package, which binds this decision logic to the real
// per-process stacks and to switch_context. Splitting it this way lets the
// table and the round-robin scan be exercised by go test, in the spirit of
// smoynes-elsie's instruction encoder tests and gmofishsauce-wut4's
// assembler tests: logic that doesn't need real hardware shouldn't require it
// to be tested.
package kproc

import "errors"

// ProcsMax is the process table's fixed capacity (spec design value: 8).
const ProcsMax = 8

// State is a process's lifecycle state. This minimal core defines no
// terminal states beyond Runnable.
type State uint8

const (
	Unused State = iota
	Runnable
)

// Slot is one process table entry's pid/state pair.
type Slot struct {
	PID   int
	State State
}

// ErrNoFreeSlot is returned by Create when every slot is in use.
var ErrNoFreeSlot = errors.New("no free process slots")

// Table is the fixed-capacity process table, process-wide state with
// lifetime equal to the kernel.
type Table struct {
	slots    [ProcsMax]Slot
	idleSlot int
}

// Create finds the first Unused slot, marks it Runnable with pid equal to
// the slot index plus one, and returns that slot index and pid. Real process
// creation (cmd/kernel's CreateProcess) uses the returned slot index to
// locate the process's stack array and seed its initial callee-saved
// register frame; Table only owns the pid/state bookkeeping.
func (t *Table) Create() (slot int, pid int, err error) {
	for i := range t.slots {
		if t.slots[i].State == Unused {
			t.slots[i] = Slot{PID: i + 1, State: Runnable}
			return i, i + 1, nil
		}
	}
	return -1, 0, ErrNoFreeSlot
}

// ForceIdlePID overwrites a slot's pid to 0, turning a normally-created
// process into the idle process: idle is built exactly like any other
// process and then has its pid forced to 0, per spec. The slot is
// remembered so NextRunnable can map pid 0 back to its real table slot.
func (t *Table) ForceIdlePID(slot int) {
	t.slots[slot].PID = 0
	t.idleSlot = slot
}

// PID reports the pid stored at slot.
func (t *Table) PID(slot int) int { return t.slots[slot].PID }

// State reports the state stored at slot.
func (t *Table) State(slot int) State { return t.slots[slot].State }

// slotOfPID maps a pid back to its table slot. Every pid assigned by
// Create satisfies pid == slot+1, except idle, whose pid is forced to 0
// after creation while its slot never moves -- the same mapping
// cmd/kernel's slotOf applies to the real process array.
func (t *Table) slotOfPID(pid int) int {
	if pid == 0 {
		return t.idleSlot
	}
	return pid - 1
}

// NextRunnable implements yield's round-robin scan: starting one slot past
// currentPID's own table slot, i = 1..ProcsMax, it returns the first slot
// index whose state is Runnable and whose pid is greater than 0 (idle's pid
// of 0 excludes it from ever being picked here). ok is false when no such
// slot exists, which means idle should run.
//
// The scan walks slot indices, not raw pid values: pid and slot coincide
// for every process except idle, so scanning "currentPID + i" directly
// would measure the wrong distance whenever the current process's slot
// doesn't sit at pid-1 past the wraparound -- it can reach a non-idle
// process's own slot before reaching its peer's, making yield a no-op.
func (t *Table) NextRunnable(currentPID int) (slot int, ok bool) {
	currentSlot := t.slotOfPID(currentPID)
	for i := 1; i <= ProcsMax; i++ {
		idx := (currentSlot + i) % ProcsMax
		s := t.slots[idx]
		if s.State == Runnable && s.PID > 0 {
			return idx, true
		}
	}
	return -1, false
}
