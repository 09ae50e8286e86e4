//go:build rv32 && qemuvirt

package main

// Link to external CSR-access primitives in csr_rv32.s. Each is a single
// csrr/csrw instruction wrapped just enough to be callable from Go; none of
// them may be inlined into a function that could move the stack out from
// under sscratch/sp bookkeeping, so all are //go:nosplit rather than
// candidates for //go:noinline too.
//
//go:linkname write_sscratch write_sscratch
//go:nosplit
func write_sscratch(v uint32)

//go:linkname read_sscratch read_sscratch
//go:nosplit
func read_sscratch() uint32

//go:linkname write_stvec write_stvec
//go:nosplit
func write_stvec(v uint32)

//go:linkname read_scause read_scause
//go:nosplit
func read_scause() uint32

//go:linkname read_stval read_stval
//go:nosplit
func read_stval() uint32

//go:linkname read_sepc read_sepc
//go:nosplit
func read_sepc() uint32

//go:linkname wfi wfi
//go:nosplit
func wfi()
