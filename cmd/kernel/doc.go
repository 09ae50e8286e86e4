// Command kernel is the freestanding supervisor-mode image: a single hart,
// booted by OpenSBI at a fixed physical address, with no heap, no
// goroutines, and no standard library beneath it. It is built against the
// rv32+qemuvirt build tags rather than a real GOARCH/GOOS pair — there is
// no upstream freestanding riscv32 Go target, so this package plays the
// same game as mazarin's aarch64+qemu tags: an invented tag pair checked at
// compile time by arch_unsupported.go, backed by hand-written assembly in
// this directory's *_rv32.s files.
package main
