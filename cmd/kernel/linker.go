//go:build rv32 && qemuvirt

package main

// Linker-provided symbols from kernel.ld. The "[0]byte" trick gives each one
// an address without reserving storage for it: we only ever need
// unsafe.Pointer(&symbol), never symbol's value, matching the layout
// kernel.ld is written to satisfy. The "[]" comment on the original
// C extern declarations applies here too: it's the start address of the
// section that matters, not a value stored at offset zero.
var (
	__bss           [0]byte
	__bss_end       [0]byte
	__stack_top     [0]byte
	__free_ram      [0]byte
	__free_ram_end  [0]byte
)
