//go:build rv32 && qemuvirt

package main

import "unsafe"

// zeroBSS clears [__bss, __bss_end) unconditionally on entry to KernelMain.
// OpenSBI sometimes leaves BSS already zeroed, but this kernel never
// depends on that.
//
//go:nosplit
func zeroBSS() {
	start := uintptr(unsafe.Pointer(&__bss))
	end := uintptr(unsafe.Pointer(&__bss_end))
	bzero(unsafe.Pointer(start), uint32(end-start))
}
