//go:build rv32 && qemuvirt

package main

import (
	"unsafe"

	"github.com/mazrv/svkernel/internal/kpalloc"
)

// Link to the external zero-fill primitive in mem_rv32.s, shared by BSS
// init and the page allocator -- one bzero, reused everywhere a byte range
// needs clearing, the same way the upstream C kernel this design is based
// on reuses a single memset for both.
//
//go:linkname bzero bzero
//go:nosplit
func bzero(ptr unsafe.Pointer, size uint32)

// ramZeroer adapts the real bzero primitive to kpalloc.Zeroer so the
// allocator's cursor arithmetic never has to know about unsafe.Pointer.
type ramZeroer struct{}

//go:nosplit
func (ramZeroer) ZeroRange(addr, size uintptr) {
	bzero(unsafe.Pointer(addr), uint32(size))
}

// pageAllocator is the kernel's single physical bump allocator, windowed
// over [__free_ram, __free_ram_end) as placed by kernel.ld. It is a plain
// value, not a pointer: this core has no heap, so the allocator's storage
// is the package-level variable itself, resident in BSS like everything
// else here.
var pageAllocator kpalloc.Allocator

//go:nosplit
func initPageAllocator() {
	start := uintptr(unsafe.Pointer(&__free_ram))
	end := uintptr(unsafe.Pointer(&__free_ram_end))
	pageAllocator = kpalloc.New(start, end, ramZeroer{})
}

// AllocPages hands out n contiguous, zero-filled physical pages. There is
// no free: exhausting the window is always a fatal condition for whatever
// called it, per design -- this kernel never reclaims physical memory.
//
//go:nosplit
func AllocPages(n uint32) uintptr {
	addr, err := pageAllocator.Alloc(n)
	if err != nil {
		Panic("page.go", 51, "out of memory")
	}
	return addr
}
