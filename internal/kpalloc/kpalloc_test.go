package kpalloc_test

import (
	"errors"
	"testing"

	"github.com/mazrv/svkernel/internal/kpalloc"
)

// fakeRAM is a Zeroer backed by a plain byte slice, standing in for the
// freestanding kernel's real physical RAM window in tests.
type fakeRAM struct {
	base uintptr
	mem  []byte
}

func newFakeRAM(base uintptr, size uintptr) *fakeRAM {
	mem := make([]byte, size)
	for i := range mem {
		mem[i] = 0xAA // poison, so zero-fill is observable
	}
	return &fakeRAM{base: base, mem: mem}
}

func (f *fakeRAM) ZeroRange(addr, size uintptr) {
	off := addr - f.base
	for i := uintptr(0); i < size; i++ {
		f.mem[off+i] = 0
	}
}

func (f *fakeRAM) isZero(addr, size uintptr) bool {
	off := addr - f.base
	for i := uintptr(0); i < size; i++ {
		if f.mem[off+i] != 0 {
			return false
		}
	}
	return true
}

func TestAllocReturnsPageAlignedZeroedNonOverlappingRanges(t *testing.T) {
	const base = uintptr(0x80000000)
	const windowPages = 16
	ram := newFakeRAM(base, windowPages*kpalloc.PageSize)
	a := kpalloc.New(base, base+windowPages*kpalloc.PageSize, ram)

	a0, err := a.Alloc(1)
	if err != nil {
		t.Fatalf("Alloc(1): %v", err)
	}
	a1, err := a.Alloc(2)
	if err != nil {
		t.Fatalf("Alloc(2): %v", err)
	}
	a2, err := a.Alloc(3)
	if err != nil {
		t.Fatalf("Alloc(3): %v", err)
	}

	if a0 != base {
		t.Errorf("a0 = %#x, want %#x", a0, base)
	}
	if a1 != a0+kpalloc.PageSize {
		t.Errorf("a1 = %#x, want %#x", a1, a0+kpalloc.PageSize)
	}
	if a2 != a1+2*kpalloc.PageSize {
		t.Errorf("a2 = %#x, want %#x", a2, a1+2*kpalloc.PageSize)
	}

	if !ram.isZero(a0, kpalloc.PageSize) {
		t.Error("a0 range not zero-filled")
	}
	if !ram.isZero(a1, 2*kpalloc.PageSize) {
		t.Error("a1 range not zero-filled")
	}
	if !ram.isZero(a2, 3*kpalloc.PageSize) {
		t.Error("a2 range not zero-filled")
	}

	if got := a.Cursor(); got < base {
		t.Errorf("cursor %#x never below start %#x", got, base)
	}
}

func TestAllocPastEndReturnsOutOfMemory(t *testing.T) {
	const base = uintptr(0x80000000)
	const windowPages = 2
	ram := newFakeRAM(base, windowPages*kpalloc.PageSize)
	a := kpalloc.New(base, base+windowPages*kpalloc.PageSize, ram)

	if _, err := a.Alloc(2); err != nil {
		t.Fatalf("Alloc(2) on an exact fit: %v", err)
	}

	if _, err := a.Alloc(1); !errors.Is(err, kpalloc.ErrOutOfMemory) {
		t.Fatalf("Alloc(1) past end: got %v, want ErrOutOfMemory", err)
	}
}

func TestCursorStartsAtWindowStartAndNeverDecreases(t *testing.T) {
	const base = uintptr(0x80000000)
	ram := newFakeRAM(base, 8*kpalloc.PageSize)
	a := kpalloc.New(base, base+8*kpalloc.PageSize, ram)

	if a.Cursor() != base {
		t.Fatalf("initial cursor = %#x, want %#x", a.Cursor(), base)
	}

	prev := a.Cursor()
	for i := 0; i < 4; i++ {
		if _, err := a.Alloc(1); err != nil {
			t.Fatalf("Alloc(1) #%d: %v", i, err)
		}
		if a.Cursor() < prev {
			t.Fatalf("cursor decreased: %#x -> %#x", prev, a.Cursor())
		}
		prev = a.Cursor()
	}
}

func TestAllocZeroPagesDoesNotAdvanceCursor(t *testing.T) {
	const base = uintptr(0x80000000)
	ram := newFakeRAM(base, 4*kpalloc.PageSize)
	a := kpalloc.New(base, base+4*kpalloc.PageSize, ram)

	before := a.Cursor()
	got, err := a.Alloc(0)
	if err != nil {
		t.Fatalf("Alloc(0): %v", err)
	}
	if got != before || a.Cursor() != before {
		t.Fatalf("Alloc(0) moved the cursor: %#x -> %#x", before, a.Cursor())
	}
}

// Forcing the cursor to end-1page then allocating 2 pages must fail, per the
// spec's concrete out-of-memory scenario.
func TestForcedNearEndAllocTwoPagesPanicsCase(t *testing.T) {
	const windowPages = 4
	const base = uintptr(0x80000000)
	end := base + windowPages*kpalloc.PageSize
	ram := newFakeRAM(base, windowPages*kpalloc.PageSize)
	a := kpalloc.New(end-kpalloc.PageSize, end, ram)

	if _, err := a.Alloc(2); !errors.Is(err, kpalloc.ErrOutOfMemory) {
		t.Fatalf("Alloc(2) at end-1page: got %v, want ErrOutOfMemory", err)
	}
}
