package bitfield_test

import (
	"testing"

	"github.com/mazrv/svkernel/internal/bitfield"
)

func TestUnpackScauseSeparatesInterruptBitFromCode(t *testing.T) {
	cases := []struct {
		raw       uint32
		interrupt bool
		code      uint32
	}{
		{raw: 0x00000002, interrupt: false, code: 2},
		{raw: 0x80000005, interrupt: true, code: 5},
		{raw: 0x80000000, interrupt: true, code: 0},
		{raw: 0x0000000b, interrupt: false, code: 11},
	}

	for _, c := range cases {
		got := bitfield.UnpackScause(c.raw)
		if got.Interrupt != c.interrupt || got.Code != c.code {
			t.Errorf("UnpackScause(%#x) = %+v, want {Interrupt:%v Code:%d}", c.raw, got, c.interrupt, c.code)
		}
	}
}

func TestScausePackRoundTrips(t *testing.T) {
	cases := []uint32{0x00000002, 0x80000005, 0x80000000, 0x0000000b, 0xffffffff}

	for _, raw := range cases {
		got := bitfield.UnpackScause(raw).Pack()
		if got != raw {
			t.Errorf("Pack(Unpack(%#x)) = %#x, want %#x", raw, got, raw)
		}
	}
}

func TestScauseNameKnownAndUnknownCodes(t *testing.T) {
	illegal := bitfield.UnpackScause(2)
	if illegal.Name() != "illegal instruction" {
		t.Errorf("Name() for code 2 = %q, want %q", illegal.Name(), "illegal instruction")
	}

	unknown := bitfield.UnpackScause(63)
	if unknown.Name() != "unknown exception" {
		t.Errorf("Name() for code 63 = %q, want %q", unknown.Name(), "unknown exception")
	}
}

func TestScauseStringDistinguishesInterruptsFromExceptions(t *testing.T) {
	exc := bitfield.UnpackScause(2)
	if got, want := exc.String(), "exception(code=2, illegal instruction)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	irq := bitfield.UnpackScause(0x80000001)
	if got, want := irq.String(), "interrupt(code=1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
