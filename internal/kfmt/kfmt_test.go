package kfmt_test

import (
	"math"
	"testing"

	"github.com/mazrv/svkernel/internal/kfmt"
)

func TestPrintfConcreteScenario(t *testing.T) {
	got := kfmt.Sprint("\nHello %s! - %d + %d = %x\n",
		kfmt.Str("world"), kfmt.Int(20), kfmt.Int(22), kfmt.Hex(42))

	want := "\nHello world! - 20 + 22 = 0000002a\n"
	if got != want {
		t.Fatalf("Sprint() = %q, want %q", got, want)
	}
}

func TestPrintfMinInt32(t *testing.T) {
	got := kfmt.Sprint("%d", kfmt.Int(math.MinInt32))
	want := "-2147483648"

	if got != want {
		t.Fatalf("Sprint(MinInt32) = %q, want %q", got, want)
	}
}

func TestPrintfDecimalForAllSigns(t *testing.T) {
	cases := []struct {
		v    int32
		want string
	}{
		{0, "0"},
		{9, "9"},
		{10, "10"},
		{-1, "-1"},
		{math.MaxInt32, "2147483647"},
		{math.MinInt32, "-2147483648"},
	}

	for _, c := range cases {
		got := kfmt.Sprint("%d", kfmt.Int(c.v))
		if got != c.want {
			t.Errorf("Sprint(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestPrintfHexIsEightDigitsLowercaseZeroPadded(t *testing.T) {
	cases := []struct {
		v    uint32
		want string
	}{
		{0, "00000000"},
		{42, "0000002a"},
		{0xDEADBEEF, "deadbeef"},
		{math.MaxUint32, "ffffffff"},
	}

	for _, c := range cases {
		got := kfmt.Sprint("%x", kfmt.Hex(c.v))
		if got != c.want {
			t.Errorf("Sprint(%#x) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestPrintfPercentPercent(t *testing.T) {
	if got := kfmt.Sprint("100%%"); got != "100%" {
		t.Fatalf("Sprint(100%%%%) = %q, want %q", got, "100%")
	}
}

func TestPrintfTrailingBarePercentHaltsFormatting(t *testing.T) {
	got := kfmt.Sprint("abc%")
	want := "abc%"
	if got != want {
		t.Fatalf("Sprint(trailing %%) = %q, want %q", got, want)
	}
}

func TestPrintfPercentFollowedByTextIsNotTrailingCase(t *testing.T) {
	// Anything in format after a trailing lone '%' is unreachable because
	// '%' can only be "trailing" if it is the last byte; this test pins that
	// a '%' followed by more text is NOT treated as the trailing case.
	got := kfmt.Sprint("%dafter", kfmt.Int(5))
	if got != "5after" {
		t.Fatalf("Sprint(%%dafter) = %q, want %q", got, "5after")
	}
}

func TestPrintfUnknownDirectiveConsumesNothing(t *testing.T) {
	got := kfmt.Sprint("%q%d", kfmt.Int(7))
	if got != "7" {
		t.Fatalf("Sprint(%%q%%d) = %q, want %q", got, "7")
	}
}

func TestPrintfLiteralPassthrough(t *testing.T) {
	got := kfmt.Sprint("no directives here\n")
	if got != "no directives here\n" {
		t.Fatalf("Sprint(literal) = %q", got)
	}
}
