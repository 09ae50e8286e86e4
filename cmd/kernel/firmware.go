//go:build rv32 && qemuvirt

package main

// Link to the external ecall trampoline in firmware_rv32.s.
//
//go:linkname sbi_ecall sbi_ecall
//go:nosplit
func sbi_ecall(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid uint32) (err int32, value uint32)

// FirmwareCall places its six arguments in a0-a5, fid in a6, eid in a7, and
// executes ecall, returning SBI's a0/a1. sbi_ecall's asm body writes none
// of a2-a5 itself and saves none of them either; whatever they hold after
// the ecall is up to the firmware, and this kernel relies on neither
// outcome.
//
//go:nosplit
func FirmwareCall(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid uint32) (err int32, value uint32) {
	return sbi_ecall(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid)
}

// sbiConsolePutChar is the legacy SBI console putchar extension id.
const sbiConsolePutChar = 1

// ConsolePutChar writes a single byte to the firmware console via the SBI
// legacy console putchar call. No other SBI extension (input, framing) is
// used by this kernel.
//
//go:nosplit
func ConsolePutChar(ch byte) {
	FirmwareCall(uint32(ch), 0, 0, 0, 0, 0, 0, sbiConsolePutChar)
}
