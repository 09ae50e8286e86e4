//go:build !(rv32 && qemuvirt)
// +build !rv32 !qemuvirt

package main

// Stub file to ensure compilation fails if the rv32+qemuvirt build tag pair
// isn't specified, rather than silently compiling a kernel that nothing
// will boot.

func init() {
	// Intentionally undefined: the build fails with
	// "undefined: compileError_BUILD_TAGS_rv32_qemuvirt_REQUIRED",
	// which names exactly what's missing.
	compileError_BUILD_TAGS_rv32_qemuvirt_REQUIRED()
}
