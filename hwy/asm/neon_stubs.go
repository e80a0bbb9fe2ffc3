//go:build !arm64 || noasm

package asm

// Stub implementations for non-ARM64 or noasm builds.
// These should never be called - the swizzle package only registers NEON
// kernels when the assembly is compiled in.

func Shuffle16(dst, src []byte, n, srcStep int, idx, or *[16]byte) { panic("NEON not available") }
func Shuffle12(dst, src []byte, n, srcStep int, idx *[16]byte)      { panic("NEON not available") }
