//go:build !noasm && arm64

package asm

import "unsafe"

//go:noescape
func shuffle16_neon(dst, src unsafe.Pointer, n, srcStep int, idx, or unsafe.Pointer)

//go:noescape
func shuffle12_neon(dst, src unsafe.Pointer, n, srcStep int, idx unsafe.Pointer)

// Shuffle16 runs n iterations of a 16-byte NEON table lookup. Iteration k
// loads src[k*srcStep:k*srcStep+16], permutes it through idx (TBL: indices
// of 16 or more produce zero), ORs in or, and stores the 16 result bytes at
// dst[16*k:].
//
// The caller guarantees (n-1)*srcStep+16 <= len(src) and 16*n <= len(dst).
// Each iteration loads before it stores, so dst may be src itself when
// srcStep is 16.
func Shuffle16(dst, src []byte, n, srcStep int, idx, or *[16]byte) {
	if n <= 0 {
		return
	}
	_ = src[(n-1)*srcStep+15]
	_ = dst[16*n-1]
	shuffle16_neon(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), n, srcStep,
		unsafe.Pointer(idx), unsafe.Pointer(or))
}

// Shuffle12 is Shuffle16 without the OR for tables that produce 12 valid
// bytes. Only result bytes 0-11 are stored, at dst[12*k:], as one 8-byte
// and one 4-byte store.
//
// The caller guarantees (n-1)*srcStep+16 <= len(src) and 12*n <= len(dst).
// dst may start at src when srcStep is at least 12.
func Shuffle12(dst, src []byte, n, srcStep int, idx *[16]byte) {
	if n <= 0 {
		return
	}
	_ = src[(n-1)*srcStep+15]
	_ = dst[12*n-1]
	shuffle12_neon(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), n, srcStep,
		unsafe.Pointer(idx))
}
