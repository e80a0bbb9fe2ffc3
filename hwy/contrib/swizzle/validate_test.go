package swizzle

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestCheckInplace(t *testing.T) {
	tests := []struct {
		n, bpp int
		want   error
	}{
		{0, 4, ErrNotPixelAligned},
		{3, 4, ErrNotPixelAligned},
		{5, 4, ErrNotPixelAligned},
		{-4, 4, ErrNotPixelAligned},
		{4, 4, nil},
		{12, 3, nil},
		{1, 1, nil},
		{3, 2, ErrNotPixelAligned},
	}
	for _, tt := range tests {
		if got := checkInplace(tt.n, tt.bpp); got != tt.want {
			t.Errorf("checkInplace(%d, %d): got %v, want %v", tt.n, tt.bpp, got, tt.want)
		}
	}
}

func TestCheckCopy(t *testing.T) {
	tests := []struct {
		name                           string
		srcLen, srcBpp, dstLen, dstBpp int
		want                           error
	}{
		{"empty source", 0, 3, 4, 4, ErrNotPixelAligned},
		{"ragged source", 7, 3, 100, 4, ErrNotPixelAligned},
		{"exact", 6, 3, 8, 4, nil},
		{"larger destination", 6, 3, 9, 4, nil},
		{"short destination", 6, 3, 7, 4, ErrPixelCountMismatch},
		{"shrink exact", 8, 4, 6, 3, nil},
		{"shrink short", 8, 4, 5, 3, ErrPixelCountMismatch},
		{"gray", 2, 1, 8, 4, nil},
		{"gray short", 2, 1, 7, 4, ErrPixelCountMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkCopy(tt.srcLen, tt.srcBpp, tt.dstLen, tt.dstBpp); got != tt.want {
				t.Errorf("checkCopy(%d, %d, %d, %d): got %v, want %v",
					tt.srcLen, tt.srcBpp, tt.dstLen, tt.dstBpp, got, tt.want)
			}
		})
	}
}

func TestCheckStrided(t *testing.T) {
	tests := []struct {
		name                 string
		n, w, h, stride, bpp int
		want                 error
	}{
		{"valid", 20, 2, 2, 12, 4, nil},
		{"trailing bytes", 24, 2, 2, 12, 4, nil},
		{"no padding", 16, 2, 2, 8, 4, nil},
		{"one byte short", 19, 2, 2, 12, 4, ErrInvalidStride},
		{"zero width", 100, 0, 2, 12, 4, ErrInvalidStride},
		{"zero height", 100, 2, 0, 12, 4, ErrInvalidStride},
		{"negative width", 100, -1, 2, 12, 4, ErrInvalidStride},
		{"negative height", 100, 2, -1, 12, 4, ErrInvalidStride},
		{"negative stride", 100, 2, 1, -12, 4, ErrInvalidStride},
		{"stride narrower than row", 100, 4, 2, 12, 4, ErrInvalidStride},
		{"single row zero stride", 8, 2, 1, 0, 4, ErrInvalidStride},
		{"width overflow", math.MaxInt, math.MaxInt, 1, math.MaxInt, 4, ErrInvalidStride},
		{"height overflow", math.MaxInt, 1, math.MaxInt, math.MaxInt, 4, ErrInvalidStride},
		{"end overflow", math.MaxInt, 1, 2, math.MaxInt - 2, 4, ErrInvalidStride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkStrided(tt.n, tt.w, tt.h, tt.stride, tt.bpp); got != tt.want {
				t.Errorf("checkStrided(%d, %d, %d, %d, %d): got %v, want %v",
					tt.n, tt.w, tt.h, tt.stride, tt.bpp, got, tt.want)
			}
		})
	}
}

func TestSizeErrorMatching(t *testing.T) {
	err := RGBAToBGRAInplace(make([]byte, 5))
	if !errors.Is(err, ErrNotPixelAligned) {
		t.Fatalf("errors.Is: got %v, want %v", err, ErrNotPixelAligned)
	}
	var kind SizeError
	if !errors.As(err, &kind) || kind != ErrNotPixelAligned {
		t.Errorf("errors.As: got %v, want %v", kind, ErrNotPixelAligned)
	}
	for _, e := range []SizeError{ErrNotPixelAligned, ErrPixelCountMismatch, ErrInvalidStride, SizeError(0)} {
		if msg := e.Error(); len(msg) < len("swizzle: ") || msg[:len("swizzle: ")] != "swizzle: " {
			t.Errorf("SizeError(%d).Error(): got %q, want a swizzle: prefix", e, msg)
		}
	}
}

func TestAlignmentRejection(t *testing.T) {
	for _, op := range Ops() {
		bpp := max(op.SrcBpp(), op.DstBpp())
		for _, n := range []int{0, bpp + 1} {
			buf := pattern(n)
			orig := bytes.Clone(buf)
			if err := op.ConvertInplace(buf); err != ErrNotPixelAligned {
				t.Errorf("%v.ConvertInplace(len %d): got %v, want %v", op, n, err, ErrNotPixelAligned)
			}
			if !bytes.Equal(buf, orig) {
				t.Errorf("%v.ConvertInplace(len %d): buffer modified", op, n)
			}
		}

		src := pattern(op.SrcBpp() + 1)
		if op.SrcBpp() == 1 {
			src = nil
		}
		dst := filled(64, 0xAB)
		if err := op.Convert(src, dst); err != ErrNotPixelAligned {
			t.Errorf("%v.Convert(len %d): got %v, want %v", op, len(src), err, ErrNotPixelAligned)
		}
		if !bytes.Equal(dst, filled(64, 0xAB)) {
			t.Errorf("%v.Convert: destination modified on error", op)
		}
	}
}

func TestPixelCountRejection(t *testing.T) {
	for _, op := range Ops() {
		src := pattern(4 * op.SrcBpp())
		dst := filled(4*op.DstBpp()-1, 0xAB)
		if err := op.Convert(src, dst); err != ErrPixelCountMismatch {
			t.Errorf("%v.Convert: got %v, want %v", op, err, ErrPixelCountMismatch)
		}
		if !bytes.Equal(dst, filled(len(dst), 0xAB)) {
			t.Errorf("%v.Convert: destination modified on error", op)
		}
	}
}

func TestGeometryRejection(t *testing.T) {
	tests := []struct {
		name               string
		size, w, h, stride int
	}{
		{"zero width", 64, 0, 2, 16},
		{"zero height", 64, 2, 0, 16},
		{"stride below row", 64, 4, 2, 8},
		{"buffer too short", 31, 4, 2, 16},
		{"overflow", 64, math.MaxInt / 2, 3, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := pattern(tt.size)
			orig := bytes.Clone(buf)
			if err := RGBAToBGRAInplaceStrided(buf, tt.w, tt.h, tt.stride); err != ErrInvalidStride {
				t.Errorf("InplaceStrided: got %v, want %v", err, ErrInvalidStride)
			}
			if !bytes.Equal(buf, orig) {
				t.Error("InplaceStrided: buffer modified on error")
			}

			dst := filled(tt.size, 0xAB)
			if err := RGBAToBGRAStrided(buf, dst, tt.w, tt.h, tt.stride, tt.stride); err != ErrInvalidStride {
				t.Errorf("Strided: got %v, want %v", err, ErrInvalidStride)
			}
			if !bytes.Equal(dst, filled(tt.size, 0xAB)) {
				t.Error("Strided: destination modified on error")
			}
		})
	}
}

func TestStridedValidatesDestination(t *testing.T) {
	src := pattern(2 * 12)
	dst := filled(2*16-1, 0xAB)
	// 3-byte source rows fit; 4-byte destination rows need 31 bytes + 1.
	if err := RGBToRGBAStrided(src, dst, 4, 2, 12, 16); err != ErrInvalidStride {
		t.Errorf("got %v, want %v", err, ErrInvalidStride)
	}
	if !bytes.Equal(dst, filled(len(dst), 0xAB)) {
		t.Error("destination modified on error")
	}
}

func TestInplaceStridedUsesWiderLayout(t *testing.T) {
	// A 12-byte stride fits four RGB pixels but not four RGBA pixels.
	buf := pattern(24)
	if err := RGBToRGBAInplaceStrided(buf, 4, 2, 12); err != ErrInvalidStride {
		t.Errorf("RGBToRGBAInplaceStrided: got %v, want %v", err, ErrInvalidStride)
	}
	if err := RGBAToRGBInplaceStrided(buf, 4, 2, 12); err != ErrInvalidStride {
		t.Errorf("RGBAToRGBInplaceStrided: got %v, want %v", err, ErrInvalidStride)
	}
	if err := RGBToBGRInplaceStrided(buf, 4, 2, 12); err != nil {
		t.Errorf("RGBToBGRInplaceStrided: %v", err)
	}
}
