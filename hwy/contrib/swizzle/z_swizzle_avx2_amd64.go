// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd

package swizzle

import (
	"simd/archsimd"

	"github.com/ajroetker/go-swizzle/hwy"
)

// AVX2 kernels shuffle 32 bytes at a time. VPSHUFB on a 256-bit register
// permutes each 128-bit lane independently, so every table below is two
// 16-byte lane tables side by side.
//
// 3-byte sources are loaded as two 16-byte halves 12 bytes apart so each
// lane holds four whole pixels.

func init() {
	register(hwy.TierAVX2, &avx2Kernels)
}

var avx2Kernels = kernelSet{
	OpSwap4:         swap4AVX2,
	OpFillAlpha:     fillAlphaAVX2,
	OpSwap3:         swap3AVX2,
	OpExpand3to4:    expand3to4AVX2,
	OpExpand3to4Rev: expand3to4RevAVX2,
	OpExpand1to4:    expand1to4AVX2,
	OpExpand2to4:    expand2to4AVX2,
	OpStrip4to3:     strip4to3AVX2,
	OpStrip4to3Rev:  strip4to3RevAVX2,
}

var (
	swap4Idx32      = lanes(swap4Idx, swap4Idx)
	swap3Idx32      = lanes(swap3Idx, swap3Idx)
	expand3Idx32    = lanes(expand3Idx, expand3Idx)
	expand3RevIdx32 = lanes(expand3RevIdx, expand3RevIdx)
	strip4Idx32     = lanes(strip4Idx, strip4Idx)
	strip4RevIdx32  = lanes(strip4RevIdx, strip4RevIdx)
	grayAlphaIdx32  = lanes(grayAlphaIdx[0], grayAlphaIdx[1])
	grayIdx32       = [2][32]int8{
		lanes(grayIdx[0], grayIdx[1]),
		lanes(grayIdx[2], grayIdx[3]),
	}
	alphaMask32 = [32]uint8{
		3: 0xFF, 7: 0xFF, 11: 0xFF, 15: 0xFF,
		19: 0xFF, 23: 0xFF, 27: 0xFF, 31: 0xFF,
	}
)

func lanes(lo, hi [16]int8) (t [32]int8) {
	copy(t[:16], lo[:])
	copy(t[16:], hi[:])
	return t
}

func load32(b []byte) archsimd.Uint8x32 {
	return archsimd.LoadUint8x32((*[32]uint8)(b[:32]))
}

// load2x12 loads the 24 bytes at b[0:24] as two lanes of four 3-byte pixels.
// It reads b[0:28].
func load2x12(b []byte) archsimd.Uint8x32 {
	var v archsimd.Uint8x32
	return v.SetLo(load16(b)).SetHi(load16(b[12:]))
}

// dup16 loads 16 bytes into both lanes.
func dup16(b []byte) archsimd.Uint8x32 {
	h := load16(b)
	var v archsimd.Uint8x32
	return v.SetLo(h).SetHi(h)
}

func swap4AVX2(src, dst []byte) {
	idx := archsimd.LoadInt8x32(&swap4Idx32)
	i := 0
	for ; i+32 <= len(src); i += 32 {
		load32(src[i:]).PermuteOrZeroGrouped(idx).Store((*[32]uint8)(dst[i : i+32]))
	}
	swap4Scalar(src[i:], dst[i:])
}

func fillAlphaAVX2(src, dst []byte) {
	alpha := archsimd.LoadUint8x32(&alphaMask32)
	i := 0
	for ; i+32 <= len(src); i += 32 {
		load32(src[i:]).Or(alpha).Store((*[32]uint8)(dst[i : i+32]))
	}
	fillAlphaScalar(src[i:], dst[i:])
}

func swap3AVX2(src, dst []byte) {
	idx := archsimd.LoadInt8x32(&swap3Idx32)
	var tmp [32]uint8
	i := 0
	for ; i+28 <= len(src); i += 24 {
		load2x12(src[i:]).PermuteOrZeroGrouped(idx).Store(&tmp)
		copy(dst[i:i+12], tmp[:12])
		copy(dst[i+12:i+24], tmp[16:28])
	}
	swap3Scalar(src[i:], dst[i:])
}

func expand3AVX2(src, dst []byte, table *[32]int8) int {
	idx := archsimd.LoadInt8x32(table)
	alpha := archsimd.LoadUint8x32(&alphaMask32)
	is, id := 0, 0
	for ; is+28 <= len(src); is, id = is+24, id+32 {
		load2x12(src[is:]).PermuteOrZeroGrouped(idx).Or(alpha).Store((*[32]uint8)(dst[id : id+32]))
	}
	return is
}

func expand3to4AVX2(src, dst []byte) {
	is := expand3AVX2(src, dst, &expand3Idx32)
	expand3to4Scalar(src[is:], dst[is/3*4:])
}

func expand3to4RevAVX2(src, dst []byte) {
	is := expand3AVX2(src, dst, &expand3RevIdx32)
	expand3to4RevScalar(src[is:], dst[is/3*4:])
}

func strip4AVX2(src, dst []byte, table *[32]int8) int {
	idx := archsimd.LoadInt8x32(table)
	var tmp [32]uint8
	is, id := 0, 0
	for ; is+32 <= len(src); is, id = is+32, id+24 {
		load32(src[is:]).PermuteOrZeroGrouped(idx).Store(&tmp)
		copy(dst[id:id+12], tmp[:12])
		copy(dst[id+12:id+24], tmp[16:28])
	}
	return is
}

func strip4to3AVX2(src, dst []byte) {
	is := strip4AVX2(src, dst, &strip4Idx32)
	strip4to3Scalar(src[is:], dst[is/4*3:])
}

func strip4to3RevAVX2(src, dst []byte) {
	is := strip4AVX2(src, dst, &strip4RevIdx32)
	strip4to3RevScalar(src[is:], dst[is/4*3:])
}

func expand1to4AVX2(src, dst []byte) {
	lo := archsimd.LoadInt8x32(&grayIdx32[0])
	hi := archsimd.LoadInt8x32(&grayIdx32[1])
	alpha := archsimd.LoadUint8x32(&alphaMask32)
	is, id := 0, 0
	for ; is+16 <= len(src); is, id = is+16, id+64 {
		v := dup16(src[is:])
		v.PermuteOrZeroGrouped(lo).Or(alpha).Store((*[32]uint8)(dst[id : id+32]))
		v.PermuteOrZeroGrouped(hi).Or(alpha).Store((*[32]uint8)(dst[id+32 : id+64]))
	}
	expand1to4Scalar(src[is:], dst[id:])
}

func expand2to4AVX2(src, dst []byte) {
	idx := archsimd.LoadInt8x32(&grayAlphaIdx32)
	is, id := 0, 0
	for ; is+16 <= len(src); is, id = is+16, id+32 {
		dup16(src[is:]).PermuteOrZeroGrouped(idx).Store((*[32]uint8)(dst[id : id+32]))
	}
	expand2to4Scalar(src[is:], dst[id:])
}
