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

// AVX kernels shuffle 16 bytes at a time with VPSHUFB. A negative table
// entry produces a zero byte.
//
// Tables stay in memory as arrays and are loaded inside each kernel so that
// no VEX instruction runs before the capability has been checked.

func init() {
	register(hwy.TierAVX, &avxKernels)
}

var avxKernels = kernelSet{
	OpSwap4:         swap4AVX,
	OpFillAlpha:     fillAlphaAVX,
	OpSwap3:         swap3AVX,
	OpExpand3to4:    expand3to4AVX,
	OpExpand3to4Rev: expand3to4RevAVX,
	OpExpand1to4:    expand1to4AVX,
	OpExpand2to4:    expand2to4AVX,
	OpStrip4to3:     strip4to3AVX,
	OpStrip4to3Rev:  strip4to3RevAVX,
}

var (
	swap4Idx      = [16]int8{2, 1, 0, 3, 6, 5, 4, 7, 10, 9, 8, 11, 14, 13, 12, 15}
	swap3Idx      = [16]int8{2, 1, 0, 5, 4, 3, 8, 7, 6, 11, 10, 9, -1, -1, -1, -1}
	expand3Idx    = [16]int8{0, 1, 2, -1, 3, 4, 5, -1, 6, 7, 8, -1, 9, 10, 11, -1}
	expand3RevIdx = [16]int8{2, 1, 0, -1, 5, 4, 3, -1, 8, 7, 6, -1, 11, 10, 9, -1}
	strip4Idx     = [16]int8{0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14, -1, -1, -1, -1}
	strip4RevIdx  = [16]int8{2, 1, 0, 6, 5, 4, 10, 9, 8, 14, 13, 12, -1, -1, -1, -1}
	grayAlphaIdx  = [2][16]int8{
		{0, 0, 0, 1, 2, 2, 2, 3, 4, 4, 4, 5, 6, 6, 6, 7},
		{8, 8, 8, 9, 10, 10, 10, 11, 12, 12, 12, 13, 14, 14, 14, 15},
	}
	grayIdx = [4][16]int8{
		{0, 0, 0, -1, 1, 1, 1, -1, 2, 2, 2, -1, 3, 3, 3, -1},
		{4, 4, 4, -1, 5, 5, 5, -1, 6, 6, 6, -1, 7, 7, 7, -1},
		{8, 8, 8, -1, 9, 9, 9, -1, 10, 10, 10, -1, 11, 11, 11, -1},
		{12, 12, 12, -1, 13, 13, 13, -1, 14, 14, 14, -1, 15, 15, 15, -1},
	}
	alphaMask = [16]uint8{3: 0xFF, 7: 0xFF, 11: 0xFF, 15: 0xFF}
)

func load16(b []byte) archsimd.Uint8x16 {
	return archsimd.LoadUint8x16((*[16]uint8)(b[:16]))
}

func swap4AVX(src, dst []byte) {
	idx := archsimd.LoadInt8x16(&swap4Idx)
	i := 0
	for ; i+16 <= len(src); i += 16 {
		load16(src[i:]).PermuteOrZero(idx).Store((*[16]uint8)(dst[i : i+16]))
	}
	swap4Scalar(src[i:], dst[i:])
}

func fillAlphaAVX(src, dst []byte) {
	alpha := archsimd.LoadUint8x16(&alphaMask)
	i := 0
	for ; i+16 <= len(src); i += 16 {
		load16(src[i:]).Or(alpha).Store((*[16]uint8)(dst[i : i+16]))
	}
	fillAlphaScalar(src[i:], dst[i:])
}

// shuffle12AVX runs a table that yields 12 valid bytes per 16-byte load.
// The result goes through a scratch array so the 4 trailing bytes are never
// stored.
func shuffle12AVX(src, dst []byte, step int, table *[16]int8) int {
	idx := archsimd.LoadInt8x16(table)
	var tmp [16]uint8
	is, id := 0, 0
	for ; is+16 <= len(src); is, id = is+step, id+12 {
		load16(src[is:]).PermuteOrZero(idx).Store(&tmp)
		copy(dst[id:id+12], tmp[:12])
	}
	return is
}

func swap3AVX(src, dst []byte) {
	i := shuffle12AVX(src, dst, 12, &swap3Idx)
	swap3Scalar(src[i:], dst[i:])
}

func strip4to3AVX(src, dst []byte) {
	is := shuffle12AVX(src, dst, 16, &strip4Idx)
	strip4to3Scalar(src[is:], dst[is/4*3:])
}

func strip4to3RevAVX(src, dst []byte) {
	is := shuffle12AVX(src, dst, 16, &strip4RevIdx)
	strip4to3RevScalar(src[is:], dst[is/4*3:])
}

func expand3AVX(src, dst []byte, table *[16]int8) int {
	idx := archsimd.LoadInt8x16(table)
	alpha := archsimd.LoadUint8x16(&alphaMask)
	is, id := 0, 0
	for ; is+16 <= len(src); is, id = is+12, id+16 {
		load16(src[is:]).PermuteOrZero(idx).Or(alpha).Store((*[16]uint8)(dst[id : id+16]))
	}
	return is
}

func expand3to4AVX(src, dst []byte) {
	is := expand3AVX(src, dst, &expand3Idx)
	expand3to4Scalar(src[is:], dst[is/3*4:])
}

func expand3to4RevAVX(src, dst []byte) {
	is := expand3AVX(src, dst, &expand3RevIdx)
	expand3to4RevScalar(src[is:], dst[is/3*4:])
}

func expand1to4AVX(src, dst []byte) {
	var idx [4]archsimd.Int8x16
	for q := range idx {
		idx[q] = archsimd.LoadInt8x16(&grayIdx[q])
	}
	alpha := archsimd.LoadUint8x16(&alphaMask)
	is, id := 0, 0
	for ; is+16 <= len(src); is, id = is+16, id+64 {
		v := load16(src[is:])
		for q := range idx {
			o := id + 16*q
			v.PermuteOrZero(idx[q]).Or(alpha).Store((*[16]uint8)(dst[o : o+16]))
		}
	}
	expand1to4Scalar(src[is:], dst[id:])
}

func expand2to4AVX(src, dst []byte) {
	lo := archsimd.LoadInt8x16(&grayAlphaIdx[0])
	hi := archsimd.LoadInt8x16(&grayAlphaIdx[1])
	is, id := 0, 0
	for ; is+16 <= len(src); is, id = is+16, id+32 {
		v := load16(src[is:])
		v.PermuteOrZero(lo).Store((*[16]uint8)(dst[id : id+16]))
		v.PermuteOrZero(hi).Store((*[16]uint8)(dst[id+16 : id+32]))
	}
	expand2to4Scalar(src[is:], dst[id:])
}
