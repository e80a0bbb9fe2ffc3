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

package swizzle

import "encoding/binary"

// SWAR kernels treat an 8-byte word as two 4-byte pixels (or two 3-byte
// pixels plus two spare bytes) and work on every GOARCH.
//
// 3-byte layouts advance 6 bytes per 8-byte load and store exactly 6 bytes,
// so the loop bound is on the load, not on the pixel count.

var swarKernels = kernelSet{
	OpSwap4:         swap4SWAR,
	OpFillAlpha:     fillAlphaSWAR,
	OpSwap3:         swap3SWAR,
	OpExpand3to4:    expand3to4SWAR,
	OpExpand3to4Rev: expand3to4RevSWAR,
	OpExpand1to4:    expand1to4SWAR,
	OpExpand2to4:    expand2to4SWAR,
	OpStrip4to3:     strip4to3SWAR,
	OpStrip4to3Rev:  strip4to3RevSWAR,
}

const (
	alphaWord = 0xFF000000FF000000
	gray3     = 0x010101
)

// swapWord4 exchanges bytes 0 and 2 of both 4-byte pixels in v.
func swapWord4(v uint64) uint64 {
	return v&0xFF00FF00FF00FF00 | (v&0x000000FF000000FF)<<16 | (v>>16)&0x000000FF000000FF
}

// swapWord3 exchanges bytes 0 and 2 of the two 3-byte pixels in the low
// 6 bytes of v. The top two bytes are cleared.
func swapWord3(v uint64) uint64 {
	return v&0x000000FF0000FF00 | (v>>16)&0x00000000FF0000FF | (v<<16)&0x0000FF0000FF0000
}

// expandWord3 spreads the two 3-byte pixels in the low 6 bytes of v into
// two opaque 4-byte pixels.
func expandWord3(v uint64) uint64 {
	return v&0xFFFFFF | (v<<8)&0x00FFFFFF00000000 | alphaWord
}

// stripWord4 packs the first three bytes of both 4-byte pixels in v into
// the low 6 bytes of the result.
func stripWord4(v uint64) uint64 {
	return v&0xFFFFFF | (v>>8)&0xFFFFFF000000
}

func put6(dst []byte, v uint64) {
	binary.LittleEndian.PutUint32(dst, uint32(v))
	binary.LittleEndian.PutUint16(dst[4:], uint16(v>>32))
}

func swap4SWAR(src, dst []byte) {
	i := 0
	for ; i+8 <= len(src); i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], swapWord4(binary.LittleEndian.Uint64(src[i:])))
	}
	swap4Scalar(src[i:], dst[i:])
}

func fillAlphaSWAR(src, dst []byte) {
	i := 0
	for ; i+8 <= len(src); i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], binary.LittleEndian.Uint64(src[i:])|alphaWord)
	}
	fillAlphaScalar(src[i:], dst[i:])
}

func swap3SWAR(src, dst []byte) {
	i := 0
	for ; i+8 <= len(src); i += 6 {
		put6(dst[i:], swapWord3(binary.LittleEndian.Uint64(src[i:])))
	}
	swap3Scalar(src[i:], dst[i:])
}

func expand3to4SWAR(src, dst []byte) {
	is, id := 0, 0
	for ; is+8 <= len(src); is, id = is+6, id+8 {
		binary.LittleEndian.PutUint64(dst[id:], expandWord3(binary.LittleEndian.Uint64(src[is:])))
	}
	expand3to4Scalar(src[is:], dst[id:])
}

func expand3to4RevSWAR(src, dst []byte) {
	is, id := 0, 0
	for ; is+8 <= len(src); is, id = is+6, id+8 {
		binary.LittleEndian.PutUint64(dst[id:], expandWord3(swapWord3(binary.LittleEndian.Uint64(src[is:]))))
	}
	expand3to4RevScalar(src[is:], dst[id:])
}

func expand1to4SWAR(src, dst []byte) {
	is, id := 0, 0
	for ; is+4 <= len(src); is, id = is+4, id+16 {
		w := uint64(binary.LittleEndian.Uint32(src[is:]))
		lo := w&0xFF | (w&0xFF00)<<24
		hi := (w>>16)&0xFF | (w>>16&0xFF00)<<24
		binary.LittleEndian.PutUint64(dst[id:], lo*gray3|alphaWord)
		binary.LittleEndian.PutUint64(dst[id+8:], hi*gray3|alphaWord)
	}
	expand1to4Scalar(src[is:], dst[id:])
}

func expand2to4SWAR(src, dst []byte) {
	is, id := 0, 0
	for ; is+4 <= len(src); is, id = is+4, id+8 {
		w := uint64(binary.LittleEndian.Uint32(src[is:]))
		g := w&0xFF | (w&0xFF0000)<<16
		a := (w&0xFF00)<<16 | (w&0xFF000000)<<32
		binary.LittleEndian.PutUint64(dst[id:], g*gray3|a)
	}
	expand2to4Scalar(src[is:], dst[id:])
}

func strip4to3SWAR(src, dst []byte) {
	is, id := 0, 0
	for ; is+8 <= len(src); is, id = is+8, id+6 {
		put6(dst[id:], stripWord4(binary.LittleEndian.Uint64(src[is:])))
	}
	strip4to3Scalar(src[is:], dst[id:])
}

func strip4to3RevSWAR(src, dst []byte) {
	is, id := 0, 0
	for ; is+8 <= len(src); is, id = is+8, id+6 {
		put6(dst[id:], stripWord4(swapWord4(binary.LittleEndian.Uint64(src[is:]))))
	}
	strip4to3RevScalar(src[is:], dst[id:])
}
