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

import (
	"encoding/binary"
	"math/bits"
)

// Scalar kernels define the output of every Op. Each pixel is read in full
// before any byte of it is written, which makes them safe for every
// aliasing pattern the dispatcher produces. Vector kernels hand their row
// remainders to these.

var scalarKernels = kernelSet{
	OpSwap4:         swap4Scalar,
	OpFillAlpha:     fillAlphaScalar,
	OpSwap3:         swap3Scalar,
	OpExpand3to4:    expand3to4Scalar,
	OpExpand3to4Rev: expand3to4RevScalar,
	OpExpand1to4:    expand1to4Scalar,
	OpExpand2to4:    expand2to4Scalar,
	OpStrip4to3:     strip4to3Scalar,
	OpStrip4to3Rev:  strip4to3RevScalar,
}

func swap4Scalar(src, dst []byte) {
	for i := 0; i+4 <= len(src); i += 4 {
		v := binary.LittleEndian.Uint32(src[i:])
		binary.LittleEndian.PutUint32(dst[i:], v&0xFF00FF00|bits.RotateLeft32(v&0x00FF00FF, 16))
	}
}

func fillAlphaScalar(src, dst []byte) {
	for i := 0; i+4 <= len(src); i += 4 {
		s, d := src[i:i+4:i+4], dst[i:i+4:i+4]
		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xFF
	}
}

func swap3Scalar(src, dst []byte) {
	for i := 0; i+3 <= len(src); i += 3 {
		s, d := src[i:i+3:i+3], dst[i:i+3:i+3]
		d[0], d[1], d[2] = s[2], s[1], s[0]
	}
}

func expand3to4Scalar(src, dst []byte) {
	for is, id := 0, 0; is+3 <= len(src); is, id = is+3, id+4 {
		s, d := src[is:is+3:is+3], dst[id:id+4:id+4]
		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xFF
	}
}

func expand3to4RevScalar(src, dst []byte) {
	for is, id := 0, 0; is+3 <= len(src); is, id = is+3, id+4 {
		s, d := src[is:is+3:is+3], dst[id:id+4:id+4]
		d[0], d[1], d[2], d[3] = s[2], s[1], s[0], 0xFF
	}
}

func expand1to4Scalar(src, dst []byte) {
	for i, g := range src {
		d := dst[4*i : 4*i+4 : 4*i+4]
		d[0], d[1], d[2], d[3] = g, g, g, 0xFF
	}
}

func expand2to4Scalar(src, dst []byte) {
	for is, id := 0, 0; is+2 <= len(src); is, id = is+2, id+4 {
		g, a := src[is], src[is+1]
		d := dst[id : id+4 : id+4]
		d[0], d[1], d[2], d[3] = g, g, g, a
	}
}

func strip4to3Scalar(src, dst []byte) {
	for is, id := 0, 0; is+4 <= len(src); is, id = is+4, id+3 {
		s, d := src[is:is+4:is+4], dst[id:id+3:id+3]
		d[0], d[1], d[2] = s[0], s[1], s[2]
	}
}

func strip4to3RevScalar(src, dst []byte) {
	for is, id := 0, 0; is+4 <= len(src); is, id = is+4, id+3 {
		s, d := src[is:is+4:is+4], dst[id:id+3:id+3]
		d[0], d[1], d[2] = s[2], s[1], s[0]
	}
}
