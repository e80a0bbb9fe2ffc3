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

//go:build !noasm && arm64

package swizzle

import (
	"github.com/ajroetker/go-swizzle/hwy"
	"github.com/ajroetker/go-swizzle/hwy/asm"
)

// NEON kernels run one TBL shuffle per 16-byte load through the asm
// package. Every shape moves four pixels per iteration; only the load step,
// table and OR mask differ. Shapes that produce 3-byte pixels store exactly
// 12 bytes per iteration, so no store reaches into the next pixel group.

func init() {
	register(hwy.TierNEON, &neonKernels)
}

// neonShape describes one table shuffle. A dstStep of 12 selects the
// 12-byte store path, which ignores or.
type neonShape struct {
	srcStep, dstStep int
	idx, or          *[16]byte
	tail             rowKernel
}

const tz = 0x80 // TBL index out of range: yields zero

var (
	neonAlpha = [16]byte{3: 0xFF, 7: 0xFF, 11: 0xFF, 15: 0xFF}
	neonNoOr  = [16]byte{}

	neonSwap4 = neonShape{16, 16,
		&[16]byte{2, 1, 0, 3, 6, 5, 4, 7, 10, 9, 8, 11, 14, 13, 12, 15}, &neonNoOr, swap4Scalar}
	neonFillAlpha = neonShape{16, 16,
		&[16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, &neonAlpha, fillAlphaScalar}
	neonSwap3 = neonShape{12, 12,
		&[16]byte{2, 1, 0, 5, 4, 3, 8, 7, 6, 11, 10, 9, tz, tz, tz, tz}, nil, swap3Scalar}
	neonExpand3 = neonShape{12, 16,
		&[16]byte{0, 1, 2, tz, 3, 4, 5, tz, 6, 7, 8, tz, 9, 10, 11, tz}, &neonAlpha, expand3to4Scalar}
	neonExpand3Rev = neonShape{12, 16,
		&[16]byte{2, 1, 0, tz, 5, 4, 3, tz, 8, 7, 6, tz, 11, 10, 9, tz}, &neonAlpha, expand3to4RevScalar}
	neonExpand1 = neonShape{4, 16,
		&[16]byte{0, 0, 0, tz, 1, 1, 1, tz, 2, 2, 2, tz, 3, 3, 3, tz}, &neonAlpha, expand1to4Scalar}
	neonExpand2 = neonShape{8, 16,
		&[16]byte{0, 0, 0, 1, 2, 2, 2, 3, 4, 4, 4, 5, 6, 6, 6, 7}, &neonNoOr, expand2to4Scalar}
	neonStrip4 = neonShape{16, 12,
		&[16]byte{0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14, tz, tz, tz, tz}, nil, strip4to3Scalar}
	neonStrip4Rev = neonShape{16, 12,
		&[16]byte{2, 1, 0, 6, 5, 4, 10, 9, 8, 14, 13, 12, tz, tz, tz, tz}, nil, strip4to3RevScalar}
)

var neonKernels = kernelSet{
	OpSwap4:         neonSwap4.run,
	OpFillAlpha:     neonFillAlpha.run,
	OpSwap3:         neonSwap3.run,
	OpExpand3to4:    neonExpand3.run,
	OpExpand3to4Rev: neonExpand3Rev.run,
	OpExpand1to4:    neonExpand1.run,
	OpExpand2to4:    neonExpand2.run,
	OpStrip4to3:     neonStrip4.run,
	OpStrip4to3Rev:  neonStrip4Rev.run,
}

func (s *neonShape) run(src, dst []byte) {
	n := 0
	if len(src) >= 16 {
		n = min((len(src)-16)/s.srcStep+1, len(dst)/s.dstStep)
	}
	if n > 0 {
		if s.dstStep == 12 {
			asm.Shuffle12(dst, src, n, s.srcStep, s.idx)
		} else {
			asm.Shuffle16(dst, src, n, s.srcStep, s.idx, s.or)
		}
	}
	s.tail(src[n*s.srcStep:], dst[n*s.dstStep:])
}
