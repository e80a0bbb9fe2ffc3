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
	"math"
	"math/bits"
)

// checkInplace validates a contiguous buffer of n bytes holding bpp-byte pixels.
func checkInplace(n, bpp int) error {
	if n <= 0 || n%bpp != 0 {
		return ErrNotPixelAligned
	}
	return nil
}

// checkCopy validates a contiguous source and destination. A destination
// larger than needed is accepted.
func checkCopy(srcLen, srcBpp, dstLen, dstBpp int) error {
	if err := checkInplace(srcLen, srcBpp); err != nil {
		return err
	}
	need, ok := mulInt(srcLen/srcBpp, dstBpp)
	if !ok || dstLen < need {
		return ErrPixelCountMismatch
	}
	return nil
}

// checkStrided validates height rows of width bpp-byte pixels laid out
// stride bytes apart in a buffer of n bytes. The last row needs no padding.
func checkStrided(n, width, height, stride, bpp int) error {
	if width <= 0 || height <= 0 || stride < 0 {
		return ErrInvalidStride
	}
	row, ok := mulInt(width, bpp)
	if !ok || row > stride {
		return ErrInvalidStride
	}
	last, ok := mulInt(height-1, stride)
	if !ok {
		return ErrInvalidStride
	}
	end, ok := addInt(last, row)
	if !ok || end > n {
		return ErrInvalidStride
	}
	return nil
}

// mulInt multiplies two non-negative ints, reporting overflow.
func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// addInt adds two non-negative ints, reporting overflow.
func addInt(a, b int) (int, bool) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || sum > math.MaxInt {
		return 0, false
	}
	return int(sum), true
}
