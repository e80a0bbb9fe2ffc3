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

// Package swizzle converts raw pixel buffers between byte layouts.
//
// Every conversion works on caller-owned byte slices plus geometry and never
// allocates. The package picks the fastest kernel family the CPU supports at
// first use (see [hwy.Resolve]) and falls back to a portable scalar path for
// row remainders.
//
// # Operations
//
// Each conversion has four shapes:
//
//	RGBAToBGRA(src, dst)                                      // copy
//	RGBAToBGRAInplace(buf)                                    // in place
//	RGBAToBGRAStrided(src, dst, width, height, srcStride, dstStride)
//	RGBAToBGRAInplaceStrided(buf, width, height, stride)
//
// Strides are in bytes between row starts. Bytes between the end of one row's
// pixels and the start of the next row are never read or written.
//
// Conversions that differ only in which channel is called red all share one
// kernel, so BGRAToRGBA is the same function as RGBAToBGRA under another name:
//
//	RGBAToBGRA      = BGRAToRGBA
//	FillAlphaRGBA   = FillAlphaBGRA
//	RGBToBGR        = BGRToRGB
//	RGBToRGBA       = BGRToBGRA
//	RGBToBGRA       = BGRToRGBA
//	GrayToRGBA      = GrayToBGRA
//	GrayAlphaToRGBA = GrayAlphaToBGRA
//	RGBAToRGB       = BGRAToBGR
//	BGRAToRGB       = RGBAToBGR
//
// # In-place size changes
//
// In-place conversions that grow pixels (3, 2 or 1 bytes to 4) expect the
// source pixels packed at the start of a buffer already sized for the output:
// len(buf) must be a positive multiple of 4 and the first len(buf)/4 pixels of
// the source layout are converted. In-place conversions that shrink pixels
// (4 bytes to 3) write the output packed at the start of buf and leave the
// last len(buf)/4 bytes unchanged.
//
// # Errors
//
// All validation happens before any byte is written. Failures are reported as
// a [SizeError]:
//
//	if err := swizzle.RGBToRGBA(src, dst); errors.Is(err, swizzle.ErrPixelCountMismatch) {
//	    // dst is too small
//	}
//
// # Environment Variables
//
//   - SWIZZLE_NO_SIMD: forces the scalar kernels (see [hwy.NoSimdEnv])
package swizzle
