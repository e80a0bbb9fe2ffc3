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

// Aliases for conversions that are byte-identical to a canonical one.

// BGRAToRGBA is [RGBAToBGRA].
func BGRAToRGBA(src, dst []byte) error { return RGBAToBGRA(src, dst) }

// BGRAToRGBAInplace is [RGBAToBGRAInplace].
func BGRAToRGBAInplace(buf []byte) error { return RGBAToBGRAInplace(buf) }

// BGRAToRGBAStrided is [RGBAToBGRAStrided].
func BGRAToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBAToBGRAStrided(src, dst, width, height, srcStride, dstStride)
}

// BGRAToRGBAInplaceStrided is [RGBAToBGRAInplaceStrided].
func BGRAToRGBAInplaceStrided(buf []byte, width, height, stride int) error {
	return RGBAToBGRAInplaceStrided(buf, width, height, stride)
}

// FillAlphaBGRA is [FillAlphaRGBA].
func FillAlphaBGRA(src, dst []byte) error { return FillAlphaRGBA(src, dst) }

// FillAlphaBGRAInplace is [FillAlphaRGBAInplace].
func FillAlphaBGRAInplace(buf []byte) error { return FillAlphaRGBAInplace(buf) }

// FillAlphaBGRAStrided is [FillAlphaRGBAStrided].
func FillAlphaBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return FillAlphaRGBAStrided(src, dst, width, height, srcStride, dstStride)
}

// FillAlphaBGRAInplaceStrided is [FillAlphaRGBAInplaceStrided].
func FillAlphaBGRAInplaceStrided(buf []byte, width, height, stride int) error {
	return FillAlphaRGBAInplaceStrided(buf, width, height, stride)
}

// BGRToRGB is [RGBToBGR].
func BGRToRGB(src, dst []byte) error { return RGBToBGR(src, dst) }

// BGRToRGBInplace is [RGBToBGRInplace].
func BGRToRGBInplace(buf []byte) error { return RGBToBGRInplace(buf) }

// BGRToRGBStrided is [RGBToBGRStrided].
func BGRToRGBStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBToBGRStrided(src, dst, width, height, srcStride, dstStride)
}

// BGRToRGBInplaceStrided is [RGBToBGRInplaceStrided].
func BGRToRGBInplaceStrided(buf []byte, width, height, stride int) error {
	return RGBToBGRInplaceStrided(buf, width, height, stride)
}

// BGRToBGRA is [RGBToRGBA].
func BGRToBGRA(src, dst []byte) error { return RGBToRGBA(src, dst) }

// BGRToBGRAInplace is [RGBToRGBAInplace].
func BGRToBGRAInplace(buf []byte) error { return RGBToRGBAInplace(buf) }

// BGRToBGRAStrided is [RGBToRGBAStrided].
func BGRToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBToRGBAStrided(src, dst, width, height, srcStride, dstStride)
}

// BGRToBGRAInplaceStrided is [RGBToRGBAInplaceStrided].
func BGRToBGRAInplaceStrided(buf []byte, width, height, stride int) error {
	return RGBToRGBAInplaceStrided(buf, width, height, stride)
}

// BGRToRGBA is [RGBToBGRA].
func BGRToRGBA(src, dst []byte) error { return RGBToBGRA(src, dst) }

// BGRToRGBAInplace is [RGBToBGRAInplace].
func BGRToRGBAInplace(buf []byte) error { return RGBToBGRAInplace(buf) }

// BGRToRGBAStrided is [RGBToBGRAStrided].
func BGRToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBToBGRAStrided(src, dst, width, height, srcStride, dstStride)
}

// BGRToRGBAInplaceStrided is [RGBToBGRAInplaceStrided].
func BGRToRGBAInplaceStrided(buf []byte, width, height, stride int) error {
	return RGBToBGRAInplaceStrided(buf, width, height, stride)
}

// GrayToBGRA is [GrayToRGBA].
func GrayToBGRA(src, dst []byte) error { return GrayToRGBA(src, dst) }

// GrayToBGRAInplace is [GrayToRGBAInplace].
func GrayToBGRAInplace(buf []byte) error { return GrayToRGBAInplace(buf) }

// GrayToBGRAStrided is [GrayToRGBAStrided].
func GrayToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return GrayToRGBAStrided(src, dst, width, height, srcStride, dstStride)
}

// GrayToBGRAInplaceStrided is [GrayToRGBAInplaceStrided].
func GrayToBGRAInplaceStrided(buf []byte, width, height, stride int) error {
	return GrayToRGBAInplaceStrided(buf, width, height, stride)
}

// GrayAlphaToBGRA is [GrayAlphaToRGBA].
func GrayAlphaToBGRA(src, dst []byte) error { return GrayAlphaToRGBA(src, dst) }

// GrayAlphaToBGRAInplace is [GrayAlphaToRGBAInplace].
func GrayAlphaToBGRAInplace(buf []byte) error { return GrayAlphaToRGBAInplace(buf) }

// GrayAlphaToBGRAStrided is [GrayAlphaToRGBAStrided].
func GrayAlphaToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return GrayAlphaToRGBAStrided(src, dst, width, height, srcStride, dstStride)
}

// GrayAlphaToBGRAInplaceStrided is [GrayAlphaToRGBAInplaceStrided].
func GrayAlphaToBGRAInplaceStrided(buf []byte, width, height, stride int) error {
	return GrayAlphaToRGBAInplaceStrided(buf, width, height, stride)
}

// BGRAToBGR is [RGBAToRGB].
func BGRAToBGR(src, dst []byte) error { return RGBAToRGB(src, dst) }

// BGRAToBGRInplace is [RGBAToRGBInplace].
func BGRAToBGRInplace(buf []byte) error { return RGBAToRGBInplace(buf) }

// BGRAToBGRStrided is [RGBAToRGBStrided].
func BGRAToBGRStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return RGBAToRGBStrided(src, dst, width, height, srcStride, dstStride)
}

// BGRAToBGRInplaceStrided is [RGBAToRGBInplaceStrided].
func BGRAToBGRInplaceStrided(buf []byte, width, height, stride int) error {
	return RGBAToRGBInplaceStrided(buf, width, height, stride)
}

// RGBAToBGR is [BGRAToRGB].
func RGBAToBGR(src, dst []byte) error { return BGRAToRGB(src, dst) }

// RGBAToBGRInplace is [BGRAToRGBInplace].
func RGBAToBGRInplace(buf []byte) error { return BGRAToRGBInplace(buf) }

// RGBAToBGRStrided is [BGRAToRGBStrided].
func RGBAToBGRStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return BGRAToRGBStrided(src, dst, width, height, srcStride, dstStride)
}

// RGBAToBGRInplaceStrided is [BGRAToRGBInplaceStrided].
func RGBAToBGRInplaceStrided(buf []byte, width, height, stride int) error {
	return BGRAToRGBInplaceStrided(buf, width, height, stride)
}
