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

// RGBAToBGRA swaps the red and blue bytes of 4-byte pixels.
// len(src) must be a positive multiple of 4 and dst must hold at least as
// many pixels as src.
func RGBAToBGRA(src, dst []byte) error {
	return OpSwap4.Convert(src, dst)
}

// RGBAToBGRAInplace is the in-place form of [RGBAToBGRA].
func RGBAToBGRAInplace(buf []byte) error {
	return OpSwap4.ConvertInplace(buf)
}

// RGBAToBGRAStrided converts height rows of width pixels whose starts are
// srcStride and dstStride bytes apart. Row padding is neither read nor
// written.
func RGBAToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpSwap4.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

// RGBAToBGRAInplaceStrided is the in-place form of [RGBAToBGRAStrided].
func RGBAToBGRAInplaceStrided(buf []byte, width, height, stride int) error {
	return OpSwap4.ConvertInplaceStrided(buf, width, height, stride)
}

// FillAlphaRGBA sets the alpha byte of every 4-byte pixel to 0xFF. The color
// bytes are copied unchanged.
func FillAlphaRGBA(src, dst []byte) error {
	return OpFillAlpha.Convert(src, dst)
}

func FillAlphaRGBAInplace(buf []byte) error {
	return OpFillAlpha.ConvertInplace(buf)
}

func FillAlphaRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpFillAlpha.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

func FillAlphaRGBAInplaceStrided(buf []byte, width, height, stride int) error {
	return OpFillAlpha.ConvertInplaceStrided(buf, width, height, stride)
}

// RGBToBGR swaps the red and blue bytes of 3-byte pixels.
func RGBToBGR(src, dst []byte) error {
	return OpSwap3.Convert(src, dst)
}

func RGBToBGRInplace(buf []byte) error {
	return OpSwap3.ConvertInplace(buf)
}

func RGBToBGRStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpSwap3.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

func RGBToBGRInplaceStrided(buf []byte, width, height, stride int) error {
	return OpSwap3.ConvertInplaceStrided(buf, width, height, stride)
}

// RGBToRGBA appends an opaque alpha byte to 3-byte pixels, keeping channel order.
func RGBToRGBA(src, dst []byte) error {
	return OpExpand3to4.Convert(src, dst)
}

// RGBToRGBAInplace expects len(buf)/4 RGB pixels packed at the start of buf
// and leaves len(buf)/4 RGBA pixels.
func RGBToRGBAInplace(buf []byte) error {
	return OpExpand3to4.ConvertInplace(buf)
}

func RGBToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpExpand3to4.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

func RGBToRGBAInplaceStrided(buf []byte, width, height, stride int) error {
	return OpExpand3to4.ConvertInplaceStrided(buf, width, height, stride)
}

// RGBToBGRA reverses the channel order of 3-byte pixels and appends an opaque
// alpha byte.
func RGBToBGRA(src, dst []byte) error {
	return OpExpand3to4Rev.Convert(src, dst)
}

func RGBToBGRAInplace(buf []byte) error {
	return OpExpand3to4Rev.ConvertInplace(buf)
}

func RGBToBGRAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpExpand3to4Rev.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

func RGBToBGRAInplaceStrided(buf []byte, width, height, stride int) error {
	return OpExpand3to4Rev.ConvertInplaceStrided(buf, width, height, stride)
}

// GrayToRGBA replicates each gray byte into the three color bytes of an
// opaque 4-byte pixel.
func GrayToRGBA(src, dst []byte) error {
	return OpExpand1to4.Convert(src, dst)
}

func GrayToRGBAInplace(buf []byte) error {
	return OpExpand1to4.ConvertInplace(buf)
}

func GrayToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpExpand1to4.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

func GrayToRGBAInplaceStrided(buf []byte, width, height, stride int) error {
	return OpExpand1to4.ConvertInplaceStrided(buf, width, height, stride)
}

// GrayAlphaToRGBA replicates the gray byte of each gray/alpha pair into the
// three color bytes and keeps its alpha.
func GrayAlphaToRGBA(src, dst []byte) error {
	return OpExpand2to4.Convert(src, dst)
}

func GrayAlphaToRGBAInplace(buf []byte) error {
	return OpExpand2to4.ConvertInplace(buf)
}

func GrayAlphaToRGBAStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpExpand2to4.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

func GrayAlphaToRGBAInplaceStrided(buf []byte, width, height, stride int) error {
	return OpExpand2to4.ConvertInplaceStrided(buf, width, height, stride)
}

// RGBAToRGB drops the alpha byte of 4-byte pixels, keeping channel order.
func RGBAToRGB(src, dst []byte) error {
	return OpStrip4to3.Convert(src, dst)
}

// RGBAToRGBInplace packs the RGB output at the start of buf. The last
// len(buf)/4 bytes are left as they were.
func RGBAToRGBInplace(buf []byte) error {
	return OpStrip4to3.ConvertInplace(buf)
}

func RGBAToRGBStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpStrip4to3.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

func RGBAToRGBInplaceStrided(buf []byte, width, height, stride int) error {
	return OpStrip4to3.ConvertInplaceStrided(buf, width, height, stride)
}

// BGRAToRGB drops the alpha byte of 4-byte pixels and reverses the color bytes.
func BGRAToRGB(src, dst []byte) error {
	return OpStrip4to3Rev.Convert(src, dst)
}

func BGRAToRGBInplace(buf []byte) error {
	return OpStrip4to3Rev.ConvertInplace(buf)
}

func BGRAToRGBStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	return OpStrip4to3Rev.ConvertStrided(src, dst, width, height, srcStride, dstStride)
}

func BGRAToRGBInplaceStrided(buf []byte, width, height, stride int) error {
	return OpStrip4to3Rev.ConvertInplaceStrided(buf, width, height, stride)
}
