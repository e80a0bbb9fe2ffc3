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

package image

import (
	"fmt"
	"math"
	"strings"

	"github.com/ajroetker/go-swizzle/hwy"
)

// Format is a byte layout of one pixel.
type Format uint8

const (
	// FormatRGBA is red, green, blue, alpha; one byte each.
	FormatRGBA Format = iota + 1
	// FormatBGRA is blue, green, red, alpha.
	FormatBGRA
	// FormatRGB is red, green, blue.
	FormatRGB
	// FormatBGR is blue, green, red.
	FormatBGR
	// FormatGray is one luminance byte.
	FormatGray
	// FormatGrayAlpha is luminance then alpha.
	FormatGrayAlpha
)

// BytesPerPixel returns the pixel size of f, or 0 for an unknown format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGBA, FormatBGRA:
		return 4
	case FormatRGB, FormatBGR:
		return 3
	case FormatGrayAlpha:
		return 2
	case FormatGray:
		return 1
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatRGBA:
		return "RGBA"
	case FormatBGRA:
		return "BGRA"
	case FormatRGB:
		return "RGB"
	case FormatBGR:
		return "BGR"
	case FormatGray:
		return "Gray"
	case FormatGrayAlpha:
		return "GrayAlpha"
	default:
		return "unknown"
	}
}

// Formats returns every known format in declaration order.
func Formats() []Format {
	return []Format{FormatRGBA, FormatBGRA, FormatRGB, FormatBGR, FormatGray, FormatGrayAlpha}
}

// ParseFormat returns the format whose String matches s, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("image: format %q: %w", s, ErrFormatMismatch)
}

// Image is a 2D view of pixels in one Format. Row y starts at byte
// y*Stride() of the backing slice; bytes between the end of a row's pixels
// and the next row are padding and are never touched by conversions.
type Image struct {
	data   []byte
	width  int
	height int
	stride int // bytes per row (includes padding)
	format Format
}

// NewImage allocates an image of the given size and format.
// Rows are padded to a multiple of the resolved kernel chunk width.
func NewImage(width, height int, f Format) *Image {
	bpp := f.BytesPerPixel()
	if width <= 0 || height <= 0 || bpp == 0 {
		return &Image{format: f}
	}

	chunk := hwy.CurrentWidth()
	stride := ((width*bpp + chunk - 1) / chunk) * chunk

	return &Image{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: f,
	}
}

// FromBytes wraps data as an image without copying. The last row needs no
// padding, so data may be as short as (height-1)*stride + width*bpp.
func FromBytes(data []byte, width, height, stride int, f Format) (*Image, error) {
	if f.BytesPerPixel() == 0 {
		return nil, fmt.Errorf("image: format %d: %w", f, ErrFormatMismatch)
	}
	if !fits(len(data), width, height, stride, f.BytesPerPixel()) {
		return nil, fmt.Errorf("image: %dx%d %v with stride %d over %d bytes: %w",
			width, height, f, stride, len(data), ErrSizeMismatch)
	}
	return &Image{data: data, width: width, height: height, stride: stride, format: f}, nil
}

// fits reports whether height rows of width bpp-byte pixels, stride bytes
// apart, fit in n bytes.
func fits(n, width, height, stride, bpp int) bool {
	if width <= 0 || height <= 0 || width > math.MaxInt/bpp {
		return false
	}
	row := width * bpp
	if stride < row || (height > 1 && stride > (math.MaxInt-row)/(height-1)) {
		return false
	}
	return (height-1)*stride+row <= n
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Stride returns the number of bytes per row (including padding).
func (img *Image) Stride() int {
	return img.stride
}

// Format returns the pixel format.
func (img *Image) Format() Format {
	return img.format
}

// Bytes returns the backing slice.
func (img *Image) Bytes() []byte {
	return img.data
}

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return img.width == 0 || img.height == 0
}

// Contiguous reports whether rows follow each other with no padding.
func (img *Image) Contiguous() bool {
	return img.stride == img.width*img.format.BytesPerPixel()
}

// RowSlice returns the pixel bytes of row y, excluding padding.
func (img *Image) RowSlice(y int) []byte {
	if y < 0 || y >= img.height {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width*img.format.BytesPerPixel()]
}

// Pixel returns the bytes of the pixel at (x, y), or nil out of bounds.
func (img *Image) Pixel(x, y int) []byte {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return nil
	}
	bpp := img.format.BytesPerPixel()
	off := y*img.stride + x*bpp
	return img.data[off : off+bpp : off+bpp]
}

// Fill sets every pixel to p, which must be one pixel long. Padding is left
// untouched.
func (img *Image) Fill(p []byte) {
	if len(p) != img.format.BytesPerPixel() {
		return
	}
	for y := range img.height {
		row := img.RowSlice(y)
		for x := 0; x < len(row); x += len(p) {
			copy(row[x:], p)
		}
	}
}

// Clone returns a deep copy with the same stride.
func (img *Image) Clone() *Image {
	clone := *img
	clone.data = append([]byte(nil), img.data...)
	return &clone
}

// SubImage returns a view of the pixels inside r, sharing the backing
// bytes. r is clipped to the image bounds.
func (img *Image) SubImage(r Rect) *Image {
	r = r.Intersect(img.Bounds())
	if r.IsEmpty() {
		return &Image{format: img.format}
	}
	bpp := img.format.BytesPerPixel()
	off := r.Y0*img.stride + r.X0*bpp
	end := (r.Y1-1)*img.stride + r.X1*bpp
	return &Image{
		data:   img.data[off:end],
		width:  r.Width(),
		height: r.Height(),
		stride: img.stride,
		format: img.format,
	}
}

// rows returns the bytes spanning rows [y0, y1), where each row holds
// rowBytes bytes of pixels. The slice ends right after the last row.
func (img *Image) rows(y0, y1, rowBytes int) []byte {
	return img.data[y0*img.stride : (y1-1)*img.stride+rowBytes]
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X0, other.X0)
	y0 := max(r.Y0, other.Y0)
	x1 := min(r.X1, other.X1)
	y1 := min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Bounds returns the bounding rectangle of the image.
func (img *Image) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}
