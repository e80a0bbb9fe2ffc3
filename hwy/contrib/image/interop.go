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
	stdimage "image"
)

// FromRGBA wraps the pixels of m as a FormatRGBA image without copying.
// Sub-images keep their stride, so conversions leave the surrounding
// pixels alone. The bytes are premultiplied as m stores them.
func FromRGBA(m *stdimage.RGBA) *Image {
	return fromPix(m.Pix, m.Stride, m.Rect, m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y), FormatRGBA)
}

// FromNRGBA wraps the pixels of m as a FormatRGBA image without copying.
func FromNRGBA(m *stdimage.NRGBA) *Image {
	return fromPix(m.Pix, m.Stride, m.Rect, m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y), FormatRGBA)
}

// FromGray wraps the pixels of m as a FormatGray image without copying.
func FromGray(m *stdimage.Gray) *Image {
	return fromPix(m.Pix, m.Stride, m.Rect, m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y), FormatGray)
}

func fromPix(pix []byte, stride int, r stdimage.Rectangle, off int, f Format) *Image {
	if r.Empty() {
		return &Image{format: f}
	}
	w, h := r.Dx(), r.Dy()
	end := off + (h-1)*stride + w*f.BytesPerPixel()
	return &Image{
		data:   pix[off:end],
		width:  w,
		height: h,
		stride: stride,
		format: f,
	}
}

// ToNRGBA converts img into a newly allocated *image.NRGBA with bounds
// starting at the origin.
func ToNRGBA(img *Image, opts *Options) (*stdimage.NRGBA, error) {
	m := stdimage.NewNRGBA(stdimage.Rect(0, 0, img.width, img.height))
	if err := Convert(FromNRGBA(m), img, opts); err != nil {
		return nil, err
	}
	return m, nil
}
