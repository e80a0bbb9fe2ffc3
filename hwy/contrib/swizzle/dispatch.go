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

import "github.com/ajroetker/go-swizzle/hwy"

// growBlock is the number of pixels an in-place expansion stages through
// its stack scratch buffer per step.
const growBlock = 256

// Convert converts the packed pixels of src into dst. len(src) must be a
// positive multiple of o.SrcBpp() and dst must hold at least as many
// pixels; bytes past the converted pixels are left untouched.
func (o Op) Convert(src, dst []byte) error {
	sb, db := o.SrcBpp(), o.DstBpp()
	if err := checkCopy(len(src), sb, len(dst), db); err != nil {
		return err
	}
	n := len(src) / sb
	kernelFor(hwy.Resolve(), o)(src, dst[:n*db])
	return nil
}

// ConvertInplace converts buf in place. See the package documentation for
// how ops that change the pixel size lay out buf.
func (o Op) ConvertInplace(buf []byte) error {
	sb, db := o.SrcBpp(), o.DstBpp()
	if err := checkInplace(len(buf), max(sb, db)); err != nil {
		return err
	}
	convertRowInplace(kernelFor(hwy.Resolve(), o), buf, len(buf)/max(sb, db), sb, db)
	return nil
}

// ConvertStrided converts height rows of width pixels. Row y of the source
// starts at src[y*srcStride] and row y of the destination at
// dst[y*dstStride]. Bytes outside the pixel spans are not touched.
func (o Op) ConvertStrided(src, dst []byte, width, height, srcStride, dstStride int) error {
	sb, db := o.SrcBpp(), o.DstBpp()
	if err := checkStrided(len(src), width, height, srcStride, sb); err != nil {
		return err
	}
	if err := checkStrided(len(dst), width, height, dstStride, db); err != nil {
		return err
	}
	k := kernelFor(hwy.Resolve(), o)
	rs, rd := width*sb, width*db
	for y := range height {
		s, d := y*srcStride, y*dstStride
		k(src[s:s+rs], dst[d:d+rd])
	}
	return nil
}

// ConvertInplaceStrided converts height rows of width pixels in place, rows
// stride bytes apart. The wider of the two pixel layouts must fit in stride.
func (o Op) ConvertInplaceStrided(buf []byte, width, height, stride int) error {
	sb, db := o.SrcBpp(), o.DstBpp()
	bpp := max(sb, db)
	if err := checkStrided(len(buf), width, height, stride, bpp); err != nil {
		return err
	}
	k := kernelFor(hwy.Resolve(), o)
	for y := range height {
		s := y * stride
		convertRowInplace(k, buf[s:s+width*bpp], width, sb, db)
	}
	return nil
}

// convertRowInplace converts n pixels packed at the start of row, which is
// at least n*max(sb, db) bytes long.
func convertRowInplace(k rowKernel, row []byte, n, sb, db int) {
	if sb >= db {
		// Pixel i is never written past where it was read from.
		k(row[:n*sb], row[:n*db])
		return
	}
	growInplace(k, row, n, sb, db)
}

// growInplace expands n sb-byte pixels packed at the start of row into
// db-byte pixels, working from the last block to the first. Each block is
// staged through scratch, so no write lands on a source byte that has not
// been read yet.
func growInplace(k rowKernel, row []byte, n, sb, db int) {
	var scratch [growBlock * 3]byte
	for end := n; end > 0; {
		start := max(end-growBlock, 0)
		s := scratch[:(end-start)*sb]
		copy(s, row[start*sb:end*sb])
		k(s, row[start*db:end*db])
		end = start
	}
}
