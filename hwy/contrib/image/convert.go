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
	"sync"

	"github.com/ajroetker/go-swizzle/hwy"
	"github.com/ajroetker/go-swizzle/hwy/contrib/swizzle"
	"github.com/ajroetker/go-swizzle/hwy/contrib/workerpool"
)

// DefaultMinRowsPerBand is the smallest band handed to one worker when
// Options.MinRowsPerBand is zero.
const DefaultMinRowsPerBand = 32

// Options controls band-parallel conversion. A nil *Options converts on
// the calling goroutine.
type Options struct {
	// Pool runs the bands. When nil and Workers > 1, a pool with Workers
	// workers is created for the call and closed before it returns.
	Pool *workerpool.Pool

	// Workers sizes the temporary pool when Pool is nil.
	Workers int

	// MinRowsPerBand is the fewest rows one band may hold.
	MinRowsPerBand int
}

func (o *Options) minRows() int {
	if o == nil || o.MinRowsPerBand <= 0 {
		return DefaultMinRowsPerBand
	}
	return o.MinRowsPerBand
}

// pool returns the pool to run bands on, or nil for a serial conversion.
// release must be called when the conversion is done.
func (o *Options) pool() (p *workerpool.Pool, release func()) {
	switch {
	case o == nil:
		return nil, func() {}
	case o.Pool != nil:
		return o.Pool, func() {}
	case o.Workers > 1:
		p = workerpool.New(o.Workers)
		return p, p.Close
	default:
		return nil, func() {}
	}
}

type formatPair struct{ src, dst Format }

// conversions maps a format pair to the swizzle operation that performs it.
var conversions = map[formatPair]swizzle.Op{
	{FormatRGBA, FormatBGRA}:      swizzle.OpSwap4,
	{FormatBGRA, FormatRGBA}:      swizzle.OpSwap4,
	{FormatRGB, FormatBGR}:        swizzle.OpSwap3,
	{FormatBGR, FormatRGB}:        swizzle.OpSwap3,
	{FormatRGB, FormatRGBA}:       swizzle.OpExpand3to4,
	{FormatBGR, FormatBGRA}:       swizzle.OpExpand3to4,
	{FormatRGB, FormatBGRA}:       swizzle.OpExpand3to4Rev,
	{FormatBGR, FormatRGBA}:       swizzle.OpExpand3to4Rev,
	{FormatGray, FormatRGBA}:      swizzle.OpExpand1to4,
	{FormatGray, FormatBGRA}:      swizzle.OpExpand1to4,
	{FormatGrayAlpha, FormatRGBA}: swizzle.OpExpand2to4,
	{FormatGrayAlpha, FormatBGRA}: swizzle.OpExpand2to4,
	{FormatRGBA, FormatRGB}:       swizzle.OpStrip4to3,
	{FormatBGRA, FormatBGR}:       swizzle.OpStrip4to3,
	{FormatBGRA, FormatRGB}:       swizzle.OpStrip4to3Rev,
	{FormatRGBA, FormatBGR}:       swizzle.OpStrip4to3Rev,
}

// Lookup returns the swizzle operation converting from to to.
func Lookup(from, to Format) (swizzle.Op, bool) {
	op, ok := conversions[formatPair{from, to}]
	return op, ok
}

// Convert writes src into dst in dst's format. Both images must have the
// same dimensions. Identical formats are copied row by row.
func Convert(dst, src *Image, opts *Options) error {
	if src.width != dst.width || src.height != dst.height {
		return fmt.Errorf("image: convert %dx%d into %dx%d: %w",
			src.width, src.height, dst.width, dst.height, ErrSizeMismatch)
	}
	if src.Empty() {
		return nil
	}
	if src.format == dst.format {
		for y := range src.height {
			copy(dst.RowSlice(y), src.RowSlice(y))
		}
		return nil
	}
	op, ok := Lookup(src.format, dst.format)
	if !ok {
		return fmt.Errorf("image: convert %v to %v: %w", src.format, dst.format, ErrFormatMismatch)
	}

	w, h := src.width, src.height
	sb, db := op.SrcBpp(), op.DstBpp()
	pool, release := opts.pool()
	defer release()

	if pool == nil {
		if src.Contiguous() && dst.Contiguous() {
			return op.Convert(src.data[:w*h*sb], dst.data[:w*h*db])
		}
		return op.ConvertStrided(src.data, dst.data, w, h, src.stride, dst.stride)
	}
	return runBands(pool, op, h, opts.minRows(), func(y0, y1 int) error {
		return op.ConvertStrided(src.rows(y0, y1, w*sb), dst.rows(y0, y1, w*db),
			w, y1-y0, src.stride, dst.stride)
	})
}

// ConvertInplace converts img to the format to, reusing its bytes. The
// stride must leave room for the wider of the two formats on every row,
// including the last.
func ConvertInplace(img *Image, to Format, opts *Options) error {
	if img.format == to || img.Empty() {
		img.format = to
		return nil
	}
	op, ok := Lookup(img.format, to)
	if !ok {
		return fmt.Errorf("image: convert %v to %v: %w", img.format, to, ErrFormatMismatch)
	}
	w, h := img.width, img.height
	bpp := max(op.SrcBpp(), op.DstBpp())
	if !fits(len(img.data), w, h, img.stride, bpp) {
		return fmt.Errorf("image: %dx%d with stride %d has no room for %v in place: %w",
			w, h, img.stride, to, ErrSizeMismatch)
	}

	pool, release := opts.pool()
	defer release()

	var err error
	if pool == nil {
		err = op.ConvertInplaceStrided(img.data, w, h, img.stride)
	} else {
		err = runBands(pool, op, h, opts.minRows(), func(y0, y1 int) error {
			return op.ConvertInplaceStrided(img.rows(y0, y1, w*bpp), w, y1-y0, img.stride)
		})
	}
	if err != nil {
		return err
	}
	img.format = to
	return nil
}

// runBands splits rows into bands on pool and returns the first error any
// band reported.
func runBands(pool *workerpool.Pool, op swizzle.Op, rows, minRows int, fn func(y0, y1 int) error) error {
	bands, bandRows := pool.Plan(rows, minRows)
	hwy.Logger().Debug("image: band plan",
		"op", op.String(), "rows", rows, "bands", bands, "rowsPerBand", bandRows)

	var (
		mu    sync.Mutex
		first error
	)
	pool.ParallelBands(rows, minRows, func(y0, y1 int) {
		if err := fn(y0, y1); err != nil {
			mu.Lock()
			if first == nil {
				first = err
			}
			mu.Unlock()
		}
	})
	return first
}
