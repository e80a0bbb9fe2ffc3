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

// Package image provides a byte-layout 2D image view and whole-image pixel
// format conversion on top of the swizzle package.
//
// An Image is a width, height and stride over a byte slice, tagged with a
// pixel Format. Images can wrap the pixel buffers of the standard library's
// *image.RGBA, *image.NRGBA and *image.Gray without copying.
//
// # Conversions
//
// Convert picks the swizzle operation for a pair of formats and runs it over
// the whole image:
//
//	src := image.FromRGBA(frame)                 // *image.RGBA, no copy
//	dst := image.NewImage(src.Width(), src.Height(), image.FormatBGR)
//	if err := image.Convert(dst, src, nil); err != nil {
//	    return err
//	}
//
// Contiguous images go to the core as a single buffer; padded images go row
// by row. With Options, the rows are split into bands and converted on a
// workerpool.Pool:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	err := image.Convert(dst, src, &image.Options{Pool: pool})
package image
