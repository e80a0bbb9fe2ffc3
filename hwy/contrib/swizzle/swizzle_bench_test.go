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
	"testing"

	"github.com/ajroetker/go-swizzle/hwy"
)

// Benchmark sizes in pixels
var benchPixels = []struct {
	name   string
	pixels int
}{
	{"64", 64},
	{"4K", 4096},
	{"1080p", 1920 * 1080},
}

func BenchmarkConvert(b *testing.B) {
	for _, op := range Ops() {
		for _, size := range benchPixels {
			b.Run(op.String()+"/"+size.name, func(b *testing.B) {
				src := pattern(size.pixels * op.SrcBpp())
				dst := make([]byte, size.pixels*op.DstBpp())

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					op.Convert(src, dst)
				}
				b.SetBytes(int64(len(src) + len(dst)))
			})
		}
	}
}

// BenchmarkTiers runs a 1080p frame of every op on each supported tier.
func BenchmarkTiers(b *testing.B) {
	const pixels = 1920 * 1080
	for _, tier := range hwy.Supported() {
		for _, op := range Ops() {
			b.Run(tier.String()+"/"+op.String(), func(b *testing.B) {
				restore := hwy.Override(tier)
				defer restore()
				src := pattern(pixels * op.SrcBpp())
				dst := make([]byte, pixels*op.DstBpp())

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					op.Convert(src, dst)
				}
				b.SetBytes(int64(len(src) + len(dst)))
			})
		}
	}
}

func BenchmarkInplaceGrow(b *testing.B) {
	const pixels = 1920 * 1080
	buf := make([]byte, pixels*4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		RGBToRGBAInplace(buf)
	}
	b.SetBytes(int64(pixels * 7))
}

func BenchmarkStrided(b *testing.B) {
	const width, height, stride = 1918, 1080, 1920 * 4
	src := make([]byte, height*stride)
	dst := make([]byte, height*stride)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		RGBAToBGRAStrided(src, dst, width, height, stride, stride)
	}
	b.SetBytes(int64(width * height * 8))
}
