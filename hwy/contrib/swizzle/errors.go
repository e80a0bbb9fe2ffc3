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

// SizeError reports why a buffer or its geometry was rejected. Its values
// are comparable, so both errors.Is(err, ErrInvalidStride) and
// errors.As(err, &kind) work.
type SizeError uint8

const (
	// ErrNotPixelAligned means a buffer is empty or its length is not a
	// multiple of the pixel size.
	ErrNotPixelAligned SizeError = iota + 1

	// ErrPixelCountMismatch means the destination holds fewer pixels than
	// the source.
	ErrPixelCountMismatch

	// ErrInvalidStride means the width, height or stride is out of range or
	// the buffer is too short for the described rows.
	ErrInvalidStride
)

func (e SizeError) Error() string {
	switch e {
	case ErrNotPixelAligned:
		return "swizzle: buffer length is zero or not a multiple of the pixel size"
	case ErrPixelCountMismatch:
		return "swizzle: destination is smaller than the source pixel count requires"
	case ErrInvalidStride:
		return "swizzle: invalid width, height or stride for buffer"
	default:
		return "swizzle: unknown size error"
	}
}
