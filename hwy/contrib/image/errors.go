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

import "errors"

var (
	// ErrFormatMismatch is returned when no conversion exists between two
	// pixel formats.
	ErrFormatMismatch = errors.New("image: unsupported format pair")

	// ErrSizeMismatch is returned when image dimensions disagree or a buffer
	// is too small for the described rows.
	ErrSizeMismatch = errors.New("image: size mismatch")
)
