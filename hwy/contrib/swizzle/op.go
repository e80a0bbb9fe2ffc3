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

// Op identifies one row conversion. Each Op has a fixed source and
// destination pixel size and one kernel per tier.
type Op uint8

const (
	// OpSwap4 exchanges bytes 0 and 2 of every 4-byte pixel.
	OpSwap4 Op = iota
	// OpFillAlpha sets byte 3 of every 4-byte pixel to 0xFF.
	OpFillAlpha
	// OpSwap3 exchanges bytes 0 and 2 of every 3-byte pixel.
	OpSwap3
	// OpExpand3to4 appends an opaque alpha byte: [s0,s1,s2] to [s0,s1,s2,FF].
	OpExpand3to4
	// OpExpand3to4Rev reverses and appends alpha: [s0,s1,s2] to [s2,s1,s0,FF].
	OpExpand3to4Rev
	// OpExpand1to4 replicates gray: [g] to [g,g,g,FF].
	OpExpand1to4
	// OpExpand2to4 replicates gray and keeps alpha: [g,a] to [g,g,g,a].
	OpExpand2to4
	// OpStrip4to3 drops byte 3: [s0,s1,s2,s3] to [s0,s1,s2].
	OpStrip4to3
	// OpStrip4to3Rev drops byte 3 and reverses: [s0,s1,s2,s3] to [s2,s1,s0].
	OpStrip4to3Rev

	numOps
)

var opInfo = [numOps]struct {
	name     string
	src, dst int
}{
	OpSwap4:         {"swap4", 4, 4},
	OpFillAlpha:     {"fill-alpha", 4, 4},
	OpSwap3:         {"swap3", 3, 3},
	OpExpand3to4:    {"expand3to4", 3, 4},
	OpExpand3to4Rev: {"expand3to4-rev", 3, 4},
	OpExpand1to4:    {"expand1to4", 1, 4},
	OpExpand2to4:    {"expand2to4", 2, 4},
	OpStrip4to3:     {"strip4to3", 4, 3},
	OpStrip4to3Rev:  {"strip4to3-rev", 4, 3},
}

// Ops returns every conversion in declaration order.
func Ops() []Op {
	out := make([]Op, numOps)
	for i := range out {
		out[i] = Op(i)
	}
	return out
}

func (o Op) String() string {
	if o >= numOps {
		return "unknown"
	}
	return opInfo[o].name
}

// SrcBpp returns the source pixel size in bytes.
func (o Op) SrcBpp() int { return opInfo[o].src }

// DstBpp returns the destination pixel size in bytes.
func (o Op) DstBpp() int { return opInfo[o].dst }
