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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

var chain = []Tier{TierAVX2, TierAVX, TierSWAR, TierScalar}

func detectTier() Tier {
	// Use actual CPU detection from archsimd package
	if archsimd.X86.AVX2() {
		return TierAVX2
	}
	// 128-bit archsimd byte shuffles are VEX encoded and need AVX.
	if archsimd.X86.AVX() {
		return TierAVX
	}
	return TierSWAR
}

// hardwareNote reports hardware that this build leaves unused.
func hardwareNote() string {
	if cpu.X86.HasAVX512BW {
		return "avx512bw present; no 512-bit kernels, using avx2"
	}
	return ""
}
