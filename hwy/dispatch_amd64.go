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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// Without archsimd there are no vector byte shuffles to call, so the best
// tier is SWAR even on CPUs that have AVX2.

var chain = []Tier{TierSWAR, TierScalar}

func detectTier() Tier {
	return TierSWAR
}

// hardwareNote reports hardware that this build leaves unused.
func hardwareNote() string {
	switch {
	case cpu.X86.HasAVX2:
		return "avx2 present; build with GOEXPERIMENT=simd to use it"
	case cpu.X86.HasAVX:
		return "avx present; build with GOEXPERIMENT=simd to use it"
	default:
		return ""
	}
}
