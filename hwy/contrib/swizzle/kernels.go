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

// rowKernel converts one packed row of pixels. The dispatcher always passes
// len(src)/SrcBpp == len(dst)/DstBpp.
//
// Kernels of same-size ops must accept dst identical to src. Kernels of
// shrinking ops must accept dst starting at the same address as src. Kernels
// of growing ops never see overlapping slices.
type rowKernel func(src, dst []byte)

// kernelSet holds one kernel per Op. A nil entry defers to the next tier
// down the chain.
type kernelSet [numOps]rowKernel

const numTiers = int(hwy.TierNEON) + 1

// families maps a tier to its kernels. Entries are written only from init.
var families [numTiers]*kernelSet

// chain is the tier order of the running architecture.
var chain = hwy.Chain()

func register(t hwy.Tier, ks *kernelSet) {
	families[t] = ks
}

func init() {
	register(hwy.TierScalar, &scalarKernels)
	register(hwy.TierSWAR, &swarKernels)
}

// kernelFor returns the kernel for o from the most capable family that c
// authorizes, walking down the chain past tiers whose kernels were not
// compiled in.
func kernelFor(c hwy.Capability, o Op) rowKernel {
	i := 0
	for i < len(chain) && chain[i] != c.Tier() {
		i++
	}
	for ; i < len(chain); i++ {
		if ks := families[chain[i]]; ks != nil && ks[o] != nil {
			return ks[o]
		}
	}
	return scalarKernels[o]
}

// Registered reports whether a kernel family for t is compiled into this
// binary. TierScalar and TierSWAR are always registered.
func Registered(t hwy.Tier) bool {
	return t >= 0 && int(t) < numTiers && families[t] != nil
}
