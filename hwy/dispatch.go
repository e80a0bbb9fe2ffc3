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

package hwy

import (
	"os"
	"strconv"

	"code.hybscloud.com/atomix"
)

// Tier identifies an instruction-set capability level.
//
// Tiers are only ordered within one architecture family. The order for the
// running GOARCH is given by Chain, from most to least capable, and every
// chain ends in TierScalar.
type Tier int32

const (
	// TierScalar is the pure Go, one pixel at a time reference path.
	TierScalar Tier = iota

	// TierSWAR processes 8-byte machine words (SIMD within a register).
	// It is available on every GOARCH, including wasm.
	TierSWAR

	// TierAVX indicates 128-bit VEX encoded byte shuffles (VPSHUFB xmm).
	TierAVX

	// TierAVX2 indicates 256-bit AVX2 byte shuffles (VPSHUFB ymm).
	TierAVX2

	// TierNEON indicates ARM NEON (ASIMD) 128-bit table lookups.
	TierNEON
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierSWAR:
		return "swar"
	case TierAVX:
		return "avx"
	case TierAVX2:
		return "avx2"
	case TierNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the number of bytes one kernel iteration of the tier
// consumes. For example: 32 for AVX2, 16 for AVX and NEON, 8 for SWAR.
func (t Tier) Width() int {
	switch t {
	case TierAVX2:
		return 32
	case TierAVX, TierNEON:
		return 16
	case TierSWAR:
		return 8
	default:
		return 1
	}
}

// Capability is proof that the instructions of one Tier are safe to execute
// on the current hardware.
//
// Capabilities are only produced by Probe, Resolve, Override and Downgrade.
// The zero value authorizes TierScalar and nothing else.
type Capability struct {
	tier Tier
}

// Tier returns the tier this capability authorizes.
func (c Capability) Tier() Tier {
	return c.tier
}

// Width returns the chunk width of the authorized tier in bytes.
func (c Capability) Width() int {
	return c.tier.Width()
}

// String returns the name of the authorized tier.
func (c Capability) String() string {
	return c.tier.String()
}

// Downgrade returns a capability for t when t is at or below c in this
// architecture's chain. A CPU that can run a tier can run every tier after it.
func (c Capability) Downgrade(t Tier) (Capability, bool) {
	ci, ti := chainIndex(c.tier), chainIndex(t)
	if ci < 0 || ti < 0 || ti < ci {
		return Capability{}, false
	}
	return Capability{tier: t}, true
}

// Chain returns the tiers of the running architecture family, most capable
// first. The last element is always TierScalar.
func Chain() []Tier {
	out := make([]Tier, len(chain))
	copy(out, chain)
	return out
}

func chainIndex(t Tier) int {
	for i, c := range chain {
		if c == t {
			return i
		}
	}
	return -1
}

// NoSimdEnv checks if the SWIZZLE_NO_SIMD environment variable is set.
// When set, every resolution yields TierScalar regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("SWIZZLE_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Probe detects the most capable tier the current CPU supports. It has no
// side effects and returns the same answer every time within a process.
func Probe() Capability {
	if NoSimdEnv() {
		return Capability{}
	}
	return Capability{tier: detectTier()}
}

// resolved holds the cached tier plus one; zero means not yet resolved.
var resolved atomix.Uint64

// Resolve returns the capability for this process, probing on first use.
// Later calls are a single acquire load.
func Resolve() Capability {
	if v := resolved.LoadAcquire(); v != 0 {
		return Capability{tier: Tier(v - 1)}
	}
	c := Probe()
	if !resolved.CompareAndSwapAcqRel(0, uint64(c.tier)+1) {
		// Another goroutine or an Override got there first.
		return Capability{tier: Tier(resolved.LoadAcquire() - 1)}
	}
	if note := hardwareNote(); note != "" {
		Logger().Debug("hwy: capability resolved", "tier", c.tier.String(), "width", c.Width(), "note", note)
	} else {
		Logger().Debug("hwy: capability resolved", "tier", c.tier.String(), "width", c.Width())
	}
	return c
}

// Override caps the resolved capability at t until restore is called.
// If t is above what the CPU supports, the probed tier is used; if t is not
// part of this architecture's chain, TierScalar is used.
//
// Override is meant for tests that check every tier against the scalar
// reference. It must not race with conversions that expect a fixed tier.
func Override(t Tier) (restore func()) {
	best := Probe()
	c := Capability{}
	if ti := chainIndex(t); ti >= 0 {
		if ti < chainIndex(best.tier) {
			c = best
		} else {
			c = Capability{tier: t}
		}
	}
	prev := resolved.LoadAcquire()
	resolved.StoreRelease(uint64(c.tier) + 1)
	Logger().Warn("hwy: capability overridden", "requested", t.String(), "tier", c.tier.String())
	return func() {
		resolved.StoreRelease(prev)
	}
}

// Supported returns the tiers this CPU can run, most capable first.
func Supported() []Tier {
	i := chainIndex(Probe().tier)
	if i < 0 {
		return []Tier{TierScalar}
	}
	out := make([]Tier, len(chain)-i)
	copy(out, chain[i:])
	return out
}

// CurrentTier returns the resolved tier.
func CurrentTier() Tier {
	return Resolve().tier
}

// CurrentWidth returns the chunk width in bytes of the resolved tier.
func CurrentWidth() int {
	return Resolve().Width()
}

// CurrentName returns a human-readable name for the resolved tier.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return Resolve().String()
}
