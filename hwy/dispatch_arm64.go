//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

var chain = []Tier{TierNEON, TierSWAR, TierScalar}

func detectTier() Tier {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// We still check the cpu package for consistency.
	if cpu.ARM64.HasASIMD {
		return TierNEON
	}
	// Fallback to SWAR (should never happen on ARMv8+)
	return TierSWAR
}

// hardwareNote reports hardware that this build leaves unused.
func hardwareNote() string {
	if cpu.ARM64.HasSVE {
		return "sve present; using 128-bit neon"
	}
	return ""
}
