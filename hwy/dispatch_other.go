//go:build !amd64 && !arm64

package hwy

// Non-amd64/arm64 architectures (wasm, riscv64, ppc64le, ...) have no vector
// kernels in Go, so the best tier is 64-bit word processing.

var chain = []Tier{TierSWAR, TierScalar}

func detectTier() Tier {
	return TierSWAR
}

func hardwareNote() string {
	return ""
}
