package swizzle

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-swizzle/hwy"
)

// supportedFamilies returns the registered kernel families this CPU can run.
func supportedFamilies() []hwy.Tier {
	var out []hwy.Tier
	for _, tier := range hwy.Supported() {
		if Registered(tier) {
			out = append(out, tier)
		}
	}
	return out
}

func TestRegistered(t *testing.T) {
	for _, tier := range []hwy.Tier{hwy.TierScalar, hwy.TierSWAR} {
		if !Registered(tier) {
			t.Errorf("Registered(%v): got false, want true", tier)
		}
	}
	if Registered(hwy.Tier(-1)) || Registered(hwy.Tier(99)) {
		t.Error("Registered: accepted an out-of-range tier")
	}
}

func TestKernelForWalksChain(t *testing.T) {
	var scalar hwy.Capability
	for _, op := range Ops() {
		got := kernelFor(scalar, op)
		src := pattern(37 * op.SrcBpp())
		dst := make([]byte, 37*op.DstBpp())
		got(src, dst)
		if diff := cmp.Diff(reference(op, src), dst); diff != "" {
			t.Errorf("kernelFor(scalar, %v) mismatch (-want +got):\n%s", op, diff)
		}
	}
	// Every chain tier resolves to some kernel, compiled in or not.
	best := hwy.Probe()
	for _, tier := range hwy.Supported() {
		c, ok := best.Downgrade(tier)
		if !ok {
			t.Fatalf("Downgrade(%v): refused", tier)
		}
		for _, op := range Ops() {
			if kernelFor(c, op) == nil {
				t.Errorf("kernelFor(%v, %v): nil", tier, op)
			}
		}
	}
}

func TestFamiliesDirect(t *testing.T) {
	for _, tier := range supportedFamilies() {
		ks := families[tier]
		t.Run(tier.String(), func(t *testing.T) {
			for _, op := range Ops() {
				k := ks[op]
				if k == nil {
					continue
				}
				for _, n := range append([]int{0}, pixelCounts...) {
					src := pattern(n * op.SrcBpp())
					dst := make([]byte, n*op.DstBpp())
					k(src, dst)
					if diff := cmp.Diff(reference(op, src), dst); diff != "" {
						t.Errorf("%v(%d pixels) mismatch (-want +got):\n%s", op, n, diff)
					}
				}
			}
		})
	}
}

// TestFamiliesAliasing runs same-size kernels with dst == src and shrinking
// kernels with dst starting at src.
func TestFamiliesAliasing(t *testing.T) {
	for _, tier := range supportedFamilies() {
		ks := families[tier]
		t.Run(tier.String(), func(t *testing.T) {
			for _, op := range Ops() {
				sb, db := op.SrcBpp(), op.DstBpp()
				if sb < db || ks[op] == nil {
					continue
				}
				for _, n := range pixelCounts {
					buf := pattern(n * sb)
					want := reference(op, buf)
					ks[op](buf, buf[:n*db])
					if diff := cmp.Diff(want, buf[:n*db]); diff != "" {
						t.Errorf("%v(%d pixels) aliased mismatch (-want +got):\n%s", op, n, diff)
					}
				}
			}
		})
	}
}

// TestFamiliesStayInBounds gives each kernel slices carved from a larger
// guarded buffer and checks the guard bytes on both sides.
func TestFamiliesStayInBounds(t *testing.T) {
	const guard = 40
	for _, tier := range supportedFamilies() {
		ks := families[tier]
		t.Run(tier.String(), func(t *testing.T) {
			for _, op := range Ops() {
				if ks[op] == nil {
					continue
				}
				for _, n := range pixelCounts {
					src := pattern(n * op.SrcBpp())
					out := filled(guard+n*op.DstBpp()+guard, 0xCD)
					ks[op](src, out[guard:guard+n*op.DstBpp()])
					if !bytes.Equal(out[:guard], filled(guard, 0xCD)) {
						t.Errorf("%v(%d pixels): wrote before dst", op, n)
					}
					if !bytes.Equal(out[guard+n*op.DstBpp():], filled(guard, 0xCD)) {
						t.Errorf("%v(%d pixels): wrote past dst", op, n)
					}
				}
			}
		})
	}
}

func TestGrowInplaceBlocks(t *testing.T) {
	for _, op := range []Op{OpExpand3to4, OpExpand3to4Rev, OpExpand1to4, OpExpand2to4} {
		for _, n := range []int{growBlock - 1, growBlock, growBlock + 1, 3*growBlock + 7} {
			sb, db := op.SrcBpp(), op.DstBpp()
			row := pattern(n * db)
			want := reference(op, bytes.Clone(row[:n*sb]))
			growInplace(scalarKernels[op], row, n, sb, db)
			if diff := cmp.Diff(want, row); diff != "" {
				t.Errorf("%v(%d pixels) mismatch (-want +got):\n%s", op, n, diff)
			}
		}
	}
}

func TestOpTable(t *testing.T) {
	if len(Ops()) != int(numOps) {
		t.Fatalf("Ops: got %d, want %d", len(Ops()), numOps)
	}
	for _, op := range Ops() {
		if got := len(channelMap[op]); got != op.DstBpp() {
			t.Errorf("%v: DstBpp %d, channel map has %d entries", op, op.DstBpp(), got)
		}
		if op.String() == "unknown" {
			t.Errorf("Op(%d): missing name", op)
		}
	}
	if got := numOps.String(); got != "unknown" {
		t.Errorf("numOps.String(): got %q, want %q", got, "unknown")
	}
}
