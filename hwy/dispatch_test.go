package hwy

import (
	"sync"
	"testing"
)

func TestChainEndsInScalar(t *testing.T) {
	c := Chain()
	if len(c) == 0 {
		t.Fatal("Chain: empty")
	}
	if c[len(c)-1] != TierScalar {
		t.Errorf("Chain: last tier got %v, want %v", c[len(c)-1], TierScalar)
	}
	c[0] = Tier(99)
	if Chain()[0] == Tier(99) {
		t.Error("Chain: returned slice aliases internal state")
	}
}

func TestSupported(t *testing.T) {
	s := Supported()
	if len(s) == 0 || s[len(s)-1] != TierScalar {
		t.Fatalf("Supported: got %v, want a list ending in scalar", s)
	}
	if s[0] != Probe().Tier() {
		t.Errorf("Supported: first tier got %v, want %v", s[0], Probe().Tier())
	}
	for _, tier := range s {
		if tier.Width() < 1 {
			t.Errorf("Supported: tier %v has width %d", tier, tier.Width())
		}
	}
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
		wide int
	}{
		{TierScalar, "scalar", 1},
		{TierSWAR, "swar", 8},
		{TierAVX, "avx", 16},
		{TierAVX2, "avx2", 32},
		{TierNEON, "neon", 16},
		{Tier(42), "unknown", 1},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String(): got %q, want %q", tt.tier, got, tt.want)
		}
		if got := tt.tier.Width(); got != tt.wide {
			t.Errorf("Tier(%d).Width(): got %d, want %d", tt.tier, got, tt.wide)
		}
	}
}

func TestZeroCapability(t *testing.T) {
	var c Capability
	if c.Tier() != TierScalar {
		t.Errorf("zero Capability: got %v, want %v", c.Tier(), TierScalar)
	}
	if _, ok := c.Downgrade(TierSWAR); ok {
		t.Error("zero Capability: Downgrade to swar should fail")
	}
	if d, ok := c.Downgrade(TierScalar); !ok || d.Tier() != TierScalar {
		t.Errorf("zero Capability: Downgrade to scalar got (%v, %v)", d, ok)
	}
}

func TestDowngrade(t *testing.T) {
	best := Probe()
	for _, tier := range Supported() {
		d, ok := best.Downgrade(tier)
		if !ok {
			t.Errorf("Downgrade(%v) from %v: refused", tier, best)
			continue
		}
		if d.Tier() != tier {
			t.Errorf("Downgrade(%v): got %v", tier, d.Tier())
		}
	}
	// Tiers from another architecture family are never granted.
	for _, tier := range []Tier{TierAVX, TierAVX2, TierNEON} {
		if chainIndex(tier) >= 0 {
			continue
		}
		if _, ok := best.Downgrade(tier); ok {
			t.Errorf("Downgrade(%v): granted a foreign tier", tier)
		}
	}
}

func TestOverride(t *testing.T) {
	before := CurrentTier()
	for _, tier := range Supported() {
		restore := Override(tier)
		if got := CurrentTier(); got != tier {
			t.Errorf("Override(%v): CurrentTier got %v", tier, got)
		}
		if got := CurrentWidth(); got != tier.Width() {
			t.Errorf("Override(%v): CurrentWidth got %d, want %d", tier, got, tier.Width())
		}
		if got := CurrentName(); got != tier.String() {
			t.Errorf("Override(%v): CurrentName got %q, want %q", tier, got, tier.String())
		}
		restore()
	}
	if got := CurrentTier(); got != before {
		t.Errorf("after restore: got %v, want %v", got, before)
	}
}

func TestOverrideClamps(t *testing.T) {
	restore := Override(Tier(42))
	if got := CurrentTier(); got != TierScalar {
		t.Errorf("Override(foreign): got %v, want %v", got, TierScalar)
	}
	restore()

	// The top of the chain clamps to the probed tier.
	restore = Override(Chain()[0])
	if got, want := CurrentTier(), Probe().Tier(); got != want {
		t.Errorf("Override(%v): got %v, want %v", Chain()[0], got, want)
	}
	restore()
}

func TestResolveConcurrent(t *testing.T) {
	want := Resolve()
	var wg sync.WaitGroup
	got := make([]Capability, 32)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Resolve()
		}(i)
	}
	wg.Wait()
	for i, c := range got {
		if c != want {
			t.Errorf("Resolve[%d]: got %v, want %v", i, c, want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("SWIZZLE_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv(%q): got %v, want %v", tt.val, got, tt.want)
			}
			if tt.want && Probe().Tier() != TierScalar {
				t.Errorf("Probe with SWIZZLE_NO_SIMD=%q: got %v, want scalar", tt.val, Probe().Tier())
			}
		})
	}
}
