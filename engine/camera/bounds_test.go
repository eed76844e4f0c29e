package camera

import (
	"math"
	"testing"
)

func TestDefaultBoundsValues(t *testing.T) {
	b := DefaultBounds()

	if b.MinDistance != nil {
		t.Errorf("expected nil MinDistance, got %v", *b.MinDistance)
	}
	if b.MaxDistance == nil || *b.MaxDistance != 16.0 {
		t.Errorf("expected MaxDistance 16.0, got %v", b.MaxDistance)
	}
	if b.MinYaw != nil || b.MaxYaw != nil {
		t.Error("expected yaw to be unconstrained by default")
	}
	if b.MinPitch <= -math.Pi/2 || b.MinPitch >= 0 {
		t.Errorf("MinPitch %v outside (-PI/2, 0)", b.MinPitch)
	}
	if b.MaxPitch >= math.Pi/2 || b.MaxPitch <= 0 {
		t.Errorf("MaxPitch %v outside (0, PI/2)", b.MaxPitch)
	}
}

func TestClampDistanceSaturates(t *testing.T) {
	b := DefaultBounds()
	b.MinDistance = Float32(1.1)

	if got := b.ClampDistance(0.0); got != 1.1 {
		t.Errorf("ClampDistance(0.0): got %v, want 1.1", got)
	}
	if got := b.ClampDistance(100.0); got != 16.0 {
		t.Errorf("ClampDistance(100.0): got %v, want 16.0", got)
	}
	if got := b.ClampDistance(4.0); got != 4.0 {
		t.Errorf("ClampDistance(4.0): got %v, want 4.0", got)
	}
}

func TestClampDistanceDefaultsToEpsilon(t *testing.T) {
	b := DefaultBounds()

	got := b.ClampDistance(0.0)
	if got <= 0 {
		t.Errorf("distance clamped to %v, must stay strictly positive", got)
	}
	if got != epsilon {
		t.Errorf("ClampDistance(0.0) with no MinDistance: got %v, want machine epsilon", got)
	}
}

func TestClampDistanceNoMaxIsOpen(t *testing.T) {
	b := DefaultBounds()
	b.MaxDistance = nil

	if got := b.ClampDistance(1e10); got != 1e10 {
		t.Errorf("ClampDistance(1e10) with no MaxDistance: got %v", got)
	}
}

func TestClampPitchInfinities(t *testing.T) {
	b := DefaultBounds()

	if got := b.ClampPitch(float32(math.Inf(1))); got != b.MaxPitch {
		t.Errorf("ClampPitch(+Inf): got %v, want MaxPitch %v", got, b.MaxPitch)
	}
	if got := b.ClampPitch(float32(math.Inf(-1))); got != b.MinPitch {
		t.Errorf("ClampPitch(-Inf): got %v, want MinPitch %v", got, b.MinPitch)
	}
	if got := b.ClampPitch(1e6); got != b.MaxPitch {
		t.Errorf("ClampPitch(1e6): got %v, want MaxPitch %v", got, b.MaxPitch)
	}
}

func TestClampYawUnboundedByDefault(t *testing.T) {
	b := DefaultBounds()

	if got := b.ClampYaw(1000.0); got != 1000.0 {
		t.Errorf("ClampYaw(1000.0): got %v, want exactly 1000.0", got)
	}
	if got := b.ClampYaw(-1000.0); got != -1000.0 {
		t.Errorf("ClampYaw(-1000.0): got %v, want exactly -1000.0", got)
	}
}

func TestClampYawOneSidedLimits(t *testing.T) {
	b := DefaultBounds()
	b.MinYaw = Float32(-1.0)

	if got := b.ClampYaw(-5.0); got != -1.0 {
		t.Errorf("lower-only clamp: got %v, want -1.0", got)
	}
	if got := b.ClampYaw(500.0); got != 500.0 {
		t.Errorf("lower-only clamp must not cap above: got %v, want 500.0", got)
	}

	b.MinYaw = nil
	b.MaxYaw = Float32(1.0)
	if got := b.ClampYaw(5.0); got != 1.0 {
		t.Errorf("upper-only clamp: got %v, want 1.0", got)
	}
	if got := b.ClampYaw(-500.0); got != -500.0 {
		t.Errorf("upper-only clamp must not cap below: got %v, want -500.0", got)
	}
}

// Non-finite inputs must resolve to finite values: NaN snaps to the lower
// effective bound (0 for unbounded yaw), infinities saturate.
func TestClampNonFinitePolicy(t *testing.T) {
	nan := float32(math.NaN())
	b := DefaultBounds()
	b.MinDistance = Float32(1.1)

	if got := b.ClampDistance(nan); got != 1.1 {
		t.Errorf("ClampDistance(NaN): got %v, want 1.1", got)
	}
	if got := b.ClampPitch(nan); got != b.MinPitch {
		t.Errorf("ClampPitch(NaN): got %v, want MinPitch %v", got, b.MinPitch)
	}
	if got := b.ClampYaw(nan); got != 0 {
		t.Errorf("ClampYaw(NaN) unbounded: got %v, want 0", got)
	}

	b.MinYaw = Float32(-2.0)
	if got := b.ClampYaw(nan); got != -2.0 {
		t.Errorf("ClampYaw(NaN) with MinYaw: got %v, want -2.0", got)
	}

	if got := b.ClampYaw(float32(math.Inf(1))); math.IsInf(float64(got), 0) || math.IsNaN(float64(got)) {
		t.Errorf("ClampYaw(+Inf) must be finite, got %v", got)
	}
	if got := b.ClampDistance(float32(math.Inf(1))); got != 16.0 {
		t.Errorf("ClampDistance(+Inf): got %v, want 16.0", got)
	}
}
