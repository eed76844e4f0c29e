package camera

import "math"

// epsilon is the smallest distance the camera eye may have from the target.
// Matches the 32-bit machine epsilon; a distance of exactly 0 would collapse
// the look-at basis.
const epsilon = 1.1920929e-07

// maxFinite is the saturation value for otherwise unbounded parameters when
// the input is infinite.
const maxFinite = math.MaxFloat32

// Bounds constrains how far an orbit camera can be moved. Distance and yaw
// limits are optional (nil means unconstrained); pitch limits are always
// present because the spherical parameterization is singular at the poles.
type Bounds struct {
	// MinDistance is the minimum distance between the eye and the target.
	// When nil the effective minimum is the machine epsilon, never zero.
	MinDistance *float32

	// MaxDistance caps how far the eye can move from the target. Nil means
	// no upper limit.
	MaxDistance *float32

	// MinPitch is the lowest permitted elevation angle in radians. Must stay
	// strictly above -PI/2.
	MinPitch float32

	// MaxPitch is the highest permitted elevation angle in radians. Must stay
	// strictly below PI/2.
	MaxPitch float32

	// MinYaw is an optional lower limit on the azimuth angle in radians.
	MinYaw *float32

	// MaxYaw is an optional upper limit on the azimuth angle in radians.
	// When both yaw limits are nil the yaw is unconstrained and may grow
	// without wrapping.
	MaxYaw *float32
}

// DefaultBounds returns the bounds an orbit camera is constructed with:
// distance capped at 16, pitch kept just inside (-PI/2, PI/2), yaw free.
//
// Returns:
//   - Bounds: the default constraint set
func DefaultBounds() Bounds {
	return Bounds{
		MinDistance: nil,
		MaxDistance: Float32(16.0),
		MinPitch:    -math.Pi/2 + epsilon,
		MaxPitch:    math.Pi/2 - epsilon,
		MinYaw:      nil,
		MaxYaw:      nil,
	}
}

// Float32 returns a pointer to v, for populating the optional bound fields.
//
// Parameters:
//   - v: the bound value
//
// Returns:
//   - *float32: pointer to a copy of v
func Float32(v float32) *float32 {
	return &v
}

// ClampDistance constrains a proposed distance to [MinDistance, MaxDistance].
// An absent minimum defaults to the machine epsilon so the distance can never
// reach zero; an absent maximum leaves the far side open. NaN snaps to the
// effective minimum, infinities saturate.
//
// Parameters:
//   - value: the proposed distance
//
// Returns:
//   - float32: the constrained distance
func (b Bounds) ClampDistance(value float32) float32 {
	min := float32(epsilon)
	if b.MinDistance != nil {
		min = *b.MinDistance
	}
	max := float32(maxFinite)
	if b.MaxDistance != nil {
		max = *b.MaxDistance
	}
	return clamp(value, min, max)
}

// ClampPitch constrains a proposed pitch to [MinPitch, MaxPitch]. Both limits
// are always present. NaN snaps to MinPitch, infinities saturate.
//
// Parameters:
//   - value: the proposed pitch in radians
//
// Returns:
//   - float32: the constrained pitch
func (b Bounds) ClampPitch(value float32) float32 {
	return clamp(value, b.MinPitch, b.MaxPitch)
}

// ClampYaw constrains a proposed yaw. Each yaw limit is applied only when
// set; with neither set the yaw passes through untouched and may exceed
// +/-PI indefinitely; no wraparound normalization is performed. Non-finite
// input still resolves to
// a finite value: NaN snaps to MinYaw or 0, infinities saturate to the
// nearest limit or +/-MaxFloat32.
//
// Parameters:
//   - value: the proposed yaw in radians
//
// Returns:
//   - float32: the constrained yaw, always finite
func (b Bounds) ClampYaw(value float32) float32 {
	if math.IsNaN(float64(value)) {
		if b.MinYaw != nil {
			return *b.MinYaw
		}
		return 0
	}
	if b.MinYaw != nil {
		value = clamp(value, *b.MinYaw, maxFinite)
	}
	if b.MaxYaw != nil {
		value = clamp(value, -maxFinite, *b.MaxYaw)
	}
	return clamp(value, -maxFinite, maxFinite)
}

// clamp constrains value to [min, max]. NaN resolves to min so the camera
// state stays finite; comparisons alone would pass NaN through.
func clamp(value, min, max float32) float32 {
	if math.IsNaN(float64(value)) {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
