package camera

import (
	"math"
	"sync"

	"github.com/gfxdemo/orbitcube/common"
)

// DepthRemapMatrix remaps clip-space depth from the standard [-1, 1] range
// produced by common.Perspective to the [0, 1] range WebGPU expects. It is
// applied as the left-most factor of the view-projection product. Porting to
// an API with a different depth convention only requires swapping this
// constant. Column-major.
var DepthRemapMatrix = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

type orbitCameraImpl struct {
	mu *sync.Mutex

	// Spherical pose (distance, pitch, yaw) relative to target.
	distance float32
	pitch    float32
	yaw      float32

	// eye is derived Cartesian state. It is always recomputed from
	// (pitch, yaw, distance, target) and never set directly.
	eye    [3]float32
	target [3]float32
	up     [3]float32

	bounds Bounds

	// Perspective projection parameters.
	aspect float32
	fovy   float32
	znear  float32
	zfar   float32

	// uniform is the GPU-facing snapshot. Pose mutators leave it stale;
	// only UpdateViewProjection writes it.
	uniform CameraUniform
}

// OrbitCamera permits rotation of the eye on a spherical shell around a
// target. The pose is parameterized by distance, pitch, and yaw; the
// Cartesian eye position is derived state, recomputed by every mutator and
// never settable from outside. All mutators clamp through the camera's
// Bounds, so out-of-range requests silently saturate rather than fail.
type OrbitCamera interface {
	// Distance returns the euclidean distance between the eye and the target.
	//
	// Returns:
	//   - float32: the current distance
	Distance() float32

	// Pitch returns the elevation angle in radians.
	//
	// Returns:
	//   - float32: the current pitch
	Pitch() float32

	// Yaw returns the azimuth angle in radians.
	//
	// Returns:
	//   - float32: the current yaw
	Yaw() float32

	// Eye returns the derived world-space eye position.
	//
	// Returns:
	//   - x, y, z: eye position components
	Eye() (x, y, z float32)

	// Target returns the orbit center.
	//
	// Returns:
	//   - x, y, z: target position components
	Target() (x, y, z float32)

	// Aspect returns the projection aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Bounds returns the active constraint set.
	//
	// Returns:
	//   - Bounds: the current bounds
	Bounds() Bounds

	// SetBounds replaces the constraint set and re-clamps the current pose
	// against it so the bounds invariant holds immediately.
	//
	// Parameters:
	//   - b: the new bounds
	SetBounds(b Bounds)

	// SetDistance sets the distance of the eye from the target, clamped to
	// the distance bounds, and recomputes the eye position.
	//
	// Parameters:
	//   - distance: the proposed distance
	SetDistance(distance float32)

	// AddDistance incrementally changes the distance. The delta is scaled by
	// log10 of the current distance so zooming feels proportionally
	// consistent near and far. With the current distance in (0, 1) the log
	// factor is negative and the zoom direction inverts; this is a known
	// quirk of the scaling law, kept deliberately.
	//
	// Parameters:
	//   - delta: the raw zoom amount
	AddDistance(delta float32)

	// SetPitch sets the elevation angle, clamped to the pitch bounds, and
	// recomputes the eye position.
	//
	// Parameters:
	//   - pitch: the proposed pitch in radians
	SetPitch(pitch float32)

	// AddPitch incrementally changes the pitch.
	//
	// Parameters:
	//   - delta: the pitch change in radians
	AddPitch(delta float32)

	// SetYaw sets the azimuth angle and recomputes the eye position. Yaw
	// limits are applied only when configured; by default yaw is unbounded.
	//
	// Parameters:
	//   - yaw: the proposed yaw in radians
	SetYaw(yaw float32)

	// AddYaw incrementally changes the yaw.
	//
	// Parameters:
	//   - delta: the yaw change in radians
	AddYaw(delta float32)

	// Pan translates the eye and the target together along the camera's
	// local right and up axes, scaled by the current distance. This is the
	// only operation that moves the orbit center.
	//
	// Parameters:
	//   - dx: horizontal pan amount
	//   - dy: vertical pan amount
	Pan(dx, dy float32)

	// ResizeProjection updates the aspect ratio from a new viewport size.
	// Distance, pitch, yaw, and target are untouched.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	ResizeProjection(width, height uint32)

	// UpdateViewProjection recomputes the view-projection matrix from the
	// current pose and stores it, together with the eye position, in the
	// uniform snapshot. This is the only operation that writes the snapshot;
	// call it once per frame after all input has been applied.
	UpdateViewProjection()

	// Uniform returns the last snapshot written by UpdateViewProjection.
	// Reading twice without an intervening update yields identical data.
	//
	// Returns:
	//   - CameraUniform: the GPU-facing snapshot
	Uniform() CameraUniform
}

var _ OrbitCamera = &orbitCameraImpl{}

// NewOrbitCamera creates a new OrbitCamera. Defaults: distance 1, pitch 0,
// yaw 0, target at the origin, up +Y, default bounds, fovy PI/4, near 0.1,
// far 1000. The initial pose is clamped against the bounds and the eye is
// computed before the camera is returned.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrbitCamera: the newly created camera
func NewOrbitCamera(options ...OrbitCameraOption) OrbitCamera {
	c := &orbitCameraImpl{
		mu:       &sync.Mutex{},
		distance: 1.0,
		up:       [3]float32{0, 1, 0},
		bounds:   DefaultBounds(),
		aspect:   1.0,
		fovy:     math.Pi / 4,
		znear:    0.1,
		zfar:     1000.0,
		uniform:  defaultCameraUniform(),
	}
	for _, option := range options {
		option(c)
	}
	c.clampPose()
	c.updateEye()
	return c
}

func (c *orbitCameraImpl) Distance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance
}

func (c *orbitCameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *orbitCameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *orbitCameraImpl) Eye() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye[0], c.eye[1], c.eye[2]
}

func (c *orbitCameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *orbitCameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *orbitCameraImpl) Bounds() Bounds {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bounds
}

func (c *orbitCameraImpl) SetBounds(b Bounds) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bounds = b
	c.clampPose()
	c.updateEye()
}

func (c *orbitCameraImpl) SetDistance(distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = c.bounds.ClampDistance(distance)
	c.updateEye()
}

func (c *orbitCameraImpl) AddDistance(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	scaled := float32(math.Log10(float64(c.distance))) * delta
	c.distance = c.bounds.ClampDistance(c.distance + scaled)
	c.updateEye()
}

func (c *orbitCameraImpl) SetPitch(pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = c.bounds.ClampPitch(pitch)
	c.updateEye()
}

func (c *orbitCameraImpl) AddPitch(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = c.bounds.ClampPitch(c.pitch + delta)
	c.updateEye()
}

func (c *orbitCameraImpl) SetYaw(yaw float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = c.bounds.ClampYaw(yaw)
	c.updateEye()
}

func (c *orbitCameraImpl) AddYaw(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = c.bounds.ClampYaw(c.yaw + delta)
	c.updateEye()
}

func (c *orbitCameraImpl) Pan(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Vertical pan moves both points along the world up axis, scaled by
	// distance so panning covers the same fraction of the view at any zoom.
	c.eye[1] += dy * c.distance
	c.target[1] += dy * c.distance

	// Horizontal pan moves along the camera's right axis (forward x up).
	fx := c.target[0] - c.eye[0]
	fy := c.target[1] - c.eye[1]
	fz := c.target[2] - c.eye[2]
	fLen := float32(math.Sqrt(float64(fx*fx + fy*fy + fz*fz)))
	if fLen == 0 {
		return
	}
	fx /= fLen
	fy /= fLen
	fz /= fLen

	rx := fy*c.up[2] - fz*c.up[1]
	ry := fz*c.up[0] - fx*c.up[2]
	rz := fx*c.up[1] - fy*c.up[0]
	rLen := float32(math.Sqrt(float64(rx*rx + ry*ry + rz*rz)))
	if rLen == 0 {
		return
	}
	rx /= rLen
	ry /= rLen
	rz /= rLen

	c.eye[0] -= rx * dx * c.distance
	c.eye[1] -= ry * dx * c.distance
	c.eye[2] -= rz * dx * c.distance
	c.target[0] -= rx * dx * c.distance
	c.target[1] -= ry * dx * c.distance
	c.target[2] -= rz * dx * c.distance
}

func (c *orbitCameraImpl) ResizeProjection(width, height uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = float32(width) / float32(height)
}

func (c *orbitCameraImpl) UpdateViewProjection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uniform.ViewPosition = [4]float32{c.eye[0], c.eye[1], c.eye[2], 1.0}
	c.buildViewProjection(c.uniform.ViewProj[:])
}

func (c *orbitCameraImpl) Uniform() CameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uniform
}

// buildViewProjection computes remap * perspective * view into out.
// Caller must hold the mutex.
func (c *orbitCameraImpl) buildViewProjection(out []float32) {
	var view, proj [16]float32

	common.LookAt(view[:],
		c.eye[0], c.eye[1], c.eye[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)
	common.Perspective(proj[:], c.fovy, c.aspect, c.znear, c.zfar)
	common.Mul4(proj[:], DepthRemapMatrix[:], proj[:])
	common.Mul4(out, proj[:], view[:])
}

// clampPose re-applies the bounds to the stored spherical pose.
// Caller must hold the mutex.
func (c *orbitCameraImpl) clampPose() {
	c.distance = c.bounds.ClampDistance(c.distance)
	c.pitch = c.bounds.ClampPitch(c.pitch)
	c.yaw = c.bounds.ClampYaw(c.yaw)
}

// updateEye recomputes the Cartesian eye position from the spherical pose.
// Caller must hold the mutex.
func (c *orbitCameraImpl) updateEye() {
	sinPitch := float32(math.Sin(float64(c.pitch)))
	cosPitch := float32(math.Cos(float64(c.pitch)))
	sinYaw := float32(math.Sin(float64(c.yaw)))
	cosYaw := float32(math.Cos(float64(c.yaw)))

	c.eye[0] = c.target[0] + c.distance*sinYaw*cosPitch
	c.eye[1] = c.target[1] + c.distance*sinPitch
	c.eye[2] = c.target[2] + c.distance*cosYaw*cosPitch
}
