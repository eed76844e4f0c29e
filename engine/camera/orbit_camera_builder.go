package camera

// OrbitCameraOption is a functional option for configuring an OrbitCamera.
type OrbitCameraOption func(*orbitCameraImpl)

// WithDistance sets the initial distance of the eye from the target. The
// value is clamped against the camera's bounds after all options have been
// applied.
//
// Parameters:
//   - distance: euclidean distance between eye and target
//
// Returns:
//   - OrbitCameraOption: functional option to set the distance
func WithDistance(distance float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.distance = distance
	}
}

// WithPitch sets the initial elevation angle.
//
// Parameters:
//   - pitch: elevation angle in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set the pitch
func WithPitch(pitch float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.pitch = pitch
	}
}

// WithYaw sets the initial azimuth angle.
//
// Parameters:
//   - yaw: azimuth angle in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set the yaw
func WithYaw(yaw float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.yaw = yaw
	}
}

// WithTarget sets the point the camera orbits around.
//
// Parameters:
//   - x, y, z: world-space target coordinates
//
// Returns:
//   - OrbitCameraOption: functional option to set the target
func WithTarget(x, y, z float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.target = [3]float32{x, y, z}
	}
}

// WithUp sets the world up axis. Fixed after construction.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - OrbitCameraOption: functional option to set the up vector
func WithUp(x, y, z float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.up = [3]float32{x, y, z}
	}
}

// WithAspect sets the projection aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - OrbitCameraOption: functional option to set the aspect ratio
func WithAspect(aspect float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.aspect = aspect
	}
}

// WithFovy sets the vertical field of view.
//
// Parameters:
//   - fovy: field of view in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set the field of view
func WithFovy(fovy float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.fovy = fovy
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - OrbitCameraOption: functional option to set the clip planes
func WithClipPlanes(near, far float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.znear = near
		c.zfar = far
	}
}

// WithBounds sets the constraint set the camera clamps against.
//
// Parameters:
//   - b: the bounds to apply
//
// Returns:
//   - OrbitCameraOption: functional option to set the bounds
func WithBounds(b Bounds) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.bounds = b
	}
}
