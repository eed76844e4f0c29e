package camera

// CameraControllerOption is a functional option for configuring a
// CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRotateSpeed sets the drag sensitivity.
//
// Parameters:
//   - speed: radians per pointer unit of drag motion
//
// Returns:
//   - CameraControllerOption: functional option to set the rotate speed
func WithRotateSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotateSpeed = speed
	}
}

// WithZoomSpeed sets the scroll-to-zoom multiplier.
//
// Parameters:
//   - speed: multiplier applied to scroll deltas
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithRedrawRequest sets the callback fired whenever a handled event changed
// camera state, so the owning surface can schedule a new frame.
//
// Parameters:
//   - callback: function invoked after state-changing events
//
// Returns:
//   - CameraControllerOption: functional option to set the redraw callback
func WithRedrawRequest(callback func()) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.requestRedraw = callback
	}
}
