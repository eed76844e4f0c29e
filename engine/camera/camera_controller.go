package camera

import "sync"

// controlMode is the input controller's state. Pan takes precedence over
// drag-rotate: a button press while the pan modifier is held never enters
// modeDragRotate.
type controlMode int

const (
	// modeIdle ignores pointer motion.
	modeIdle controlMode = iota

	// modeDragRotate maps pointer motion to yaw/pitch changes.
	modeDragRotate

	// modePan maps pointer motion to target-shifting pans.
	modePan
)

type cameraControllerImpl struct {
	mu *sync.Mutex

	camera OrbitCamera

	rotateSpeed float32
	zoomSpeed   float32

	mode controlMode

	// requestRedraw is invoked after every handled event that changed
	// camera state, so the owning surface can schedule a frame.
	requestRedraw func()
}

// CameraController translates raw pointer, scroll, and modifier events into
// orbit camera mutations. It is a small state machine: idle, drag-rotating,
// or panning. The pan modifier's physical state drives panning directly and
// wins over drag-rotate when both would apply.
type CameraController interface {
	// ProcessButton handles a primary pointer button state change. A press
	// without the pan modifier starts drag-rotating; a release returns to
	// idle. While panning, a release also returns to idle but a press is
	// ignored (pan precedence).
	//
	// Parameters:
	//   - pressed: true on press, false on release
	ProcessButton(pressed bool)

	// ProcessModifier handles a pan-modifier key state change. The modifier
	// toggles panning directly, independent of button state.
	//
	// Parameters:
	//   - pressed: true on press, false on release
	ProcessModifier(pressed bool)

	// ProcessPointerMotion handles a relative pointer movement. In
	// drag-rotate mode it orbits the camera; in pan mode it shifts the orbit
	// center; when idle it does nothing.
	//
	// Parameters:
	//   - dx: horizontal motion delta
	//   - dy: vertical motion delta
	ProcessPointerMotion(dx, dy float32)

	// ProcessScroll handles a scroll wheel event. Scrolling zooms in any
	// mode; the sign is inverted so scrolling up (away) zooms in.
	//
	// Parameters:
	//   - amount: raw scroll delta, positive for scrolling up
	ProcessScroll(amount float32)

	// RotateSpeed returns the drag sensitivity in radians per pointer unit.
	//
	// Returns:
	//   - float32: the rotate speed
	RotateSpeed() float32

	// ZoomSpeed returns the scroll-to-zoom multiplier.
	//
	// Returns:
	//   - float32: the zoom speed
	ZoomSpeed() float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller driving the given camera.
// Defaults: rotate speed 0.005, zoom speed 0.1, no redraw callback.
//
// Parameters:
//   - cam: the orbit camera to mutate
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam OrbitCamera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:          &sync.Mutex{},
		camera:      cam,
		rotateSpeed: 0.005,
		zoomSpeed:   0.1,
		mode:        modeIdle,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) ProcessButton(pressed bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	switch cc.mode {
	case modePan:
		// Pan precedence: the press is absorbed; only a release ends panning.
		if !pressed {
			cc.mode = modeIdle
		}
	default:
		if pressed {
			cc.mode = modeDragRotate
		} else {
			cc.mode = modeIdle
		}
	}
}

func (cc *cameraControllerImpl) ProcessModifier(pressed bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	// The modifier tracks the key's physical state directly, regardless of
	// the pointer button.
	if pressed {
		cc.mode = modePan
	} else if cc.mode == modePan {
		cc.mode = modeIdle
	}
}

func (cc *cameraControllerImpl) ProcessPointerMotion(dx, dy float32) {
	cc.mu.Lock()
	mode := cc.mode
	cc.mu.Unlock()

	switch mode {
	case modeDragRotate:
		cc.camera.AddYaw(-dx * cc.rotateSpeed)
		cc.camera.AddPitch(dy * cc.rotateSpeed)
		cc.redraw()
	case modePan:
		cc.camera.Pan(dx*cc.rotateSpeed/2, dy*cc.rotateSpeed/2)
		cc.redraw()
	}
}

func (cc *cameraControllerImpl) ProcessScroll(amount float32) {
	// Scroll is not gated by the drag/pan mode.
	cc.camera.AddDistance(-amount * cc.zoomSpeed)
	cc.redraw()
}

func (cc *cameraControllerImpl) RotateSpeed() float32 {
	return cc.rotateSpeed
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	return cc.zoomSpeed
}

func (cc *cameraControllerImpl) redraw() {
	if cc.requestRedraw != nil {
		cc.requestRedraw()
	}
}
