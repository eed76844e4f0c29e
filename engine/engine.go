package engine

import (
	"go.uber.org/zap"

	"github.com/gfxdemo/orbitcube/engine/camera"
	"github.com/gfxdemo/orbitcube/engine/profiler"
	"github.com/gfxdemo/orbitcube/engine/renderer"
	"github.com/gfxdemo/orbitcube/engine/window"
)

// engine implements the Engine interface. It wires the window's input
// events into the camera controller and drives the render loop off the
// window's message loop, re-rendering only when input or a resize dirtied
// the camera.
type engine struct {
	logger *zap.Logger

	window   window.Window
	renderer renderer.Renderer
	camera   camera.OrbitCamera

	controller        camera.CameraController
	controllerOptions []camera.CameraControllerOption

	profiler         *profiler.Profiler
	profilingEnabled bool

	// Cursor tracking: GLFW reports absolute positions, the controller
	// consumes relative motion.
	cursorSeen  bool
	lastCursorX float32
	lastCursorY float32

	// dirty marks that camera state changed and the next update must render.
	// Starts true so the first frame is drawn before any input arrives.
	dirty bool
}

// Engine coordinates the window, the renderer, and the orbit camera for the
// cube viewer. Construct it with NewEngine, then call Run to enter the
// message loop; Run returns when the window closes.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the orbit camera being driven.
	//
	// Returns:
	//   - camera.OrbitCamera: the camera instance
	Camera() camera.OrbitCamera

	// Controller returns the input controller wired to the camera.
	//
	// Returns:
	//   - camera.CameraController: the controller instance
	Controller() camera.CameraController

	// EnableProfiler enables per-interval frame statistics logging.
	EnableProfiler()

	// DisableProfiler disables frame statistics logging.
	DisableProfiler()

	// Run enters the window message loop. Blocks until the window closes,
	// then releases GPU resources.
	Run()

	// Quit closes the window, causing Run to return.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates an Engine from the provided options. A window, renderer,
// and camera are required; the input controller is constructed internally so
// its redraw requests can be wired to the engine's dirty flag. Panics if a
// required dependency is missing.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the fully wired engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger: zap.NewNop(),
		dirty:  true,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		panic("engine requires a window")
	}
	if e.renderer == nil {
		panic("engine requires a renderer")
	}
	if e.camera == nil {
		panic("engine requires a camera")
	}

	e.profiler = profiler.NewProfiler(e.logger)

	controllerOptions := append(
		e.controllerOptions,
		camera.WithRedrawRequest(e.markDirty),
	)
	e.controller = camera.NewCameraController(e.camera, controllerOptions...)

	e.wireWindowCallbacks()

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.OrbitCamera {
	return e.camera
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Run() {
	e.logger.Info("entering message loop")
	e.window.ProcessMessages()
	e.logger.Info("window closed, releasing GPU resources")
	e.renderer.Release()
}

func (e *engine) Quit() {
	if err := e.window.Close(); err != nil {
		e.logger.Warn("window close failed", zap.Error(err))
	}
}

func (e *engine) markDirty() {
	e.dirty = true
}

// wireWindowCallbacks routes window events into the controller and camera.
func (e *engine) wireWindowCallbacks() {
	e.window.SetPointerButtonCallback(func(pressed bool) {
		e.controller.ProcessButton(pressed)
	})

	e.window.SetModifierCallback(func(pressed bool) {
		e.controller.ProcessModifier(pressed)
	})

	e.window.SetScrollCallback(func(delta float32) {
		e.controller.ProcessScroll(delta)
	})

	e.window.SetCursorMoveCallback(func(x, y float32) {
		// The first position event establishes the reference point; deltas
		// start from the second event so the camera never jumps.
		if !e.cursorSeen {
			e.cursorSeen = true
			e.lastCursorX = x
			e.lastCursorY = y
			return
		}
		dx := x - e.lastCursorX
		dy := y - e.lastCursorY
		e.lastCursorX = x
		e.lastCursorY = y
		e.controller.ProcessPointerMotion(dx, dy)
	})

	e.window.SetResizeCallback(func(width, height int) {
		// Minimized windows report a zero-sized framebuffer; configuring a
		// zero surface is a validation error.
		if width == 0 || height == 0 {
			return
		}
		e.camera.ResizeProjection(uint32(width), uint32(height))
		e.renderer.Resize(width, height)
		e.dirty = true
	})

	e.window.SetUpdateCallback(e.update)
}

// update runs once per message loop iteration. Renders only when camera
// state changed since the last frame.
func (e *engine) update() {
	if !e.dirty {
		return
	}
	e.dirty = false

	e.camera.UpdateViewProjection()
	uniform := e.camera.Uniform()
	e.renderer.UpdateCameraUniform(uniform.Marshal())

	if err := e.renderer.RenderFrame(); err != nil {
		// A failed acquire (e.g. outdated swapchain during a resize burst)
		// is recoverable; render again next iteration.
		e.logger.Warn("frame render failed", zap.Error(err))
		e.dirty = true
		return
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}
