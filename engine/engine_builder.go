package engine

import (
	"go.uber.org/zap"

	"github.com/gfxdemo/orbitcube/engine/camera"
	"github.com/gfxdemo/orbitcube/engine/renderer"
	"github.com/gfxdemo/orbitcube/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the
// engine instance.
type EngineBuilderOption func(*engine)

// WithWindow sets the pre-configured window the engine drives. Required.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer the engine submits frames through. Required.
//
// Parameters:
//   - r: a pre-configured Renderer instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the orbit camera the engine drives. Required.
//
// Parameters:
//   - cam: a pre-configured OrbitCamera instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(cam camera.OrbitCamera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = cam
	}
}

// WithControllerOptions forwards options to the camera controller the engine
// constructs internally (e.g. rotate and zoom speeds). The engine always
// appends its own redraw wiring after these.
//
// Parameters:
//   - options: controller options to forward
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithControllerOptions(options ...camera.CameraControllerOption) EngineBuilderOption {
	return func(e *engine) {
		e.controllerOptions = append(e.controllerOptions, options...)
	}
}

// WithProfiling enables or disables frame statistics logging.
//
// Parameters:
//   - enabled: if true, enables frame statistics
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithLogger sets the structured logger the engine and its profiler report
// through. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the zap logger to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
