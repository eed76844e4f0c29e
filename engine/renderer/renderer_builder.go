package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// RendererBuilderOption is a functional option applied to a renderer during
// construction via NewRenderer.
type RendererBuilderOption func(*wgpuRenderer)

// WithPresentMode sets the surface present mode which controls how frames
// are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *wgpuRenderer) {
		switch mode {
		case PresentModeUncapped:
			r.presentMode = wgpu.PresentModeImmediate
		case PresentModeVSync:
			fallthrough
		default:
			r.presentMode = wgpu.PresentModeFifo
		}
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback
// adapter instead of hardware GPU acceleration. Requires a software Vulkan
// ICD on the system (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the fallback option
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *wgpuRenderer) {
		r.forceFallbackAdapter = force
	}
}

// WithLogger sets the structured logger the renderer reports device and
// surface events through. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the zap logger to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option
func WithLogger(logger *zap.Logger) RendererBuilderOption {
	return func(r *wgpuRenderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
