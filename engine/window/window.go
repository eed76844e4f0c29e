package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and the input events the orbit viewer
// consumes: primary pointer button, pan modifier key, cursor movement, and
// scroll wheel. Wraps the platform window behind a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized. Dimensions are in pixels, not screen coordinates.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the vertical scroll delta
	//     (positive = up)
	SetScrollCallback(callback func(delta float32))

	// SetPointerButtonCallback sets the callback for the primary (left)
	// pointer button.
	//
	// Parameters:
	//   - callback: function receiving true on press, false on release
	SetPointerButtonCallback(callback func(pressed bool))

	// SetModifierCallback sets the callback for the pan modifier key
	// (either shift key). It fires on every physical press and release.
	//
	// Parameters:
	//   - callback: function receiving true on press, false on release
	SetModifierCallback(callback func(pressed bool))

	// SetCursorMoveCallback sets the callback for cursor movement. Positions
	// are absolute window coordinates; the consumer derives deltas.
	//
	// Parameters:
	//   - callback: function receiving the cursor x, y position
	SetCursorMoveCallback(callback func(x, y float32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for
	// creating a WebGPU surface for this window. The descriptor is
	// platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal)
	// and is produced by the wgpuglfw bridge.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the surface descriptor, or nil if the
	//     window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true while the window is active.
	//
	// Returns:
	//   - bool: true if the window is running, false once closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the close operation fails
	Close() error

	// ProcessMessages runs the window message loop. Blocks until the window
	// is closed, invoking the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface. Holds the
// window configuration, platform state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height track the current framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onScroll is called for scroll wheel events.
	onScroll func(delta float32)

	// onPointerButton is called for primary button presses and releases.
	onPointerButton func(pressed bool)

	// onModifier is called for pan-modifier key presses and releases.
	onModifier func(pressed bool)

	// onCursorMove is called when the cursor moves within the window.
	onCursorMove func(x, y float32)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options. Applies default
// values first, then each option in order, then spawns the platform window.
// Panics if the platform window cannot be created; without a window nothing
// downstream can run.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured, spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:  "Orbit Viewer",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetPointerButtonCallback(callback func(pressed bool)) {
	w.onPointerButton = callback
}

func (w *engineWindow) SetModifierCallback(callback func(pressed bool)) {
	w.onModifier = callback
}

func (w *engineWindow) SetCursorMoveCallback(callback func(x, y float32)) {
	w.onCursorMove = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
