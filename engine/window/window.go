package window

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the platform key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the platform key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetModifiersCallback sets the callback for modifier state changes.
	// Fired alongside key and mouse button events with the complete current
	// modifier bitmask, never an incremental toggle.
	//
	// Parameters:
	//   - callback: function receiving the modifier bitmask
	SetModifiersCallback(callback func(mods uint32))

	// SetMouseButtonDownCallback sets the callback for mouse button presses.
	//
	// Parameters:
	//   - callback: function receiving the button index
	SetMouseButtonDownCallback(callback func(button uint32))

	// SetMouseButtonUpCallback sets the callback for mouse button releases.
	//
	// Parameters:
	//   - callback: function receiving the button index
	SetMouseButtonUpCallback(callback func(button uint32))

	// SetCursorPosCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving cursor x, y in window coordinates
	SetCursorPosCallback(callback func(x, y float64))

	// SetCursorEnterCallback sets the callback for the cursor entering or
	// leaving the window client area.
	//
	// Parameters:
	//   - callback: function receiving true on enter, false on leave
	SetCursorEnterCallback(callback func(entered bool))

	// SetScrollCallback sets the callback for scroll wheel events, both axes.
	//
	// Parameters:
	//   - callback: function receiving the scroll offsets
	SetScrollCallback(callback func(dx, dy float64))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// PollEvents processes pending window events without blocking and
	// reports whether the window is still running. Called once per frame.
	//
	// Returns:
	//   - bool: true if the window is still running
	PollEvents() bool

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

	// ClientWidth returns the current window client width in screen
	// coordinates. Cursor positions are reported in this coordinate space;
	// on high-DPI displays it differs from the framebuffer size.
	//
	// Returns:
	//   - int: client width in screen coordinates
	ClientWidth() int

	// ClientHeight returns the current window client height in screen
	// coordinates.
	//
	// Returns:
	//   - int: client height in screen coordinates
	ClientHeight() int

	// SetCursorVisible shows or hides the cursor. When hidden the cursor is
	// captured for unbounded mouse-look movement.
	//
	// Parameters:
	//   - visible: true to show the cursor, false to hide and capture it
	SetCursorVisible(visible bool)

	// Resize requests a new window client size.
	//
	// Parameters:
	//   - width: requested width in pixels
	//   - height: requested height in pixels
	Resize(width, height int)

	// SetTitle changes the window title.
	//
	// Parameters:
	//   - title: the new title text
	SetTitle(title string)
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// clientWidth is the current client width in screen coordinates, the
	// space cursor positions are reported in.
	clientWidth int

	// clientHeight is the current client height in screen coordinates.
	clientHeight int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onKeyDown is called when a key is pressed or repeats.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)

	// onModifiers is called with the full modifier bitmask on every key or
	// mouse button event.
	onModifiers func(mods uint32)

	// onMouseButtonDown is called when any mouse button is pressed.
	onMouseButtonDown func(button uint32)

	// onMouseButtonUp is called when any mouse button is released.
	onMouseButtonUp func(button uint32)

	// onCursorPos is called when the cursor moves within the window.
	onCursorPos func(x, y float64)

	// onCursorEnter is called when the cursor enters or leaves the window.
	onCursorEnter func(entered bool)

	// onScroll is called for scroll wheel events.
	onScroll func(dx, dy float64)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:        "Raymarcher",
		width:        1280,
		height:       720,
		clientWidth:  1280,
		clientHeight: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetModifiersCallback(callback func(mods uint32)) {
	w.onModifiers = callback
}

func (w *engineWindow) SetMouseButtonDownCallback(callback func(button uint32)) {
	w.onMouseButtonDown = callback
}

func (w *engineWindow) SetMouseButtonUpCallback(callback func(button uint32)) {
	w.onMouseButtonUp = callback
}

func (w *engineWindow) SetCursorPosCallback(callback func(x, y float64)) {
	w.onCursorPos = callback
}

func (w *engineWindow) SetCursorEnterCallback(callback func(entered bool)) {
	w.onCursorEnter = callback
}

func (w *engineWindow) SetScrollCallback(callback func(dx, dy float64)) {
	w.onScroll = callback
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

func (w *engineWindow) PollEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) ClientWidth() int {
	return w.clientWidth
}

func (w *engineWindow) ClientHeight() int {
	return w.clientHeight
}

func (w *engineWindow) SetCursorVisible(visible bool) {
	platformSetCursorVisible(w, visible)
}

func (w *engineWindow) Resize(width, height int) {
	platformResizeWindow(w, width, height)
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}
