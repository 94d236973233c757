package engine

import (
	"image"

	"cogentcore.org/core/math32"

	"github.com/stofffe/gpu-raymarcher/engine/clock"
	"github.com/stofffe/gpu-raymarcher/engine/input"
	"github.com/stofffe/gpu-raymarcher/engine/renderer"
	"github.com/stofffe/gpu-raymarcher/engine/shape"
	"github.com/stofffe/gpu-raymarcher/engine/window"
)

// Context is the per-frame view of the engine handed to Callbacks. It exposes
// shape construction and submission, input queries, camera and light state,
// timing, and window commands. A single Context is reused across all frames.
type Context struct {
	engine   *engine
	window   window.Window
	renderer renderer.Renderer
	input    *input.State
	arena    *shape.Arena
	clock    *clock.Clock
}

// Shapes returns the frame-scoped shape arena. Handles built from it are
// valid until the end of the current frame only.
//
// Returns:
//   - *shape.Arena: the shape construction arena
func (c *Context) Shapes() *shape.Arena {
	return c.arena
}

// SubmitShape adds a root shape to this frame's scene.
// Fails with a shape.ErrCapacity-wrapped error if the flattened record
// count would exceed shape.MaxRecords; the scene is unchanged on failure.
//
// Parameters:
//   - s: the root shape to render this frame
//
// Returns:
//   - error: capacity error, or nil
func (c *Context) SubmitShape(s shape.Shape) error {
	return c.renderer.SubmitShape(s)
}

// SubmitShapes submits each root shape in order, short-circuiting on the
// first capacity failure.
//
// Parameters:
//   - shapes: root shapes to render this frame
//
// Returns:
//   - error: the first submission error, or nil
func (c *Context) SubmitShapes(shapes ...shape.Shape) error {
	return c.renderer.SubmitShapes(shapes...)
}

// Keyboard returns the frame-stable keyboard state.
//
// Returns:
//   - *input.Keyboard: the keyboard state
func (c *Context) Keyboard() *input.Keyboard {
	return c.input.Keyboard
}

// Mouse returns the frame-stable mouse state.
//
// Returns:
//   - *input.Mouse: the mouse state
func (c *Context) Mouse() *input.Mouse {
	return c.input.Mouse
}

// SetCameraPos sets the camera world position used for the next rendered frame.
func (c *Context) SetCameraPos(pos math32.Vector3) {
	c.renderer.SetCameraPos(pos)
}

// CameraPos returns the current camera world position.
func (c *Context) CameraPos() math32.Vector3 {
	return c.renderer.CameraPos()
}

// SetCameraRot sets the camera rotation matrix. Columns are the camera's
// right, up and forward basis vectors.
func (c *Context) SetCameraRot(rot math32.Matrix3) {
	c.renderer.SetCameraRot(rot)
}

// CameraRot returns the current camera rotation matrix.
func (c *Context) CameraRot() math32.Matrix3 {
	return c.renderer.CameraRot()
}

// SetFocalLength sets the projection focal length.
func (c *Context) SetFocalLength(focalLength float32) {
	c.renderer.SetFocalLength(focalLength)
}

// FocalLength returns the current projection focal length.
func (c *Context) FocalLength() float32 {
	return c.renderer.FocalLength()
}

// SetLightPos sets the world position of the point light.
func (c *Context) SetLightPos(pos math32.Vector3) {
	c.renderer.SetLightPos(pos)
}

// LightPos returns the current point light position.
func (c *Context) LightPos() math32.Vector3 {
	return c.renderer.LightPos()
}

// TimeSinceStart returns seconds elapsed since the engine started.
//
// Returns:
//   - float32: elapsed time in seconds
func (c *Context) TimeSinceStart() float32 {
	return c.clock.SinceStart()
}

// Resolution returns the fixed compute resolution in pixels. This is the
// raymarch output size, independent of the window size.
//
// Returns:
//   - width: compute width in pixels
//   - height: compute height in pixels
func (c *Context) Resolution() (width, height int) {
	return c.renderer.Resolution()
}

// WindowSize returns the current framebuffer size in pixels.
//
// Returns:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
func (c *Context) WindowSize() (width, height int) {
	return c.window.Width(), c.window.Height()
}

// SetCursorVisible shows or hides the cursor. A hidden cursor is captured
// for unbounded mouse-look movement.
//
// Parameters:
//   - visible: true to show, false to hide and capture
func (c *Context) SetCursorVisible(visible bool) {
	c.window.SetCursorVisible(visible)
}

// SetPresentMode switches surface presentation between vsync and uncapped.
// Takes effect immediately via surface reconfiguration.
//
// Parameters:
//   - mode: the presentation mode
func (c *Context) SetPresentMode(mode renderer.PresentMode) {
	c.renderer.SetPresentMode(mode)
}

// ResizeWindow requests a new window client size. The surface is
// reconfigured through the resulting resize event.
//
// Parameters:
//   - width: requested width in pixels
//   - height: requested height in pixels
func (c *Context) ResizeWindow(width, height int) {
	c.window.Resize(width, height)
}

// SetWindowTitle changes the window title.
//
// Parameters:
//   - title: the new title text
func (c *Context) SetWindowTitle(title string) {
	c.window.SetTitle(title)
}

// CaptureFrame reads back the last rendered output texture.
//
// Returns:
//   - *image.RGBA: the captured frame at compute resolution
//   - error: error if the readback fails
func (c *Context) CaptureFrame() (*image.RGBA, error) {
	return c.renderer.CaptureFrame()
}

// CaptureFramePNG reads back the last rendered output texture and writes it
// to the given path as a PNG. Encoding happens off the engine loop.
//
// Parameters:
//   - path: destination file path
//
// Returns:
//   - error: error if the readback or write submission fails
func (c *Context) CaptureFramePNG(path string) error {
	return c.renderer.CaptureFramePNG(path)
}

// Quit stops the engine loop after the current frame.
func (c *Context) Quit() {
	c.engine.Quit()
}
