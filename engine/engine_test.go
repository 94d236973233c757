package engine

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/stofffe/gpu-raymarcher/common"
	"github.com/stofffe/gpu-raymarcher/engine/clock"
	"github.com/stofffe/gpu-raymarcher/engine/input"
	"github.com/stofffe/gpu-raymarcher/engine/renderer"
	"github.com/stofffe/gpu-raymarcher/engine/shape"
	"github.com/stofffe/gpu-raymarcher/engine/window"
)

// stubWindow records the callbacks the engine wires so tests can fire
// window events directly.
type stubWindow struct {
	fbWidth, fbHeight         int
	clientWidth, clientHeight int

	onResize          func(width, height int)
	onKeyDown         func(keyCode uint32)
	onKeyUp           func(keyCode uint32)
	onModifiers       func(mods uint32)
	onMouseButtonDown func(button uint32)
	onMouseButtonUp   func(button uint32)
	onCursorPos       func(x, y float64)
	onCursorEnter     func(entered bool)
	onScroll          func(dx, dy float64)
}

var _ window.Window = &stubWindow{}

func (w *stubWindow) SetResizeCallback(cb func(width, height int))      { w.onResize = cb }
func (w *stubWindow) SetKeyDownCallback(cb func(keyCode uint32))        { w.onKeyDown = cb }
func (w *stubWindow) SetKeyUpCallback(cb func(keyCode uint32))          { w.onKeyUp = cb }
func (w *stubWindow) SetModifiersCallback(cb func(mods uint32))         { w.onModifiers = cb }
func (w *stubWindow) SetMouseButtonDownCallback(cb func(button uint32)) { w.onMouseButtonDown = cb }
func (w *stubWindow) SetMouseButtonUpCallback(cb func(button uint32))   { w.onMouseButtonUp = cb }
func (w *stubWindow) SetCursorPosCallback(cb func(x, y float64))        { w.onCursorPos = cb }
func (w *stubWindow) SetCursorEnterCallback(cb func(entered bool))      { w.onCursorEnter = cb }
func (w *stubWindow) SetScrollCallback(cb func(dx, dy float64))         { w.onScroll = cb }
func (w *stubWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor        { return nil }
func (w *stubWindow) IsRunning() bool                                   { return true }
func (w *stubWindow) Close() error                                      { return nil }
func (w *stubWindow) PollEvents() bool                                  { return true }
func (w *stubWindow) Width() int                                        { return w.fbWidth }
func (w *stubWindow) Height() int                                       { return w.fbHeight }
func (w *stubWindow) ClientWidth() int                                  { return w.clientWidth }
func (w *stubWindow) ClientHeight() int                                 { return w.clientHeight }
func (w *stubWindow) SetCursorVisible(visible bool)                     {}
func (w *stubWindow) Resize(width, height int)                          {}
func (w *stubWindow) SetTitle(title string)                             {}

// stubRenderer records resize calls; everything else is inert.
type stubRenderer struct {
	resizes [][2]int
}

var _ renderer.Renderer = &stubRenderer{}

func (r *stubRenderer) SubmitShape(s shape.Shape) error           { return nil }
func (r *stubRenderer) SubmitShapes(shapes ...shape.Shape) error  { return nil }
func (r *stubRenderer) RenderFrame(elapsed float32) error         { return nil }
func (r *stubRenderer) Resize(width, height int)                  { r.resizes = append(r.resizes, [2]int{width, height}) }
func (r *stubRenderer) SetPresentMode(mode renderer.PresentMode)  {}
func (r *stubRenderer) SetCameraPos(pos math32.Vector3)           {}
func (r *stubRenderer) CameraPos() math32.Vector3                 { return math32.Vector3{} }
func (r *stubRenderer) SetCameraRot(rot math32.Matrix3)           {}
func (r *stubRenderer) CameraRot() math32.Matrix3                 { return math32.Identity3() }
func (r *stubRenderer) SetFocalLength(focalLength float32)        {}
func (r *stubRenderer) FocalLength() float32                      { return 1 }
func (r *stubRenderer) SetLightPos(pos math32.Vector3)            {}
func (r *stubRenderer) LightPos() math32.Vector3                  { return math32.Vector3{} }
func (r *stubRenderer) Resolution() (width, height int)           { return 1280, 720 }
func (r *stubRenderer) CaptureFrame() (*image.RGBA, error)        { return nil, nil }
func (r *stubRenderer) CaptureFramePNG(path string) error         { return nil }
func (r *stubRenderer) Release()                                  {}

func newTestEngine(w *stubWindow, r *stubRenderer) *engine {
	e := &engine{
		window:   w,
		renderer: r,
		input:    input.New(),
		arena:    shape.NewArena(shape.MaxRecords),
		clock:    clock.New(),
	}
	e.wireWindowEvents()
	return e
}

func TestCursorBoundsUseClientSize(t *testing.T) {
	// High-DPI setup: framebuffer is twice the client size. Cursor events
	// arrive in client (screen) coordinates.
	w := &stubWindow{fbWidth: 1280, fbHeight: 960, clientWidth: 640, clientHeight: 480}
	e := newTestEngine(w, &stubRenderer{})

	w.onCursorPos(700, 100) // inside the framebuffer, outside the client area
	assert.False(t, e.input.Mouse.OnScreen())

	w.onCursorPos(600, 100)
	assert.True(t, e.input.Mouse.OnScreen())
}

func TestResizeForwardsFramebufferSize(t *testing.T) {
	w := &stubWindow{fbWidth: 1280, fbHeight: 960, clientWidth: 640, clientHeight: 480}
	r := &stubRenderer{}
	newTestEngine(w, r)

	w.onResize(2560, 1440)
	assert.Equal(t, [][2]int{{2560, 1440}}, r.resizes)
}

func TestKeyEventsReachInput(t *testing.T) {
	w := &stubWindow{clientWidth: 640, clientHeight: 480}
	e := newTestEngine(w, &stubRenderer{})

	w.onKeyDown(uint32(common.KeyW))
	assert.True(t, e.input.Keyboard.KeyPressed(common.KeyW))
	assert.True(t, e.input.Keyboard.KeyJustPressed(common.KeyW))

	w.onKeyUp(uint32(common.KeyW))
	assert.False(t, e.input.Keyboard.KeyPressed(common.KeyW))
}

func TestModifierMaskReachesInput(t *testing.T) {
	w := &stubWindow{clientWidth: 640, clientHeight: 480}
	e := newTestEngine(w, &stubRenderer{})

	w.onModifiers(uint32(common.MaskShift | common.MaskCtrl))
	assert.True(t, e.input.Keyboard.ModifierPressed(common.ModShift))
	assert.True(t, e.input.Keyboard.ModifierPressed(common.ModCtrl))

	w.onModifiers(uint32(common.MaskCtrl))
	assert.False(t, e.input.Keyboard.ModifierPressed(common.ModShift))
}

func TestScrollAndButtonsReachInput(t *testing.T) {
	w := &stubWindow{clientWidth: 640, clientHeight: 480}
	e := newTestEngine(w, &stubRenderer{})

	w.onScroll(0, 1)
	w.onScroll(0, 2)
	_, dy := e.input.Mouse.ScrollDelta()
	assert.Equal(t, 3.0, dy)

	w.onMouseButtonDown(uint32(common.MouseButtonLeft))
	assert.True(t, e.input.Mouse.ButtonPressed(common.MouseButtonLeft))
	w.onMouseButtonUp(uint32(common.MouseButtonLeft))
	assert.False(t, e.input.Mouse.ButtonPressed(common.MouseButtonLeft))

	w.onCursorEnter(false)
	assert.False(t, e.input.Mouse.OnScreen())
}
