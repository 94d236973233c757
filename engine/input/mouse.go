package input

import (
	"github.com/stofffe/gpu-raymarcher/common"
)

// Mouse tracks button state, cursor position, and accumulated motion and
// scroll deltas for the current frame. Deltas accumulate across events
// within a frame and are zeroed at the frame boundary by ResetDeltas.
type Mouse struct {
	onScreen bool

	x, y float64
	// hasPos guards delta accumulation until the first position event, so
	// the initial cursor placement does not register as a huge jump.
	hasPos bool

	deltaX, deltaY   float64
	scrollX, scrollY float64

	pressed         map[common.MouseButton]struct{}
	previousPressed map[common.MouseButton]struct{}
}

// NewMouse creates mouse state with no buttons pressed and the cursor
// considered off screen.
//
// Returns:
//   - *Mouse: the initialized mouse state
func NewMouse() *Mouse {
	return &Mouse{
		pressed:         make(map[common.MouseButton]struct{}),
		previousPressed: make(map[common.MouseButton]struct{}),
	}
}

// ButtonPressed reports whether the button is currently down. Accepts
// repeating.
func (m *Mouse) ButtonPressed(button common.MouseButton) bool {
	_, ok := m.pressed[button]
	return ok
}

// ButtonJustPressed reports whether the button went down this frame.
func (m *Mouse) ButtonJustPressed(button common.MouseButton) bool {
	_, now := m.pressed[button]
	_, before := m.previousPressed[button]
	return now && !before
}

// ButtonReleased reports whether the button went up this frame.
func (m *Mouse) ButtonReleased(button common.MouseButton) bool {
	_, now := m.pressed[button]
	_, before := m.previousPressed[button]
	return !now && before
}

// OnScreen reports whether the cursor is currently inside the window bounds.
func (m *Mouse) OnScreen() bool {
	return m.onScreen
}

// Pos returns the current cursor position in window coordinates.
func (m *Mouse) Pos() (x, y float64) {
	return m.x, m.y
}

// PixelPos maps the cursor position from window coordinates to a pixel in
// the compute-output texture. During drags the cursor position can leave the
// window bounds, so the result is clamped to the texture.
//
// Parameters:
//   - windowWidth, windowHeight: current window client size in pixels
//   - resWidth, resHeight: compute-output texture resolution
//
// Returns:
//   - x, y: the pixel under the cursor, clamped to the texture bounds
func (m *Mouse) PixelPos(windowWidth, windowHeight, resWidth, resHeight int) (x, y int) {
	px := int(m.x / float64(windowWidth) * float64(resWidth))
	py := int(m.y / float64(windowHeight) * float64(resHeight))
	return min(max(px, 0), resWidth-1), min(max(py, 0), resHeight-1)
}

// Delta returns the motion delta accumulated since the last ResetDeltas.
func (m *Mouse) Delta() (dx, dy float64) {
	return m.deltaX, m.deltaY
}

// ScrollDelta returns the scroll delta accumulated since the last
// ResetDeltas.
func (m *Mouse) ScrollDelta() (dx, dy float64) {
	return m.scrollX, m.scrollY
}

// PressButton marks the button as pressed for the current frame.
func (m *Mouse) PressButton(button common.MouseButton) {
	m.pressed[button] = struct{}{}
}

// ReleaseButton marks the button as no longer pressed.
func (m *Mouse) ReleaseButton(button common.MouseButton) {
	delete(m.pressed, button)
}

// SetPos records a cursor position event, accumulating the motion delta
// from the previous position and recomputing the on-screen flag against the
// window bounds. The bounds check is needed here because a drag can carry
// the cursor past the window edge without a cursor-left event firing.
//
// Parameters:
//   - x, y: cursor position in window coordinates
//   - windowWidth, windowHeight: current window client size in pixels
func (m *Mouse) SetPos(x, y float64, windowWidth, windowHeight int) {
	if m.hasPos {
		m.deltaX += x - m.x
		m.deltaY += y - m.y
	}
	m.x, m.y = x, y
	m.hasPos = true

	m.onScreen = x >= 0 && x < float64(windowWidth) &&
		y >= 0 && y < float64(windowHeight)
}

// SetOnScreen forces the on-screen flag, used on cursor enter/leave events.
func (m *Mouse) SetOnScreen(onScreen bool) {
	m.onScreen = onScreen
}

// AddScroll accumulates a scroll wheel event into the frame's scroll delta.
func (m *Mouse) AddScroll(dx, dy float64) {
	m.scrollX += dx
	m.scrollY += dy
}

// Snapshot copies the current button set into the previous-frame snapshot.
// Called once per frame boundary.
func (m *Mouse) Snapshot() {
	clear(m.previousPressed)
	for button := range m.pressed {
		m.previousPressed[button] = struct{}{}
	}
}

// ResetDeltas zeroes the accumulated motion and scroll deltas. Called at
// the frame boundary after the frame's logic has read them.
func (m *Mouse) ResetDeltas() {
	m.deltaX, m.deltaY = 0, 0
	m.scrollX, m.scrollY = 0, 0
}
