package input

import (
	"testing"

	"github.com/stofffe/gpu-raymarcher/common"
	"github.com/stretchr/testify/assert"
)

func TestButtonEdges(t *testing.T) {
	m := NewMouse()

	m.PressButton(common.MouseButtonLeft)

	assert.True(t, m.ButtonPressed(common.MouseButtonLeft))
	assert.True(t, m.ButtonJustPressed(common.MouseButtonLeft))
	assert.False(t, m.ButtonPressed(common.MouseButtonRight))

	m.Snapshot()

	assert.True(t, m.ButtonPressed(common.MouseButtonLeft))
	assert.False(t, m.ButtonJustPressed(common.MouseButtonLeft))

	m.ReleaseButton(common.MouseButtonLeft)

	assert.False(t, m.ButtonPressed(common.MouseButtonLeft))
	assert.True(t, m.ButtonReleased(common.MouseButtonLeft))
}

func TestMotionDeltaAccumulates(t *testing.T) {
	m := NewMouse()

	// First position event primes the state without producing a delta.
	m.SetPos(100, 100, 1280, 720)
	dx, dy := m.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	m.SetPos(110, 95, 1280, 720)
	m.SetPos(120, 90, 1280, 720)

	dx, dy = m.Delta()
	assert.Equal(t, 20.0, dx)
	assert.Equal(t, -10.0, dy)

	m.ResetDeltas()
	dx, dy = m.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	// Position survives the reset; the next event produces a fresh delta.
	m.SetPos(125, 90, 1280, 720)
	dx, _ = m.Delta()
	assert.Equal(t, 5.0, dx)
}

func TestScrollDeltaAccumulates(t *testing.T) {
	m := NewMouse()

	m.AddScroll(0, 1)
	m.AddScroll(0, 2)
	m.AddScroll(-1, 0)

	dx, dy := m.ScrollDelta()
	assert.Equal(t, -1.0, dx)
	assert.Equal(t, 3.0, dy)

	m.ResetDeltas()
	dx, dy = m.ScrollDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestOnScreenTracking(t *testing.T) {
	m := NewMouse()
	assert.False(t, m.OnScreen())

	m.SetPos(10, 10, 1280, 720)
	assert.True(t, m.OnScreen())

	// Dragging past the window edge does not fire a cursor-left event, so
	// the position update itself must flip the flag.
	m.SetPos(1500, 10, 1280, 720)
	assert.False(t, m.OnScreen())

	m.SetPos(10, 10, 1280, 720)
	assert.True(t, m.OnScreen())

	m.SetOnScreen(false)
	assert.False(t, m.OnScreen())
}

func TestPixelPos(t *testing.T) {
	m := NewMouse()
	m.SetPos(640, 360, 1280, 720)

	x, y := m.PixelPos(1280, 720, 640, 360)
	assert.Equal(t, 320, x)
	assert.Equal(t, 180, y)

	// Out-of-bounds drag positions clamp to the texture.
	m.SetPos(2000, -50, 1280, 720)
	x, y = m.PixelPos(1280, 720, 640, 360)
	assert.Equal(t, 639, x)
	assert.Equal(t, 0, y)
}

func TestStateFrameBoundary(t *testing.T) {
	s := New()

	s.Keyboard.SetKey(common.KeyW)
	s.Mouse.PressButton(common.MouseButtonLeft)
	s.Mouse.SetPos(0, 0, 1280, 720)
	s.Mouse.SetPos(5, 5, 1280, 720)
	s.Mouse.AddScroll(0, 1)

	assert.True(t, s.Keyboard.KeyJustPressed(common.KeyW))
	assert.True(t, s.Mouse.ButtonJustPressed(common.MouseButtonLeft))

	s.Snapshot()
	s.ResetDeltas()

	assert.True(t, s.Keyboard.KeyPressed(common.KeyW))
	assert.False(t, s.Keyboard.KeyJustPressed(common.KeyW))
	assert.False(t, s.Mouse.ButtonJustPressed(common.MouseButtonLeft))

	dx, dy := s.Mouse.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	_, sy := s.Mouse.ScrollDelta()
	assert.Zero(t, sy)
}
