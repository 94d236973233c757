package camera

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestPitchClamp(t *testing.T) {
	c := NewCamera()

	c.Rotate(0, 200)
	assert.Equal(t, float32(pitchLimit), c.Pitch())

	c.Rotate(0, -500)
	assert.Equal(t, float32(-pitchLimit), c.Pitch())
}

func TestZoomClamp(t *testing.T) {
	c := NewCamera(WithFocalLength(1.0))

	c.Zoom(-5)
	assert.Equal(t, float32(minFocalLength), c.FocalLength())

	c.Zoom(0.5)
	assert.InDelta(t, 0.6, float64(c.FocalLength()), 1e-6)
}

func TestIdentityBasis(t *testing.T) {
	c := NewCamera()

	right, up, forward := c.Basis()
	assert.InDelta(t, 1.0, float64(right.X), 1e-5)
	assert.InDelta(t, 1.0, float64(up.Y), 1e-5)
	assert.InDelta(t, 1.0, float64(forward.Z), 1e-5)
}

func TestYawRotatesForward(t *testing.T) {
	c := NewCamera(WithOrientation(90, 0))

	_, _, forward := c.Basis()
	// Yaw 90 degrees turns +z forward toward +x.
	assert.InDelta(t, 1.0, float64(forward.X), 1e-5)
	assert.InDelta(t, 0.0, float64(forward.Z), 1e-5)
}

func TestTranslate(t *testing.T) {
	c := NewCamera(WithPosition(math32.Vec3(0, 0, -3)))

	c.Translate(math32.Vec3(1, 2, 3))
	pos := c.Position()
	assert.Equal(t, float32(1), pos.X)
	assert.Equal(t, float32(2), pos.Y)
	assert.Equal(t, float32(0), pos.Z)
}
