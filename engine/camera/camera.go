// Package camera provides a yaw/pitch fly camera whose rotation matrix and
// focal length feed the raymarch globals each frame.
package camera

import (
	"cogentcore.org/core/math32"
)

// pitchLimit keeps the camera from flipping over the vertical axis.
const pitchLimit = 89.0

// minFocalLength is the shortest focal length the camera will zoom to.
const minFocalLength = 0.1

type cameraImpl struct {
	position math32.Vector3

	// yaw and pitch are stored in degrees.
	yaw   float32
	pitch float32

	focalLength float32
}

// Camera defines the interface for the fly camera.
// The camera holds position, yaw/pitch orientation, and focal length, and
// derives the rotation matrix and movement basis vectors from them.
type Camera interface {
	// Position returns the world-space camera position.
	Position() math32.Vector3

	// SetPosition sets the world-space camera position.
	SetPosition(pos math32.Vector3)

	// Yaw returns the yaw angle in degrees.
	Yaw() float32

	// Pitch returns the pitch angle in degrees.
	Pitch() float32

	// FocalLength returns the camera focal length.
	FocalLength() float32

	// SetFocalLength sets the camera focal length, clamped to the minimum.
	SetFocalLength(focalLength float32)

	// Rotate applies yaw and pitch deltas in degrees. Pitch is clamped so
	// the camera cannot flip over the vertical axis.
	//
	// Parameters:
	//   - dYaw: yaw delta in degrees, positive turns right
	//   - dPitch: pitch delta in degrees, positive looks down
	Rotate(dYaw, dPitch float32)

	// Zoom adjusts the focal length by the given delta, clamped to the
	// minimum focal length.
	//
	// Parameters:
	//   - delta: focal length change
	Zoom(delta float32)

	// Translate moves the camera position by the given world-space delta.
	//
	// Parameters:
	//   - delta: world-space movement
	Translate(delta math32.Vector3)

	// Rotation returns the camera-local-to-world rotation matrix derived
	// from the current yaw and pitch.
	Rotation() math32.Matrix3

	// Basis returns the camera's right, up and forward vectors in world
	// space, the columns of the rotation matrix.
	Basis() (right, up, forward math32.Vector3)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a fly camera at the origin looking down positive z with
// focal length 1, then applies the provided builder options.
//
// Parameters:
//   - opts: optional builder options
//
// Returns:
//   - Camera: the initialized camera
func NewCamera(opts ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		focalLength: 1.0,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *cameraImpl) Position() math32.Vector3 {
	return c.position
}

func (c *cameraImpl) SetPosition(pos math32.Vector3) {
	c.position = pos
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) FocalLength() float32 {
	return c.focalLength
}

func (c *cameraImpl) SetFocalLength(focalLength float32) {
	c.focalLength = max(focalLength, minFocalLength)
}

func (c *cameraImpl) Rotate(dYaw, dPitch float32) {
	c.yaw += dYaw
	c.pitch += dPitch
	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}
}

func (c *cameraImpl) Zoom(delta float32) {
	c.SetFocalLength(c.focalLength + delta)
}

func (c *cameraImpl) Translate(delta math32.Vector3) {
	c.position.SetAdd(delta)
}

func (c *cameraImpl) Rotation() math32.Matrix3 {
	var yawMat, pitchMat, combined math32.Matrix4
	yawMat.SetRotationY(math32.DegToRad(c.yaw))
	pitchMat.SetRotationX(math32.DegToRad(c.pitch))
	combined.MulMatrices(&yawMat, &pitchMat)

	var rot math32.Matrix3
	rot.SetFromMatrix4(&combined)
	return rot
}

func (c *cameraImpl) Basis() (right, up, forward math32.Vector3) {
	rot := c.Rotation()
	right = math32.Vec3(rot[0], rot[1], rot[2]).Normal()
	up = math32.Vec3(rot[3], rot[4], rot[5]).Normal()
	forward = math32.Vec3(rot[6], rot[7], rot[8]).Normal()
	return right, up, forward
}
