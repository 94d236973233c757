package camera

import "cogentcore.org/core/math32"

// CameraBuilderOption is a functional option applied to a camera during construction via NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - pos: the starting position
//
// Returns:
//   - CameraBuilderOption: a function that applies the position option to a camera
func WithPosition(pos math32.Vector3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = pos
	}
}

// WithOrientation sets the camera's initial yaw and pitch in degrees.
//
// Parameters:
//   - yaw: initial yaw in degrees
//   - pitch: initial pitch in degrees, clamped to the pitch limit
//
// Returns:
//   - CameraBuilderOption: a function that applies the orientation option to a camera
func WithOrientation(yaw, pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
		c.pitch = min(max(pitch, -pitchLimit), pitchLimit)
	}
}

// WithFocalLength sets the camera's initial focal length.
//
// Parameters:
//   - focalLength: initial focal length, clamped to the minimum
//
// Returns:
//   - CameraBuilderOption: a function that applies the focal length option to a camera
func WithFocalLength(focalLength float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.focalLength = max(focalLength, minFocalLength)
	}
}
