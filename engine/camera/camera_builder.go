package camera

import "github.com/Carmen-Shannon/oxy-rad/common"

// CameraBuilderOption is a functional option applied to a camera during NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's eye position.
//
// Parameters:
//   - position: world-space eye position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(position common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithTarget sets the camera's look-at point.
//
// Parameters:
//   - target: world-space target
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's target
func WithTarget(target common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = target
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(up common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = up
	}
}

// WithPerspective sets a right-handed perspective projection.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: width divided by height
//   - near, far: clip plane distances
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithPerspective(fovY, aspect, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near, c.far = near, far
		common.PerspectiveRHGL(c.projectionMatrix[:], fovY, aspect, near, far)
	}
}

// WithOrtho sets a right-handed orthographic projection.
//
// Parameters:
//   - left, right, bottom, top: view volume bounds
//   - near, far: depth bounds
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithOrtho(left, right, bottom, top, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near, c.far = near, far
		common.OrthographicRHGL(c.projectionMatrix[:], left, right, bottom, top, near, far)
	}
}

// WithController attaches a Controller that drives the camera's position and target.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: a function that attaches the controller
func WithController(ctrl Controller) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
