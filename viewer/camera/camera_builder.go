package camera

type CameraBuilderOption func(*cameraImpl)

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = [3]float32{x, y, z}
	}
}

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithNearFar sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clipping planes
func WithNearFar(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if near > 0 && far > near {
			c.near = near
			c.far = far
		}
	}
}

// WithDistance sets the initial orbit distance from the target.
//
// Parameters:
//   - distance: the orbit distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the orbit distance
func WithDistance(distance float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if distance > 0 {
			c.distance = distance
		}
	}
}

// WithOrbit sets the initial yaw and pitch of the orbit in radians.
//
// Parameters:
//   - yaw: rotation around the vertical axis
//   - pitch: elevation above the horizontal plane
//
// Returns:
//   - CameraBuilderOption: a function that sets the orbit angles
func WithOrbit(yaw, pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
		c.pitch = pitch
	}
}

// WithTarget sets the point the camera orbits and looks at.
//
// Parameters:
//   - x, y, z: target components
//
// Returns:
//   - CameraBuilderOption: a function that sets the orbit target
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = [3]float32{x, y, z}
	}
}
