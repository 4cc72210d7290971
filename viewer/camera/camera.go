package camera

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/showroom-go/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	target   [3]float32
	distance float32
	yaw      float32
	pitch    float32
	up       [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera defines the interface for the showcase camera.
// The camera orbits a target point on a spherical mount and computes
// view/projection matrices whenever its parameters change.
type Camera interface {
	// Position returns the camera's world-space position, derived from the
	// orbit parameters.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Target returns the point the camera orbits and looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)

	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Orbit rotates the camera around the target by the given yaw and pitch
	// deltas in radians. Pitch is clamped away from the poles.
	//
	// Parameters:
	//   - deltaYaw: rotation around the vertical axis
	//   - deltaPitch: rotation toward or away from the poles
	Orbit(deltaYaw, deltaPitch float32)

	// Zoom moves the camera toward or away from the target. The distance
	// never drops below the near plane.
	//
	// Parameters:
	//   - delta: distance change, negative moves closer
	Zoom(delta float32)

	// SetTarget moves the orbit center and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: target components
	SetTarget(x, y, z float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new orbit camera with default perspective settings,
// looking at the origin from the default orbit distance.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		distance: 5,
		up:       [3]float32{0, 1, 0},
		fov:      45.0 * (math32.Pi / 180.0),
		aspect:   1.0,
		near:     0.1,
		far:      100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.mu.Lock()
	c.updateMatrices()
	c.mu.Unlock()
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.position()
	return p[0], p[1], p[2]
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Orbit(deltaYaw, deltaPitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw += deltaYaw
	c.pitch += deltaPitch

	// Keep a sliver away from the poles so the up vector never degenerates.
	limit := math32.Pi/2 - 0.01
	if c.pitch > limit {
		c.pitch = limit
	}
	if c.pitch < -limit {
		c.pitch = -limit
	}
	c.updateMatrices()
}

func (c *cameraImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance += delta
	if c.distance < c.near {
		c.distance = c.near
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect > 0 {
		c.aspect = aspect
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

// position derives the camera's world position from the orbit parameters.
// Caller must hold the mutex.
func (c *cameraImpl) position() [3]float32 {
	cosPitch := math32.Cos(c.pitch)
	return [3]float32{
		c.target[0] + c.distance*cosPitch*math32.Sin(c.yaw),
		c.target[1] + c.distance*math32.Sin(c.pitch),
		c.target[2] + c.distance*cosPitch*math32.Cos(c.yaw),
	}
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices from the current orbit parameters. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	p := c.position()

	common.LookAt(c.viewMatrix[:],
		p[0], p[1], p[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
