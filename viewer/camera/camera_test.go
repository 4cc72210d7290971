package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCameraLooksAtOrigin(t *testing.T) {
	c := NewCamera()

	tx, ty, tz := c.Target()
	assert.Equal(t, float32(0), tx)
	assert.Equal(t, float32(0), ty)
	assert.Equal(t, float32(0), tz)

	// Yaw 0, pitch 0 puts the camera on the +Z axis at the orbit distance.
	x, y, z := c.Position()
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
	assert.InDelta(t, 5, z, 1e-5)
}

func TestOrbitKeepsDistance(t *testing.T) {
	c := NewCamera(WithDistance(4))

	c.Orbit(1.3, 0.7)

	x, y, z := c.Position()
	dist := math32.Sqrt(x*x + y*y + z*z)
	assert.InDelta(t, 4, dist, 1e-4)
}

func TestOrbitClampsPitchAtPoles(t *testing.T) {
	c := NewCamera(WithDistance(4))

	c.Orbit(0, 10)

	_, y, _ := c.Position()
	assert.Less(t, y, float32(4))

	// The view matrix must stay finite at the clamp.
	for _, v := range c.ViewMatrix() {
		assert.False(t, v != v)
	}
}

func TestZoomFloorsAtNearPlane(t *testing.T) {
	c := NewCamera(WithDistance(2), WithNearFar(0.1, 100))

	c.Zoom(-10)

	x, y, z := c.Position()
	dist := math32.Sqrt(x*x + y*y + z*z)
	assert.InDelta(t, 0.1, dist, 1e-5)
}

func TestSetTargetRecentersOrbit(t *testing.T) {
	c := NewCamera(WithDistance(3))

	c.SetTarget(10, 0, 0)

	x, _, z := c.Position()
	assert.InDelta(t, 10, x, 1e-5)
	assert.InDelta(t, 3, z, 1e-5)
}

func TestSetAspectChangesProjection(t *testing.T) {
	c := NewCamera()
	before := c.ProjectionMatrix()

	c.SetAspect(21.0 / 9.0)
	after := c.ProjectionMatrix()

	assert.NotEqual(t, before, after)
	assert.InDelta(t, 21.0/9.0, c.Aspect(), 1e-6)
}
