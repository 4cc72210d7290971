package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/showroom-go/viewer/node"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(TypeDirectional)

	assert.Equal(t, TypeDirectional, l.Type())
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1), l.Intensity())
	assert.True(t, l.Enabled())
}

func TestWithDirectionNormalizes(t *testing.T) {
	l := NewLight(TypeDirectional, WithDirection(0, -2, 0))
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())
}

func TestRetargetUpdatesMatrixSynchronously(t *testing.T) {
	key := NewLight(TypeDirectional, WithDirection(0, 0, -1), WithCastsShadows(true))
	rig := NewRig(key, WithHalfExtent(10), WithNearFar(0.1, 100))

	before := rig.ViewProjection()

	n := node.New("model")
	n.Position = [3]float32{5, 0, 0}
	rig.Retarget(n)

	// The matrix is already updated when Retarget returns; nothing waits for
	// a frame tick.
	after := rig.ViewProjection()
	assert.NotEqual(t, before, after)

	target, ok := rig.Target()
	require.True(t, ok)
	assert.Equal(t, [3]float32{5, 0, 0}, target)
}

func TestRetargetSameTargetIsStable(t *testing.T) {
	key := NewLight(TypeDirectional, WithDirection(-0.3, -1, -0.2))
	rig := NewRig(key)

	n := node.New("model")
	rig.Retarget(n)
	first := rig.ViewProjection()
	rig.Retarget(n)
	second := rig.ViewProjection()

	assert.Equal(t, first, second)
}

func TestRetargetNilClearsTarget(t *testing.T) {
	key := NewLight(TypeDirectional)
	rig := NewRig(key)

	rig.Retarget(node.New("model"))
	rig.Retarget(nil)

	_, ok := rig.Target()
	assert.False(t, ok)
}

func TestRetargetStraightDownLight(t *testing.T) {
	// A light directly above its target points straight down after the
	// retarget, which would degenerate with the default up vector; the rig
	// must still produce a usable matrix.
	key := NewLight(TypeDirectional, WithPosition(1, 102, 3), WithDirection(0, 0, -1))
	rig := NewRig(key)

	n := node.New("model")
	n.Position = [3]float32{1, 2, 3}
	rig.Retarget(n)

	assert.Equal(t, [3]float32{0, -1, 0}, key.Direction())

	vp := rig.ViewProjection()
	finite := true
	for _, v := range vp {
		if v != v || v > 1e30 || v < -1e30 {
			finite = false
		}
	}
	assert.True(t, finite)
}
