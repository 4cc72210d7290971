package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	var m [16]float32
	Identity(m[:])

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, m[i*4+j])
		}
	}
}

func TestMul4Identity(t *testing.T) {
	var id, out [16]float32
	Identity(id[:])

	a := [16]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	Mul4(out[:], id[:], a[:])
	assert.Equal(t, a, out)

	Mul4(out[:], a[:], id[:])
	assert.Equal(t, a, out)
}

func TestMul4AllowsAliasedOutput(t *testing.T) {
	var trans, scale [16]float32
	Identity(trans[:])
	trans[12] = 3
	Identity(scale[:])
	scale[0], scale[5], scale[10] = 2, 2, 2

	Mul4(trans[:], trans[:], scale[:])

	p := TransformPoint(trans[:], [3]float32{1, 0, 0})
	assert.InDelta(t, 5, p[0], 1e-5)
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 1, 2, 3, 0, 0, 0, 0, 1, 0)

	p := TransformPoint(view[:], [3]float32{1, 2, 3})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, 0, p[2], 1e-5)
}

func TestLookAtTargetOnNegativeZ(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)

	p := TransformPoint(view[:], [3]float32{0, 0, 0})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, -5, p[2], 1e-5)
}

func TestPerspectiveDepthRange(t *testing.T) {
	var proj [16]float32
	Perspective(proj[:], math32.Pi/4, 16.0/9.0, 0.1, 100)

	// A point on the near plane maps to z/w = 0, the far plane to z/w = 1.
	near := TransformVec4(proj[:], [4]float32{0, 0, -0.1, 1})
	assert.InDelta(t, 0, near[2]/near[3], 1e-5)

	far := TransformVec4(proj[:], [4]float32{0, 0, -100, 1})
	assert.InDelta(t, 1, far[2]/far[3], 1e-4)
}

func TestOrthoMapsBoxToClipSpace(t *testing.T) {
	var proj [16]float32
	Ortho(proj[:], -10, 10, -10, 10, 0.1, 100)

	edge := TransformPoint(proj[:], [3]float32{10, -10, -0.1})
	assert.InDelta(t, 1, edge[0], 1e-5)
	assert.InDelta(t, -1, edge[1], 1e-5)
	assert.InDelta(t, 0, edge[2], 1e-5)

	back := TransformPoint(proj[:], [3]float32{0, 0, -100})
	assert.InDelta(t, 1, back[2], 1e-4)
}

func TestBuildModelMatrixTranslationAndScale(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 1, 2, 3, 0, 0, 0, 2, 2, 2)

	p := TransformPoint(m[:], [3]float32{1, 1, 1})
	assert.InDelta(t, 3, p[0], 1e-5)
	assert.InDelta(t, 4, p[1], 1e-5)
	assert.InDelta(t, 5, p[2], 1e-5)
}

func TestBuildModelMatrixYawRotatesAroundY(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 0, 0, 0, 0, math32.Pi/2, 0, 1, 1, 1)

	// Yaw of 90 degrees takes +X to -Z.
	p := TransformPoint(m[:], [3]float32{1, 0, 0})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, -1, p[2], 1e-5)
}

func TestNormalize3(t *testing.T) {
	v := Normalize3([3]float32{3, 0, 4})
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[2], 1e-6)

	assert.Equal(t, [3]float32{}, Normalize3([3]float32{}))
}
