package preparer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/showroom-go/viewer/material"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
)

// boxModel builds a one-mesh model whose local bounding box spans the given
// corners, offset from the origin by the given position.
func boxModel(min, max, position [3]float32, mat material.Material) *node.Node {
	n := node.New("box")
	n.Position = position
	n.Meshes = append(n.Meshes, &node.Mesh{
		Name:        "box",
		BoundingMin: min,
		BoundingMax: max,
		Material:    mat,
	})
	return n
}

func TestPrepareAppliesPrimaryScale(t *testing.T) {
	p := NewPreparer(WithPrimaryScale(1.2), WithSecondaryScale(0.8))

	n := boxModel([3]float32{-1, -1, -1}, [3]float32{1, 1, 1}, [3]float32{}, nil)
	p.Prepare(n, true)
	assert.Equal(t, [3]float32{1.2, 1.2, 1.2}, n.Scale)

	n = boxModel([3]float32{-1, -1, -1}, [3]float32{1, 1, 1}, [3]float32{}, nil)
	p.Prepare(n, false)
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, n.Scale)
}

func TestPrepareCentersModelAtOrigin(t *testing.T) {
	p := NewPreparer()

	// A box spanning [0,2] in every axis has its center at (1,1,1); after
	// preparation the scaled center must land on the origin.
	n := boxModel([3]float32{0, 0, 0}, [3]float32{2, 2, 2}, [3]float32{}, nil)
	p.Prepare(n, false)

	bounds := n.Bounds()
	center := bounds.Center()
	assert.InDelta(t, 0, center[0], 1e-5)
	assert.InDelta(t, 0, center[1], 1e-5)
	assert.InDelta(t, 0, center[2], 1e-5)
}

func TestPrepareCentersRegardlessOfInputPosition(t *testing.T) {
	p := NewPreparer()

	// The same geometry arriving with a wild root offset ends up in the same
	// place as one arriving at the origin.
	n := boxModel([3]float32{-1, -1, -1}, [3]float32{1, 1, 1}, [3]float32{40, -7, 13}, nil)
	p.Prepare(n, true)

	center := n.Bounds().Center()
	assert.InDelta(t, 0, center[0], 1e-4)
	assert.InDelta(t, 0, center[1], 1e-4)
	assert.InDelta(t, 0, center[2], 1e-4)
}

func TestPrepareEnablesShadows(t *testing.T) {
	p := NewPreparer()
	n := boxModel([3]float32{-1, -1, -1}, [3]float32{1, 1, 1}, [3]float32{}, nil)

	p.Prepare(n, true)

	require.Len(t, n.Meshes, 1)
	assert.True(t, n.Meshes[0].CastShadow)
	assert.True(t, n.Meshes[0].ReceiveShadow)
}

func TestPrepareDefaultsClampMaterialResponse(t *testing.T) {
	// A default-constructed preparer already clamps PBR response; the
	// builder options only change the values, they do not arm the clamp.
	p := NewPreparer()

	pbr := material.NewPBR(material.WithRoughness(1), material.WithMetalness(1))
	n := boxModel([3]float32{-1, -1, -1}, [3]float32{1, 1, 1}, [3]float32{}, pbr)

	p.Prepare(n, true)

	assert.InDelta(t, 0.6, float64(pbr.Roughness()), 1e-6)
	assert.InDelta(t, 0.1, float64(pbr.Metalness()), 1e-6)
}

func TestPrepareOverridesPBRMaterials(t *testing.T) {
	p := NewPreparer(WithRoughnessOverride(0.6), WithMetalnessOverride(0.1))

	pbr := material.NewPBR(material.WithRoughness(0.05), material.WithMetalness(1))
	n := boxModel([3]float32{-1, -1, -1}, [3]float32{1, 1, 1}, [3]float32{}, pbr)

	p.Prepare(n, true)

	assert.InDelta(t, 0.6, float64(pbr.Roughness()), 1e-6)
	assert.InDelta(t, 0.1, float64(pbr.Metalness()), 1e-6)
}

func TestPrepareLeavesUnlitMaterialsAlone(t *testing.T) {
	p := NewPreparer(WithRoughnessOverride(0.6))

	unlit := material.NewUnlit(material.WithBaseColor([4]float32{1, 0, 0, 1}))
	n := boxModel([3]float32{-1, -1, -1}, [3]float32{1, 1, 1}, [3]float32{}, unlit)

	p.Prepare(n, true)

	assert.Equal(t, [4]float32{1, 0, 0, 1}, unlit.BaseColor())
}

func TestPrepareNilNodeIsNoOp(t *testing.T) {
	NewPreparer().Prepare(nil, true)
}
