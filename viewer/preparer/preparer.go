package preparer

import (
	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/material"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
)

// preparer is the implementation of the Preparer interface.
type preparer struct {
	primaryScale   float32
	secondaryScale float32
	roughness      float32
	metalness      float32

	log *logging.Logger
}

// Preparer normalizes freshly loaded node trees for display: it applies the
// role-dependent scale, recenters the tree so its bounding box sits at the
// origin, enables shadow casting and receiving on every mesh, and clamps
// material response so all showcased models read consistently under the
// shared lighting.
type Preparer interface {
	// Prepare normalizes the given node tree in place.
	//
	// Parameters:
	//   - n: the root of the node tree to prepare
	//   - isPrimary: whether this model uses the primary display scale
	Prepare(n *node.Node, isPrimary bool)
}

var _ Preparer = &preparer{}

// NewPreparer creates a model preparer with the provided options applied.
//
// Parameters:
//   - options: functional options for preparer configuration
//
// Returns:
//   - Preparer: the newly created preparer
func NewPreparer(options ...PreparerBuilderOption) Preparer {
	p := &preparer{
		primaryScale:   1.2,
		secondaryScale: 0.8,
		roughness:      0.6,
		metalness:      0.1,
		log:            logging.Nop(),
	}

	for _, option := range options {
		option(p)
	}
	return p
}

func (p *preparer) Prepare(n *node.Node, isPrimary bool) {
	if n == nil {
		return
	}

	scale := p.secondaryScale
	if isPrimary {
		scale = p.primaryScale
	}
	n.Scale = [3]float32{scale, scale, scale}

	// Recenter after scaling: the bounds must reflect the final scale so the
	// center offset lands the scaled box on the origin.
	bounds := n.Bounds()
	if !bounds.IsEmpty() {
		center := bounds.Center()
		n.Position[0] -= center[0]
		n.Position[1] -= center[1]
		n.Position[2] -= center[2]
	}

	meshes := 0
	n.TraverseMeshes(func(m *node.Mesh) {
		meshes++
		m.CastShadow = true
		m.ReceiveShadow = true
		p.adjustMaterial(m.Material)
	})
	p.log.Debugw("model prepared",
		"node", n.Name,
		"primary", isPrimary,
		"scale", scale,
		"meshes", meshes,
	)
}

// adjustMaterial clamps the surface response of PBR materials so no model
// shows up mirror-like or dead matte next to the others. Unlit materials
// have no response to clamp and pass through untouched.
func (p *preparer) adjustMaterial(m material.Material) {
	pbr, ok := material.AsPBR(m)
	if !ok {
		return
	}
	pbr.SetRoughness(p.roughness)
	pbr.SetMetalness(p.metalness)
}
