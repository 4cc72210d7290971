// Package node provides the CPU-side scene graph the viewer hands between
// the mesh loader, the preparation pass, and the renderer. Nodes are plain
// structs: they carry transform and mesh data, not behavior tied to a GPU
// backend.
package node

import (
	"github.com/Carmen-Shannon/showroom-go/common"
	"github.com/Carmen-Shannon/showroom-go/viewer/material"
)

// Node is a single element of the transform hierarchy. A node may carry any
// number of meshes and any number of children; transforms compose parent to
// child.
type Node struct {
	// Name is the node's identifier (for debugging and lookups).
	Name string

	// Position is the translation relative to the parent node.
	Position [3]float32

	// Rotation is the Euler rotation in radians (Y * X * Z order).
	Rotation [3]float32

	// Scale is the scale factor along each axis.
	Scale [3]float32

	// Meshes are the renderable meshes attached to this node.
	Meshes []*Mesh

	// Children are the child nodes; their transforms are relative to this node.
	Children []*Node
}

// Mesh is a renderable triangle mesh with CPU-side vertex data.
type Mesh struct {
	// Name is the mesh identifier.
	Name string

	// Positions are the vertex positions.
	Positions [][3]float32

	// Normals are the per-vertex normals (may be empty).
	Normals [][3]float32

	// UVs are the per-vertex texture coordinates (may be empty).
	UVs [][2]float32

	// Indices are the triangle indices.
	Indices []uint32

	// BoundingMin is the minimum corner of the mesh's local bounding box.
	BoundingMin [3]float32

	// BoundingMax is the maximum corner of the mesh's local bounding box.
	BoundingMax [3]float32

	// CastShadow marks the mesh as a shadow caster.
	CastShadow bool

	// ReceiveShadow marks the mesh as a shadow receiver.
	ReceiveShadow bool

	// Material is the surface description used to shade this mesh.
	Material material.Material
}

// New creates a node with identity transform.
//
// Parameters:
//   - name: the node's identifier
//
// Returns:
//   - *Node: the newly created node
func New(name string) *Node {
	return &Node{
		Name:  name,
		Scale: [3]float32{1, 1, 1},
	}
}

// AddChild appends a child node.
//
// Parameters:
//   - child: the node to attach
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Traverse visits this node and every descendant in depth-first order.
//
// Parameters:
//   - visit: function called for each node
func (n *Node) Traverse(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Traverse(visit)
	}
}

// TraverseMeshes visits every mesh in the subtree in depth-first order.
//
// Parameters:
//   - visit: function called for each mesh
func (n *Node) TraverseMeshes(visit func(*Mesh)) {
	n.Traverse(func(nd *Node) {
		for _, m := range nd.Meshes {
			visit(m)
		}
	})
}

// LocalMatrix writes the node's local transform matrix (column-major) to out.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (n *Node) LocalMatrix(out []float32) {
	common.BuildModelMatrix(out,
		n.Position[0], n.Position[1], n.Position[2],
		n.Rotation[0], n.Rotation[1], n.Rotation[2],
		n.Scale[0], n.Scale[1], n.Scale[2],
	)
}

// Bounds computes the axis-aligned bounding box of the whole subtree with
// this node's own transform applied, i.e. the box in the parent's space.
//
// Returns:
//   - common.Bounds: the subtree bounding box (empty if no meshes exist)
func (n *Node) Bounds() common.Bounds {
	var identity [16]float32
	common.Identity(identity[:])
	return n.boundsWithParent(identity[:])
}

// boundsWithParent accumulates subtree bounds under the given parent matrix.
func (n *Node) boundsWithParent(parent []float32) common.Bounds {
	var local, world [16]float32
	n.LocalMatrix(local[:])
	common.Mul4(world[:], parent, local[:])

	b := common.EmptyBounds()
	for _, m := range n.Meshes {
		mb := common.Bounds{Min: m.BoundingMin, Max: m.BoundingMax}
		if mb.IsEmpty() {
			continue
		}
		for _, corner := range mb.Corners() {
			b = b.ExtendPoint(common.TransformPoint(world[:], corner))
		}
	}
	for _, child := range n.Children {
		b = b.Union(child.boundsWithParent(world[:]))
	}
	return b
}

// WorldPosition returns the node's translation, which for the model roots the
// viewer manages is also the world-space position the lighting rig aims at.
//
// Returns:
//   - [3]float32: the node position
func (n *Node) WorldPosition() [3]float32 {
	return n.Position
}
