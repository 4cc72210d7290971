package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/showroom-go/common"
	"github.com/Carmen-Shannon/showroom-go/viewer/material"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
)

// meshBackend defines the interface for format-specific mesh importers.
// Each backend turns a model file into a CPU-side node hierarchy.
type meshBackend interface {
	// Load imports a model file into a node hierarchy.
	//
	// Parameters:
	//   - path: path to the model file
	//
	// Returns:
	//   - *node.Node: the root of the imported hierarchy
	//   - error: error if importing fails
	Load(path string) (*node.Node, error)

	// LoadReader imports a model from a reader stream.
	//
	// Parameters:
	//   - name: the name assigned to the imported root node
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - *node.Node: the root of the imported hierarchy
	//   - error: error if importing fails
	LoadReader(name string, r io.Reader, isGLB bool) (*node.Node, error)
}

// gltfBackend is the glTF/GLB implementation of meshBackend.
type gltfBackend struct{}

var _ meshBackend = &gltfBackend{}

// newGLTFBackend creates a new glTF loader backend.
func newGLTFBackend() meshBackend {
	return &gltfBackend{}
}

func (b *gltfBackend) Load(path string) (*node.Node, error) {
	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return buildNodeTree(parser, name)
}

func (b *gltfBackend) LoadReader(name string, r io.Reader, isGLB bool) (*node.Node, error) {
	parser := newGLTFParser()
	if err := parser.ParseReader(r, isGLB); err != nil {
		return nil, err
	}
	return buildNodeTree(parser, name)
}

// buildNodeTree converts a parsed glTF document into the viewer's node
// hierarchy. Materials are converted once and shared between the primitives
// that reference them; the default scene's roots become children of a single
// synthetic root named after the asset.
func buildNodeTree(parser gltfParser, name string) (*node.Node, error) {
	doc := parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("glTF backend: no document after parse")
	}

	materials := make([]material.Material, len(doc.Materials))
	for i := range doc.Materials {
		materials[i] = convertMaterial(&doc.Materials[i], i)
	}

	root := node.New(name)

	rootIndices := defaultSceneRoots(doc)
	for _, idx := range rootIndices {
		child, err := convertNode(parser, doc, idx, materials)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}

	return root, nil
}

// defaultSceneRoots returns the node indices of the default scene, falling
// back to every document node when no scene is declared.
func defaultSceneRoots(doc *gltfDocument) []int {
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if sceneIdx >= 0 && sceneIdx < len(doc.Scenes) {
		return doc.Scenes[sceneIdx].Nodes
	}

	roots := make([]int, len(doc.Nodes))
	for i := range doc.Nodes {
		roots[i] = i
	}
	return roots
}

// convertNode recursively converts a glTF node (and its subtree) into the
// viewer's node type.
func convertNode(parser gltfParser, doc *gltfDocument, index int, materials []material.Material) (*node.Node, error) {
	if index < 0 || index >= len(doc.Nodes) {
		return nil, fmt.Errorf("node index %d out of range", index)
	}
	src := &doc.Nodes[index]

	n := node.New(src.Name)
	if n.Name == "" {
		n.Name = fmt.Sprintf("node_%d", index)
	}
	applyNodeTransform(n, src)

	if src.Mesh != nil {
		meshes, err := convertMesh(parser, doc, *src.Mesh, materials)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", n.Name, err)
		}
		n.Meshes = meshes
	}

	for _, childIdx := range src.Children {
		child, err := convertNode(parser, doc, childIdx, materials)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}

	return n, nil
}

// applyNodeTransform fills a node's TRS from the glTF node. A matrix
// transform is decomposed into translation and per-axis scale; glTF
// quaternion rotations are converted to the Euler convention the node
// matrix builder uses (Y * X * Z).
func applyNodeTransform(n *node.Node, src *gltfNode) {
	if len(src.Matrix) == 16 {
		n.Position = [3]float32{src.Matrix[12], src.Matrix[13], src.Matrix[14]}
		n.Scale = [3]float32{
			columnLength(src.Matrix, 0),
			columnLength(src.Matrix, 1),
			columnLength(src.Matrix, 2),
		}
		n.Rotation = rotationFromMatrix(src.Matrix, n.Scale)
		return
	}

	if len(src.Translation) == 3 {
		n.Position = [3]float32{src.Translation[0], src.Translation[1], src.Translation[2]}
	}
	if len(src.Scale) == 3 {
		n.Scale = [3]float32{src.Scale[0], src.Scale[1], src.Scale[2]}
	}
	if len(src.Rotation) == 4 {
		n.Rotation = quaternionToEulerYXZ(src.Rotation[0], src.Rotation[1], src.Rotation[2], src.Rotation[3])
	}
}

// columnLength returns the length of column col of a column-major 4x4 matrix.
func columnLength(m []float32, col int) float32 {
	x, y, z := m[col*4], m[col*4+1], m[col*4+2]
	return math32.Sqrt(x*x + y*y + z*z)
}

// rotationFromMatrix extracts Y*X*Z Euler angles from a column-major matrix
// whose columns carry the given scale factors.
func rotationFromMatrix(m []float32, scale [3]float32) [3]float32 {
	sx, sy, sz := scale[0], scale[1], scale[2]
	if sx == 0 || sy == 0 || sz == 0 {
		return [3]float32{}
	}
	// r[row][col] with scale divided out
	r02 := m[8] / sz
	r10 := m[1] / sx
	r11 := m[5] / sy
	r12 := m[9] / sz
	r22 := m[10] / sz
	return eulerYXZFromRotation(r02, r10, r11, r12, r22)
}

// quaternionToEulerYXZ converts a glTF quaternion (x, y, z, w) into Euler
// angles matching the Y * X * Z rotation order of common.BuildModelMatrix.
func quaternionToEulerYXZ(x, y, z, w float32) [3]float32 {
	r02 := 2 * (x*z + w*y)
	r10 := 2 * (x*y + w*z)
	r11 := 1 - 2*(x*x+z*z)
	r12 := 2 * (y*z - w*x)
	r22 := 1 - 2*(x*x+y*y)
	return eulerYXZFromRotation(r02, r10, r11, r12, r22)
}

// eulerYXZFromRotation recovers (rotX, rotY, rotZ) from the rotation matrix
// entries that the Y*X*Z composition produces: r12 = -sin(x),
// r02 = sin(y)cos(x), r22 = cos(y)cos(x), r10 = cos(x)sin(z),
// r11 = cos(x)cos(z).
func eulerYXZFromRotation(r02, r10, r11, r12, r22 float32) [3]float32 {
	clamped := math32.Max(-1, math32.Min(1, r12))
	rotX := math32.Asin(-clamped)

	var rotY, rotZ float32
	if math32.Abs(clamped) < 0.9999 {
		rotY = math32.Atan2(r02, r22)
		rotZ = math32.Atan2(r10, r11)
	} else {
		// Gimbal lock: fold the roll into the yaw.
		rotY = math32.Atan2(-r02, r22)
		rotZ = 0
	}
	return [3]float32{rotX, rotY, rotZ}
}

// convertMesh converts a glTF mesh (all primitives) into viewer meshes.
func convertMesh(parser gltfParser, doc *gltfDocument, meshIndex int, materials []material.Material) ([]*node.Mesh, error) {
	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", meshIndex)
	}
	src := &doc.Meshes[meshIndex]

	meshes := make([]*node.Mesh, 0, len(src.Primitives))
	for i := range src.Primitives {
		prim := &src.Primitives[i]

		// Only triangle primitives are renderable here; points and lines are skipped.
		if prim.Mode != nil && *prim.Mode != 4 {
			continue
		}

		m, err := convertPrimitive(parser, doc, prim, src.Name, i, materials)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// convertPrimitive converts one glTF primitive into a viewer mesh, reading
// positions, normals, UVs, and indices and computing the local bounding box.
func convertPrimitive(parser gltfParser, doc *gltfDocument, prim *gltfPrimitive, meshName string, primIndex int, materials []material.Material) (*node.Mesh, error) {
	posAccessor, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("primitive %d of mesh %q has no POSITION attribute", primIndex, meshName)
	}

	positions, err := parser.ReadVec3Accessor(posAccessor)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}

	m := &node.Mesh{
		Name:      fmt.Sprintf("%s_%d", meshName, primIndex),
		Positions: positions,
	}

	if normalAccessor, ok := prim.Attributes["NORMAL"]; ok {
		normals, err := parser.ReadVec3Accessor(normalAccessor)
		if err != nil {
			return nil, fmt.Errorf("failed to read normals: %w", err)
		}
		m.Normals = normals
	}

	if uvAccessor, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err := parser.ReadVec2Accessor(uvAccessor)
		if err != nil {
			return nil, fmt.Errorf("failed to read texture coordinates: %w", err)
		}
		m.UVs = uvs
	}

	if prim.Indices != nil {
		indices, err := parser.ReadIndicesAccessor(*prim.Indices)
		if err != nil {
			return nil, fmt.Errorf("failed to read indices: %w", err)
		}
		m.Indices = indices
	} else {
		// Non-indexed geometry: synthesize sequential indices.
		m.Indices = make([]uint32, len(positions))
		for i := range m.Indices {
			m.Indices[i] = uint32(i)
		}
	}

	m.BoundingMin, m.BoundingMax = primitiveBounds(doc, posAccessor, positions)

	if prim.Material != nil && *prim.Material >= 0 && *prim.Material < len(materials) {
		m.Material = materials[*prim.Material]
	} else {
		m.Material = material.NewPBR(material.WithName(m.Name + "_default"))
	}

	return m, nil
}

// primitiveBounds returns the local bounding box of a primitive, preferring
// the accessor's declared min/max over recomputing from positions.
func primitiveBounds(doc *gltfDocument, posAccessor int, positions [][3]float32) ([3]float32, [3]float32) {
	if posAccessor >= 0 && posAccessor < len(doc.Accessors) {
		acc := &doc.Accessors[posAccessor]
		if len(acc.Min) == 3 && len(acc.Max) == 3 {
			return [3]float32{acc.Min[0], acc.Min[1], acc.Min[2]},
				[3]float32{acc.Max[0], acc.Max[1], acc.Max[2]}
		}
	}

	b := common.EmptyBounds()
	for _, p := range positions {
		b = b.ExtendPoint(p)
	}
	if b.IsEmpty() {
		return [3]float32{}, [3]float32{}
	}
	return b.Min, b.Max
}

// convertMaterial converts a glTF material into the viewer's tagged material
// variants: KHR_materials_unlit produces an unlit material, everything else a
// metallic-roughness one with glTF's defaults filled in.
func convertMaterial(src *gltfMaterial, index int) material.Material {
	name := src.Name
	if name == "" {
		name = fmt.Sprintf("material_%d", index)
	}

	baseColor := [4]float32{1, 1, 1, 1}
	metalness := float32(1.0)
	roughness := float32(1.0)
	if pbr := src.PBRMetallicRoughness; pbr != nil {
		if len(pbr.BaseColorFactor) == 4 {
			copy(baseColor[:], pbr.BaseColorFactor)
		}
		if pbr.MetallicFactor != nil {
			metalness = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			roughness = *pbr.RoughnessFactor
		}
	}

	if _, unlit := src.Extensions[gltfUnlitExtension]; unlit {
		return material.NewUnlit(
			material.WithName(name),
			material.WithBaseColor(baseColor),
		)
	}

	return material.NewPBR(
		material.WithName(name),
		material.WithBaseColor(baseColor),
		material.WithRoughness(roughness),
		material.WithMetalness(metalness),
	)
}
