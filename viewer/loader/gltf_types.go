// gltf_types.go contains the subset of the glTF 2.0 spec data structures the
// showcase loader deserializes. These types map directly to the glTF 2.0 JSON
// schema and are internal to the loader package.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package loader

import "encoding/json"

// --- glTF Root Structure ---

// gltfDocument represents the root of a glTF JSON document.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-gltf
type gltfDocument struct {
	// Asset contains metadata about the glTF asset.
	Asset gltfAsset `json:"asset"`

	// Scene is the index of the default scene.
	Scene *int `json:"scene,omitempty"`

	// Scenes is an array of scenes.
	Scenes []gltfScene `json:"scenes,omitempty"`

	// Nodes is an array of nodes (transform hierarchy).
	Nodes []gltfNode `json:"nodes,omitempty"`

	// Meshes is an array of meshes.
	Meshes []gltfMesh `json:"meshes,omitempty"`

	// Accessors define how to interpret buffer data.
	Accessors []gltfAccessor `json:"accessors,omitempty"`

	// BufferViews define portions of buffers.
	BufferViews []gltfBufferView `json:"bufferViews,omitempty"`

	// Buffers are raw binary data containers.
	Buffers []gltfBuffer `json:"buffers,omitempty"`

	// Materials is an array of materials.
	Materials []gltfMaterial `json:"materials,omitempty"`
}

// gltfAsset contains metadata about the glTF asset.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-asset
type gltfAsset struct {
	// Version is the glTF version (required, must be "2.0").
	Version string `json:"version"`

	// Generator is the tool that generated this asset.
	Generator string `json:"generator,omitempty"`
}

// --- Scene Graph ---

// gltfScene is a set of visual objects to render.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-scene
type gltfScene struct {
	// Name is an optional name for this scene.
	Name string `json:"name,omitempty"`

	// Nodes are the indices of root nodes in this scene.
	Nodes []int `json:"nodes,omitempty"`
}

// gltfNode is a node in the node hierarchy.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-node
type gltfNode struct {
	// Name is an optional name for this node.
	Name string `json:"name,omitempty"`

	// Children are indices of child nodes.
	Children []int `json:"children,omitempty"`

	// Mesh is the index of the mesh in this node.
	Mesh *int `json:"mesh,omitempty"`

	// Matrix is a column-major transform matrix (alternative to TRS).
	Matrix []float32 `json:"matrix,omitempty"`

	// Translation is the node translation (x, y, z).
	Translation []float32 `json:"translation,omitempty"`

	// Rotation is the node rotation as a quaternion (x, y, z, w).
	Rotation []float32 `json:"rotation,omitempty"`

	// Scale is the node scale (x, y, z).
	Scale []float32 `json:"scale,omitempty"`
}

// --- Mesh Data ---

// gltfMesh is a set of primitives to be rendered.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-mesh
type gltfMesh struct {
	// Name is an optional name for this mesh.
	Name string `json:"name,omitempty"`

	// Primitives are the renderable primitives of this mesh.
	Primitives []gltfPrimitive `json:"primitives"`
}

// gltfPrimitive is geometry to be rendered with a material.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-mesh-primitive
type gltfPrimitive struct {
	// Attributes maps attribute semantics (POSITION, NORMAL, TEXCOORD_0) to accessor indices.
	Attributes map[string]int `json:"attributes"`

	// Indices is the accessor index for triangle indices.
	Indices *int `json:"indices,omitempty"`

	// Material is the material index for this primitive.
	Material *int `json:"material,omitempty"`

	// Mode is the primitive topology (4 = TRIANGLES, the default).
	Mode *int `json:"mode,omitempty"`
}

// --- Buffer Data ---

// gltfAccessor defines how to interpret bufferView data.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-accessor
type gltfAccessor struct {
	// BufferView is the index of the bufferView containing the data.
	BufferView *int `json:"bufferView,omitempty"`

	// ByteOffset is the offset into the bufferView in bytes.
	ByteOffset int `json:"byteOffset,omitempty"`

	// ComponentType is the data type of components (5120-5126).
	ComponentType int `json:"componentType"`

	// Count is the number of elements.
	Count int `json:"count"`

	// Type is the element type (SCALAR, VEC2, VEC3, VEC4, MAT4).
	Type string `json:"type"`

	// Min is the per-component minimum of the accessor's values.
	Min []float32 `json:"min,omitempty"`

	// Max is the per-component maximum of the accessor's values.
	Max []float32 `json:"max,omitempty"`
}

// gltfBufferView defines a portion of a buffer.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-bufferview
type gltfBufferView struct {
	// Buffer is the index of the buffer.
	Buffer int `json:"buffer"`

	// ByteOffset is the offset into the buffer in bytes.
	ByteOffset int `json:"byteOffset,omitempty"`

	// ByteLength is the length of the view in bytes.
	ByteLength int `json:"byteLength"`

	// ByteStride is the stride between elements (interleaved data).
	ByteStride *int `json:"byteStride,omitempty"`
}

// gltfBuffer is a raw binary data container.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-buffer
type gltfBuffer struct {
	// URI is the buffer data location (file path or data URI; empty for the GLB binary chunk).
	URI string `json:"uri,omitempty"`

	// ByteLength is the buffer length in bytes.
	ByteLength int `json:"byteLength"`

	// Data is the loaded buffer contents (populated by the parser, not part of the JSON).
	Data []byte `json:"-"`
}

// --- Materials ---

// gltfMaterial describes the surface of a primitive.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-material
type gltfMaterial struct {
	// Name is an optional name for this material.
	Name string `json:"name,omitempty"`

	// PBRMetallicRoughness holds the metallic-roughness surface parameters.
	PBRMetallicRoughness *gltfPBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`

	// Extensions holds raw extension payloads; KHR_materials_unlit marks a material unlit.
	Extensions map[string]json.RawMessage `json:"extensions,omitempty"`
}

// gltfPBRMetallicRoughness holds metallic-roughness material parameters.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-material-pbrmetallicroughness
type gltfPBRMetallicRoughness struct {
	// BaseColorFactor is the base color (r, g, b, a); defaults to white.
	BaseColorFactor []float32 `json:"baseColorFactor,omitempty"`

	// MetallicFactor is the metalness; defaults to 1.0.
	MetallicFactor *float32 `json:"metallicFactor,omitempty"`

	// RoughnessFactor is the roughness; defaults to 1.0.
	RoughnessFactor *float32 `json:"roughnessFactor,omitempty"`
}

// --- GLB Binary Container ---

// gltfGLBHeader is the 12-byte GLB file header.
type gltfGLBHeader struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

// gltfGLBChunkHeader is the 8-byte header preceding each GLB chunk.
type gltfGLBChunkHeader struct {
	ChunkLength uint32
	ChunkType   uint32
}

const (
	// gltfGLBMagic is the GLB magic number ("glTF" little-endian).
	gltfGLBMagic = 0x46546C67

	// gltfGLBVersion is the supported GLB container version.
	gltfGLBVersion = 2

	// gltfGLBChunkJSON identifies a JSON chunk ("JSON").
	gltfGLBChunkJSON = 0x4E4F534A

	// gltfGLBChunkBIN identifies a binary chunk ("BIN\0").
	gltfGLBChunkBIN = 0x004E4942
)

// glTF component type constants.
const (
	gltfComponentTypeByte          = 5120
	gltfComponentTypeUnsignedByte  = 5121
	gltfComponentTypeShort         = 5122
	gltfComponentTypeUnsignedShort = 5123
	gltfComponentTypeUnsignedInt   = 5125
	gltfComponentTypeFloat         = 5126
)

// gltfUnlitExtension is the extension name marking a material as unlit.
const gltfUnlitExtension = "KHR_materials_unlit"
