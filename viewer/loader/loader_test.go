package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/showroom-go/viewer/material"
)

// triangleGLTF is a single-triangle asset with the vertex data embedded as a
// data URI: (0,0,0), (1,0,0), (0,1,0).
const triangleGLTF = `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [{"mesh": 0, "name": "tri", "translation": [2, 0, 0]}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{
    "bufferView": 0,
    "componentType": 5126,
    "count": 3,
    "type": "VEC3",
    "min": [0, 0, 0],
    "max": [1, 1, 0]
  }],
  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 36}],
  "buffers": [{
    "byteLength": 36,
    "uri": "data:application/octet-stream;base64,AAAAAAAAAAAAAAAAAACAPwAAAAAAAAAAAAAAAAAAgD8AAAAA"
  }]
}`

func TestLoadReaderBuildsNodeTree(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	root, err := l.LoadReader("triangle", strings.NewReader(triangleGLTF), false)
	require.NoError(t, err)
	require.NotNil(t, root)

	assert.Equal(t, "triangle", root.Name)
	require.Len(t, root.Children, 1)

	tri := root.Children[0]
	assert.Equal(t, "tri", tri.Name)
	assert.Equal(t, [3]float32{2, 0, 0}, tri.Position)
	require.Len(t, tri.Meshes, 1)

	mesh := tri.Meshes[0]
	require.Len(t, mesh.Positions, 3)
	assert.Equal(t, [3]float32{1, 0, 0}, mesh.Positions[1])

	// Indices are synthesized for non-indexed primitives.
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)

	assert.Equal(t, [3]float32{0, 0, 0}, mesh.BoundingMin)
	assert.Equal(t, [3]float32{1, 1, 0}, mesh.BoundingMax)

	// A primitive without a material gets the glTF default PBR material.
	_, isPBR := material.AsPBR(mesh.Material)
	assert.True(t, isPBR)
}

func TestLoadReaderCachesByName(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	first, err := l.LoadReader("triangle", strings.NewReader(triangleGLTF), false)
	require.NoError(t, err)

	assert.Same(t, first, l.Get("triangle"))
	assert.Nil(t, l.Get("missing"))
}

func TestLoadReaderRejectsOutOfRangeBufferView(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	// A document whose accessor points past the bufferViews array must come
	// back as an error, not a panic.
	broken := strings.Replace(triangleGLTF, `"bufferView": 0`, `"bufferView": 7`, 1)
	_, err := l.LoadReader("broken-view", strings.NewReader(broken), false)
	assert.ErrorContains(t, err, "out of range")
}

func TestLoadReaderRejectsOutOfRangeBuffer(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	broken := strings.Replace(triangleGLTF, `{"buffer": 0,`, `{"buffer": 7,`, 1)
	_, err := l.LoadReader("broken-buffer", strings.NewReader(broken), false)
	assert.ErrorContains(t, err, "out of range")
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	_, err := l.Load("model.obj")
	assert.Error(t, err)
}

func TestLoadReaderRejectsGarbage(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	_, err := l.LoadReader("bad", strings.NewReader("not json at all"), false)
	assert.Error(t, err)
}

func TestIsGLBPath(t *testing.T) {
	assert.True(t, IsGLBPath("model.glb"))
	assert.True(t, IsGLBPath("https://example.com/a/model.GLB"))
	assert.False(t, IsGLBPath("model.gltf"))
}
