package render

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/showroom-go/viewer/node"
)

// Frame carries the per-frame matrices a renderer draws with. All matrices
// are column-major.
type Frame struct {
	// View is the camera view matrix.
	View [16]float32
	// Projection is the camera projection matrix.
	Projection [16]float32
	// LightViewProjection is the shadow-casting light's combined matrix.
	LightViewProjection [16]float32
}

// Renderer is the boundary between the showcase and whatever draws it. The
// viewer hands it the visible node tree and the frame matrices; everything
// GPU-side lives behind this interface.
type Renderer interface {
	// Init binds the renderer to a surface. Called once before the first
	// frame.
	//
	// Parameters:
	//   - descriptor: the platform surface to present to
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	//
	// Returns:
	//   - error: error if surface setup fails
	Init(descriptor *wgpu.SurfaceDescriptor, width, height int) error

	// Resize reconfigures the surface to new pixel dimensions.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// DrawFrame renders one frame: the given node tree with the given
	// matrices, then presents.
	//
	// Parameters:
	//   - root: the visible node tree, nil draws an empty frame
	//   - frame: the frame matrices
	//
	// Returns:
	//   - error: error if the frame could not be drawn
	DrawFrame(root *node.Node, frame Frame) error

	// Release frees the renderer's GPU resources.
	Release()
}

// nopRenderer draws nothing. It stands in wherever no GPU backend is wired,
// such as tests and headless runs.
type nopRenderer struct{}

var _ Renderer = &nopRenderer{}

// NewNopRenderer creates a renderer that accepts every call and draws
// nothing.
//
// Returns:
//   - Renderer: the no-op renderer
func NewNopRenderer() Renderer {
	return &nopRenderer{}
}

func (*nopRenderer) Init(_ *wgpu.SurfaceDescriptor, _, _ int) error { return nil }

func (*nopRenderer) Resize(_, _ int) {}

func (*nopRenderer) DrawFrame(_ *node.Node, _ Frame) error { return nil }

func (*nopRenderer) Release() {}
