package light

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/showroom-go/common"
	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
)

// rigImpl is the implementation of the Rig interface.
type rigImpl struct {
	mu sync.Mutex

	key        Light
	target     [3]float32
	hasTarget  bool
	halfExtent float32
	near       float32
	far        float32

	lightVP [16]float32

	log *logging.Logger
}

// Rig aims the showcase's shadow-casting directional light at whichever model
// is currently displayed. Retargeting recomputes the light's view-projection
// matrix immediately — not on the next frame — so the shadow frustum is
// already consistent when the render loop next draws.
type Rig interface {
	// Light returns the directional key light the rig manages.
	//
	// Returns:
	//   - Light: the managed light
	Light() Light

	// Target returns the world-space point the light is aimed at.
	//
	// Returns:
	//   - [3]float32: the aim point as (x, y, z)
	//   - bool: false if the rig has never been retargeted
	Target() ([3]float32, bool)

	// Retarget aims the light at the given node and synchronously recomputes
	// the light's view-projection matrix. A nil node clears the target and
	// leaves the matrix unchanged.
	//
	// Parameters:
	//   - n: the node to aim at
	Retarget(n *node.Node)

	// ViewProjection returns the light's current view-projection matrix
	// (column-major), valid as of the last Retarget.
	//
	// Returns:
	//   - [16]float32: the light view-projection matrix
	ViewProjection() [16]float32
}

var _ Rig = &rigImpl{}

// NewRig creates a lighting rig around the given directional key light with
// the provided options applied.
//
// Parameters:
//   - key: the shadow-casting directional light to manage
//   - options: functional options for rig configuration
//
// Returns:
//   - Rig: the newly created rig
func NewRig(key Light, options ...RigBuilderOption) Rig {
	r := &rigImpl{
		key:        key,
		halfExtent: 10,
		near:       0.1,
		far:        100,
		log:        logging.Nop(),
	}
	common.Identity(r.lightVP[:])

	for _, option := range options {
		option(r)
	}
	return r
}

func (r *rigImpl) Light() Light {
	return r.key
}

func (r *rigImpl) Target() ([3]float32, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target, r.hasTarget
}

func (r *rigImpl) Retarget(n *node.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n == nil {
		r.hasTarget = false
		return
	}

	r.target = n.WorldPosition()
	r.hasTarget = true

	// The aim point moves with the model: a positioned light re-derives its
	// direction toward the new target, while a pure direction light (position
	// at the target) keeps its configured direction and the frustum slides.
	pos := r.key.Position()
	aim := [3]float32{
		r.target[0] - pos[0],
		r.target[1] - pos[1],
		r.target[2] - pos[2],
	}
	if aim != [3]float32{} {
		r.key.SetDirection(aim)
	}

	r.recomputeViewProjection()
	r.log.Debugw("light retargeted", "node", n.Name, "target", r.target)
}

func (r *rigImpl) ViewProjection() [16]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lightVP
}

// recomputeViewProjection builds the orthographic view-projection matrix for
// the directional light's shadow pass, centered on the current target and
// aligned to look along the light's direction. Caller must hold the mutex.
func (r *rigImpl) recomputeViewProjection() {
	dir := r.key.Direction()

	// Position the "eye" behind the target, opposite the light direction,
	// so we look from behind the scene toward the lit area.
	eyeX := r.target[0] - dir[0]*r.far*0.5
	eyeY := r.target[1] - dir[1]*r.far*0.5
	eyeZ := r.target[2] - dir[2]*r.far*0.5

	// Choose a stable up vector that isn't parallel to the light direction.
	// If the light points nearly straight up or down, use X-axis as up.
	upX, upY, upZ := float32(0), float32(1), float32(0)
	if math32.Abs(dir[1]) > 0.99 {
		upX, upY, upZ = 1, 0, 0
	}

	var view [16]float32
	common.LookAt(view[:],
		eyeX, eyeY, eyeZ,
		r.target[0], r.target[1], r.target[2],
		upX, upY, upZ,
	)

	var proj [16]float32
	common.Ortho(proj[:], -r.halfExtent, r.halfExtent, -r.halfExtent, r.halfExtent, r.near, r.far)

	common.Mul4(r.lightVP[:], proj[:], view[:])
}
