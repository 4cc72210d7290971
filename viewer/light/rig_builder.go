package light

import "github.com/Carmen-Shannon/showroom-go/logging"

// RigBuilderOption defines functional options for configuring a Rig.
type RigBuilderOption func(*rigImpl)

// WithHalfExtent sets half the width and height of the light's orthographic
// shadow frustum. Values <= 0 are ignored.
//
// Parameters:
//   - halfExtent: half the orthographic frustum extent
//
// Returns:
//   - RigBuilderOption: the option to apply
func WithHalfExtent(halfExtent float32) RigBuilderOption {
	return func(r *rigImpl) {
		if halfExtent > 0 {
			r.halfExtent = halfExtent
		}
	}
}

// WithNearFar sets the near and far planes of the light's shadow frustum.
// Invalid ranges (near <= 0 or far <= near) are ignored.
//
// Parameters:
//   - near: the near plane distance
//   - far: the far plane distance
//
// Returns:
//   - RigBuilderOption: the option to apply
func WithNearFar(near, far float32) RigBuilderOption {
	return func(r *rigImpl) {
		if near > 0 && far > near {
			r.near = near
			r.far = far
		}
	}
}

// WithRigLogger sets the logger the rig reports retargets to.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - RigBuilderOption: the option to apply
func WithRigLogger(log *logging.Logger) RigBuilderOption {
	return func(r *rigImpl) {
		if log != nil {
			r.log = log
		}
	}
}
