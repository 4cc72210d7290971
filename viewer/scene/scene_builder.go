package scene

import (
	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/light"
)

// RegistryBuilderOption defines functional options for configuring a
// Registry.
type RegistryBuilderOption func(*registry)

// WithRig sets the lighting rig the registry retargets on every model
// switch.
//
// Parameters:
//   - rig: the lighting rig to retarget
//
// Returns:
//   - RegistryBuilderOption: the option to apply
func WithRig(rig light.Rig) RegistryBuilderOption {
	return func(r *registry) {
		r.rig = rig
	}
}

// WithLogger sets the logger the registry reports switches to.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - RegistryBuilderOption: the option to apply
func WithLogger(log *logging.Logger) RegistryBuilderOption {
	return func(r *registry) {
		if log != nil {
			r.log = log
		}
	}
}
