package preparer

import "github.com/Carmen-Shannon/showroom-go/logging"

// PreparerBuilderOption defines functional options for configuring a
// Preparer.
type PreparerBuilderOption func(*preparer)

// WithPrimaryScale sets the uniform scale applied to the primary model.
// Values <= 0 are ignored.
//
// Parameters:
//   - scale: the primary display scale
//
// Returns:
//   - PreparerBuilderOption: the option to apply
func WithPrimaryScale(scale float32) PreparerBuilderOption {
	return func(p *preparer) {
		if scale > 0 {
			p.primaryScale = scale
		}
	}
}

// WithSecondaryScale sets the uniform scale applied to every non-primary
// model. Values <= 0 are ignored.
//
// Parameters:
//   - scale: the secondary display scale
//
// Returns:
//   - PreparerBuilderOption: the option to apply
func WithSecondaryScale(scale float32) PreparerBuilderOption {
	return func(p *preparer) {
		if scale > 0 {
			p.secondaryScale = scale
		}
	}
}

// WithRoughnessOverride replaces the default roughness forced onto every PBR
// material of prepared models.
//
// Parameters:
//   - roughness: the roughness to apply, clamped to [0, 1]
//
// Returns:
//   - PreparerBuilderOption: the option to apply
func WithRoughnessOverride(roughness float32) PreparerBuilderOption {
	return func(p *preparer) {
		p.roughness = clamp01(roughness)
	}
}

// WithMetalnessOverride replaces the default metalness forced onto every PBR
// material of prepared models.
//
// Parameters:
//   - metalness: the metalness to apply, clamped to [0, 1]
//
// Returns:
//   - PreparerBuilderOption: the option to apply
func WithMetalnessOverride(metalness float32) PreparerBuilderOption {
	return func(p *preparer) {
		p.metalness = clamp01(metalness)
	}
}

// WithLogger sets the logger the preparer reports to.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - PreparerBuilderOption: the option to apply
func WithLogger(log *logging.Logger) PreparerBuilderOption {
	return func(p *preparer) {
		if log != nil {
			p.log = log
		}
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
