package material

// BuilderOption is a functional option for configuring a material during
// construction. Options apply to both unlit and PBR variants; options that
// only make sense for PBR materials (roughness, metalness) are no-ops on
// unlit materials.
type BuilderOption struct {
	applyUnlit func(*unlitMaterial)
	applyPBR   func(*pbrMaterial)
}

// WithName is an option builder that sets the material's identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - BuilderOption: option function to apply
func WithName(name string) BuilderOption {
	return BuilderOption{
		applyUnlit: func(m *unlitMaterial) { m.name = name },
		applyPBR:   func(m *pbrMaterial) { m.name = name },
	}
}

// WithBaseColor is an option builder that sets the albedo/diffuse color.
//
// Parameters:
//   - color: color as (r, g, b, a)
//
// Returns:
//   - BuilderOption: option function to apply
func WithBaseColor(color [4]float32) BuilderOption {
	return BuilderOption{
		applyUnlit: func(m *unlitMaterial) { m.baseColor = color },
		applyPBR:   func(m *pbrMaterial) { m.baseColor = color },
	}
}

// WithRoughness is an option builder that sets the roughness factor.
// Ignored by unlit materials.
//
// Parameters:
//   - roughness: the roughness value (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - BuilderOption: option function to apply
func WithRoughness(roughness float32) BuilderOption {
	return BuilderOption{
		applyUnlit: func(m *unlitMaterial) {},
		applyPBR:   func(m *pbrMaterial) { m.roughness = roughness },
	}
}

// WithMetalness is an option builder that sets the metalness factor.
// Ignored by unlit materials.
//
// Parameters:
//   - metalness: the metalness value (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - BuilderOption: option function to apply
func WithMetalness(metalness float32) BuilderOption {
	return BuilderOption{
		applyUnlit: func(m *unlitMaterial) {},
		applyPBR:   func(m *pbrMaterial) { m.metalness = metalness },
	}
}
