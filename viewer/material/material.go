package material

// Kind identifies the surface model a material uses.
type Kind int

const (
	// KindUnlit identifies a flat-shaded material with a base color only.
	// Unlit materials carry no physically based parameters, so preparation
	// overrides skip them entirely.
	KindUnlit Kind = iota

	// KindPBR identifies a metallic-roughness material. PBR materials expose
	// the roughness and metalness channels that preparation overrides target.
	KindPBR
)

// unlitMaterial is the implementation of Material for KindUnlit.
type unlitMaterial struct {
	name      string
	baseColor [4]float32
}

// pbrMaterial is the implementation of PBRMaterial for KindPBR.
type pbrMaterial struct {
	name      string
	baseColor [4]float32
	roughness float32
	metalness float32
}

// Material defines the interface shared by every material variant. Whether a
// material supports physically based parameters is expressed by its concrete
// variant (see PBRMaterial and AsPBR), not by probing for fields at runtime.
type Material interface {
	// Name returns the material's identifier.
	//
	// Returns:
	//   - string: the material name
	Name() string

	// Kind returns the material variant tag.
	//
	// Returns:
	//   - Kind: KindUnlit or KindPBR
	Kind() Kind

	// BaseColor returns the albedo/diffuse color.
	//
	// Returns:
	//   - [4]float32: color as (r, g, b, a)
	BaseColor() [4]float32

	// SetBaseColor sets the albedo/diffuse color.
	//
	// Parameters:
	//   - color: color as (r, g, b, a)
	SetBaseColor(color [4]float32)
}

// PBRMaterial extends Material with the metallic-roughness channels.
// Only KindPBR materials implement it.
type PBRMaterial interface {
	Material

	// Roughness returns the roughness factor (0.0 = smooth, 1.0 = rough).
	//
	// Returns:
	//   - float32: the roughness value
	Roughness() float32

	// SetRoughness sets the roughness factor.
	//
	// Parameters:
	//   - roughness: the roughness value
	SetRoughness(roughness float32)

	// Metalness returns the metalness factor (0.0 = dielectric, 1.0 = metal).
	//
	// Returns:
	//   - float32: the metalness value
	Metalness() float32

	// SetMetalness sets the metalness factor.
	//
	// Parameters:
	//   - metalness: the metalness value
	SetMetalness(metalness float32)
}

var _ Material = &unlitMaterial{}
var _ PBRMaterial = &pbrMaterial{}

// NewUnlit creates a new unlit material with the provided options applied.
//
// Parameters:
//   - options: functional options for material configuration
//
// Returns:
//   - Material: the newly created unlit material
func NewUnlit(options ...BuilderOption) Material {
	m := &unlitMaterial{
		baseColor: [4]float32{1, 1, 1, 1},
	}
	for _, option := range options {
		option.applyUnlit(m)
	}
	return m
}

// NewPBR creates a new metallic-roughness material with the provided options
// applied.
//
// Parameters:
//   - options: functional options for material configuration
//
// Returns:
//   - PBRMaterial: the newly created PBR material
func NewPBR(options ...BuilderOption) PBRMaterial {
	m := &pbrMaterial{
		baseColor: [4]float32{1, 1, 1, 1},
		roughness: 1.0,
		metalness: 0.0,
	}
	for _, option := range options {
		option.applyPBR(m)
	}
	return m
}

// AsPBR reports whether the material supports physically based parameters,
// returning the PBR view of it when it does. This is the capability check
// used by preparation overrides.
//
// Parameters:
//   - m: the material to inspect
//
// Returns:
//   - PBRMaterial: the PBR view of the material, or nil
//   - bool: true if the material is a PBR variant
func AsPBR(m Material) (PBRMaterial, bool) {
	pbr, ok := m.(PBRMaterial)
	return pbr, ok
}

func (m *unlitMaterial) Name() string                 { return m.name }
func (m *unlitMaterial) Kind() Kind                   { return KindUnlit }
func (m *unlitMaterial) BaseColor() [4]float32        { return m.baseColor }
func (m *unlitMaterial) SetBaseColor(color [4]float32) { m.baseColor = color }

func (m *pbrMaterial) Name() string                 { return m.name }
func (m *pbrMaterial) Kind() Kind                   { return KindPBR }
func (m *pbrMaterial) BaseColor() [4]float32        { return m.baseColor }
func (m *pbrMaterial) SetBaseColor(color [4]float32) { m.baseColor = color }

func (m *pbrMaterial) Roughness() float32             { return m.roughness }
func (m *pbrMaterial) SetRoughness(roughness float32) { m.roughness = roughness }
func (m *pbrMaterial) Metalness() float32             { return m.metalness }
func (m *pbrMaterial) SetMetalness(metalness float32) { m.metalness = metalness }
