package light

// Type identifies the kind of light source.
type Type int

const (
	// TypeDirectional represents a light with no position, only direction.
	// The showcase's key light is directional; it is the only kind the
	// shadow rig retargets.
	TypeDirectional Type = iota

	// TypePoint represents a light that emits in all directions from a
	// position, used for fill lighting around the displayed model.
	TypePoint
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType    Type
	position     [3]float32
	direction    [3]float32
	color        [3]float32
	intensity    float32
	enabled      bool
	castsShadows bool
}

// Light defines the interface for a light source in the showcase scene.
// Type-specific properties return zero values when not applicable.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - Type: the light type (directional or point)
	Type() Type

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - position: position as (x, y, z)
	SetPosition(position [3]float32)

	// Direction returns the normalized direction the light points.
	// Meaningless for point lights.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// SetDirection sets the direction the light points.
	// The direction is normalized before storing.
	//
	// Parameters:
	//   - direction: direction as (x, y, z)
	SetDirection(direction [3]float32)

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// CastsShadows returns whether this light is eligible for shadow map
	// generation.
	//
	// Returns:
	//   - bool: true if shadow casting is enabled
	CastsShadows() bool
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the given type with the provided options
// applied.
//
// Parameters:
//   - lightType: the kind of light source
//   - options: functional options for light configuration
//
// Returns:
//   - Light: the newly created light
func NewLight(lightType Type, options ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		direction: [3]float32{0, -1, 0},
		color:     [3]float32{1, 1, 1},
		intensity: 1.0,
		enabled:   true,
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Type() Type {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) SetPosition(position [3]float32) {
	l.position = position
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) SetDirection(direction [3]float32) {
	l.direction = normalize3(direction)
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) CastsShadows() bool {
	return l.castsShadows
}
