// Package light provides the directional light used to shade the sphere.
package light

import "github.com/Carmen-Shannon/oxy-labs/common"

// Defaults: white light shining along (0.5, 3, 4).
var (
	DefaultColor     = [3]float32{1, 1, 1}
	DefaultDirection = [3]float32{0.5, 3, 4}
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	direction [3]float32
	color     [3]float32
	intensity float32
	enabled   bool
}

// Light is a directional light: a color arriving from a single direction with no falloff.
// The lit shader scales each vertex color by max(dot(direction, normal), 0).
type Light interface {
	// Direction returns the normalized direction toward the light.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar multiplier applied to Color on the GPU.
	Intensity() float32

	// Enabled returns whether the light contributes. A disabled light uploads black.
	Enabled() bool

	// SetDirection sets the direction toward the light. The vector is normalized; a zero
	// vector is ignored.
	//
	// Parameters:
	//   - direction: the new direction
	SetDirection(direction [3]float32)

	SetColor(color [3]float32)
	SetIntensity(intensity float32)
	SetEnabled(enabled bool)

	// Uniform returns the GPU layout of the light.
	//
	// Returns:
	//   - GPUDirectionalLight: the uniform ready to marshal
	Uniform() GPUDirectionalLight
}

var _ Light = &lightImpl{}

// NewLight creates a directional light with the default color and direction.
//
// Parameters:
//   - options: builder options
//
// Returns:
//   - Light: the light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		direction: common.Normalize3(DefaultDirection),
		color:     DefaultColor,
		intensity: 1,
		enabled:   true,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
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

func (l *lightImpl) SetDirection(direction [3]float32) {
	if direction == ([3]float32{}) {
		return
	}
	l.direction = common.Normalize3(direction)
}

func (l *lightImpl) SetColor(color [3]float32) {
	l.color = color
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) Uniform() GPUDirectionalLight {
	u := GPUDirectionalLight{Direction: l.direction}
	if l.enabled {
		for i, c := range l.color {
			u.Color[i] = c * l.intensity
		}
	}
	return u
}
