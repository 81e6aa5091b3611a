// Package game_object holds the transform state of a drawable: position, scale and a spin about
// the Y axis advanced by elapsed time.
package game_object

import (
	"math"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/bind_group_provider"
)

// DefaultRotationSpeed is the sphere's spin in degrees per second.
const DefaultRotationSpeed = 30

type gameObject struct {
	id      uint64
	enabled atomic.Bool

	position [3]float32
	scale    [3]float32
	// rotation and rotationSpeed are about +Y, in degrees and degrees per second
	rotation      float32
	rotationSpeed float32

	meshProvider bind_group_provider.BindGroupProvider
}

// GameObject is a scene entity with a transform and the GPU resources of its mesh.
type GameObject interface {
	// ID returns the object's identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the world-space translation.
	Position() [3]float32

	// Scale returns the per-axis scale.
	Scale() [3]float32

	// Rotation returns the angle about +Y in degrees, within [0, 360).
	//
	// Returns:
	//   - float32: the angle in degrees
	Rotation() float32

	// RotationSpeed returns the spin in degrees per second.
	//
	// Returns:
	//   - float32: the speed
	RotationSpeed() float32

	// MeshProvider returns the provider holding the object's vertex and index buffers, or nil.
	MeshProvider() bind_group_provider.BindGroupProvider

	SetEnabled(enabled bool)
	SetPosition(position [3]float32)
	SetScale(scale [3]float32)

	// SetRotation sets the angle about +Y, wrapped into [0, 360).
	//
	// Parameters:
	//   - degrees: the angle
	SetRotation(degrees float32)

	SetRotationSpeed(degreesPerSecond float32)
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)

	// Update advances the rotation by RotationSpeed × dt and wraps it into [0, 360).
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float64)

	// ModelMatrix returns translation × rotationY × scale.
	//
	// Returns:
	//   - common.Mat4: the model matrix
	ModelMatrix() common.Mat4

	// NormalMatrix returns the transpose of the inverse model matrix, or identity when the model
	// matrix is singular.
	//
	// Returns:
	//   - common.Mat4: the normal matrix
	NormalMatrix() common.Mat4

	// Uniform returns the GPU layout of the model and normal matrices.
	//
	// Returns:
	//   - GPUObjectUniform: the uniform ready to marshal
	Uniform() GPUObjectUniform
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled object at the origin with unit scale and no spin.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() [3]float32 {
	return g.position
}

func (g *gameObject) Scale() [3]float32 {
	return g.scale
}

func (g *gameObject) Rotation() float32 {
	return g.rotation
}

func (g *gameObject) RotationSpeed() float32 {
	return g.rotationSpeed
}

func (g *gameObject) MeshProvider() bind_group_provider.BindGroupProvider {
	return g.meshProvider
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(position [3]float32) {
	g.position = position
}

func (g *gameObject) SetScale(scale [3]float32) {
	g.scale = scale
}

func (g *gameObject) SetRotation(degrees float32) {
	g.rotation = wrapDegrees(float64(degrees))
}

func (g *gameObject) SetRotationSpeed(degreesPerSecond float32) {
	g.rotationSpeed = degreesPerSecond
}

func (g *gameObject) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	g.meshProvider = provider
}

func (g *gameObject) Update(dt float64) {
	g.rotation = wrapDegrees(float64(g.rotation) + float64(g.rotationSpeed)*dt)
}

func (g *gameObject) ModelMatrix() common.Mat4 {
	m := common.RotationY(common.DegToRad(g.rotation))
	for col := range 3 {
		for row := range 3 {
			m[col*4+row] *= g.scale[col]
		}
	}
	m[12], m[13], m[14] = g.position[0], g.position[1], g.position[2]
	return m
}

func (g *gameObject) NormalMatrix() common.Mat4 {
	inv, ok := common.Invert4(g.ModelMatrix())
	if !ok {
		return common.Identity4()
	}
	return common.Transpose4(inv)
}

func (g *gameObject) Uniform() GPUObjectUniform {
	return GPUObjectUniform{
		Model:        g.ModelMatrix(),
		NormalMatrix: g.NormalMatrix(),
	}
}

func wrapDegrees(deg float64) float32 {
	w := math.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	// float32 rounding can land a value just below 360 on 360 itself
	if float32(w) >= 360 {
		return 0
	}
	return float32(w)
}
