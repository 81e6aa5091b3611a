package game_object

import "github.com/Carmen-Shannon/oxy-labs/engine/renderer/bind_group_provider"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is drawn.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - position: the translation
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(position [3]float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = position
	}
}

// WithScale sets the initial per-axis scale.
//
// Parameters:
//   - scale: the scale factors
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(scale [3]float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = scale
	}
}

// WithRotation sets the initial angle about +Y in degrees.
//
// Parameters:
//   - degrees: the angle
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(degrees float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = wrapDegrees(float64(degrees))
	}
}

// WithRotationSpeed sets the spin about +Y in degrees per second.
//
// Parameters:
//   - degreesPerSecond: the speed
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(degreesPerSecond float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationSpeed = degreesPerSecond
	}
}

// WithMeshProvider attaches the provider holding the object's mesh buffers.
//
// Parameters:
//   - provider: the mesh provider
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the mesh provider
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.meshProvider = provider
	}
}
