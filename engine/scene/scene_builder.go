package scene

import (
	"github.com/Carmen-Shannon/oxy-labs/engine/bacteria"
	"github.com/Carmen-Shannon/oxy-labs/engine/camera"
	"github.com/Carmen-Shannon/oxy-labs/engine/game_object"
	"github.com/Carmen-Shannon/oxy-labs/engine/light"
	"github.com/Carmen-Shannon/oxy-labs/engine/mesh"
	"go.uber.org/zap"
)

// sceneConfig collects the options of both scene kinds. Each constructor reads the fields it needs.
type sceneConfig struct {
	name   string
	active bool
	logger *zap.Logger

	// sphere
	detail        int
	sphereColor   [3]float32
	rotationSpeed float32
	camera        camera.Camera
	light         light.Light

	// bacteria
	simulator bacteria.Simulator
	segments  int
	diskColor [4]float32
	status    func(status string)
}

func defaultSceneConfig(name string) *sceneConfig {
	return &sceneConfig{
		name:          name,
		active:        true,
		logger:        zap.NewNop(),
		detail:        DefaultSphereDetail,
		sphereColor:   mesh.DefaultSphereColor,
		rotationSpeed: game_object.DefaultRotationSpeed,
		segments:      mesh.DefaultCircleSegments,
		diskColor:     DefaultDiskColor,
	}
}

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(c *sceneConfig)

// WithName overrides the scene's display name.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.name = name
	}
}

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.active = active
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) SceneBuilderOption {
	return func(c *sceneConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDetail sets the sphere subdivision count. Values <= 0 keep the default.
//
// Parameters:
//   - detail: the number of latitude and longitude subdivisions
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDetail(detail int) SceneBuilderOption {
	return func(c *sceneConfig) {
		if detail > 0 {
			c.detail = detail
		}
	}
}

// WithSphereColor sets the constant vertex color of the sphere.
//
// Parameters:
//   - color: the RGB color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSphereColor(color [3]float32) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.sphereColor = color
	}
}

// WithRotationSpeed sets the sphere's spin in degrees per second.
//
// Parameters:
//   - degreesPerSecond: the rotation speed
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRotationSpeed(degreesPerSecond float32) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.rotationSpeed = degreesPerSecond
	}
}

// WithCamera sets the camera used by the sphere scene.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.camera = cam
	}
}

// WithLight sets the directional light used by the sphere scene.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.light = l
	}
}

// WithSimulator sets the simulator driven by the bacteria scene.
//
// Parameters:
//   - sim: the simulator
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSimulator(sim bacteria.Simulator) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.simulator = sim
	}
}

// WithSegments sets the triangle count of every drawn circle. Values < 3 keep the default.
//
// Parameters:
//   - segments: triangles per circle
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSegments(segments int) SceneBuilderOption {
	return func(c *sceneConfig) {
		if segments >= 3 {
			c.segments = segments
		}
	}
}

// WithDiskColor sets the color of the background disk.
//
// Parameters:
//   - color: the RGBA color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDiskColor(color [4]float32) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.diskColor = color
	}
}

// WithStatus sets the function that receives the score line whenever it changes,
// typically Window.SetStatus.
//
// Parameters:
//   - status: the status sink
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithStatus(status func(status string)) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.status = status
	}
}
