package scene

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-labs/engine/camera"
	"github.com/Carmen-Shannon/oxy-labs/engine/game_object"
	"github.com/Carmen-Shannon/oxy-labs/engine/light"
	"github.com/Carmen-Shannon/oxy-labs/engine/mesh"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/pipeline"
	"go.uber.org/zap"
)

// DefaultSphereDetail is the largest detail whose vertices still fit 8-bit indices.
const DefaultSphereDetail = 15

// Bindings of the lit pipeline's group 0.
const (
	bindingCamera = 0
	bindingObject = 1
	bindingLight  = 2
)

type sphereScene struct {
	base

	detail int
	color  [3]float32

	camera   camera.Camera
	light    light.Light
	object   game_object.GameObject
	sphere   *mesh.SphereMesh
	uniforms bind_group_provider.BindGroupProvider
}

var _ Scene = &sphereScene{}

// NewSphereScene creates the lit, rotating unit sphere scene.
// A camera and light are created with their defaults unless supplied through options.
//
// Parameters:
//   - r: the renderer to draw with
//   - options: functional options; WithDetail, WithSphereColor, WithRotationSpeed, WithCamera and WithLight apply
//
// Returns:
//   - Scene: the sphere scene, not yet initialized
func NewSphereScene(r renderer.Renderer, options ...SceneBuilderOption) Scene {
	cfg := defaultSceneConfig("sphere")
	for _, opt := range options {
		opt(cfg)
	}

	s := &sphereScene{
		detail: cfg.detail,
		color:  cfg.sphereColor,
		camera: cfg.camera,
		light:  cfg.light,
	}
	s.init(r, cfg)
	if s.camera == nil {
		s.camera = camera.NewCamera()
	}
	if s.light == nil {
		s.light = light.NewLight()
	}
	s.sphere = mesh.GenerateSphere(s.detail, mesh.WithColor(s.color[0], s.color[1], s.color[2]))
	s.object = game_object.NewGameObject(game_object.WithRotationSpeed(cfg.rotationSpeed))
	return s
}

func (s *sphereScene) Init() error {
	if s.renderer == nil {
		return fmt.Errorf("sphere scene: no renderer")
	}
	if err := s.renderer.RegisterPipelines(pipeline.NewLitPipeline()); err != nil {
		return fmt.Errorf("sphere scene: %w", err)
	}

	indices, format := s.sphere.GPUIndexData()
	meshProvider := bind_group_provider.NewBindGroupProvider("sphere_mesh")
	err := s.renderer.InitMeshBuffers(meshProvider, renderer.MeshData{
		Vertices:    s.sphere.VertexData(),
		VertexCount: s.sphere.VertexCount(),
		Indices:     indices,
		IndexFormat: format,
		IndexCount:  s.sphere.IndexCount(),
	})
	if err != nil {
		return fmt.Errorf("sphere scene: upload mesh: %w", err)
	}
	s.object.SetMeshProvider(meshProvider)

	s.uniforms = bind_group_provider.NewBindGroupProvider("sphere_uniforms")
	if err := s.renderer.InitBindGroup(s.uniforms, pipeline.KeyLit, 0); err != nil {
		return fmt.Errorf("sphere scene: %w", err)
	}

	s.logger.Debug("sphere uploaded",
		zap.Int("detail", s.detail),
		zap.Int("vertices", s.sphere.VertexCount()),
		zap.Int("indices", s.sphere.IndexCount()),
		zap.Stringer("index_format", s.sphere.IndexFormat()),
	)
	return nil
}

func (s *sphereScene) Tick(dt float64) {
	s.object.Update(dt)
}

func (s *sphereScene) Draw() error {
	if s.uniforms == nil {
		return fmt.Errorf("sphere scene: draw before init")
	}
	if !s.object.Enabled() {
		return nil
	}
	s.renderer.WriteBuffers(sphereUniformWrites(s.uniforms, s.camera, s.object, s.light))
	return s.renderer.DrawCall(pipeline.KeyLit, s.object.MeshProvider(), []bind_group_provider.BindGroupProvider{s.uniforms})
}

func (s *sphereScene) Resize(width, height int) {
	if width > 0 && height > 0 {
		s.camera.SetAspect(float32(width) / float32(height))
	}
}

func (s *sphereScene) Release() {
	if s.uniforms != nil {
		s.uniforms.Release()
	}
	if p := s.object.MeshProvider(); p != nil {
		p.Release()
	}
}

// sphereUniformWrites builds the three group-0 writes of the lit pipeline.
func sphereUniformWrites(p bind_group_provider.BindGroupProvider, cam camera.Camera, obj game_object.GameObject, l light.Light) []bind_group_provider.BufferWrite {
	camU := cam.Uniform()
	objU := obj.Uniform()
	lightU := l.Uniform()
	return []bind_group_provider.BufferWrite{
		{Provider: p, Binding: bindingCamera, Data: camU.Marshal()},
		{Provider: p, Binding: bindingObject, Data: objU.Marshal()},
		{Provider: p, Binding: bindingLight, Data: lightU.Marshal()},
	}
}
