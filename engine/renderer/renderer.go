// Package renderer draws the sphere and circle scenes through WebGPU. The Renderer owns the
// device, surface and pipeline cache; drawables hand it BindGroupProviders describing their
// GPU resources.
package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-labs/engine/window"
	"go.uber.org/zap"
)

// ErrSurfaceUnavailable is returned by BeginFrame while the surface has no drawable area, such as
// when the window is minimized. Callers skip the frame.
var ErrSurfaceUnavailable = errors.New("renderer: surface unavailable")

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend
	logger      *zap.Logger

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           common.RGBA
}

// Renderer defines the interface for the rendering system.
//
// A frame is BeginFrame, any number of DrawCall invocations, EndFrame and Present. Uniform
// writes made with WriteBuffers before BeginFrame are visible to that frame's draws.
type Renderer interface {
	// Pipeline retrieves the cached Pipeline associated with the given key, or nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// RegisterPipelines creates the GPU render pipeline for each Pipeline and caches it by
	// PipelineKey. Keys already registered are skipped.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: an error if shader module or pipeline creation fails
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// Resize reconfigures the surface and its MSAA and depth attachments for a new size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if attachment creation fails
	Resize(width, height int) error

	// SetPresentMode sets the surface present mode. It takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the next frames are cleared to.
	//
	// Parameters:
	//   - color: the clear color
	SetClearColor(color common.RGBA)

	// InitMeshBuffers uploads vertex and optional index data and stores the buffers on the
	// provider. Existing buffers on the provider are replaced.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created buffers on
	//   - data: the geometry
	//
	// Returns:
	//   - error: an error if buffer creation fails or the index format is not supported
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, data MeshData) error

	// WriteVertices overwrites a provider's vertex buffer, growing it when data does not fit.
	//
	// Parameters:
	//   - provider: the BindGroupProvider holding the vertex buffer
	//   - data: the vertex bytes
	//   - vertexCount: the number of vertices in data
	//
	// Returns:
	//   - error: an error if a larger buffer could not be created
	WriteVertices(provider bind_group_provider.BindGroupProvider, data []byte, vertexCount int) error

	// InitBindGroup creates the uniform buffers and bind group for one group of a registered
	// pipeline, using the layout reflected from its shaders.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created bind group on
	//   - pipelineKey: the registered pipeline whose layout is used
	//   - group: the bind group index
	//
	// Returns:
	//   - error: an error if the pipeline is unknown or GPU resource creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, pipelineKey string, group int) error

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	//
	// Returns:
	//   - error: ErrSurfaceUnavailable while the surface has no size, or the acquisition error
	BeginFrame() error

	// DrawCall encodes one draw of a mesh. Meshes with an index buffer are drawn indexed,
	// others with their vertex count.
	//
	// Parameters:
	//   - pipelineKey: the unique identifier for the cached render Pipeline to use
	//   - meshProvider: the BindGroupProvider holding vertex and index buffers
	//   - bindGroups: providers whose bind groups are set at group 0, 1, ...
	//
	// Returns:
	//   - error: an error if the pipeline is not found or no frame is in progress
	DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	//
	// Returns:
	//   - error: an error if the command buffer could not be finished
	EndFrame() error

	// Present presents the surface to the display and releases the swapchain texture.
	Present()

	// Release releases the device, surface and every cached pipeline.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for the window's surface and configures it at the window's
// current size.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window whose surface is drawn to
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if adapter, device or surface setup fails
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
		presentMode:   PresentModeVSync,
		msaa:          MSAAOff,
		clearColor:    common.RGBA{0, 0, 0, 1},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.msaa != MSAAOff && r.msaa != MSAA4x {
		return nil, fmt.Errorf("unsupported msaa sample count %d", r.msaa)
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	}
	if err != nil {
		return nil, fmt.Errorf("create renderer backend: %w", err)
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.SetClearColor(r.clearColor)
	if err := r.backend.ConfigureSurface(window.Width(), window.Height()); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("configure surface: %w", err)
	}
	r.logger.Debug("renderer ready",
		zap.Int("width", window.Width()),
		zap.Int("height", window.Height()),
		zap.Uint32("msaa", uint32(r.msaa)),
	)
	return r, nil
}

func (r *renderer) Resize(width, height int) error {
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetClearColor(color common.RGBA) {
	r.backend.SetClearColor(color)
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		key := p.PipelineKey()
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return fmt.Errorf("register pipeline %q: %w", key, err)
		}
		r.pipelineCache[key] = p
	}
	return nil
}

func (r *renderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, data MeshData) error {
	return r.backend.InitMeshBuffers(provider, data)
}

func (r *renderer) WriteVertices(provider bind_group_provider.BindGroupProvider, data []byte, vertexCount int) error {
	return r.backend.WriteVertices(provider, data, vertexCount)
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, pipelineKey string, group int) error {
	p := r.Pipeline(pipelineKey)
	if p == nil {
		return fmt.Errorf("render pipeline %q not found in cache", pipelineKey)
	}
	descriptor, err := bindGroupLayoutFor(p, group)
	if err != nil {
		return err
	}
	return r.backend.InitBindGroup(provider, descriptor)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.backend.WriteBuffers(writes)
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider) error {
	p := r.Pipeline(pipelineKey)
	if p == nil {
		return fmt.Errorf("render pipeline %q not found in cache", pipelineKey)
	}
	return r.backend.DrawCall(p, meshProvider, bindGroups)
}

func (r *renderer) EndFrame() error {
	return r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, p := range r.pipelineCache {
		if rp := p.RenderPipeline(); rp != nil {
			rp.Release()
			p.SetRenderPipeline(nil)
		}
		delete(r.pipelineCache, key)
	}
	r.backend.Release()
}
