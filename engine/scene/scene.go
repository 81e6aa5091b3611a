package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer"
	"go.uber.org/zap"
)

// Scene is one drawable system hosted by the engine.
// Every method is called from the window thread, so Tick, Draw and the input hooks never interleave.
type Scene interface {
	// Name returns the scene's display name.
	Name() string

	// Active reports whether the engine ticks and draws the scene.
	Active() bool

	// SetActive enables or disables the scene.
	SetActive(active bool)

	// Renderer returns the renderer the scene draws with.
	Renderer() renderer.Renderer

	// Init registers the scene's pipelines and uploads its static GPU resources.
	// It must be called once before the first Draw.
	//
	// Returns:
	//   - error: an error if any pipeline or buffer cannot be created
	Init() error

	// Tick advances the scene state by one fixed step.
	//
	// Parameters:
	//   - dt: the step length in seconds
	Tick(dt float64)

	// Draw writes the scene's uniforms and records its draw calls into the current frame.
	//
	// Returns:
	//   - error: an error if a draw call cannot be recorded
	Draw() error

	// Resize is called after the surface changed size.
	//
	// Parameters:
	//   - width: the new framebuffer width in pixels
	//   - height: the new framebuffer height in pixels
	Resize(width, height int)

	// Release frees the scene's GPU resources.
	Release()
}

// ClickHandler is implemented by scenes that react to a left click.
type ClickHandler interface {
	// Click delivers a click in framebuffer pixels together with the surface bounds.
	Click(x, y float64, bounds common.Rect)
}

// KeyHandler is implemented by scenes that react to key presses.
type KeyHandler interface {
	// KeyDown delivers the key code of a pressed key.
	KeyDown(keyCode uint32)
}

// base carries the state shared by every scene implementation.
type base struct {
	mu sync.RWMutex

	name   string
	active bool

	renderer renderer.Renderer
	logger   *zap.Logger
}

func (b *base) init(r renderer.Renderer, cfg *sceneConfig) {
	b.name = cfg.name
	b.active = cfg.active
	b.renderer = r
	b.logger = cfg.logger.Named("scene").With(zap.String("scene", cfg.name))
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Active() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.active
}

func (b *base) SetActive(active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = active
}

func (b *base) Renderer() renderer.Renderer {
	return b.renderer
}
