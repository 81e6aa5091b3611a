// Package app wires a configuration into a window, renderer and engine for the example programs.
package app

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/Carmen-Shannon/oxy-labs/config"
	"github.com/Carmen-Shannon/oxy-labs/engine"
	"github.com/Carmen-Shannon/oxy-labs/engine/camera"
	"github.com/Carmen-Shannon/oxy-labs/engine/light"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer"
	"github.com/Carmen-Shannon/oxy-labs/engine/scene"
	"github.com/Carmen-Shannon/oxy-labs/engine/window"
	"go.uber.org/zap"
)

// App bundles the hosts every example needs.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Window   window.Window
	Renderer renderer.Renderer
	Engine   engine.Engine
}

// New opens the window, creates the renderer and builds the engine described by cfg.
//
// Parameters:
//   - cfg: the validated configuration
//   - logger: the logger passed to every host
//
// Returns:
//   - *App: the wired hosts
//   - error: an error if the window or renderer cannot be created
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	w, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open window: %w", err)
	}

	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, w, RendererOptions(cfg, logger)...)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	e := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithRenderer(r),
		engine.WithLogger(logger),
		engine.WithTickRate(float64(cfg.Engine.TickRate)),
		engine.WithProfiling(cfg.Engine.Profiling),
	)

	return &App{Config: cfg, Logger: logger, Window: w, Renderer: r, Engine: e}, nil
}

// Run blocks in the engine loop, then releases the renderer and closes the window.
//
// Returns:
//   - error: the engine's error, if any
func (a *App) Run() error {
	err := a.Engine.Run()
	a.Renderer.Release()
	// Close fails only when the engine already destroyed the window on Quit.
	_ = a.Window.Close()
	return err
}

// RendererOptions converts the render section into renderer options.
func RendererOptions(cfg *config.Config, logger *zap.Logger) []renderer.RendererBuilderOption {
	mode := renderer.PresentModeVSync
	if !cfg.Render.VSync {
		mode = renderer.PresentModeUncapped
	}
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(mode),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Render.MSAA)),
		renderer.WithLogger(logger),
	}
}

// SphereOptions converts the sphere section into scene options, sizing the camera to the window.
//
// Parameters:
//   - cfg: the configuration
//   - logger: the scene logger
//
// Returns:
//   - []scene.SceneBuilderOption: the options for scene.NewSphereScene
func SphereOptions(cfg *config.Config, logger *zap.Logger) []scene.SceneBuilderOption {
	sp := cfg.Sphere
	cam := camera.NewCamera(
		camera.WithEye(sp.Camera.Eye),
		camera.WithFov(common.DegToRad(sp.Camera.FOV)),
		camera.WithClipPlanes(sp.Camera.Near, sp.Camera.Far),
		camera.WithAspect(float32(cfg.Window.Width)/float32(cfg.Window.Height)),
	)
	l := light.NewLight(
		light.WithColor(sp.Light.Color),
		light.WithDirection(sp.Light.Direction),
	)
	return []scene.SceneBuilderOption{
		scene.WithLogger(logger),
		scene.WithDetail(sp.Detail),
		scene.WithSphereColor(sp.Color),
		scene.WithRotationSpeed(sp.AngleStep),
		scene.WithCamera(cam),
		scene.WithLight(l),
	}
}
