package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-labs/engine/profiler"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer"
	"github.com/Carmen-Shannon/oxy-labs/engine/scene"
	"github.com/Carmen-Shannon/oxy-labs/engine/window"
	"go.uber.org/zap"
)

// maxTicksPerFrame bounds catch-up ticks after a stall.
const maxTicksPerFrame = 8

// engine implements the Engine interface.
// Input, ticks and draws all run on the window thread inside the message loop.
type engine struct {
	mu sync.Mutex

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	renderer renderer.Renderer
	logger   *zap.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	clock          tickClock
	tickCallback   func(deltaTime float64)
	renderCallback func(deltaTime float64)

	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	now       func() time.Time
	lastFrame time.Time
}

// Engine is the main entry point for the engine.
// It owns the frame loop that drives every active scene.
type Engine interface {
	// Window returns the window the engine runs in.
	//
	// Returns:
	//   - window.Window: the window
	Window() window.Window

	// Renderer returns the renderer shared by the scenes.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// EnableProfiler turns on periodic frame statistics logging.
	EnableProfiler()

	// DisableProfiler turns off frame statistics logging.
	DisableProfiler()

	// SetTickRate sets the fixed tick rate in ticks per second.
	// A rate <= 0 ticks once per rendered frame.
	//
	// Parameters:
	//   - hz: ticks per second
	SetTickRate(hz float64)

	// SetTickCallback sets a function called after every tick.
	//
	// Parameters:
	//   - callback: receives the tick length in seconds
	SetTickCallback(callback func(deltaTime float64))

	// SetRenderCallback sets a function called after every rendered frame.
	//
	// Parameters:
	//   - callback: receives the frame time in seconds
	SetRenderCallback(callback func(deltaTime float64))

	// SetRenderFrameLimit caps the frame rate. Pass 0 to uncap.
	//
	// Parameters:
	//   - fps: maximum frames per second
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key. Lower keys draw first.
	//
	// Parameters:
	//   - key: the z-index
	//   - s: the scene
	AddScene(key int, s scene.Scene)

	// RemoveScene unregisters the scene at key.
	//
	// Parameters:
	//   - key: the z-index
	RemoveScene(key int)

	// Scene returns the scene at key, or nil.
	//
	// Parameters:
	//   - key: the z-index
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene(key int) scene.Scene

	// Scenes returns a copy of the registered scenes.
	//
	// Returns:
	//   - map[int]scene.Scene: the scenes by key
	Scenes() map[int]scene.Scene

	// Run initializes every scene and blocks in the window message loop until the window closes.
	//
	// Returns:
	//   - error: an error if the engine is missing its window or renderer, or a scene fails to initialize
	Run() error

	// Quit closes the window at the start of the next frame.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine. A window and renderer must be supplied with WithWindow and WithRenderer.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - Engine: the engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel: make(chan struct{}),
		scenes:      make(map[int]scene.Scene),
		logger:      zap.NewNop(),
		now:         time.Now,
	}

	for _, opt := range options {
		opt(e)
	}
	e.logger = e.logger.Named("engine")
	e.profiler = profiler.NewProfiler(e.logger)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Run() error {
	if e.window == nil {
		return errors.New("engine: no window")
	}
	if e.renderer == nil {
		return errors.New("engine: no renderer")
	}

	for _, s := range e.sortedScenes(false) {
		if err := s.Init(); err != nil {
			return fmt.Errorf("engine: init scene %q: %w", s.Name(), err)
		}
	}

	e.window.SetResizeCallback(e.resize)
	e.window.SetClickCallback(e.click)
	e.window.SetKeyDownCallback(e.keyDown)
	e.window.SetUpdateCallback(e.frame)

	e.lastFrame = e.now()
	e.logger.Info("engine running",
		zap.Int("scenes", len(e.scenes)),
		zap.Duration("tick_rate", e.clock.rate),
	)
	e.window.ProcessMessages()

	for _, s := range e.sortedScenes(false) {
		s.Release()
	}
	e.logger.Info("engine stopped")
	return nil
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// frame runs one iteration of the loop: ticks, then draw and present.
func (e *engine) frame() {
	select {
	case <-e.quitChannel:
		if err := e.window.Close(); err != nil {
			e.logger.Warn("failed to close window", zap.Error(err))
		}
		return
	default:
	}

	start := e.now()
	dt := start.Sub(e.lastFrame)
	e.lastFrame = start

	active := e.sortedScenes(true)

	steps, step := e.clock.advance(dt)
	for range steps {
		for _, s := range active {
			s.Tick(step.Seconds())
		}
		if e.tickCallback != nil {
			e.tickCallback(step.Seconds())
		}
	}

	e.draw(active)

	if e.renderCallback != nil {
		e.renderCallback(dt.Seconds())
	}
	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) draw(active []scene.Scene) {
	if err := e.renderer.BeginFrame(); err != nil {
		if !errors.Is(err, renderer.ErrSurfaceUnavailable) {
			e.logger.Warn("failed to begin frame", zap.Error(err))
		}
		return
	}
	for _, s := range active {
		if err := s.Draw(); err != nil {
			e.logger.Warn("scene draw failed", zap.String("scene", s.Name()), zap.Error(err))
		}
	}
	if err := e.renderer.EndFrame(); err != nil {
		e.logger.Warn("failed to end frame", zap.Error(err))
		return
	}
	e.renderer.Present()
}

func (e *engine) resize(width, height int) {
	if err := e.renderer.Resize(width, height); err != nil {
		e.logger.Error("failed to resize surface", zap.Int("width", width), zap.Int("height", height), zap.Error(err))
	}
	for _, s := range e.sortedScenes(false) {
		s.Resize(width, height)
	}
}

func (e *engine) click(x, y float64) {
	bounds := e.window.Bounds()
	for _, s := range e.sortedScenes(true) {
		if h, ok := s.(scene.ClickHandler); ok {
			h.Click(x, y, bounds)
		}
	}
}

func (e *engine) keyDown(keyCode uint32) {
	for _, s := range e.sortedScenes(true) {
		if h, ok := s.(scene.KeyHandler); ok {
			h.KeyDown(keyCode)
		}
	}
}

// sortedScenes returns scenes in ascending key order, optionally only the active ones.
func (e *engine) sortedScenes(activeOnly bool) []scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		s := e.scenes[k]
		if activeOnly && !s.Active() {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(hz float64) {
	e.clock = newTickClock(hz)
}

func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float64)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

// tickClock turns frame times into fixed-length ticks.
// A zero rate yields exactly one tick per frame, lasting the frame time.
type tickClock struct {
	rate time.Duration
	acc  time.Duration
}

func newTickClock(hz float64) tickClock {
	if hz <= 0 {
		return tickClock{}
	}
	return tickClock{rate: time.Duration(float64(time.Second) / hz)}
}

// advance accumulates dt and returns how many ticks are due and how long each is.
// Backlog beyond maxTicksPerFrame is dropped.
func (c *tickClock) advance(dt time.Duration) (int, time.Duration) {
	if c.rate <= 0 {
		return 1, dt
	}
	c.acc += dt
	steps := int(c.acc / c.rate)
	if steps > maxTicksPerFrame {
		steps = maxTicksPerFrame
		c.acc = 0
		return steps, c.rate
	}
	c.acc -= time.Duration(steps) * c.rate
	return steps, c.rate
}
