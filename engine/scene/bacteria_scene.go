package scene

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/Carmen-Shannon/oxy-labs/engine/bacteria"
	"github.com/Carmen-Shannon/oxy-labs/engine/mesh"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/pipeline"
	"go.uber.org/zap"
)

// DefaultDiskColor is the fill of the disk the bacteria grow on.
var DefaultDiskColor = [4]float32{1, 1, 1, 1}

type bacteriaScene struct {
	base

	sim       bacteria.Simulator
	segments  int
	diskColor [4]float32
	status    func(string)

	lastStatus string
	vertexBuf  []byte
	vertices   bind_group_provider.BindGroupProvider
	uniforms   bind_group_provider.BindGroupProvider
}

var (
	_ Scene        = &bacteriaScene{}
	_ ClickHandler = &bacteriaScene{}
	_ KeyHandler   = &bacteriaScene{}
)

// NewBacteriaScene creates the growth and hit-test game scene.
// Without WithSimulator a default simulator is created.
//
// Parameters:
//   - r: the renderer to draw with
//   - options: functional options; WithSimulator, WithSegments, WithDiskColor and WithStatus apply
//
// Returns:
//   - Scene: the bacteria scene, not yet initialized
//   - error: an error if the default simulator cannot be created
func NewBacteriaScene(r renderer.Renderer, options ...SceneBuilderOption) (Scene, error) {
	cfg := defaultSceneConfig("bacteria")
	for _, opt := range options {
		opt(cfg)
	}

	sim := cfg.simulator
	if sim == nil {
		var err error
		sim, err = bacteria.NewSimulator(bacteria.WithLogger(cfg.logger))
		if err != nil {
			return nil, fmt.Errorf("bacteria scene: %w", err)
		}
	}

	s := &bacteriaScene{
		sim:       sim,
		segments:  cfg.segments,
		diskColor: cfg.diskColor,
		status:    cfg.status,
	}
	s.init(r, cfg)
	return s, nil
}

func (s *bacteriaScene) Init() error {
	if s.renderer == nil {
		return fmt.Errorf("bacteria scene: no renderer")
	}
	if err := s.renderer.RegisterPipelines(pipeline.NewFlatPipeline()); err != nil {
		return fmt.Errorf("bacteria scene: %w", err)
	}

	s.uniforms = bind_group_provider.NewBindGroupProvider("bacteria_uniforms")
	if err := s.renderer.InitBindGroup(s.uniforms, pipeline.KeyFlat, 0); err != nil {
		return fmt.Errorf("bacteria scene: %w", err)
	}

	s.vertices = bind_group_provider.NewBindGroupProvider("bacteria_circles")
	if err := s.upload(); err != nil {
		return err
	}
	s.publishStatus()

	s.logger.Debug("bacteria scene ready",
		zap.Int("circles", s.sim.Count()),
		zap.Int("segments", s.segments),
	)
	return nil
}

// Tick advances the simulator by one step. The simulator growth is per tick, so dt is unused.
func (s *bacteriaScene) Tick(_ float64) {
	s.sim.Tick()
	s.publishStatus()
}

func (s *bacteriaScene) Draw() error {
	if s.uniforms == nil {
		return fmt.Errorf("bacteria scene: draw before init")
	}
	if err := s.upload(); err != nil {
		return err
	}
	s.renderer.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: s.uniforms, Binding: 0, Data: scaleUniform(s.sim.Scale())},
	})
	return s.renderer.DrawCall(pipeline.KeyFlat, s.vertices, []bind_group_provider.BindGroupProvider{s.uniforms})
}

// Click hit-tests the click against the alive circles.
func (s *bacteriaScene) Click(x, y float64, bounds common.Rect) {
	if id, hit := s.sim.Click(x, y, bounds); hit {
		s.logger.Debug("circle clicked", zap.Stringer("id", id))
	}
	s.publishStatus()
}

// KeyDown restarts the game on R.
func (s *bacteriaScene) KeyDown(keyCode uint32) {
	if keyCode != common.KeyR {
		return
	}
	if err := s.sim.Reset(); err != nil {
		s.logger.Warn("failed to reset game", zap.Error(err))
		return
	}
	s.publishStatus()
}

func (s *bacteriaScene) Resize(_, _ int) {}

func (s *bacteriaScene) Release() {
	if s.uniforms != nil {
		s.uniforms.Release()
	}
	if s.vertices != nil {
		s.vertices.Release()
	}
}

// upload rebuilds the disk and circle geometry and writes it to the vertex buffer.
func (s *bacteriaScene) upload() error {
	s.vertexBuf = appendBacteriaVertices(s.vertexBuf[:0], s.sim, s.segments, s.diskColor)
	count := len(s.vertexBuf) / mesh.ColoredVertexSize
	if err := s.renderer.WriteVertices(s.vertices, s.vertexBuf, count); err != nil {
		return fmt.Errorf("bacteria scene: %w", err)
	}
	return nil
}

func (s *bacteriaScene) publishStatus() {
	if s.status == nil {
		return
	}
	line := statusLine(s.sim.Score(), s.sim.Outcome())
	if line == s.lastStatus {
		return
	}
	s.lastStatus = line
	s.status(line)
}

// appendBacteriaVertices appends the disk first and then every alive circle, so circles draw on top.
func appendBacteriaVertices(buf []byte, sim bacteria.Simulator, segments int, diskColor [4]float32) []byte {
	buf = mesh.AppendColoredCircle(buf, 0, 0, sim.DiskRadius(), segments, diskColor)
	for _, c := range sim.Circles() {
		if !c.Alive {
			continue
		}
		buf = mesh.AppendColoredCircle(buf, c.Center[0], c.Center[1], c.Radius, segments, c.Color)
	}
	return buf
}

func scaleUniform(scale float32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, math.Float32bits(scale))
	return out
}

func statusLine(score bacteria.GameScore, outcome bacteria.Outcome) string {
	if outcome == bacteria.OutcomeNone {
		return score.String()
	}
	return score.String() + " | " + outcome.String()
}
