package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/Carmen-Shannon/oxy-labs/engine/bacteria"
	"github.com/Carmen-Shannon/oxy-labs/engine/camera"
	"github.com/Carmen-Shannon/oxy-labs/engine/game_object"
	"github.com/Carmen-Shannon/oxy-labs/engine/light"
	"github.com/Carmen-Shannon/oxy-labs/engine/mesh"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records what a scene asks of the GPU.
type fakeRenderer struct {
	pipelines  map[string]pipeline.Pipeline
	meshes     []renderer.MeshData
	bindGroups []string
	vertices   [][]byte
	writes     []bind_group_provider.BufferWrite
	draws      []string
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{pipelines: make(map[string]pipeline.Pipeline)}
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline { return f.pipelines[key] }

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) Resize(_, _ int) error              { return nil }
func (f *fakeRenderer) SetPresentMode(_ renderer.PresentMode) {}
func (f *fakeRenderer) SetClearColor(_ common.RGBA)          {}

func (f *fakeRenderer) InitMeshBuffers(p bind_group_provider.BindGroupProvider, data renderer.MeshData) error {
	f.meshes = append(f.meshes, data)
	p.SetVertexCount(data.VertexCount)
	p.SetIndexCount(data.IndexCount)
	return nil
}

func (f *fakeRenderer) WriteVertices(p bind_group_provider.BindGroupProvider, data []byte, vertexCount int) error {
	f.vertices = append(f.vertices, append([]byte(nil), data...))
	p.SetVertexCount(vertexCount)
	return nil
}

func (f *fakeRenderer) InitBindGroup(p bind_group_provider.BindGroupProvider, key string, _ int) error {
	f.bindGroups = append(f.bindGroups, key+":"+p.Label())
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes = append(f.writes, writes...)
}

func (f *fakeRenderer) BeginFrame() error { return nil }

func (f *fakeRenderer) DrawCall(key string, _ bind_group_provider.BindGroupProvider, _ []bind_group_provider.BindGroupProvider) error {
	f.draws = append(f.draws, key)
	return nil
}

func (f *fakeRenderer) EndFrame() error { return nil }
func (f *fakeRenderer) Present()        {}
func (f *fakeRenderer) Release()        {}

func TestSphereSceneInitUploadsMesh(t *testing.T) {
	r := newFakeRenderer()
	s := NewSphereScene(r, WithDetail(4))
	require.NoError(t, s.Init())

	require.Contains(t, r.pipelines, pipeline.KeyLit)
	require.Len(t, r.meshes, 1)
	m := r.meshes[0]
	assert.Equal(t, 25, m.VertexCount)
	assert.Equal(t, 96, m.IndexCount)
	assert.Equal(t, mesh.IndexFormatUint16, m.IndexFormat, "8-bit indices are widened for upload")
	assert.Len(t, m.Vertices, 25*mesh.GPUVertexSize)
	assert.Equal(t, []string{pipeline.KeyLit + ":sphere_uniforms"}, r.bindGroups)
}

func TestSphereSceneDrawWritesUniforms(t *testing.T) {
	r := newFakeRenderer()
	s := NewSphereScene(r)
	require.NoError(t, s.Init())
	require.NoError(t, s.Draw())

	require.Len(t, r.writes, 3)
	assert.Len(t, r.writes[0].Data, camera.GPUCameraUniformSize)
	assert.Len(t, r.writes[1].Data, game_object.GPUObjectUniformSize)
	assert.Len(t, r.writes[2].Data, light.GPUDirectionalLightSize)
	assert.Equal(t, []string{pipeline.KeyLit}, r.draws)
}

func TestSphereSceneDisabledObjectIsNotDrawn(t *testing.T) {
	r := newFakeRenderer()
	s := NewSphereScene(r).(*sphereScene)
	require.NoError(t, s.Init())

	s.object.SetEnabled(false)
	require.NoError(t, s.Draw())
	assert.Empty(t, r.writes)
	assert.Empty(t, r.draws)

	s.object.SetEnabled(true)
	require.NoError(t, s.Draw())
	assert.Equal(t, []string{pipeline.KeyLit}, r.draws)
}

func TestSphereSceneDrawBeforeInit(t *testing.T) {
	s := NewSphereScene(newFakeRenderer())
	assert.Error(t, s.Draw())
}

func TestSphereSceneTickRotates(t *testing.T) {
	s := NewSphereScene(newFakeRenderer(), WithRotationSpeed(30)).(*sphereScene)
	s.Tick(0.5)
	assert.InDelta(t, 15, s.object.Rotation(), 1e-5)
}

func TestSphereSceneResizeSetsAspect(t *testing.T) {
	cam := camera.NewCamera()
	s := NewSphereScene(newFakeRenderer(), WithCamera(cam))
	s.Resize(800, 400)
	assert.InDelta(t, 2, cam.Aspect(), 1e-6)

	s.Resize(0, 400)
	assert.InDelta(t, 2, cam.Aspect(), 1e-6)
}

func TestSceneActive(t *testing.T) {
	s := NewSphereScene(newFakeRenderer(), WithActive(false), WithName("globe"))
	assert.Equal(t, "globe", s.Name())
	assert.False(t, s.Active())
	s.SetActive(true)
	assert.True(t, s.Active())
}

func newTestBacteriaScene(t *testing.T, r renderer.Renderer, options ...SceneBuilderOption) (*bacteriaScene, bacteria.Simulator) {
	t.Helper()
	sim, err := bacteria.NewSimulator(bacteria.WithSeed(7))
	require.NoError(t, err)
	s, err := NewBacteriaScene(r, append([]SceneBuilderOption{WithSimulator(sim), WithSegments(12)}, options...)...)
	require.NoError(t, err)
	return s.(*bacteriaScene), sim
}

func TestBacteriaVertices(t *testing.T) {
	_, sim := newTestBacteriaScene(t, newFakeRenderer())

	buf := appendBacteriaVertices(nil, sim, 12, DefaultDiskColor)
	perCircle := 3 * 12 * mesh.ColoredVertexSize
	require.Len(t, buf, perCircle*(1+sim.Count()))

	// the disk comes first and is white
	r := math.Float32frombits(binary.LittleEndian.Uint32(buf[8:]))
	assert.Equal(t, float32(1), r)

	first := sim.Circles()[0]
	_, hit := sim.HitTest([2]float32{first.Center[0] / sim.Scale(), first.Center[1] / sim.Scale()})
	require.True(t, hit)

	buf = appendBacteriaVertices(buf[:0], sim, 12, DefaultDiskColor)
	assert.Len(t, buf, perCircle*sim.Count(), "dead circles are not drawn")
}

func TestBacteriaSceneDraw(t *testing.T) {
	r := newFakeRenderer()
	s, sim := newTestBacteriaScene(t, r)
	require.NoError(t, s.Init())
	require.NoError(t, s.Draw())

	require.Contains(t, r.pipelines, pipeline.KeyFlat)
	assert.Equal(t, []string{pipeline.KeyFlat + ":bacteria_uniforms"}, r.bindGroups)
	assert.Equal(t, []string{pipeline.KeyFlat}, r.draws)
	require.Len(t, r.writes, 1)
	assert.Equal(t, sim.Scale(), math.Float32frombits(binary.LittleEndian.Uint32(r.writes[0].Data)))
	assert.Equal(t, 3*12*(1+sim.Count()), s.vertices.VertexCount())
}

func TestBacteriaSceneClickAndStatus(t *testing.T) {
	var lines []string
	r := newFakeRenderer()
	s, sim := newTestBacteriaScene(t, r, WithStatus(func(line string) { lines = append(lines, line) }))
	require.NoError(t, s.Init())
	require.Equal(t, []string{"player 0 | computer 0"}, lines)

	bounds := common.Rect{Width: 800, Height: 800}
	c := sim.Circles()[0]
	px := float64(c.Center[0]/sim.Scale()+1) * 400
	py := float64(1-c.Center[1]/sim.Scale()) * 400
	s.Click(px, py, bounds)

	assert.Equal(t, 1, sim.Score().Player)
	assert.Equal(t, "player 1 | computer 0", lines[len(lines)-1])

	s.Tick(1.0 / 60)
	assert.Len(t, lines, 2, "unchanged status is not republished")
}

func TestBacteriaSceneStatusCarriesOutcome(t *testing.T) {
	var lines []string
	s, sim := newTestBacteriaScene(t, newFakeRenderer(), WithStatus(func(line string) { lines = append(lines, line) }))
	require.NoError(t, s.Init())

	bounds := common.Rect{Width: 800, Height: 800}
	for range sim.Count() {
		for _, c := range sim.Circles() {
			if !c.Alive {
				continue
			}
			s.Click(float64(c.Center[0]/sim.Scale()+1)*400, float64(1-c.Center[1]/sim.Scale())*400, bounds)
			break
		}
	}

	require.Equal(t, bacteria.OutcomePlayerWins, sim.Outcome())
	assert.Equal(t, statusLine(sim.Score(), bacteria.OutcomePlayerWins), lines[len(lines)-1])
	assert.Contains(t, lines[len(lines)-1], "| Player wins!")
}

func TestBacteriaSceneResetKey(t *testing.T) {
	s, sim := newTestBacteriaScene(t, newFakeRenderer())
	for range 10 {
		s.Tick(0)
	}
	require.Equal(t, 10, sim.Ticks())

	s.KeyDown(common.KeyP)
	assert.Equal(t, 10, sim.Ticks())

	s.KeyDown(common.KeyR)
	assert.Equal(t, 0, sim.Ticks())
}

func TestStatusLine(t *testing.T) {
	score := bacteria.GameScore{Player: 5, Computer: 1}
	assert.Equal(t, "player 5 | computer 1", statusLine(score, bacteria.OutcomeNone))
	assert.Equal(t, "player 5 | computer 1 | Player wins!", statusLine(score, bacteria.OutcomePlayerWins))
}
