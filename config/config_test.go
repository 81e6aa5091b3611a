package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-labs/engine/bacteria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Bacteria.Count)
	assert.Equal(t, float32(150), cfg.Bacteria.DiskRadius)
	assert.Equal(t, float32(0.1), cfg.Bacteria.Speed)
	assert.Len(t, cfg.Bacteria.Palette, 10)
	assert.Equal(t, 15, cfg.Sphere.Detail)
	assert.Equal(t, [3]float32{0.7, 0, 0.9}, cfg.Sphere.Color)
	assert.Equal(t, [3]float32{3, 3, 7}, cfg.Sphere.Camera.Eye)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	src := `
window:
  title: bacteria
log:
  level: debug
bacteria:
  count: 8
  speed: 0.5
  seed: 99
  palette:
    - [1, 1, 1, 1]
sphere:
  detail: 30
  light:
    direction: [0, 1, 0]
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "bacteria", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width, "unset fields keep their defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Bacteria.Count)
	assert.Equal(t, float32(0.5), cfg.Bacteria.Speed)
	assert.Equal(t, uint64(99), cfg.Bacteria.Seed)
	assert.Equal(t, [][4]float32{{1, 1, 1, 1}}, cfg.Bacteria.Palette)
	assert.Equal(t, 30, cfg.Sphere.Detail)
	assert.Equal(t, [3]float32{0, 1, 0}, cfg.Sphere.Light.Direction)
	assert.Equal(t, [3]float32{1, 1, 1}, cfg.Sphere.Light.Color)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("bacteria:\n  cuont: 3\n"))
	assert.Error(t, err)
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Bacteria.Count = 0
	cfg.Bacteria.Scale = 0
	cfg.Bacteria.Palette = nil
	cfg.Sphere.Detail = -1
	cfg.Render.MSAA = 3

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, bacteria.ErrInvalidCount)
	assert.ErrorIs(t, err, bacteria.ErrInvalidScale)
	assert.ErrorIs(t, err, bacteria.ErrEmptyPalette)
	assert.Contains(t, err.Error(), "sphere.detail")
	assert.Contains(t, err.Error(), "render.msaa")
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "oxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  tick_rate: 60\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Engine.TickRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bacteria:\n  count: 3\n"), 0o600))
	t.Setenv(EnvPath, path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Bacteria.Count)
}

func TestLoadFromEnvUnsetUsesDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfigLogger(t *testing.T) {
	cfg := Default()
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.Log.Level = "loud"
	_, err = cfg.Logger()
	assert.Error(t, err)
}

func TestSimulatorOptions(t *testing.T) {
	cfg := Default()
	cfg.Bacteria.Count = 3
	cfg.Bacteria.Seed = 12

	sim, err := bacteria.NewSimulator(cfg.SimulatorOptions(zap.NewNop())...)
	require.NoError(t, err)
	again, err := bacteria.NewSimulator(cfg.SimulatorOptions(zap.NewNop())...)
	require.NoError(t, err)

	assert.Equal(t, 3, sim.Count())
	assert.Equal(t, sim.Circles(), again.Circles(), "a fixed seed places circles identically")
}
