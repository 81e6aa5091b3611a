package app

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-labs/config"
	"github.com/Carmen-Shannon/oxy-labs/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSphereOptionsBuildScene(t *testing.T) {
	cfg := config.Default()
	cfg.Sphere.Detail = 8

	opts := SphereOptions(cfg, zap.NewNop())
	require.Len(t, opts, 6)

	s := scene.NewSphereScene(nil, opts...)
	assert.Equal(t, "sphere", s.Name())
	assert.True(t, s.Active())
	assert.Error(t, s.Init(), "a scene without a renderer cannot initialize")
}

func TestRendererOptions(t *testing.T) {
	cfg := config.Default()
	assert.Len(t, RendererOptions(cfg, zap.NewNop()), 3)

	cfg.Render.VSync = false
	assert.Len(t, RendererOptions(cfg, zap.NewNop()), 3)
}
