package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline_Defaults(t *testing.T) {
	p := NewPipeline("test")

	assert.Equal(t, "test", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	require.NotNil(t, p.BlendState())
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, p.BlendState().Color.SrcFactor)
	assert.Nil(t, p.RenderPipeline())
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))
}

func TestNewPipeline_Options(t *testing.T) {
	blend := &wgpu.BlendState{}
	p := NewPipeline("opts",
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithBlendEnabled(true),
		WithCullMode(wgpu.CullModeBack),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithFrontFace(wgpu.FrontFaceCW),
		WithBlendState(blend),
	)

	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.True(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Same(t, blend, p.BlendState())
}

func TestPresets(t *testing.T) {
	lit := NewLitPipeline()
	assert.Equal(t, KeyLit, lit.PipelineKey())
	assert.True(t, lit.DepthTestEnabled())
	require.NotNil(t, lit.Shader(shader.ShaderTypeVertex))
	require.NotNil(t, lit.Shader(shader.ShaderTypeFragment))
	assert.Equal(t, "vs_main", lit.Shader(shader.ShaderTypeVertex).EntryPoint())
	assert.Equal(t, "fs_main", lit.Shader(shader.ShaderTypeFragment).EntryPoint())

	flat := NewFlatPipeline()
	assert.Equal(t, KeyFlat, flat.PipelineKey())
	assert.False(t, flat.DepthTestEnabled())
	assert.False(t, flat.DepthWriteEnabled())
	assert.True(t, flat.BlendEnabled())
	layouts := flat.Shader(shader.ShaderTypeVertex).VertexLayouts()
	require.Len(t, layouts, 1)
	assert.Equal(t, uint64(24), layouts[0].ArrayStride)
}
