package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLitShaderReflection(t *testing.T) {
	vs := NewShader("lit_vs", ShaderTypeVertex, LitSource)
	fs := NewShader("lit_fs", ShaderTypeFragment, LitSource)

	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, "fs_main", fs.EntryPoint())
	assert.Nil(t, fs.VertexLayouts())

	layouts := vs.VertexLayouts()
	require.Len(t, layouts, 1)
	assert.Equal(t, uint64(36), layouts[0].ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)
	assert.Equal(t, []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 24, ShaderLocation: 2},
	}, layouts[0].Attributes)

	group := vs.BindGroupLayoutDescriptor(0)
	require.Len(t, group.Entries, 3)
	sizes := []uint64{80, 128, 32}
	for i, e := range group.Entries {
		assert.Equal(t, uint32(i), e.Binding)
		assert.Equal(t, wgpu.BufferBindingTypeUniform, e.Buffer.Type)
		assert.Equal(t, sizes[i], e.Buffer.MinBindingSize)
		assert.Equal(t, wgpu.ShaderStageVertex, e.Visibility)
	}
}

func TestFlatShaderReflection(t *testing.T) {
	vs := NewShader("flat_vs", ShaderTypeVertex, FlatSource)

	layouts := vs.VertexLayouts()
	require.Len(t, layouts, 1)
	assert.Equal(t, uint64(24), layouts[0].ArrayStride)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layouts[0].Attributes[0].Format)
	assert.Equal(t, wgpu.VertexFormatFloat32x4, layouts[0].Attributes[1].Format)
	assert.Equal(t, uint64(8), layouts[0].Attributes[1].Offset)

	group := vs.BindGroupLayoutDescriptor(0)
	require.Len(t, group.Entries, 1)
	assert.Equal(t, uint64(4), group.Entries[0].Buffer.MinBindingSize)
}

func TestMergeBindGroupLayouts(t *testing.T) {
	vs := NewShader("lit_vs", ShaderTypeVertex, LitSource)
	fs := NewShader("lit_fs", ShaderTypeFragment, LitSource)

	merged := MergeBindGroupLayouts(vs, nil, fs)

	require.Len(t, merged, 1)
	require.Len(t, merged[0].Entries, 3)
	for _, e := range merged[0].Entries {
		assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, e.Visibility)
	}
}

func TestParseBindGroupLayoutsSkipsCommentsAndHandles(t *testing.T) {
	src := `
struct Params { a: vec4<f32>, b: array<vec4<f32>, 2>, c: f32, }
/* @group(0) @binding(5) var<uniform> hidden: Params; */
// @group(0) @binding(6) var<uniform> hidden2: Params;
@group(1) @binding(1) var<storage, read_write> data: Params;
@group(1) @binding(0) var<uniform> params: Params;
@group(1) @binding(2) var tex: texture_2d<f32>;
`
	groups := parseBindGroupLayouts(src, wgpu.ShaderStageVertex)

	require.Len(t, groups, 1)
	entries := groups[1].Entries
	require.Len(t, entries, 2)
	assert.Equal(t, uint32(0), entries[0].Binding)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entries[0].Buffer.Type)
	assert.Equal(t, uint32(1), entries[1].Binding)
	assert.Equal(t, wgpu.BufferBindingTypeStorage, entries[1].Buffer.Type)
	assert.Equal(t, uint64(64), entries[0].Buffer.MinBindingSize)
}

func TestStructLayoutsResolveForwardReferences(t *testing.T) {
	structs := parseStructs(`
struct Outer { inner: Inner, scale: f32, }
struct Inner { m: mat4x4<f32>, }
`)
	layouts := structLayouts(structs)

	assert.Equal(t, typeLayout{size: 64, align: 16}, layouts["Inner"])
	assert.Equal(t, typeLayout{size: 80, align: 16}, layouts["Outer"])
}

func TestNewShaderPanics(t *testing.T) {
	assert.Panics(t, func() { NewShader("empty", ShaderTypeVertex, "") })
	assert.Panics(t, func() { NewShader("noentry", ShaderTypeVertex, "fn helper() {}") })
}
