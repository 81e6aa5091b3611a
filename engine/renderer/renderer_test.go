package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-labs/engine/mesh"
	"github.com/Carmen-Shannon/oxy-labs/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindGroupLayoutFor(t *testing.T) {
	lit, err := bindGroupLayoutFor(pipeline.NewLitPipeline(), 0)
	require.NoError(t, err)
	require.Len(t, lit.Entries, 3)
	for i, e := range lit.Entries {
		assert.Equal(t, uint32(i), e.Binding)
		assert.Equal(t, wgpu.BufferBindingTypeUniform, e.Buffer.Type)
	}

	flat, err := bindGroupLayoutFor(pipeline.NewFlatPipeline(), 0)
	require.NoError(t, err)
	require.Len(t, flat.Entries, 1)
	assert.Equal(t, uint64(4), flat.Entries[0].Buffer.MinBindingSize)

	_, err = bindGroupLayoutFor(pipeline.NewFlatPipeline(), 3)
	assert.Error(t, err)
}

func TestToWGPUIndexFormat(t *testing.T) {
	f, err := toWGPUIndexFormat(mesh.IndexFormatUint16)
	require.NoError(t, err)
	assert.Equal(t, wgpu.IndexFormatUint16, f)

	f, err = toWGPUIndexFormat(mesh.IndexFormatUint32)
	require.NoError(t, err)
	assert.Equal(t, wgpu.IndexFormatUint32, f)

	_, err = toWGPUIndexFormat(mesh.IndexFormatUint8)
	assert.Error(t, err)
}

func TestUniformBufferSize(t *testing.T) {
	tests := []struct {
		in, want uint64
	}{
		{0, 16},
		{4, 16},
		{16, 16},
		{32, 32},
		{80, 80},
		{81, 96},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, uniformBufferSize(tt.in), "min binding size %d", tt.in)
	}
}

func TestGrowCapacity(t *testing.T) {
	assert.Equal(t, uint64(256), growCapacity(0, 10))
	assert.Equal(t, uint64(1024), growCapacity(256, 1000))
	assert.Equal(t, uint64(512), growCapacity(512, 512))
	assert.Zero(t, growCapacity(0, 25920)%4)
	assert.GreaterOrEqual(t, growCapacity(0, 25920), uint64(25920))
}
