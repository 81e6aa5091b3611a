package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSphereCounts(t *testing.T) {
	for _, detail := range []int{1, 2, 3, 7, 15, 16, 40} {
		m := GenerateSphere(detail)

		stride := detail + 1
		require.Equal(t, stride*stride, m.VertexCount(), "detail %d", detail)
		require.Equal(t, 6*detail*detail, m.IndexCount(), "detail %d", detail)
		require.Len(t, m.Normals, m.VertexCount())
		require.Len(t, m.Colors, m.VertexCount())

		for i, idx := range m.Indices {
			require.Less(t, int(idx), m.VertexCount(), "index %d out of range at detail %d", i, detail)
		}
	}
}

func TestGenerateSphereDefaultDetail(t *testing.T) {
	m := GenerateSphere(15)
	assert.Equal(t, 256, m.VertexCount())
	assert.Equal(t, 1350, m.IndexCount())
}

func TestGenerateSphereUnitVertices(t *testing.T) {
	m := GenerateSphere(12)
	for i, v := range m.Vertices {
		l := math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
		assert.InDelta(t, 1.0, l, 1e-6, "vertex %d", i)
		assert.Equal(t, v, m.Normals[i], "normal %d must equal its vertex", i)
	}
}

func TestGenerateSpherePoles(t *testing.T) {
	detail := 6
	m := GenerateSphere(detail)
	stride := detail + 1
	for i := range stride {
		north := m.Vertices[i]
		south := m.Vertices[detail*stride+i]
		assert.InDelta(t, 1, north[1], 1e-6)
		assert.InDelta(t, -1, south[1], 1e-6)
		assert.InDelta(t, 0, north[0], 1e-6)
		assert.InDelta(t, 0, south[2], 1e-6)
	}
}

func TestGenerateSphereFirstCellWinding(t *testing.T) {
	m := GenerateSphere(4)
	// p1 = 0, p2 = 5
	assert.Equal(t, []uint32{0, 5, 1, 1, 5, 6}, m.Indices[:6])
	// last cell: j = 3, i = 3 -> p1 = 18, p2 = 23
	assert.Equal(t, []uint32{18, 23, 19, 19, 23, 24}, m.Indices[len(m.Indices)-6:])
}

func TestGenerateSphereColor(t *testing.T) {
	m := GenerateSphere(3)
	for _, c := range m.Colors {
		assert.Equal(t, DefaultSphereColor, c)
	}

	m = GenerateSphere(3, WithColor(1, 0.5, 0))
	for _, c := range m.Colors {
		assert.Equal(t, [3]float32{1, 0.5, 0}, c)
	}
}

func TestGenerateSpherePanicsOnNonPositiveDetail(t *testing.T) {
	assert.Panics(t, func() { GenerateSphere(0) })
	assert.Panics(t, func() { GenerateSphere(-3) })
}

func TestIndexFormatBoundary(t *testing.T) {
	tests := []struct {
		detail int
		want   IndexFormat
	}{
		{1, IndexFormatUint8},
		{15, IndexFormatUint8},
		{16, IndexFormatUint16},
		{255, IndexFormatUint16},
		{256, IndexFormatUint32},
	}
	for _, tt := range tests {
		m := &SphereMesh{Vertices: make([][3]float32, (tt.detail+1)*(tt.detail+1))}
		assert.Equal(t, tt.want, m.IndexFormat(), "detail %d", tt.detail)
	}
}

func TestIndexData(t *testing.T) {
	m := GenerateSphere(15)
	data := m.IndexData()
	require.Len(t, data, m.IndexCount())
	for i, idx := range m.Indices {
		require.Equal(t, byte(idx), data[i])
	}

	wide := GenerateSphere(16)
	data = wide.IndexData()
	require.Len(t, data, 2*wide.IndexCount())
	assert.Equal(t, uint16(wide.Indices[7]), binary.LittleEndian.Uint16(data[14:]))
}

func TestGPUIndexDataWidensByteIndices(t *testing.T) {
	m := GenerateSphere(15)
	data, format := m.GPUIndexData()
	assert.Equal(t, IndexFormatUint16, format)
	assert.Zero(t, len(data)%4)
	require.GreaterOrEqual(t, len(data), 2*m.IndexCount())
	for i, idx := range m.Indices {
		require.Equal(t, uint16(idx), binary.LittleEndian.Uint16(data[i*2:]))
	}
}

func TestVertexData(t *testing.T) {
	m := GenerateSphere(2)
	data := m.VertexData()
	require.Len(t, data, m.VertexCount()*GPUVertexSize)

	v := m.Vertices[4]
	off := 4 * GPUVertexSize
	assert.Equal(t, v[0], math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
	assert.Equal(t, m.Colors[4][2], math.Float32frombits(binary.LittleEndian.Uint32(data[off+32:])))

	var g GPUVertex
	assert.Equal(t, GPUVertexSize, g.Size())
}
