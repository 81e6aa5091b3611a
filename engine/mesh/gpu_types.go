package mesh

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSize is the size of a GPUVertex in bytes.
const GPUVertexSize = 36

// GPUVertex is the GPU-aligned representation of a single lit mesh vertex.
// Matches the WGSL VertexInput struct of the lit sphere pipeline
// (location 0 position, 1 normal, 2 color).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	Color    [3]float32 // offset 24: per-vertex RGB color (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 36-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexSize)
	fields := [3][3]float32{g.Position, g.Normal, g.Color}
	for f, v := range fields {
		for c := range 3 {
			binary.LittleEndian.PutUint32(buf[(f*3+c)*4:], math.Float32bits(v[c]))
		}
	}
	return buf
}

// IndexFormat is the element width of an index buffer.
type IndexFormat int

const (
	// IndexFormatUint8 stores one byte per index and addresses at most 256 vertices.
	IndexFormatUint8 IndexFormat = iota
	// IndexFormatUint16 stores two bytes per index and addresses at most 65536 vertices.
	IndexFormatUint16
	// IndexFormatUint32 stores four bytes per index.
	IndexFormatUint32
)

// String returns a readable name for the format.
func (f IndexFormat) String() string {
	switch f {
	case IndexFormatUint8:
		return "uint8"
	case IndexFormatUint16:
		return "uint16"
	default:
		return "uint32"
	}
}

// ByteSize returns the number of bytes per index.
func (f IndexFormat) ByteSize() int {
	switch f {
	case IndexFormatUint8:
		return 1
	case IndexFormatUint16:
		return 2
	default:
		return 4
	}
}

// IndexFormat returns the narrowest index width able to address every vertex of the mesh.
// A detail of 15 (256 vertices) is the largest sphere that fits an 8-bit index buffer.
//
// Returns:
//   - IndexFormat: the narrowest sufficient format
func (m *SphereMesh) IndexFormat() IndexFormat {
	return indexFormatFor(m.VertexCount())
}

// IndexData serializes the indices using IndexFormat.
//
// Returns:
//   - []byte: little-endian index bytes
func (m *SphereMesh) IndexData() []byte {
	return encodeIndices(m.Indices, m.IndexFormat())
}

// GPUIndexData serializes the indices for APIs without 8-bit index support (WebGPU).
// 8-bit data is widened to 16 bits and the returned buffer is padded to a 4-byte multiple
// as required by queue writes.
//
// Returns:
//   - []byte: little-endian index bytes
//   - IndexFormat: IndexFormatUint16 or IndexFormatUint32
func (m *SphereMesh) GPUIndexData() ([]byte, IndexFormat) {
	format := m.IndexFormat()
	if format == IndexFormatUint8 {
		format = IndexFormatUint16
	}
	buf := encodeIndices(m.Indices, format)
	if pad := len(buf) % 4; pad != 0 {
		buf = append(buf, make([]byte, 4-pad)...)
	}
	return buf, format
}

func indexFormatFor(vertexCount int) IndexFormat {
	switch {
	case vertexCount <= 1<<8:
		return IndexFormatUint8
	case vertexCount <= 1<<16:
		return IndexFormatUint16
	default:
		return IndexFormatUint32
	}
}

func encodeIndices(indices []uint32, format IndexFormat) []byte {
	size := format.ByteSize()
	buf := make([]byte, len(indices)*size)
	for i, idx := range indices {
		switch format {
		case IndexFormatUint8:
			buf[i] = byte(idx)
		case IndexFormatUint16:
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(idx))
		default:
			binary.LittleEndian.PutUint32(buf[i*4:], idx)
		}
	}
	return buf
}
