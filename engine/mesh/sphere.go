// Package mesh builds procedural geometry: the UV-subdivided unit sphere for the lit scene and
// triangle-list circles for the 2D bacteria scene.
package mesh

import (
	"fmt"
	"math"
)

// DefaultSphereColor is the constant per-vertex color applied to every generated sphere vertex.
var DefaultSphereColor = [3]float32{0.7, 0.0, 0.9}

// SphereMesh holds the CPU-side geometry of a UV sphere of radius 1 centered at the origin.
// Vertices, Normals and Colors share the same ordering: latitude index j major, longitude index i minor.
type SphereMesh struct {
	// Detail is the subdivision count along both latitude and longitude.
	Detail int

	// Vertices are the unit-sphere positions, (Detail+1)² entries.
	Vertices [][3]float32

	// Normals equal the corresponding vertex positions.
	Normals [][3]float32

	// Colors holds one RGB triple per vertex.
	Colors [][3]float32

	// Indices groups vertices into triangles, two per grid cell, 6·Detail² entries.
	Indices []uint32
}

// GenerateSphere builds a unit sphere by latitude/longitude subdivision.
//
// The polar angle aj = j·π/detail and the azimuth ai = i·2π/detail for j, i in [0, detail],
// giving the vertex (sin(ai)·sin(aj), cos(aj), cos(ai)·sin(aj)). The first and last rings sit on
// the poles and collapse to a single point each; those vertices stay distinct in the index space.
// Each grid cell (j, i) emits the triangles (p1, p2, p1+1) and (p1+1, p2, p2+1) where
// p1 = j·(detail+1)+i and p2 = p1+detail+1.
//
// GenerateSphere panics if detail is not positive.
//
// Parameters:
//   - detail: the subdivision count along each axis (must be > 0)
//   - options: functional options such as WithColor
//
// Returns:
//   - *SphereMesh: the generated mesh
func GenerateSphere(detail int, options ...SphereOption) *SphereMesh {
	if detail <= 0 {
		panic(fmt.Sprintf("mesh: GenerateSphere requires a positive detail, got %d", detail))
	}

	cfg := sphereConfig{color: DefaultSphereColor}
	for _, opt := range options {
		opt(&cfg)
	}

	stride := detail + 1
	vertexCount := stride * stride
	m := &SphereMesh{
		Detail:   detail,
		Vertices: make([][3]float32, 0, vertexCount),
		Normals:  make([][3]float32, 0, vertexCount),
		Colors:   make([][3]float32, 0, vertexCount),
		Indices:  make([]uint32, 0, 6*detail*detail),
	}

	for j := 0; j <= detail; j++ {
		aj := float64(j) * math.Pi / float64(detail)
		sj, cj := math.Sin(aj), math.Cos(aj)
		for i := 0; i <= detail; i++ {
			ai := float64(i) * 2 * math.Pi / float64(detail)
			si, ci := math.Sin(ai), math.Cos(ai)

			v := [3]float32{float32(si * sj), float32(cj), float32(ci * sj)}
			m.Vertices = append(m.Vertices, v)
			m.Normals = append(m.Normals, v)
			m.Colors = append(m.Colors, cfg.color)
		}
	}

	for j := range detail {
		for i := range detail {
			p1 := uint32(j*stride + i)
			p2 := p1 + uint32(stride)
			m.Indices = append(m.Indices,
				p1, p2, p1+1,
				p1+1, p2, p2+1,
			)
		}
	}

	return m
}

// VertexCount returns the number of vertices in the mesh.
//
// Returns:
//   - int: (Detail+1)²
func (m *SphereMesh) VertexCount() int {
	return len(m.Vertices)
}

// IndexCount returns the number of indices in the mesh.
//
// Returns:
//   - int: 6·Detail²
func (m *SphereMesh) IndexCount() int {
	return len(m.Indices)
}

// Interleave packs positions, normals and colors into GPU vertices.
//
// Returns:
//   - []GPUVertex: one interleaved vertex per mesh vertex
func (m *SphereMesh) Interleave() []GPUVertex {
	out := make([]GPUVertex, len(m.Vertices))
	for i := range m.Vertices {
		out[i] = GPUVertex{
			Position: m.Vertices[i],
			Normal:   m.Normals[i],
			Color:    m.Colors[i],
		}
	}
	return out
}

// VertexData serializes the interleaved vertices for a vertex buffer upload.
//
// Returns:
//   - []byte: little-endian vertex bytes, GPUVertexSize bytes per vertex
func (m *SphereMesh) VertexData() []byte {
	verts := m.Interleave()
	buf := make([]byte, 0, len(verts)*GPUVertexSize)
	for i := range verts {
		buf = append(buf, verts[i].Marshal()...)
	}
	return buf
}
