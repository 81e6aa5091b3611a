package mesh

import "math"

// DefaultCircleSegments is the triangle count used for a filled circle.
const DefaultCircleSegments = 360

// CircleFan returns triangle-list geometry for a filled circle centered at (cx, cy).
// Every triangle shares the center vertex, so the result holds 3·segments points.
//
// Parameters:
//   - cx, cy: the circle center
//   - r: the circle radius
//   - segments: the number of triangles (values below 3 are raised to 3)
//
// Returns:
//   - [][2]float32: the triangle vertices in draw order
func CircleFan(cx, cy, r float32, segments int) [][2]float32 {
	segments = max(segments, 3)
	out := make([][2]float32, 0, 3*segments)

	step := 2 * math.Pi / float64(segments)
	prev := [2]float32{cx, cy + r}
	for k := 1; k <= segments; k++ {
		a := float64(k) * step
		next := [2]float32{
			cx + r*float32(math.Sin(a)),
			cy + r*float32(math.Cos(a)),
		}
		out = append(out, [2]float32{cx, cy}, prev, next)
		prev = next
	}
	return out
}

// CircleData serializes CircleFan geometry as tightly packed float32 pairs.
//
// Parameters:
//   - points: the points to serialize
//
// Returns:
//   - []byte: little-endian bytes, 8 per point
func CircleData(points [][2]float32) []byte {
	buf := make([]byte, 0, len(points)*8)
	for _, p := range points {
		buf = appendFloat32(buf, p[0])
		buf = appendFloat32(buf, p[1])
	}
	return buf
}

// ColoredVertexSize is the byte size of one flat pipeline vertex: a vec2 position and a vec4 color.
const ColoredVertexSize = 24

// AppendColoredCircle appends a filled circle as flat pipeline vertices, every vertex carrying the
// same color.
//
// Parameters:
//   - buf: the buffer to append to
//   - cx, cy: the circle center
//   - r: the circle radius
//   - segments: the number of triangles
//   - color: the RGBA fill color
//
// Returns:
//   - []byte: buf with 3·segments vertices appended
func AppendColoredCircle(buf []byte, cx, cy, r float32, segments int, color [4]float32) []byte {
	for _, p := range CircleFan(cx, cy, r, segments) {
		buf = appendFloat32(buf, p[0])
		buf = appendFloat32(buf, p[1])
		for _, c := range color {
			buf = appendFloat32(buf, c)
		}
	}
	return buf
}

func appendFloat32(buf []byte, v float32) []byte {
	b := math.Float32bits(v)
	return append(buf, byte(b), byte(b>>8), byte(b>>16), byte(b>>24))
}
