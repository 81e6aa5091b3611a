package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleFan(t *testing.T) {
	pts := CircleFan(10, -5, 2, 36)
	require.Len(t, pts, 3*36)

	for k := 0; k < len(pts); k += 3 {
		assert.Equal(t, [2]float32{10, -5}, pts[k], "fan center")
		for _, p := range pts[k+1 : k+3] {
			d := math.Hypot(float64(p[0]-10), float64(p[1]+5))
			assert.InDelta(t, 2, d, 1e-5)
		}
	}

	// Consecutive triangles share an edge and the fan closes on itself.
	assert.Equal(t, pts[2], pts[4])
	assert.InDelta(t, pts[1][0], pts[len(pts)-1][0], 1e-5)
	assert.InDelta(t, pts[1][1], pts[len(pts)-1][1], 1e-5)
}

func TestCircleFanMinimumSegments(t *testing.T) {
	assert.Len(t, CircleFan(0, 0, 1, 0), 9)
}

func TestCircleData(t *testing.T) {
	data := CircleData(CircleFan(0, 0, 1, DefaultCircleSegments))
	assert.Len(t, data, 3*DefaultCircleSegments*8)
}

func TestAppendColoredCircle(t *testing.T) {
	color := [4]float32{0.25, 0.5, 0.75, 1}
	data := AppendColoredCircle([]byte{0xff}, 0, 0, 1, 4, color)
	require.Len(t, data, 1+3*4*ColoredVertexSize)
	assert.Equal(t, byte(0xff), data[0])

	// second vertex of the first triangle starts at the top of the circle
	v := data[1+ColoredVertexSize:]
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(v[0:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(v[4:])))
	for c := range 4 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(v[8+4*c:]))
		assert.Equal(t, color[c], got)
	}
}
