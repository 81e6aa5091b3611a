package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func length(v [3]float32) float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func TestNewLight_Defaults(t *testing.T) {
	l := NewLight()

	assert.Equal(t, DefaultColor, l.Color())
	assert.True(t, l.Enabled())
	assert.Equal(t, float32(1), l.Intensity())

	d := l.Direction()
	assert.InDelta(t, 1, length(d), 1e-6)
	norm := math.Sqrt(0.25 + 9 + 16)
	assert.InDelta(t, 0.5/norm, d[0], 1e-6)
	assert.InDelta(t, 3/norm, d[1], 1e-6)
	assert.InDelta(t, 4/norm, d[2], 1e-6)
}

func TestLight_SetDirection(t *testing.T) {
	l := NewLight(WithDirection([3]float32{0, 0, 2}))
	assert.Equal(t, [3]float32{0, 0, 1}, l.Direction())

	l.SetDirection([3]float32{})
	assert.Equal(t, [3]float32{0, 0, 1}, l.Direction(), "zero vector is ignored")
}

func TestLight_Uniform(t *testing.T) {
	l := NewLight(WithColor([3]float32{1, 0.5, 0}), WithIntensity(2))
	u := l.Uniform()
	assert.Equal(t, [3]float32{2, 1, 0}, u.Color)
	assert.Equal(t, l.Direction(), u.Direction)

	l.SetEnabled(false)
	assert.Equal(t, [3]float32{}, l.Uniform().Color)
}

func TestGPUDirectionalLight_Marshal(t *testing.T) {
	u := GPUDirectionalLight{Color: [3]float32{1, 2, 3}, Direction: [3]float32{4, 5, 6}}
	buf := u.Marshal()
	require.Len(t, buf, GPUDirectionalLightSize)

	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(3), f(8))
	assert.Equal(t, float32(0), f(12))
	assert.Equal(t, float32(4), f(16))
	assert.Equal(t, float32(6), f(24))
}
