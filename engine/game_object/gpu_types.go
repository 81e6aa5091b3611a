package game_object

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-labs/common"
)

// GPUObjectUniformSize is the byte size of the WGSL ObjectUniform struct.
const GPUObjectUniformSize = 128

// GPUObjectUniform mirrors the WGSL ObjectUniform struct of the lit shader.
type GPUObjectUniform struct {
	Model        common.Mat4 // offset  0
	NormalMatrix common.Mat4 // offset 64
}

// Marshal serializes both matrices little-endian, column-major.
//
// Returns:
//   - []byte: the 128-byte buffer
func (g *GPUObjectUniform) Marshal() []byte {
	buf := make([]byte, GPUObjectUniformSize)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.NormalMatrix[i]))
	}
	return buf
}
