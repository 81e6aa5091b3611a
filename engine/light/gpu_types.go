package light

import (
	"encoding/binary"
	"math"
)

// GPUDirectionalLightSize is the byte size of the WGSL DirectionalLight struct.
const GPUDirectionalLightSize = 32

// GPUDirectionalLight mirrors the WGSL DirectionalLight struct. Each vec3 occupies 16 bytes.
type GPUDirectionalLight struct {
	Color     [3]float32 // offset  0
	Direction [3]float32 // offset 16
}

// Marshal serializes the light little-endian with vec3 padding.
//
// Returns:
//   - []byte: the 32-byte buffer
func (g *GPUDirectionalLight) Marshal() []byte {
	buf := make([]byte, GPUDirectionalLightSize)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Color[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Direction[i]))
	}
	return buf
}
