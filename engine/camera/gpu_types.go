package camera

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-labs/common"
)

// GPUCameraUniformSize is the byte size of the WGSL CameraUniform struct.
const GPUCameraUniformSize = 80

// GPUCameraUniform mirrors the WGSL CameraUniform struct of the lit shader.
type GPUCameraUniform struct {
	ViewProj       common.Mat4 // offset  0: mat4x4<f32>
	CameraPosition [3]float32  // offset 64: vec3<f32>, padded to 80
}

// Marshal serializes the uniform little-endian with its trailing padding.
//
// Returns:
//   - []byte: the 80-byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, GPUCameraUniformSize)
	for i, v := range g.ViewProj {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	for i, v := range g.CameraPosition {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(v))
	}
	return buf
}
