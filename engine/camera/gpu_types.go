package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCamera is the GPU-aligned camera block of the frame uniform.
// Size: 96 bytes (WGSL aligned).
type GPUCamera struct {
	ViewProj [16]float32 // offset  0: combined view-projection matrix (mat4x4<f32>)
	Eye      [4]float32  // offset 64: world-space eye point, w = 1
	ViewDir  [4]float32  // offset 80: unit direction toward the viewer, w = 0
}

// Size returns the size of the GPUCamera struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUCamera) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCamera struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCamera) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Eye[i]))
		binary.LittleEndian.PutUint32(buf[80+i*4:], math.Float32bits(g.ViewDir[i]))
	}
	return buf
}
