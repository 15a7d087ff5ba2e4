package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexStride is the byte size of one GPUVertex in a vertex buffer.
const GPUVertexStride = 64

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct in the renderer's scene shader.
// Size: 64 bytes (std430 aligned, no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in world space (12 bytes)
	Normal   [3]float32 // offset 12: unit surface normal (12 bytes)
	Color    [4]float32 // offset 24: ambient and diffuse RGBA color (16 bytes)
	Emission [4]float32 // offset 40: emitted RGB, w unused (16 bytes)
	Material [2]float32 // offset 56: specular level (x) and shininess exponent (y) (8 bytes)
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
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexStride)
	fields := [16]float32{
		g.Position[0], g.Position[1], g.Position[2],
		g.Normal[0], g.Normal[1], g.Normal[2],
		g.Color[0], g.Color[1], g.Color[2], g.Color[3],
		g.Emission[0], g.Emission[1], g.Emission[2], g.Emission[3],
		g.Material[0], g.Material[1],
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(f))
	}
	return buf
}
