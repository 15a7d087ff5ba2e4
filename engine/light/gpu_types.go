package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Indices into GPULight.Flags.
const (
	FlagLighting    = 0
	FlagLocalViewer = 1
	FlagSmooth      = 2
)

// GPULight is the GPU-aligned light block of the frame uniform.
// Size: 80 bytes (WGSL aligned).
type GPULight struct {
	Position [4]float32 // offset  0: world-space position, w = 1
	Ambient  [4]float32 // offset 16: ambient color
	Diffuse  [4]float32 // offset 32: diffuse color
	Specular [4]float32 // offset 48: specular color
	Flags    [4]uint32  // offset 64: lighting, local viewer, smooth, unused
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i, v := range [4][4]float32{g.Position, g.Ambient, g.Diffuse, g.Specular} {
		for j := range 4 {
			binary.LittleEndian.PutUint32(buf[i*16+j*4:], math.Float32bits(v[j]))
		}
	}
	for j := range 4 {
		binary.LittleEndian.PutUint32(buf[64+j*4:], g.Flags[j])
	}
	return buf
}
