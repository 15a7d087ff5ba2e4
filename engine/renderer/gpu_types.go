package renderer

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/light"
)

// SceneShaderSource is the WGSL module shared by the triangle and line pipelines.
// Its Frame struct matches GPUFrame exactly.
//
//go:embed assets/scene.wgsl
var SceneShaderSource string

// Shader entry points in SceneShaderSource.
const (
	vertexEntryPoint       = "vs_main"
	litFragmentEntryPoint  = "fs_lit"
	lineFragmentEntryPoint = "fs_unlit"
)

// GPUFrameSize is the size of the frame uniform in bytes.
const GPUFrameSize = 176

// GPUFrame is the per-frame uniform: the camera block followed by the light block.
// Size: 176 bytes (WGSL aligned).
type GPUFrame struct {
	Camera camera.GPUCamera // offset  0: view projection, eye, view direction
	Light  light.GPULight   // offset 96: light colors, position and shading flags
}

// Size returns the size of the GPUFrame struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (176)
func (g *GPUFrame) Size() int {
	return g.Camera.Size() + g.Light.Size()
}

// Marshal serializes the GPUFrame struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUFrame) Marshal() []byte {
	buf := make([]byte, 0, g.Size())
	buf = append(buf, g.Camera.Marshal()...)
	buf = append(buf, g.Light.Marshal()...)
	return buf
}
