package renderer

import "errors"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4; higher values are adapter-dependent.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent.
	MSAA16x MSAASampleCount = 16
)

var (
	// ErrFrameInFlight is returned by BeginFrame while the previous surface
	// texture has not been presented yet.
	ErrFrameInFlight = errors.New("previous frame surface not yet presented")

	// ErrUnknownMesh is returned by Draw for a key that was never uploaded.
	ErrUnknownMesh = errors.New("mesh not uploaded")
)

// minBufferSize is the smallest GPU mesh buffer the backend allocates.
const minBufferSize = 4096

// nextCapacity returns the buffer size to allocate for need bytes when the
// current buffer holds have bytes. The current size is kept when it fits;
// otherwise it doubles from max(have, minBufferSize) until need fits.
// The result is a multiple of 4 as queue writes require.
func nextCapacity(need, have uint64) uint64 {
	if need <= have {
		return have
	}
	c := max(have, minBufferSize)
	for c < need {
		c *= 2
	}
	return (c + 3) &^ 3
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
