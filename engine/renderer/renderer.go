package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	pendingClearColor    *[3]float64
	shaderSource         string
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns two pipelines compiled from one WGSL module: a lit pipeline for
// triangle meshes and an unlit pipeline for line meshes. Meshes are uploaded under a
// string key each frame and drawn by key between BeginFrame and EndFrame; the pipeline
// is chosen from the mesh's topology.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the background color of the main pass.
	//
	// Parameters:
	//   - r, g, b: the clear color
	SetClearColor(r, g, b float64)

	// WriteFrame uploads the per-frame uniform (camera and light).
	//
	// Parameters:
	//   - frame: the frame uniform to upload
	WriteFrame(frame *GPUFrame)

	// UploadMesh writes the model's vertices and indices under key, reusing the key's
	// GPU buffers when they are large enough. Uploading an empty model clears the slot.
	//
	// Parameters:
	//   - key: the mesh slot
	//   - m: the model to upload
	//
	// Returns:
	//   - error: an error if a GPU buffer could not be created
	UploadMesh(key string, m model.Model) error

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	// Must be paired with EndFrame after all Draw invocations within a single frame.
	//
	// Returns:
	//   - error: ErrFrameInFlight or an error if the swapchain texture could not be acquired
	BeginFrame() error

	// Draw encodes the draw of the mesh uploaded under key within the current render pass.
	//
	// Parameters:
	//   - key: the mesh slot
	//
	// Returns:
	//   - error: ErrUnknownMesh if the key was never uploaded
	Draw(key string) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface; call Present() after EndFrame to display the frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the specified backend type for the given window,
// configures the surface to the window size and builds the scene pipelines.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window whose surface the renderer draws to
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new Renderer
//   - error: an error if the GPU device or pipelines could not be created
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:           &sync.Mutex{},
		backendType:  backendType,
		shaderSource: SceneShaderSource,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}
	if err != nil {
		return nil, fmt.Errorf("create renderer backend: %w", err)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	if r.pendingClearColor != nil {
		c := *r.pendingClearColor
		r.backend.SetClearColor(c[0], c[1], c[2])
	}

	r.backend.ConfigureSurface(window.Width(), window.Height())
	if err := r.backend.CreatePipelines(r.shaderSource); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetClearColor(red, green, blue float64) {
	r.backend.SetClearColor(red, green, blue)
}

func (r *renderer) WriteFrame(frame *GPUFrame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.WriteUniform(frame.Marshal())
}

func (r *renderer) UploadMesh(key string, m model.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.backend.WriteMesh(key, m.Topology(), m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		return fmt.Errorf("upload mesh %q: %w", key, err)
	}
	return nil
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) Draw(key string) error {
	return r.backend.DrawMesh(key)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}
