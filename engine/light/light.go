package light

import "sync"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	position    [3]float32
	color       [3]float32
	ambient     float32
	diffuse     float32
	specular    float32
	enabled     bool
	localViewer bool
	smooth      bool
}

// Light defines the interface for the single positional light of a demo scene.
//
// The light follows the fixed-function model: a grey ambient term plus white
// diffuse and specular terms scaled by the per-vertex material. When disabled
// every surface is drawn with its flat material color.
type Light interface {
	// Enabled reports whether lighting is applied at all.
	//
	// Returns:
	//   - bool: true if lighting is on
	Enabled() bool

	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Color returns the RGB color shared by the diffuse and specular terms.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Ambient returns the ambient intensity in [0, 1].
	//
	// Returns:
	//   - float32: the ambient intensity
	Ambient() float32

	// Diffuse returns the diffuse intensity.
	//
	// Returns:
	//   - float32: the diffuse intensity
	Diffuse() float32

	// Specular returns the specular intensity.
	//
	// Returns:
	//   - float32: the specular intensity
	Specular() float32

	// LocalViewer reports whether specular highlights use the true eye point
	// instead of a viewer at infinity.
	//
	// Returns:
	//   - bool: true for a local viewer
	LocalViewer() bool

	// Smooth reports whether normals are interpolated across faces.
	// When false each triangle is shaded with its face normal.
	//
	// Returns:
	//   - bool: true for smooth shading
	Smooth() bool

	// SetEnabled turns lighting on or off.
	//
	// Parameters:
	//   - enabled: true to light the scene
	SetEnabled(enabled bool)

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetAmbient sets the ambient intensity, clamped to [0, 1].
	//
	// Parameters:
	//   - ambient: the ambient intensity
	SetAmbient(ambient float32)

	// SetDiffuse sets the diffuse intensity. Negative values clamp to 0.
	//
	// Parameters:
	//   - diffuse: the diffuse intensity
	SetDiffuse(diffuse float32)

	// SetSpecular sets the specular intensity. Negative values clamp to 0.
	//
	// Parameters:
	//   - specular: the specular intensity
	SetSpecular(specular float32)

	// SetLocalViewer selects local or infinite viewer specular.
	//
	// Parameters:
	//   - local: true for a local viewer
	SetLocalViewer(local bool)

	// SetSmooth selects smooth or flat shading.
	//
	// Parameters:
	//   - smooth: true for smooth shading
	SetSmooth(smooth bool)

	// GPU packs the light state for upload.
	//
	// Returns:
	//   - GPULight: the packed light
	GPU() GPULight
}

var _ Light = &lightImpl{}

// NewLight creates a new Light with sensible defaults and any provided options applied.
// Defaults: enabled, white, at (0, 3, 0), ambient 0.3, diffuse 1, specular 1, smooth.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:       &sync.Mutex{},
		position: [3]float32{0, 3, 0},
		color:    [3]float32{1, 1, 1},
		ambient:  0.3,
		diffuse:  1,
		specular: 1,
		enabled:  true,
		smooth:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) Position() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Ambient() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ambient
}

func (l *lightImpl) Diffuse() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.diffuse
}

func (l *lightImpl) Specular() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.specular
}

func (l *lightImpl) LocalViewer() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.localViewer
}

func (l *lightImpl) Smooth() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.smooth
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetAmbient(ambient float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ambient = clamp01(ambient)
}

func (l *lightImpl) SetDiffuse(diffuse float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diffuse = max(diffuse, 0)
}

func (l *lightImpl) SetSpecular(specular float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.specular = max(specular, 0)
}

func (l *lightImpl) SetLocalViewer(local bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.localViewer = local
}

func (l *lightImpl) SetSmooth(smooth bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.smooth = smooth
}

func (l *lightImpl) GPU() GPULight {
	l.mu.Lock()
	defer l.mu.Unlock()
	g := GPULight{
		Position: [4]float32{l.position[0], l.position[1], l.position[2], 1},
		Ambient:  [4]float32{l.ambient, l.ambient, l.ambient, 1},
		Diffuse:  [4]float32{l.color[0] * l.diffuse, l.color[1] * l.diffuse, l.color[2] * l.diffuse, 1},
		Specular: [4]float32{l.color[0] * l.specular, l.color[1] * l.specular, l.color[2] * l.specular, 1},
	}
	g.Flags[FlagLighting] = boolToU32(l.enabled)
	g.Flags[FlagLocalViewer] = boolToU32(l.localViewer)
	g.Flags[FlagSmooth] = boolToU32(l.smooth)
	return g
}
