package light

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red component
//   - g: the green component
//   - b: the blue component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithAmbient is an option builder that sets the ambient intensity, clamped to [0, 1].
//
// Parameters:
//   - ambient: the ambient intensity
//
// Returns:
//   - LightBuilderOption: a function that applies the ambient option to a lightImpl
func WithAmbient(ambient float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = clamp01(ambient)
	}
}

// WithDiffuse is an option builder that sets the diffuse intensity.
//
// Parameters:
//   - diffuse: the diffuse intensity
//
// Returns:
//   - LightBuilderOption: a function that applies the diffuse option to a lightImpl
func WithDiffuse(diffuse float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuse = max(diffuse, 0)
	}
}

// WithSpecular is an option builder that sets the specular intensity.
//
// Parameters:
//   - specular: the specular intensity
//
// Returns:
//   - LightBuilderOption: a function that applies the specular option to a lightImpl
func WithSpecular(specular float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.specular = max(specular, 0)
	}
}

// WithEnabled is an option builder that sets whether lighting is applied.
//
// Parameters:
//   - enabled: true to light the scene
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// WithLocalViewer is an option builder that selects local viewer specular.
//
// Parameters:
//   - local: true for a local viewer
//
// Returns:
//   - LightBuilderOption: a function that applies the local viewer option to a lightImpl
func WithLocalViewer(local bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.localViewer = local
	}
}

// WithSmooth is an option builder that selects smooth or flat shading.
//
// Parameters:
//   - smooth: true for smooth shading
//
// Returns:
//   - LightBuilderOption: a function that applies the smooth option to a lightImpl
func WithSmooth(smooth bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.smooth = smooth
	}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
