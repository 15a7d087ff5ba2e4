package camera

type CameraBuilderOption func(*cameraImpl)

// WithView sets the camera's initial view parameters.
//
// Parameters:
//   - v: the view parameters
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's view
func WithView(v View) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.view = v
	}
}

// WithProjection sets the camera's projection mode.
//
// Parameters:
//   - p: the projection mode
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithProjection(p Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.view.Projection = p
	}
}

// WithDim sets the view dimension.
//
// Parameters:
//   - dim: half size of the orthographic box and half the orbit radius
//
// Returns:
//   - CameraBuilderOption: a function that sets the view dimension
func WithDim(dim float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.view.Dim = dim
	}
}

// WithFov sets the camera's field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.view.Fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}
