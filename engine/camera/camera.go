package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/chewxy/math32"
)

type cameraImpl struct {
	mu *sync.Mutex

	view   View
	aspect float32

	eye     common.Vec3
	viewDir common.Vec3

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera defines the interface for the camera system.
// The camera holds a View and the window aspect ratio and computes the view and
// projection matrices whenever either changes.
type Camera interface {
	// View returns a copy of the current view parameters.
	//
	// Returns:
	//   - View: the view parameters
	View() View

	// SetView replaces the view parameters and recomputes matrices.
	//
	// Parameters:
	//   - v: the new view parameters
	SetView(v View)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio and recomputes matrices.
	// Non-positive values are treated as 1.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)

	// Eye returns the world-space eye point. For the orthographic view this is a
	// point on the view axis at twice the view dimension.
	//
	// Returns:
	//   - common.Vec3: the eye point
	Eye() common.Vec3

	// ViewDirection returns the unit vector from the scene toward the viewer
	// along the view axis. Used for non-local specular highlights.
	//
	// Returns:
	//   - common.Vec3: the direction toward the viewer
	ViewDirection() common.Vec3

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// GPU packs the camera state for upload.
	//
	// Returns:
	//   - GPUCamera: the packed camera
	GPU() GPUCamera
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with DefaultView and aspect 1 unless
// overridden by options.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		view:   DefaultView,
		aspect: 1,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *cameraImpl) SetView(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = v
	c.updateMatrices()
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 {
		aspect = 1
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) Eye() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) ViewDirection() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewDir
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) GPU() GPUCamera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCamera{
		ViewProj: c.viewProjectionMatrix,
		Eye:      [4]float32{c.eye[0], c.eye[1], c.eye[2], 1},
		ViewDir:  [4]float32{c.viewDir[0], c.viewDir[1], c.viewDir[2], 0},
	}
}

// updateMatrices recalculates the view, projection and view-projection matrices
// and the derived eye point. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	v := c.view
	dim := v.Dim
	if dim <= 0 {
		dim = DefaultView.Dim
	}

	switch v.Projection {
	case ProjectionOrthographic:
		view := common.Rotation(v.Elevation, 1, 0, 0).Mul(common.Rotation(v.Azimuth, 0, 1, 0))
		c.viewMatrix = view
		common.Orthographic(c.projectionMatrix[:], -c.aspect*dim, c.aspect*dim, -dim, dim, -dim, dim)

		// The inverse of a pure rotation is its transpose: row 2 is the view axis.
		c.viewDir = common.Vec3{view[2], view[6], view[10]}
		c.eye = c.viewDir.Scale(2 * dim)
	case ProjectionFirstPerson:
		f := Forward(v.Yaw, v.Pitch)
		e := v.Eye
		common.LookAt(c.viewMatrix[:], e[0], e[1], e[2], e[0]+f[0], e[1]+f[1], e[2]+f[2], 0, 1, 0)
		c.perspective(v.Fov, dim)
		c.eye = e
		c.viewDir = f.Scale(-1)
	default:
		e := OrbitEye(v.Azimuth, v.Elevation, dim)
		// Tangent of the orbit along increasing elevation. Orthogonalizes to the
		// same basis as up (0, cos ph, 0) and stays valid at the poles.
		st, ct := math32.Sincos(v.Azimuth * common.Deg2Rad)
		sp, cp := math32.Sincos(v.Elevation * common.Deg2Rad)
		common.LookAt(c.viewMatrix[:], e[0], e[1], e[2], 0, 0, 0, st*sp, cp, -ct*sp)
		c.perspective(v.Fov, dim)
		c.eye = e
		c.viewDir = e.Normalize()
	}

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}

// perspective fills the projection matrix for fov degrees with clip planes
// at dim/4 and 4*dim. Caller must hold the mutex.
func (c *cameraImpl) perspective(fov, dim float32) {
	fov = common.Clamp(fov, 1, 179)
	common.Perspective(c.projectionMatrix[:], fov*common.Deg2Rad, c.aspect, dim/4, 4*dim)
}
