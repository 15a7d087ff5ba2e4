package camera

import (
	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/chewxy/math32"
)

// Projection selects how a Camera maps the scene to the screen.
type Projection int

const (
	// ProjectionOrthographic looks at the origin along a fixed box rotated by
	// elevation then azimuth.
	ProjectionOrthographic Projection = iota

	// ProjectionPerspective orbits the origin at twice the view dimension.
	ProjectionPerspective

	// ProjectionFirstPerson looks from a free eye point along yaw and pitch.
	ProjectionFirstPerson
)

// String returns the HUD label for the projection.
func (p Projection) String() string {
	switch p {
	case ProjectionOrthographic:
		return "Orthogonal"
	case ProjectionPerspective:
		return "Perspective"
	case ProjectionFirstPerson:
		return "FirstPerson"
	default:
		return "Unknown"
	}
}

// View is the full set of user-controlled camera parameters. Demos keep a
// View inside their state and hand a copy to the camera each frame.
type View struct {
	Projection Projection

	// Dim is the half size of the orthographic box and half the orbit radius.
	Dim float32
	// Fov is the vertical field of view in degrees.
	Fov float32

	// Azimuth and Elevation orient the orthographic and orbit views, in degrees.
	Azimuth   float32
	Elevation float32

	// Eye, Yaw and Pitch place the first-person camera.
	Eye   common.Vec3
	Yaw   float32
	Pitch float32
}

// DefaultView is a perspective view with a 55 degree field of view and a
// view dimension of 5.
var DefaultView = View{
	Projection: ProjectionPerspective,
	Dim:        5,
	Fov:        55,
}

// OrbitEye returns the eye point of the orbit camera for the given view angles
// and dimension. The eye sits at distance 2*dim from the origin.
//
// Parameters:
//   - azimuth: rotation about the y axis in degrees
//   - elevation: angle above the xz plane in degrees
//   - dim: view dimension
//
// Returns:
//   - common.Vec3: the eye point
func OrbitEye(azimuth, elevation, dim float32) common.Vec3 {
	st, ct := math32.Sincos(azimuth * common.Deg2Rad)
	sp, cp := math32.Sincos(elevation * common.Deg2Rad)
	r := 2 * dim
	return common.Vec3{-r * st * cp, r * sp, r * ct * cp}
}

// Forward returns the unit look direction of the first-person camera.
//
// Parameters:
//   - yaw: heading in degrees
//   - pitch: angle above the horizon in degrees
//
// Returns:
//   - common.Vec3: the look direction
func Forward(yaw, pitch float32) common.Vec3 {
	sy, cy := math32.Sincos(yaw * common.Deg2Rad)
	sp, cp := math32.Sincos(pitch * common.Deg2Rad)
	return common.Vec3{-sy * cp, sp, cy * cp}
}

// Strafe returns the horizontal unit vector a first-person camera moves along
// when strafing left.
//
// Parameters:
//   - yaw: heading in degrees
//
// Returns:
//   - common.Vec3: the strafe direction
func Strafe(yaw float32) common.Vec3 {
	sy, cy := math32.Sincos(yaw * common.Deg2Rad)
	return common.Vec3{cy, 0, sy}
}

// Move advances the first-person eye by step along the look direction.
// Negative steps move backwards.
func (v *View) Move(step float32) {
	f := Forward(v.Yaw, v.Pitch)
	v.Eye = common.Vec3{v.Eye[0] + step*f[0], v.Eye[1] + step*f[1], v.Eye[2] + step*f[2]}
}

// Sidestep moves the first-person eye by step on the horizontal plane.
// Positive steps strafe left.
func (v *View) Sidestep(step float32) {
	r := Strafe(v.Yaw)
	v.Eye = common.Vec3{v.Eye[0] + step*r[0], v.Eye[1], v.Eye[2] + step*r[2]}
}
