package primitive

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
)

// TorusPoint returns the surface point and unit normal of a torus with major
// radius R and minor radius r at major angle u and minor angle v (degrees).
// The torus lies around the z axis.
func TorusPoint(R, r, u, v float32) Vertex {
	su, cu := sincos(u)
	sv, cv := sincos(v)
	return Vertex{
		Position: common.Vec3{(R + r*cv) * cu, (R + r*cv) * su, r * sv},
		Normal:   common.Vec3{cv * cu, cv * su, sv},
	}
}

// Torus generates a torus section swept sweep degrees around the z axis.
// rings and sides are clamped to at least 3 and sweep to [0, 360]; the
// result always holds exactly rings*sides*2 triangles. With a full sweep the
// first and last ring coincide.
//
// Parameters:
//   - R: major radius
//   - r: tube radius
//   - sweep: swept angle in degrees
//   - rings: segments along the sweep
//   - sides: segments around the tube
//
// Returns:
//   - iter.Seq[Triangle]: the torus triangles
func Torus(R, r, sweep float32, rings, sides int) iter.Seq[Triangle] {
	rings = max(rings, 3)
	sides = max(sides, 3)
	sweep = common.Clamp(sweep, 0, 360)
	du := sweep / float32(rings)
	dv := 360 / float32(sides)
	return func(yield func(Triangle) bool) {
		for j := 0; j < sides; j++ {
			v0 := float32(j) * dv
			v1 := float32(j+1) * dv
			for i := 0; i < rings; i++ {
				u0 := float32(i) * du
				u1 := float32(i+1) * du
				if i == rings-1 {
					u1 = sweep
				}
				p0, q0 := TorusPoint(R, r, u0, v1), TorusPoint(R, r, u0, v0)
				p1, q1 := TorusPoint(R, r, u1, v1), TorusPoint(R, r, u1, v0)
				if !quad(yield, 0, p0, q0, q1, p1) {
					return
				}
			}
		}
	}
}
