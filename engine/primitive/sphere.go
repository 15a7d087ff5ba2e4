package primitive

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
)

// DefaultBallIncrement is the ball band size in degrees.
const DefaultBallIncrement = 10

// DefaultHemisphereStep is the hemisphere band size in degrees.
const DefaultHemisphereStep = 15

// spherical returns the unit sphere point at azimuth th and latitude ph with
// the pole on +z.
func spherical(th, ph float32) common.Vec3 {
	st, ct := sincos(th)
	sp, cp := sincos(ph)
	return common.Vec3{st * cp, ct * cp, sp}
}

// Ball generates a unit sphere in latitude bands of inc degrees. inc is
// clamped to [1, 45]. Each vertex normal equals its position.
//
// Parameters:
//   - inc: band size in degrees
//
// Returns:
//   - iter.Seq[Triangle]: the sphere triangles
func Ball(inc int) iter.Seq[Triangle] {
	inc = common.Clamp(inc, 1, 45)
	d := float32(inc)
	return func(yield func(Triangle) bool) {
		for ph := float32(-90); ph < 90; ph += d {
			ph2 := min(ph+d, 90)
			n := steps(360, 2*d)
			for i := 0; i < n; i++ {
				th0 := at(0, 2*d, 360, i, n)
				th1 := at(0, 2*d, 360, i+1, n)
				p0, q0 := spherical(th0, ph), spherical(th0, ph2)
				p1, q1 := spherical(th1, ph), spherical(th1, ph2)
				if !quad(yield, 0, Vertex{p0, p0}, Vertex{q0, q0}, Vertex{q1, q1}, Vertex{p1, p1}) {
					return
				}
			}
		}
	}
}

// HemisphereFront generates a dome of radius r facing +x, built in bands of
// d degrees and open at its base. d <= 0 selects DefaultHemisphereStep.
//
// Parameters:
//   - r: dome radius
//   - d: band size in degrees
//
// Returns:
//   - iter.Seq[Triangle]: the dome triangles
func HemisphereFront(r, d float32) iter.Seq[Triangle] {
	if d <= 0 {
		d = DefaultHemisphereStep
	}
	d = min(d, 90)
	point := func(th, ph float32) Vertex {
		st, ct := sincos(th)
		sp, cp := sincos(ph)
		// dome on +y, turned -90 about z so the pole lands on +x
		n := common.Vec3{sp, -st * cp, ct * cp}
		return Vertex{Position: n.Scale(r), Normal: n}
	}
	return func(yield func(Triangle) bool) {
		bands := steps(90, d)
		rings := steps(360, d)
		for b := 0; b < bands; b++ {
			ph0 := at(0, d, 90, b, bands)
			ph1 := at(0, d, 90, b+1, bands)
			for i := 0; i < rings; i++ {
				th0 := at(0, d, 360, i, rings)
				th1 := at(0, d, 360, i+1, rings)
				if !quad(yield, 0, point(th0, ph1), point(th0, ph0), point(th1, ph0), point(th1, ph1)) {
					return
				}
			}
		}
	}
}
