package primitive

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
)

// Rock hull parts.
const (
	RockTop = iota
	RockSide
	RockBottom
)

// RockSegments is the number of angular segments of the rock hull.
const RockSegments = 16

var (
	rockTopApex    = common.Vec3{0, 0.7, 0}
	rockBottomApex = common.Vec3{0, -0.6, 0}
)

// rockRings returns the jagged top and bottom rim points for segment i.
func rockRings(i int) (top, bottom common.Vec3) {
	a := float32(i%RockSegments) * 360 / RockSegments
	s, c := sincos(a)
	rTop := 0.8 + 0.2*cosd(3*a)
	rBottom := 1 + 0.25*sind(3*a+40)
	yTop := 0.6 + 0.08*sind(4*a)
	yBottom := -0.5 + 0.07*cosd(5*a)
	return common.Vec3{rTop * c, yTop, rTop * s}, common.Vec3{rBottom * c, yBottom, rBottom * s}
}

// RockHull generates the faceted rock: a jagged top fan, a side band and a
// bottom fan, all flat shaded. With invertBottom set the bottom fan normals
// point into the hull.
//
// Parameters:
//   - invertBottom: flip the bottom cap normals
//
// Returns:
//   - iter.Seq[Triangle]: top, side and bottom triangles
func RockHull(invertBottom bool) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for i := 0; i < RockSegments; i++ {
			t0, _ := rockRings(i)
			t1, _ := rockRings(i + 1)
			if !flat(yield, RockTop, rockTopApex, t1, t0) {
				return
			}
		}
		for i := 0; i < RockSegments; i++ {
			t0, b0 := rockRings(i)
			t1, b1 := rockRings(i + 1)
			if !flatQuad(yield, RockSide, t0, t1, b1, b0) {
				return
			}
		}
		for i := 0; i < RockSegments; i++ {
			_, b0 := rockRings(i)
			_, b1 := rockRings(i + 1)
			n := FlatNormal(rockBottomApex, b0, b1)
			if invertBottom {
				n = n.Scale(-1)
			}
			t := Triangle{V: [3]Vertex{{rockBottomApex, n}, {b0, n}, {b1, n}}, Part: RockBottom}
			if !yield(t) {
				return
			}
		}
	}
}
