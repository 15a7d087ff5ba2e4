package primitive

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
)

// Extruded triangle parts.
const (
	PrismFront = iota
	PrismBack
	PrismSide
)

// ExtrudedTriangle generates the prism swept by the triangle (A, B, C) moved
// T along +z. The front cap keeps the A, B, C order, the back cap is wound
// C, B, A and each side is a quad; all normals are face normals.
//
// Parameters:
//   - a, b, c: triangle corners
//   - T: extrusion depth along z
//
// Returns:
//   - iter.Seq[Triangle]: front, back and side triangles
func ExtrudedTriangle(a, b, c common.Vec3, T float32) iter.Seq[Triangle] {
	push := func(p common.Vec3) common.Vec3 { return common.Vec3{p[0], p[1], p[2] + T} }
	a2, b2, c2 := push(a), push(b), push(c)
	return func(yield func(Triangle) bool) {
		if !flat(yield, PrismFront, a, b, c) || !flat(yield, PrismBack, c2, b2, a2) {
			return
		}
		edges := [3][4]common.Vec3{
			{a, b, b2, a2},
			{b, c, c2, b2},
			{c, a, a2, c2},
		}
		for _, e := range edges {
			if !flatQuad(yield, PrismSide, e[0], e[1], e[2], e[3]) {
				return
			}
		}
	}
}
