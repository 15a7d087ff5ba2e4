// Package primitive holds the parametric surface generators. Every generator
// is a pure function of its parameters returning a finite, restartable
// triangle sequence; degenerate parameters are clamped, never rejected.
package primitive

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/chewxy/math32"
)

// Vertex is a generated surface point with its unit normal.
type Vertex struct {
	Position common.Vec3
	Normal   common.Vec3
}

// Triangle is three vertices in counter-clockwise order plus the index of the
// generator part (face, cap or side) it belongs to.
type Triangle struct {
	V    [3]Vertex
	Part int
}

// Segment is a line segment emitted by overlay generators.
type Segment struct {
	A, B common.Vec3
	Part int
}

// Count drains seq and returns the number of elements it yielded.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// FlatNormal returns the unit normal of the triangle (a, b, c) following the
// right-hand rule. A degenerate triangle yields the zero vector.
//
// Parameters:
//   - a, b, c: triangle corners in counter-clockwise order
//
// Returns:
//   - common.Vec3: the unit face normal
func FlatNormal(a, b, c common.Vec3) common.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// sincos returns the sine and cosine of an angle in degrees.
func sincos(deg float32) (float32, float32) {
	return math32.Sincos(deg * common.Deg2Rad)
}

func sind(deg float32) float32 { return math32.Sin(deg * common.Deg2Rad) }

func cosd(deg float32) float32 { return math32.Cos(deg * common.Deg2Rad) }

// steps returns how many steps of size step cover span, rounding up so the
// last sample lands on span.
func steps(span, step float32) int {
	if step <= 0 {
		return 0
	}
	n := int(math32.Ceil(span/step - 1e-4))
	return max(n, 1)
}

// at returns the i-th sample of a range starting at start with the given
// step, pinned to end on the final sample.
func at(start, step, end float32, i, n int) float32 {
	if i >= n {
		return end
	}
	return start + float32(i)*step
}

// quad emits the quad (a, b, c, d) as the triangles (a, b, c) and (a, c, d).
func quad(yield func(Triangle) bool, part int, a, b, c, d Vertex) bool {
	return yield(Triangle{V: [3]Vertex{a, b, c}, Part: part}) &&
		yield(Triangle{V: [3]Vertex{a, c, d}, Part: part})
}

// flat emits a single triangle with its face normal on every corner.
func flat(yield func(Triangle) bool, part int, a, b, c common.Vec3) bool {
	n := FlatNormal(a, b, c)
	return yield(Triangle{V: [3]Vertex{{a, n}, {b, n}, {c, n}}, Part: part})
}

// flatQuad emits the planar quad (a, b, c, d) with one face normal.
func flatQuad(yield func(Triangle) bool, part int, a, b, c, d common.Vec3) bool {
	n := FlatNormal(a, b, c)
	return quad(yield, part, Vertex{a, n}, Vertex{b, n}, Vertex{c, n}, Vertex{d, n})
}
