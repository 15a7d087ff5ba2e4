package primitive

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
)

// Axes generates three segments from the origin along +x, +y and +z. The
// segment part is the axis index.
//
// Parameters:
//   - length: segment length
//
// Returns:
//   - iter.Seq[Segment]: the x, y and z segments
func Axes(length float32) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 0; i < 3; i++ {
			var tip common.Vec3
			tip[i] = length
			if !yield(Segment{B: tip, Part: i}) {
				return
			}
		}
	}
}

// Polyline turns the points into consecutive segments p0-p1, p1-p2 and so on.
//
// Parameters:
//   - points: polyline vertices
//
// Returns:
//   - iter.Seq[Segment]: len(points)-1 segments
func Polyline(points []common.Vec3) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 1; i < len(points); i++ {
			if !yield(Segment{A: points[i-1], B: points[i]}) {
				return
			}
		}
	}
}
