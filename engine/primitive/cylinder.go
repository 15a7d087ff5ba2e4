package primitive

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
)

// Rod parts.
const (
	RodSide = iota
	RodRightCap
	RodLeftCap
)

// Disk parts.
const (
	DiskBottom = iota
	DiskTop
	DiskSide
)

// DefaultConeStep is the cone slice size in degrees.
const DefaultConeStep = 15

// Rod generates a closed cylinder of the given length and radius along the x
// axis, centered on the origin. slices is clamped to at least 6.
//
// Parameters:
//   - length: extent along x
//   - radius: cylinder radius
//   - slices: segments around the axis
//
// Returns:
//   - iter.Seq[Triangle]: side, right cap and left cap triangles
func Rod(length, radius float32, slices int) iter.Seq[Triangle] {
	slices = max(slices, 6)
	h := length / 2
	d := 360 / float32(slices)
	ring := func(i int, x float32) Vertex {
		s, c := sincos(float32(i) * d)
		return Vertex{Position: common.Vec3{x, radius * c, radius * s}, Normal: common.Vec3{0, c, s}}
	}
	return func(yield func(Triangle) bool) {
		for i := 0; i < slices; i++ {
			if !quad(yield, RodSide, ring(i, h), ring(i, -h), ring(i+1, -h), ring(i+1, h)) {
				return
			}
		}
		right := common.Vec3{1, 0, 0}
		left := common.Vec3{-1, 0, 0}
		for i := 0; i < slices; i++ {
			a, b := ring(i, h).Position, ring(i+1, h).Position
			t := Triangle{V: [3]Vertex{{common.Vec3{h, 0, 0}, right}, {a, right}, {b, right}}, Part: RodRightCap}
			if !yield(t) {
				return
			}
		}
		for i := 0; i < slices; i++ {
			a, b := ring(i, -h).Position, ring(i+1, -h).Position
			t := Triangle{V: [3]Vertex{{common.Vec3{-h, 0, 0}, left}, {b, left}, {a, left}}, Part: RodLeftCap}
			if !yield(t) {
				return
			}
		}
	}
}

// ExtrudedDisk generates a disk of radius R in the xy plane extruded from
// z=0 to z=T. slices is clamped to at least 3.
//
// Parameters:
//   - R: disk radius
//   - T: thickness along z
//   - slices: segments around the rim
//
// Returns:
//   - iter.Seq[Triangle]: bottom, top and side triangles
func ExtrudedDisk(R, T float32, slices int) iter.Seq[Triangle] {
	slices = max(slices, 3)
	d := 360 / float32(slices)
	rim := func(i int, z float32) common.Vec3 {
		s, c := sincos(float32(i) * d)
		return common.Vec3{R * c, R * s, z}
	}
	return func(yield func(Triangle) bool) {
		down := common.Vec3{0, 0, -1}
		up := common.Vec3{0, 0, 1}
		for i := 0; i < slices; i++ {
			t := Triangle{V: [3]Vertex{{common.Vec3{}, down}, {rim(i+1, 0), down}, {rim(i, 0), down}}, Part: DiskBottom}
			if !yield(t) {
				return
			}
		}
		for i := 0; i < slices; i++ {
			t := Triangle{V: [3]Vertex{{common.Vec3{0, 0, T}, up}, {rim(i, T), up}, {rim(i+1, T), up}}, Part: DiskTop}
			if !yield(t) {
				return
			}
		}
		for i := 0; i < slices; i++ {
			s0, c0 := sincos(float32(i) * d)
			s1, c1 := sincos(float32(i+1) * d)
			n0, n1 := common.Vec3{c0, s0, 0}, common.Vec3{c1, s1, 0}
			if !quad(yield, DiskSide,
				Vertex{rim(i, T), n0}, Vertex{rim(i, 0), n0},
				Vertex{rim(i+1, 0), n1}, Vertex{rim(i+1, T), n1}) {
				return
			}
		}
	}
}

// TaperedTube generates an open tube along the x axis from baseX with radius
// r1 to topX with radius r2. step is the slice size in degrees, clamped to
// [1, 360]. Normals are radial, tilted by the taper.
//
// Parameters:
//   - baseX, topX: tube ends on the x axis
//   - r1, r2: radius at baseX and at topX
//   - step: slice size in degrees
//
// Returns:
//   - iter.Seq[Triangle]: the tube triangles
func TaperedTube(baseX, topX, r1, r2, step float32) iter.Seq[Triangle] {
	step = common.Clamp(step, 1, 360)
	var slope float32
	if span := topX - baseX; span != 0 {
		slope = (r1 - r2) / span
	}
	point := func(th, x, r float32) Vertex {
		s, c := sincos(th)
		return Vertex{
			Position: common.Vec3{x, r * c, r * s},
			Normal:   common.Vec3{slope, c, s}.Normalize(),
		}
	}
	return func(yield func(Triangle) bool) {
		n := steps(360, step)
		for i := 0; i < n; i++ {
			th0 := at(0, step, 360, i, n)
			th1 := at(0, step, 360, i+1, n)
			top0, base0 := point(th0, topX, r2), point(th0, baseX, r1)
			top1, base1 := point(th1, topX, r2), point(th1, baseX, r1)
			if topX < baseX {
				top0, base0, top1, base1 = base0, top0, base1, top1
			}
			if !quad(yield, 0, top0, base0, base1, top1) {
				return
			}
		}
	}
}

// ConeY generates the open lateral surface of a cone standing on the plane
// y=baseY with its apex at baseY+height. step <= 0 selects DefaultConeStep.
//
// Parameters:
//   - baseY: height of the base ring
//   - radius: base radius
//   - height: apex height above the base
//   - step: slice size in degrees
//
// Returns:
//   - iter.Seq[Triangle]: the cone triangles
func ConeY(baseY, radius, height, step float32) iter.Seq[Triangle] {
	if step <= 0 {
		step = DefaultConeStep
	}
	step = min(step, 360)
	slant := func(th float32) common.Vec3 {
		s, c := sincos(th)
		return common.Vec3{height * c, radius, height * s}.Normalize()
	}
	apex := common.Vec3{0, baseY + height, 0}
	return func(yield func(Triangle) bool) {
		n := steps(360, step)
		for i := 0; i < n; i++ {
			th0 := at(0, step, 360, i, n)
			th1 := at(0, step, 360, i+1, n)
			s0, c0 := sincos(th0)
			s1, c1 := sincos(th1)
			b0 := common.Vec3{radius * c0, baseY, radius * s0}
			b1 := common.Vec3{radius * c1, baseY, radius * s1}
			t := Triangle{V: [3]Vertex{
				{apex, slant((th0 + th1) / 2)},
				{b1, slant(th1)},
				{b0, slant(th0)},
			}}
			if !yield(t) {
				return
			}
		}
	}
}
