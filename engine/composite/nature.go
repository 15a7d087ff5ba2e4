package composite

import (
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
)

var (
	bark   = model.RGB(0.45, 0.30, 0.20).WithSpecular(0.02, 2)
	leaves = [3]model.Material{
		model.RGB(0.10, 0.55, 0.15).WithSpecular(0.02, 2),
		model.RGB(0.08, 0.50, 0.12).WithSpecular(0.02, 2),
		model.RGB(0.06, 0.45, 0.10).WithSpecular(0.02, 2),
	}
	canopyWidth = [3]float32{1.00, 0.75, 0.55}

	stone = gray(0.5).WithSpecular(0.15, 2)
)

// box emits the unit cube scaled to the given half extents at the current origin.
func box(b mesh.Builder, hx, hy, hz float32, m model.Material) {
	b.Push()
	b.Scale(hx, hy, hz)
	b.SetMaterial(m)
	b.Add(primitive.Box())
	b.Pop()
}

// Tree emits a trunk and three stacked canopy slabs standing on (x, y, z).
//
// Parameters:
//   - b: mesh builder
//   - x, y, z: base position
//   - h: overall height
//   - r: canopy radius
func Tree(b mesh.Builder, x, y, z, h, r float32) {
	b.Push()
	defer b.Pop()
	b.Translate(x, y, z)

	b.Push()
	b.Translate(0, 0.2*h, 0)
	box(b, 0.25*r, 0.4*h, 0.25*r, bark)
	b.Pop()

	baseY := 0.4 * h
	levelH := 0.2 * h
	for k := range leaves {
		b.Push()
		b.Translate(0, baseY+float32(k)*levelH+0.5*levelH, 0)
		box(b, canopyWidth[k]*r, levelH, canopyWidth[k]*r, leaves[k])
		b.Pop()
	}
}

// Rock emits the jagged rock hull at (x, y, z) uniformly scaled by s.
//
// Parameters:
//   - b: mesh builder
//   - x, y, z: center position
//   - s: uniform scale
//   - invertBottom: flip the bottom cap normals
func Rock(b mesh.Builder, x, y, z, s float32, invertBottom bool) {
	b.Push()
	defer b.Pop()
	b.Translate(x, y, z)
	b.Scale(s, s, s)
	b.SetMaterial(stone)
	b.Add(primitive.RockHull(invertBottom))
}
