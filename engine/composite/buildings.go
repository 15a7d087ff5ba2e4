package composite

import (
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
)

var roof = model.RGB(0.6, 0.2, 0.2)

// House emits a box body resting on y with a cone roof on top.
//
// Parameters:
//   - b: mesh builder
//   - x, y, z: ground position
//   - dx, dy, dz: body half extents
//   - th: rotation about y in degrees
func House(b mesh.Builder, x, y, z, dx, dy, dz, th float32) {
	b.Push()
	defer b.Pop()
	b.Translate(x, y+dy, z)
	b.Rotate(th, 0, 1, 0)

	b.Push()
	b.Scale(dx, dy, dz)
	b.AddParts(primitive.Box(), HousePalette)
	b.Pop()

	b.SetMaterial(roof)
	b.Add(primitive.ConeY(dy, 1.05*min(dx, dz), 0.65*dy, primitive.DefaultConeStep))
}

// WindmillParams describes a windmill: a tapered pole, a hub disk on top and
// a ring of spinning blades.
type WindmillParams struct {
	X, Y, Z float32

	// PoleH is the pole height; RBase and RTop its radius at the ground and top.
	PoleH, RBase, RTop float32

	// Step is the pole slice size in degrees.
	Step float32

	// HubR and HubT are the hub disk radius and thickness.
	HubR, HubT float32

	// Blades is the blade count, at least 2.
	Blades int

	BladeLen, BladeW, BladeT float32

	// Slices is the hub disk segment count.
	Slices int
}

// DefaultWindmill is the windmill used by the single-object views.
var DefaultWindmill = WindmillParams{
	PoleH: 5, RBase: 0.14, RTop: 0.08, Step: 15,
	HubR: 0.30, HubT: 0.06,
	Blades:   4,
	BladeLen: 2.2, BladeW: 0.28, BladeT: 0.08,
	Slices: 24,
}

// At returns a copy of p moved to (x, y, z).
func (p WindmillParams) At(x, y, z float32) WindmillParams {
	p.X, p.Y, p.Z = x, y, z
	return p
}

var (
	windmillPole  = gray(0.7)
	windmillBlade = gray(0.25)
)

// Windmill emits the windmill described by p with its blades turned zh
// degrees about the z axis.
//
// Parameters:
//   - b: mesh builder
//   - p: windmill dimensions and position
//   - zh: animation phase in degrees
func Windmill(b mesh.Builder, p WindmillParams, zh float32) {
	blades := max(p.Blades, 2)

	b.Push()
	defer b.Pop()
	b.Translate(p.X, p.Y, p.Z)

	b.Push()
	b.Rotate(90, 0, 0, 1)
	b.SetMaterial(windmillPole)
	b.Add(primitive.TaperedTube(0, p.PoleH, p.RBase, p.RTop, p.Step))
	b.Pop()

	b.Translate(0, p.PoleH, 0)
	b.AddParts(primitive.ExtrudedDisk(p.HubR, p.HubT, p.Slices), solid(model.RGB(0.85, 0.85, 0.95), 3))

	b.Rotate(zh, 0, 0, 1)
	for i := 0; i < blades; i++ {
		b.Push()
		b.Rotate(float32(i)*360/float32(blades), 0, 0, 1)
		box(b, 0.5*p.BladeLen, 0.5*p.BladeT, 0.5*p.BladeW, windmillBlade)
		b.Pop()
	}
}
