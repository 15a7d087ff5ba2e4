package composite

import (
	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
)

const (
	lampPoleH  = 2.2
	lampPoleW  = 0.06
	lampArmR   = 0.6
	lampArmT   = 0.05
	lampSweep  = 120
	lampRings  = 32
	lampSides  = 16
	lampBulbR  = 0.09
	markerSpec = 32
)

var (
	lampPole = model.RGB(0.35, 0.35, 0.36).WithSpecular(0.6, 64)
	lampArm  = model.RGB(0.6, 0.6, 0.62).WithSpecular(0.6, 64)
)

// LampTip returns the bulb center of a streetlamp standing on the origin.
func LampTip() common.Vec3 {
	s, c := sincosDeg(lampSweep)
	arc := float32(lampArmR + lampArmT)
	// the arm frame is rotated 90 about z, mapping (x, y) to (-y, x)
	return common.Vec3{-arc * s, 2*lampPoleH - lampArmR + arc*c, 0}
}

// StreetLamp emits a pole, a curved arm and an emissive bulb at the arm tip.
//
// Parameters:
//   - b: mesh builder
//   - x, y, z: base position
//   - emission: bulb emissivity
//   - inc: bulb band size in degrees
func StreetLamp(b mesh.Builder, x, y, z, emission float32, inc int) {
	b.Push()
	defer b.Pop()
	b.Translate(x, y, z)

	b.Push()
	b.Translate(0, lampPoleH, 0)
	box(b, lampPoleW, lampPoleH, lampPoleW, lampPole)
	b.Pop()

	b.Push()
	b.Translate(0, 2*lampPoleH-lampArmR, 0)
	b.Rotate(90, 0, 0, 1)
	b.SetMaterial(lampArm)
	b.Add(primitive.Torus(lampArmR, lampArmT, lampSweep, lampRings, lampSides))

	s, c := sincosDeg(lampSweep)
	b.Translate((lampArmR+lampArmT)*c, (lampArmR+lampArmT)*s, 0)
	b.Scale(lampBulbR, lampBulbR, lampBulbR)
	b.SetMaterial(model.RGB(1, 1, 0.9).WithEmission(emission, emission, emission))
	b.Add(primitive.Ball(inc))
	b.Pop()
}

// LightMarker emits the ball marking the light position. The ball emits full
// white so it reads as unlit whatever the light does.
//
// Parameters:
//   - b: mesh builder
//   - x, y, z: light position
//   - r: ball radius
//   - inc: band size in degrees
func LightMarker(b mesh.Builder, x, y, z, r float32, inc int) {
	b.Push()
	defer b.Pop()
	b.Translate(x, y, z)
	b.Scale(r, r, r)
	b.SetMaterial(model.RGB(1, 1, 1).WithSpecular(1, markerSpec).WithEmission(1, 1, 1))
	b.Add(primitive.Ball(inc))
}

// Axes emits white x, y and z axis segments of the given length.
//
// Parameters:
//   - b: mesh builder
//   - length: axis length
func Axes(b mesh.Builder, length float32) {
	b.Push()
	defer b.Pop()
	b.SetMaterial(model.RGB(1, 1, 1))
	b.AddLines(primitive.Axes(length))
}
