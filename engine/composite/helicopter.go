package composite

import (
	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
	"github.com/chewxy/math32"
)

const (
	cabinHalfL = 2.0
	cabinHalfH = 1.0
	cabinHalfW = 1.0
	cabinWall  = 0.1

	rotorDiskR = 0.8
	rotorDiskT = 0.05
	rotorRodR  = 0.05
	rotorRodL  = 0.5
	rotorRods  = 5
	heliSlices = 20

	doorW    = 1.4
	doorH    = 1.6
	doorT    = 0.05
	winW     = 0.8
	winH     = 0.6
	winT     = 0.02
	winLift  = 0.2
	doorEps  = 0.005
	doorSegs = 24
)

var (
	hubTint    = model.RGB(0.85, 0.85, 0.95)
	noseGlass  = model.RGB(0.85, 0.95, 1)
	doorPanel  = model.RGB(0.6, 0.6, 0.65)
	windowPane = model.RGB(0.1, 0.7, 1)
	finPanel   = model.RGB(0.55, 0.55, 0.6)
)

// Helicopter emits a helicopter centered on (x, y, z) facing +x, turned th
// degrees about y. The main rotor spins at 3*zh and the tail rotor at 6*zh.
//
// Parameters:
//   - b: mesh builder
//   - x, y, z: cabin center
//   - th: heading in degrees
//   - zh: animation phase in degrees
func Helicopter(b mesh.Builder, x, y, z, th, zh float32) {
	b.Push()
	defer b.Pop()
	b.Translate(x, y, z)
	b.Rotate(th, 0, 1, 0)

	Cabin(b, cabinWall)

	b.Push()
	b.Translate(cabinHalfL, 0, 0)
	b.SetMaterial(noseGlass)
	b.Add(primitive.HemisphereFront(1.2, primitive.DefaultHemisphereStep))
	b.Pop()

	Rotor(b, cabinHalfH+cabinWall, zh)

	hinge := float32(cabinHalfW - cabinWall)
	door(b, hinge, 1)
	door(b, -hinge, -1)

	Skids(b)

	b.SetMaterial(gray(0.5))
	b.Add(primitive.TaperedTube(-2, -7.5, 0.25, 0.10, 15))

	TailRotor(b, -7.5, zh)
}

// Cabin emits the floor, roof, front and back slabs of the helicopter body
// with the face palette.
//
// Parameters:
//   - b: mesh builder
//   - wall: slab thickness
func Cabin(b mesh.Builder, wall float32) {
	slabs := [4][6]float32{
		{0, -(cabinHalfH - wall), 0, cabinHalfL, wall, cabinHalfW},
		{0, cabinHalfH - wall, 0, cabinHalfL, wall, cabinHalfW},
		{cabinHalfL - wall, 0, 0, wall, cabinHalfH, cabinHalfW},
		{-(cabinHalfL - wall), 0, 0, wall, cabinHalfH, cabinHalfW},
	}
	for _, s := range slabs {
		b.Push()
		b.Translate(s[0], s[1], s[2])
		b.Scale(s[3], s[4], s[5])
		b.AddParts(primitive.Box(), FacePalette)
		b.Pop()
	}
}

// Rotor emits the main rotor assembly at height y: two hub disks joined by
// rods and two crossed blades turning at 3*zh.
//
// Parameters:
//   - b: mesh builder
//   - y: base height above the cabin center
//   - zh: animation phase in degrees
func Rotor(b mesh.Builder, y, zh float32) {
	hub := solid(hubTint, 3)

	b.Push()
	defer b.Pop()
	b.Translate(0, y, 0)

	b.Push()
	b.Rotate(-90, 1, 0, 0)
	b.AddParts(primitive.ExtrudedDisk(rotorDiskR, rotorDiskT, heliSlices), hub)
	b.Pop()

	b.SetMaterial(gray(0.3))
	for i := 0; i < rotorRods; i++ {
		b.Push()
		b.Rotate(float32(i)*360/rotorRods, 0, 1, 0)
		b.Translate(0.75*rotorDiskR, rotorDiskT+0.5*rotorRodL, 0)
		b.Rotate(90, 0, 0, 1)
		b.Add(primitive.Rod(rotorRodL, rotorRodR, heliSlices))
		b.Pop()
	}

	b.Push()
	b.Translate(0, rotorDiskT+rotorRodL, 0)
	b.Rotate(-90, 1, 0, 0)
	b.AddParts(primitive.ExtrudedDisk(rotorDiskR, rotorDiskT, heliSlices), hub)
	b.Pop()

	b.Translate(0, rotorDiskT+rotorRodL+0.5*rotorDiskT, 0)
	b.Rotate(3*zh, 0, 1, 0)
	box(b, 5*rotorDiskR, 0.05, 0.2, gray(0.3))
	b.Rotate(90, 0, 1, 0)
	box(b, 5*rotorDiskR, 0.05, 0.2, gray(0.3))
}

// door emits a door panel hinged at z with a rounded window facing side.
func door(b mesh.Builder, z float32, side float32) {
	b.Push()
	defer b.Pop()
	b.Translate(0, 0, z)

	b.Push()
	b.Translate(0.5*doorW, 0, side*0.5*doorT)
	box(b, 0.5*doorW, 0.5*doorH, 0.5*doorT, doorPanel)
	b.Pop()

	b.Translate(0.5*doorW, winLift, side*(doorT+winT/2+doorEps))
	b.Scale(winW/(2*winH), 1, 1)
	Window(b, winH, winT, doorSegs)
}

// Window emits a thin pane of height h capped by half disks on both ends.
//
// Parameters:
//   - b: mesh builder
//   - h: pane height
//   - t: pane thickness
//   - slices: end disk segments
func Window(b mesh.Builder, h, t float32, slices int) {
	hx := h
	box(b, hx, h/2, t/2, windowPane)

	rim := solid(gray(0.9), 3)
	for _, s := range [2]float32{1, -1} {
		b.Push()
		b.Translate(s*hx, 0, 0)
		b.Rotate(s*180, 0, 1, 0)
		b.AddParts(primitive.ExtrudedDisk(0.5*h, 0.01, slices), rim)
		b.Pop()
	}
}

// Skids emits two landing skids with curved front tips and two struts each.
//
// Parameters:
//   - b: mesh builder
func Skids(b mesh.Builder) {
	const (
		skidLen   = 4.0
		skidR     = 0.07
		skidZ     = 1.15
		skidY     = -1.20
		strutR    = 0.05
		strutX    = 1.20
		curveR    = 0.40
		curveDeg  = 90
		segments  = 24
		curveRing = 48
		curveSide = 16
	)
	// struts bridge the skid and the cabin floor at y = -1
	strutLen := math32.Abs(-1 - skidY)

	for _, s := range [2]float32{-1, 1} {
		z := s * skidZ

		b.Push()
		b.Translate(0, skidY, z)
		b.SetMaterial(gray(0.2))
		b.Add(primitive.Rod(skidLen, skidR, segments))
		b.Pop()

		b.Push()
		b.Translate(0.5*skidLen, skidY+curveR, z)
		b.Rotate(-90, 0, 0, 1)
		b.SetMaterial(gray(0.3))
		b.Add(primitive.Torus(curveR, skidR, curveDeg, curveRing, curveSide))
		b.Pop()

		for _, k := range [2]float32{-1, 1} {
			b.Push()
			b.Translate(k*strutX, skidY+0.5*strutLen, z)
			b.Rotate(90, 0, 0, 1)
			b.SetMaterial(gray(0.25))
			b.Add(primitive.Rod(strutLen, strutR, segments))
			b.Pop()
		}
	}
}

// TailRotor emits the fin, hub and four blades at the end of the tail boom.
// The blades turn at 6*zh about the boom's z axis.
//
// Parameters:
//   - b: mesh builder
//   - x: boom end on the x axis
//   - zh: animation phase in degrees
func TailRotor(b mesh.Builder, x, zh float32) {
	const (
		boomTop  = 0.10
		finHalfW = 0.12
		finH     = 0.60
		finT     = 0.05
		hubR     = 0.25
		hubT     = 0.06
		hubInset = 0.06
		blades   = 4
		bladeLen = 1.6
		bladeW   = 0.20
		bladeT   = 0.05
		slices   = 24
	)

	b.Push()
	defer b.Pop()
	b.Translate(x, 0, 0)

	fin := solid(finPanel, 3)
	b.AddParts(primitive.ExtrudedTriangle(
		common.Vec3{0, boomTop, finHalfW},
		common.Vec3{0, boomTop, -finHalfW},
		common.Vec3{0, boomTop + finH, 0},
		finT,
	), fin)

	hubY := float32(boomTop + finH - hubInset)
	b.Translate(0, hubY, 0)
	b.AddParts(primitive.ExtrudedDisk(hubR, hubT, slices), solid(hubTint, 3))

	b.Rotate(6*zh, 0, 0, 1)
	for i := 0; i < blades; i++ {
		b.Push()
		b.Rotate(float32(i)*360/blades, 0, 0, 1)
		box(b, 0.5*bladeLen, 0.5*bladeT, 0.5*bladeW, gray(0.25))
		b.Pop()
	}
}
