// Package projections shows a small village of houses around a windmill
// through an orthographic, a perspective and a first-person camera.
package projections

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/demos"
	"github.com/Carmen-Shannon/oxy-scenes/engine"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/composite"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
	"github.com/Carmen-Shannon/oxy-scenes/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
)

const axisLength = 1.5

// house is one house placement: base position, half sizes and heading.
type house struct {
	x, y, z    float32
	dx, dy, dz float32
	th         float32
}

var houses = []house{
	{-6, 0, -4, 1.2, 1.6, 1.2, 10},
	{6.5, 0, 3, 1.0, 1.5, 1.0, -15},
	{-2.5, 0, 2, 0.8, 0.8, 0.9, 20},
	{2, 0, -3, 0.9, 0.7, 0.8, -25},
	{0, 0, 6, 0.8, 0.7, 0.8, 0},
}

// Demo is the projections demo.
type Demo struct {
	state    *State
	bindings controls.Bindings
	axes     game_object.GameObject
}

var _ demos.Demo = &Demo{}

// New creates the projections demo in its startup state.
func New() *Demo {
	d := &Demo{state: NewState()}
	d.axes = demos.Axes(axisLength, d.state.Params().Axes)

	s := d.state
	d.bindings = controls.NewBindings(
		controls.WithKey(common.KeyRight, "yaw +3", func() { s.Turn(turnStep, 0) }),
		controls.WithKey(common.KeyLeft, "yaw -3", func() { s.Turn(-turnStep, 0) }),
		controls.WithKey(common.KeyUp, "pitch +3", func() { s.Turn(0, turnStep) }),
		controls.WithKey(common.KeyDown, "pitch -3", func() { s.Turn(0, -turnStep) }),
		controls.WithKey(common.KeyPageUp, "view dimension +0.1", func() { s.StepDim(0.1) }),
		controls.WithKey(common.KeyPageDown, "view dimension -0.1", func() { s.StepDim(-0.1) }),
		controls.WithChars("mM", "orthogonal / perspective / first person", s.CycleMode),
		controls.WithChar('0', "reset the view for this mode", s.Reset),
		controls.WithChar('-', "field of view -1", func() { s.StepFov(-1) }),
		controls.WithChar('+', "field of view +1", func() { s.StepFov(1) }),
		controls.WithChars("wW", "walk forward (first person)", func() { s.Walk(moveStep) }),
		controls.WithChars("sS", "walk back (first person)", func() { s.Walk(-moveStep) }),
		controls.WithChars("aA", "strafe left (first person)", func() { s.Strafe(moveStep) }),
		controls.WithChars("dD", "strafe right (first person)", func() { s.Strafe(-moveStep) }),
		controls.WithChars("tT", "toggle axes", s.ToggleAxes),
	)
	return d
}

// State returns the demo's interactive state.
func (d *Demo) State() *State {
	return d.state
}

func (d *Demo) Name() string {
	return "projections"
}

func (d *Demo) Window() (string, int, int) {
	return "Projections", 600, 600
}

func (d *Demo) View() camera.View {
	return d.state.Params().CameraView()
}

func (d *Demo) Bindings() controls.Bindings {
	return d.bindings
}

func (d *Demo) Setup(s scene.Scene) {
	s.AddLayout(Layout())
	s.SetOverlay(d.axes)
}

func (d *Demo) Frame(s scene.Scene, elapsed float64) scene.Frame {
	p := d.state.Params()
	s.Camera().SetView(p.CameraView())
	d.axes.SetEnabled(p.Axes)
	return engine.DefaultFrameSource(elapsed)
}

func (d *Demo) HUD(_ float64) string {
	return HUD(d.state.Params())
}

// HUD formats the status line for p.
func HUD(p Params) string {
	v := p.View
	if v.Projection == camera.ProjectionOrthographic {
		return fmt.Sprintf("Az=%.0f El=%.0f  Dim=%.1f View=%s", v.Yaw, v.Pitch, v.Dim, v.Projection)
	}
	return fmt.Sprintf("Yaw=%.0f Pitch=%.0f  Eye=(%.2f,%.2f,%.2f)  Dim=%.1f View=%s",
		v.Yaw, v.Pitch, v.Eye[0], v.Eye[1], v.Eye[2], v.Dim, v.Projection)
}

// Layout returns the village: five houses and a windmill at the origin.
func Layout() scene.Layout {
	objs := make([]game_object.GameObject, 0, len(houses)+1)
	for _, h := range houses {
		objs = append(objs, demos.Placed("house", func(b mesh.Builder, _ mesh.Frame) {
			composite.House(b, h.x, h.y, h.z, h.dx, h.dy, h.dz, h.th)
		}))
	}
	objs = append(objs, demos.Placed("windmill", func(b mesh.Builder, f mesh.Frame) {
		composite.Windmill(b, composite.DefaultWindmill, f.Zh)
	}))
	return scene.Layout{Name: "Village", Objects: objs}
}
