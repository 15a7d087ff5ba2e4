// Package lighting is the lit outdoor demo: trees, rocks and streetlamps under
// a single light that circles the scene.
package lighting

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/demos"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/composite"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
	"github.com/Carmen-Shannon/oxy-scenes/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scenes/engine/light"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
)

const (
	axisLength = 2
	markerR    = 0.1
	rotateStep = 5
)

var objectNames = []string{"Scene", "Rock", "Tree", "Lamp and Rock"}

// Demo is the lighting demo.
type Demo struct {
	state    *State
	bindings controls.Bindings
	axes     game_object.GameObject
	marker   game_object.GameObject
	light    light.Light
}

var (
	_ demos.Demo   = &Demo{}
	_ demos.Ticker = &Demo{}
)

// New creates the lighting demo in its startup state.
func New() *Demo {
	d := &Demo{state: NewState()}
	p := d.state.Params()
	d.axes = demos.Axes(axisLength, p.Axes)
	d.marker = game_object.NewGameObject(
		game_object.WithName("light"),
		game_object.WithEnabled(p.Light),
		game_object.WithBuild(func(b mesh.Builder, f mesh.Frame) {
			composite.LightMarker(b, 0, 0, 0, markerR, f.BallIncrement)
		}),
	)
	pos := p.LightPosition()
	d.light = light.NewLight(
		light.WithPosition(pos[0], pos[1], pos[2]),
		light.WithColor(1, 1, 1),
		light.WithAmbient(0.01*float32(p.Ambient)),
		light.WithDiffuse(1),
		light.WithSpecular(1),
		light.WithEnabled(p.Light),
		light.WithLocalViewer(p.Local),
		light.WithSmooth(p.Smooth),
	)

	s := d.state
	d.bindings = controls.NewBindings(append(demos.OrbitKeys(rotateStep, s.Rotate),
		controls.WithKey(common.KeyPageDown, "view dimension +0.1", func() { s.StepDim(0.1) }),
		controls.WithKey(common.KeyPageUp, "view dimension -0.1", func() { s.StepDim(-0.1) }),
		controls.WithChar('0', "reset view angles", s.ResetView),
		controls.WithChars("xX", "toggle axes", s.ToggleAxes),
		controls.WithChars("lL", "toggle lighting", s.ToggleLight),
		controls.WithChars("pP", "perspective / orthogonal", s.ToggleProjection),
		controls.WithChars("mM", "start / stop the light", s.ToggleMove),
		controls.WithChar('<', "light azimuth +1", func() { s.TurnLight(1) }),
		controls.WithChar('>', "light azimuth -1", func() { s.TurnLight(-1) }),
		controls.WithChar('-', "field of view -1", func() { s.StepFov(-1) }),
		controls.WithChar('+', "field of view +1", func() { s.StepFov(1) }),
		controls.WithChar('6', "zoom in", func() { s.Zoom(true) }),
		controls.WithChar('7', "zoom out", func() { s.Zoom(false) }),
		controls.WithChar('[', "light height -0.1", func() { s.RaiseLight(-0.1) }),
		controls.WithChar(']', "light height +0.1", func() { s.RaiseLight(0.1) }),
		controls.WithChar('a', "ambient -5", func() { s.StepAmbient(-5) }),
		controls.WithChar('A', "ambient +5", func() { s.StepAmbient(5) }),
		controls.WithChar('f', "smooth / flat shading", s.ToggleSmooth),
		controls.WithChar('v', "toggle local viewer", s.ToggleLocal),
		controls.WithChar('k', "light distance 1 / 5", s.ToggleDistance),
		controls.WithChars("bB", "invert rock bottom normals", s.ToggleInvertBottom),
		controls.WithChar('i', "sphere increment -1", func() { s.StepInc(-1) }),
		controls.WithChar('I', "sphere increment +1", func() { s.StepInc(1) }),
		controls.WithChar('e', "lamp emission -0.1", func() { s.StepEmission(-0.1) }),
		controls.WithChar('E', "lamp emission +0.1", func() { s.StepEmission(0.1) }),
		controls.WithChar('o', "next object set", func() { s.CycleObject(1) }),
		controls.WithChar('O', "previous object set", func() { s.CycleObject(-1) }),
	)...)
	return d
}

// State returns the demo's interactive state.
func (d *Demo) State() *State {
	return d.state
}

func (d *Demo) Name() string {
	return "lighting"
}

func (d *Demo) Window() (string, int, int) {
	return "Lighting", 900, 600
}

func (d *Demo) View() camera.View {
	return d.state.Params().View
}

func (d *Demo) Bindings() controls.Bindings {
	return d.bindings
}

func (d *Demo) Setup(s scene.Scene) {
	for _, l := range Layouts() {
		s.AddLayout(l)
	}
	s.SetOverlay(d.marker, d.axes)
	s.SetLight(d.light)
}

// Tick moves the light to the animation clock while movement is on.
func (d *Demo) Tick(elapsed float64) {
	d.state.Advance(elapsed)
}

func (d *Demo) Frame(s scene.Scene, elapsed float64) scene.Frame {
	p := d.state.Params()
	s.SetMode(p.Object)
	s.Camera().SetView(p.View)

	pos := p.LightPosition()
	d.light.SetEnabled(p.Light)
	d.light.SetPosition(pos[0], pos[1], pos[2])
	d.light.SetAmbient(0.01 * float32(p.Ambient))
	d.light.SetLocalViewer(p.Local)
	d.light.SetSmooth(p.Smooth)

	d.marker.SetEnabled(p.Light)
	d.marker.SetPosition(pos[0], pos[1], pos[2])
	d.axes.SetEnabled(p.Axes)

	return scene.Frame{
		Zh:            p.Zh,
		Elapsed:       elapsed,
		LampEmission:  p.LampEmission,
		BallIncrement: p.Inc,
		InvertBottom:  p.InvertBottom,
	}
}

func (d *Demo) HUD(_ float64) string {
	return HUD(d.state.Params())
}

// HUD formats the status line for p.
func HUD(p Params) string {
	lines := []string{fmt.Sprintf("Angle=%d,%d  Dim=%.1f FOV=%d Projection=%s Light=%s",
		int(p.View.Azimuth), int(p.View.Elevation), p.View.Dim, int(p.View.Fov), p.View.Projection, onOff(p.Light))}
	if p.Light {
		model := "Flat"
		if p.Smooth {
			model = "Smooth"
		}
		lines = append(lines,
			fmt.Sprintf("Model=%s LocalViewer=%s Distance=%d Elevation=%.1f", model, onOff(p.Local), p.Distance, p.LightY),
			fmt.Sprintf("Ambient=%d  LampEmiss=%.2f", p.Ambient, p.LampEmission),
		)
	}
	return strings.Join(lines, "  |  ")
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// Layouts returns the four object sets: the full scene, a rock, a tree, and
// a lamp beside a rock.
func Layouts() []scene.Layout {
	return []scene.Layout{
		{Name: objectNames[0], Objects: []game_object.GameObject{
			tree(-2.2, 0, -1, 2.2, 1.2),
			tree(2.4, 0, 1.1, 2.0, 1.0),
			tree(0, 0, 2.6, 1.8, 0.9),
			rock(-1, 0, 0, 0.7),
			rock(1.2, 0, -1.4, 0.6),
			rock(0.6, 0, 1.5, 0.5),
			lamp(-3.6, 0, -0.8),
			lamp(3.6, 0, 0.8),
		}},
		{Name: objectNames[1], Objects: []game_object.GameObject{rock(0, 0, 0, 1)}},
		{Name: objectNames[2], Objects: []game_object.GameObject{tree(0, 0, 0, 2.2, 1.2)}},
		{Name: objectNames[3], Objects: []game_object.GameObject{lamp(0, 0, 0), rock(0.8, 0, 0, 0.6)}},
	}
}

func tree(x, y, z, h, r float32) game_object.GameObject {
	return demos.Placed("tree", func(b mesh.Builder, _ mesh.Frame) {
		composite.Tree(b, x, y, z, h, r)
	})
}

func rock(x, y, z, s float32) game_object.GameObject {
	return demos.Placed("rock", func(b mesh.Builder, f mesh.Frame) {
		composite.Rock(b, x, y, z, s, f.InvertBottom)
	})
}

func lamp(x, y, z float32) game_object.GameObject {
	return demos.Placed("streetlamp", func(b mesh.Builder, f mesh.Frame) {
		composite.StreetLamp(b, x, y, z, f.LampEmission, f.BallIncrement)
	})
}
