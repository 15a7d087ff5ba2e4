// Package scene is the animated windmill and helicopter demo: three windmills
// with two helicopters circling the y axis, a single helicopter, or a single
// windmill.
package scene

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
	engscene "github.com/Carmen-Shannon/oxy-scenes/engine/scene"
	"github.com/chewxy/math32"
)

const (
	dim        = 15
	fov        = 55
	axisLength = 5
	rotateStep = 5
)

var modeNames = []string{"Full Scene", "Helicopter", "Windmill"}

// windmills are the three windmills of the full scene.
var windmills = []composite.WindmillParams{
	composite.DefaultWindmill.At(-10, 0, -8),
	{
		X: 10, Z: 8,
		PoleH: 5.5, RBase: 0.16, RTop: 0.09, Step: 15,
		HubR: 0.32, HubT: 0.06,
		Blades:   4,
		BladeLen: 2.4, BladeW: 0.28, BladeT: 0.08,
		Slices: 24,
	},
	{
		Z:     -14,
		PoleH: 6, RBase: 0.15, RTop: 0.09, Step: 15,
		HubR: 0.34, HubT: 0.06,
		Blades:   4,
		BladeLen: 2.6, BladeW: 0.30, BladeT: 0.08,
		Slices: 24,
	},
}

// Demo is the windmill and helicopter viewer.
type Demo struct {
	state    *State
	bindings controls.Bindings
	axes     game_object.GameObject
}

var _ demos.Demo = &Demo{}

// New creates the scene viewer in its startup state.
func New() *Demo {
	d := &Demo{state: NewState()}
	d.axes = demos.Axes(axisLength, d.state.Params().Axes)
	d.bindings = controls.NewBindings(append(demos.OrbitKeys(rotateStep, d.state.Rotate),
		controls.WithChar('0', "reset view angles", d.state.ResetView),
		controls.WithChars("aA", "toggle axes", d.state.ToggleAxes),
		controls.WithChar('m', "next mode", func() { d.state.CycleMode(1) }),
		controls.WithChar('M', "previous mode", func() { d.state.CycleMode(-1) }),
	)...)
	return d
}

// State returns the viewer's interactive state.
func (d *Demo) State() *State {
	return d.state
}

func (d *Demo) Name() string {
	return "scene"
}

func (d *Demo) Window() (string, int, int) {
	return "Scene", 600, 600
}

func (d *Demo) View() camera.View {
	p := d.state.Params()
	return demos.OrbitView(camera.ProjectionOrthographic, dim, fov, p.Azimuth, p.Elevation)
}

func (d *Demo) Bindings() controls.Bindings {
	return d.bindings
}

func (d *Demo) Setup(s engscene.Scene) {
	for _, l := range Layouts() {
		s.AddLayout(l)
	}
	s.SetOverlay(d.axes)
}

func (d *Demo) Frame(s engscene.Scene, elapsed float64) engscene.Frame {
	p := d.state.Params()
	s.SetMode(p.Mode)
	s.Camera().SetView(demos.OrbitView(camera.ProjectionOrthographic, dim, fov, p.Azimuth, p.Elevation))
	d.axes.SetEnabled(p.Axes)
	return engine.DefaultFrameSource(elapsed)
}

func (d *Demo) HUD(_ float64) string {
	p := d.state.Params()
	return fmt.Sprintf("Angle=%d,%d  %s", int(p.Azimuth), int(p.Elevation), modeNames[p.Mode])
}

// Layouts returns the full scene, the helicopter and the windmill layouts.
func Layouts() []engscene.Layout {
	full := make([]game_object.GameObject, 0, len(windmills)+2)
	for _, w := range windmills {
		full = append(full, windmill(w))
	}
	full = append(full,
		circling(5, 1.6, 0),
		circling(6.5, 2.0, 180),
	)

	return []engscene.Layout{
		{Name: modeNames[0], Objects: full},
		{Name: modeNames[1], Objects: []game_object.GameObject{
			demos.Placed("helicopter", func(b mesh.Builder, f mesh.Frame) {
				composite.Helicopter(b, 0, 0, 0, 0.5, f.Zh)
			}),
		}},
		{Name: modeNames[2], Objects: []game_object.GameObject{windmill(composite.DefaultWindmill)}},
	}
}

func windmill(p composite.WindmillParams) game_object.GameObject {
	return demos.Placed("windmill", func(b mesh.Builder, f mesh.Frame) {
		composite.Windmill(b, p, f.Zh)
	})
}

// circling returns a 0.6 scale helicopter flying around the y axis at the
// given radius and height, offset degrees ahead of the phase, nose along
// the direction of travel.
func circling(radius, height, offset float32) game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithName("helicopter"),
		game_object.WithUniformScale(0.6),
		game_object.WithAnimate(func(obj game_object.GameObject, f mesh.Frame) {
			a := offset - f.Zh
			s, c := math32.Sincos(a * common.Deg2Rad)
			obj.SetPosition(radius*c, height, radius*s)
			obj.SetRotation(0, 90-a, 0)
		}),
		game_object.WithBuild(func(b mesh.Builder, f mesh.Frame) {
			composite.Helicopter(b, 0, 0, 0, 0, f.Zh)
		}),
	)
}
