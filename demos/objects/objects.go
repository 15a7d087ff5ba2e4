// Package objects is the single primitive viewer: a cube, an extruded
// triangle, a half torus, a rod and an extruded disk shown one at a time in
// an orthographic view.
package objects

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
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
)

const (
	dim        = 2.5
	fov        = 55
	axisLength = 1.5
	rotateStep = 5
)

var objectNames = []string{"Cube", "Extruded Triangle", "Half Torus", "Rod", "Extruded Disk"}

var torusMaterial = model.RGB(0.85, 0.65, 0.2)

// Demo is the object viewer.
type Demo struct {
	state    *State
	bindings controls.Bindings
	axes     game_object.GameObject
}

var _ demos.Demo = &Demo{}

// New creates the object viewer in its startup state.
func New() *Demo {
	d := &Demo{state: NewState()}
	d.axes = demos.Axes(axisLength, d.state.Params().Axes)
	d.bindings = controls.NewBindings(append(demos.OrbitKeys(rotateStep, d.state.Rotate),
		controls.WithChar('0', "reset view angles", d.state.ResetView),
		controls.WithChars("aA", "toggle axes", d.state.ToggleAxes),
		controls.WithChar('m', "next object", func() { d.state.CycleObject(1) }),
		controls.WithChar('M', "previous object", func() { d.state.CycleObject(-1) }),
	)...)
	return d
}

// State returns the viewer's interactive state.
func (d *Demo) State() *State {
	return d.state
}

func (d *Demo) Name() string {
	return "objects"
}

func (d *Demo) Window() (string, int, int) {
	return "Objects", 600, 600
}

func (d *Demo) View() camera.View {
	p := d.state.Params()
	return demos.OrbitView(camera.ProjectionOrthographic, dim, fov, p.Azimuth, p.Elevation)
}

func (d *Demo) Bindings() controls.Bindings {
	return d.bindings
}

func (d *Demo) Setup(s scene.Scene) {
	for _, l := range Layouts() {
		s.AddLayout(l)
	}
	s.SetOverlay(d.axes)
}

func (d *Demo) Frame(s scene.Scene, elapsed float64) scene.Frame {
	p := d.state.Params()
	s.SetMode(p.Object)
	s.Camera().SetView(demos.OrbitView(camera.ProjectionOrthographic, dim, fov, p.Azimuth, p.Elevation))
	d.axes.SetEnabled(p.Axes)
	return engine.DefaultFrameSource(elapsed)
}

func (d *Demo) HUD(_ float64) string {
	p := d.state.Params()
	return fmt.Sprintf("Angle=%d,%d  %s", int(p.Azimuth), int(p.Elevation), objectNames[p.Object])
}

// Layouts returns one layout per object, in key order.
func Layouts() []scene.Layout {
	builds := []game_object.BuildFunc{
		func(b mesh.Builder, _ mesh.Frame) {
			b.Scale(0.3, 0.3, 0.3)
			b.AddParts(primitive.Box(), composite.FacePalette)
		},
		func(b mesh.Builder, _ mesh.Frame) {
			b.AddParts(primitive.ExtrudedTriangle(
				common.Vec3{-0.6, -0.4, 0},
				common.Vec3{0.7, -0.4, 0},
				common.Vec3{0, 0.6, 0},
				2,
			), composite.PrismPalette)
		},
		func(b mesh.Builder, _ mesh.Frame) {
			b.SetMaterial(torusMaterial)
			b.Add(primitive.Torus(1.2, 0.3, 180, 48, 16))
		},
		func(b mesh.Builder, _ mesh.Frame) {
			b.AddParts(primitive.Rod(2, 0.25, 32), composite.DiskPalette)
		},
		func(b mesh.Builder, _ mesh.Frame) {
			b.AddParts(primitive.ExtrudedDisk(0.8, 0.3, 32), composite.DiskPalette)
		},
	}

	layouts := make([]scene.Layout, len(objectNames))
	for i, name := range objectNames {
		layouts[i] = scene.Layout{
			Name:    name,
			Objects: []game_object.GameObject{demos.Placed(name, builds[i])},
		}
	}
	return layouts
}
