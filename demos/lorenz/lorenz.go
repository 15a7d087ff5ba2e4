// Package lorenz draws the Lorenz attractor as a yellow polyline and lets the
// user change the system coefficients while watching the curve change.
package lorenz

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-scenes/demos"
	"github.com/Carmen-Shannon/oxy-scenes/engine"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
	"github.com/Carmen-Shannon/oxy-scenes/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
)

const (
	axisLength = 70
	rotateStep = 5
	zoomStep   = 5
)

var curveColor = model.RGB(1, 1, 0)

// Demo is the Lorenz attractor demo.
type Demo struct {
	state    *State
	bindings controls.Bindings
}

var _ demos.Demo = &Demo{}

// New creates the Lorenz demo with the default coefficients traced.
func New() *Demo {
	d := &Demo{state: NewState()}

	s := d.state
	d.bindings = controls.NewBindings(append(demos.OrbitKeys(rotateStep, s.Rotate),
		controls.WithChar('0', "reset view angles", s.ResetView),
		controls.WithChar('+', "zoom in", func() { s.Zoom(-zoomStep) }),
		controls.WithChar('-', "zoom out", func() { s.Zoom(zoomStep) }),
		controls.WithChar('r', "rho -1", func() { s.Adjust(func(p *Params) { p.R-- }) }),
		controls.WithChar('R', "rho +1", func() { s.Adjust(func(p *Params) { p.R++ }) }),
		controls.WithChar('s', "sigma -1", func() { s.Adjust(func(p *Params) { p.S-- }) }),
		controls.WithChar('S', "sigma +1", func() { s.Adjust(func(p *Params) { p.S++ }) }),
		controls.WithChar('b', "beta -0.05", func() { s.Adjust(func(p *Params) { p.B -= 0.05 }) }),
		controls.WithChar('B', "beta +0.05", func() { s.Adjust(func(p *Params) { p.B += 0.05 }) }),
		controls.WithChar('i', "reset coefficients", s.ResetParams),
	)...)
	return d
}

// State returns the demo's interactive state.
func (d *Demo) State() *State {
	return d.state
}

func (d *Demo) Name() string {
	return "lorenz"
}

func (d *Demo) Window() (string, int, int) {
	return "Lorenz Attractor", 800, 600
}

func (d *Demo) View() camera.View {
	return cameraView(d.state.View())
}

func (d *Demo) Bindings() controls.Bindings {
	return d.bindings
}

func (d *Demo) Setup(s scene.Scene) {
	s.AddLayout(scene.Layout{
		Name: "Attractor",
		Objects: []game_object.GameObject{demos.Placed("curve", func(b mesh.Builder, _ mesh.Frame) {
			b.SetMaterial(curveColor)
			b.AddLines(primitive.Polyline(d.state.Curve()))
		})},
	})
	s.SetOverlay(demos.Axes(axisLength, true))
}

func (d *Demo) Frame(s scene.Scene, elapsed float64) scene.Frame {
	s.Camera().SetView(cameraView(d.state.View()))
	return engine.DefaultFrameSource(elapsed)
}

func (d *Demo) HUD(_ float64) string {
	p := d.state.Params()
	v := d.state.View()
	return fmt.Sprintf("[LORENZ PARAMETERS] s = %.2f  r = %.2f  b = %.4f  |  [VIEW ANGLE] az = %d  el = %d",
		p.S, p.R, p.B, int(v.Azimuth), int(v.Elevation))
}

func cameraView(v View) camera.View {
	return demos.OrbitView(camera.ProjectionOrthographic, v.Dim, 55, v.Azimuth, v.Elevation)
}
