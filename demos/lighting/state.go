package lighting

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
	"github.com/chewxy/math32"
)

// Params is a snapshot of the lighting demo state.
type Params struct {
	View camera.View

	Axes   bool
	Object int

	Light  bool
	Move   bool
	Smooth bool
	Local  bool

	// Distance is the light orbit radius, 1 or 5.
	Distance int
	// Zh is the light azimuth in degrees.
	Zh float32
	// LightY is the light height.
	LightY float32
	// Ambient is the ambient level in percent.
	Ambient int

	// Inc is the sphere band size in degrees.
	Inc          int
	LampEmission float32
	InvertBottom bool
}

// LightPosition returns the light position on its orbit.
func (p Params) LightPosition() common.Vec3 {
	s, c := math32.Sincos(p.Zh * common.Deg2Rad)
	d := float32(p.Distance)
	return common.Vec3{d * c, p.LightY, d * s}
}

// State is the interactive state of the lighting demo.
type State struct {
	mu sync.Mutex
	p  Params
}

// NewState returns the startup state: a moving light over the full scene in
// perspective.
func NewState() *State {
	return &State{p: Params{
		View: camera.View{
			Projection: camera.ProjectionPerspective,
			Dim:        6,
			Fov:        55,
			Azimuth:    30,
			Elevation:  25,
		},
		Axes:         true,
		Light:        true,
		Move:         true,
		Smooth:       true,
		Distance:     5,
		Zh:           90,
		Ambient:      10,
		Inc:          10,
		LampEmission: 1,
	}}
}

// Params returns a copy of the current state.
func (s *State) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

// Advance moves the light to the phase of elapsed seconds when movement is
// on and returns the resulting state.
func (s *State) Advance(elapsed float64) Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.p.Move {
		s.p.Zh = common.Phase(elapsed)
	}
	return s.p
}

func (s *State) update(fn func(p *Params)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.p)
}

// Rotate turns the view, keeping both angles within (-360, 360).
func (s *State) Rotate(dAzimuth, dElevation float32) {
	s.update(func(p *Params) {
		p.View.Azimuth = controls.Orbit(p.View.Azimuth + dAzimuth)
		p.View.Elevation = controls.Orbit(p.View.Elevation + dElevation)
	})
}

// ResetView sets both view angles to 0.
func (s *State) ResetView() {
	s.update(func(p *Params) { p.View.Azimuth, p.View.Elevation = 0, 0 })
}

// ToggleProjection switches between orthographic and perspective.
func (s *State) ToggleProjection() {
	s.update(func(p *Params) {
		if p.View.Projection == camera.ProjectionPerspective {
			p.View.Projection = camera.ProjectionOrthographic
		} else {
			p.View.Projection = camera.ProjectionPerspective
		}
	})
}

// StepFov changes the field of view within [1, 179].
func (s *State) StepFov(delta float32) {
	s.update(func(p *Params) { p.View.Fov = controls.Step(p.View.Fov, delta, 1, 179) })
}

// StepDim changes the view dimension, never below 1.
func (s *State) StepDim(delta float32) {
	s.update(func(p *Params) { p.View.Dim = max(p.View.Dim+delta, 1) })
}

// Zoom narrows (in) or widens the view: the field of view in perspective,
// the dimension in orthographic.
func (s *State) Zoom(in bool) {
	sign := float32(1)
	if in {
		sign = -1
	}
	if s.Params().View.Projection == camera.ProjectionPerspective {
		s.StepFov(sign)
	} else {
		s.StepDim(0.1 * sign)
	}
}

// ToggleAxes shows or hides the axes.
func (s *State) ToggleAxes() {
	s.update(func(p *Params) { p.Axes = !p.Axes })
}

// ToggleLight turns lighting on or off.
func (s *State) ToggleLight() {
	s.update(func(p *Params) { p.Light = !p.Light })
}

// ToggleMove starts or freezes the light.
func (s *State) ToggleMove() {
	s.update(func(p *Params) { p.Move = !p.Move })
}

// ToggleSmooth switches between smooth and flat shading.
func (s *State) ToggleSmooth() {
	s.update(func(p *Params) { p.Smooth = !p.Smooth })
}

// ToggleLocal switches the local viewer model.
func (s *State) ToggleLocal() {
	s.update(func(p *Params) { p.Local = !p.Local })
}

// ToggleDistance switches the light orbit radius between 1 and 5.
func (s *State) ToggleDistance() {
	s.update(func(p *Params) {
		if p.Distance == 1 {
			p.Distance = 5
		} else {
			p.Distance = 1
		}
	})
}

// ToggleInvertBottom flips the rock bottom normals.
func (s *State) ToggleInvertBottom() {
	s.update(func(p *Params) { p.InvertBottom = !p.InvertBottom })
}

// TurnLight moves the light along its orbit, keeping Zh in [0, 360).
func (s *State) TurnLight(delta float32) {
	s.update(func(p *Params) { p.Zh = controls.Wrap360(p.Zh + delta) })
}

// RaiseLight changes the light height.
func (s *State) RaiseLight(delta float32) {
	s.update(func(p *Params) { p.LightY += delta })
}

// StepAmbient changes the ambient level within [0, 100].
func (s *State) StepAmbient(delta int) {
	s.update(func(p *Params) { p.Ambient = controls.Step(p.Ambient, delta, 0, 100) })
}

// StepInc changes the sphere band size within [1, 45].
func (s *State) StepInc(delta int) {
	s.update(func(p *Params) { p.Inc = controls.Step(p.Inc, delta, 1, 45) })
}

// StepEmission changes the lamp emissivity within [0, 2].
func (s *State) StepEmission(delta float32) {
	s.update(func(p *Params) { p.LampEmission = controls.Step(p.LampEmission, delta, 0, 2) })
}

// CycleObject steps through the object sets, wrapping at both ends.
func (s *State) CycleObject(delta int) {
	s.update(func(p *Params) { p.Object = common.WrapIndex(p.Object+delta, len(objectNames)) })
}
