package lorenz

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
)

const (
	startDim = 80
	minDim   = 5
)

// View is a snapshot of the view angles and dimension.
type View struct {
	Azimuth   float32
	Elevation float32
	Dim       float32
}

// State is the interactive state of the Lorenz demo: the view, the system
// coefficients and the curve traced from them. The curve is retraced on
// every coefficient change and replaced whole, so a slice handed out by
// Curve is never modified.
type State struct {
	mu     sync.Mutex
	view   View
	params Params
	curve  []common.Vec3
}

// NewState returns the startup state with the default coefficients traced.
func NewState() *State {
	s := &State{
		view:   View{Azimuth: 20, Elevation: 30, Dim: startDim},
		params: DefaultParams,
	}
	s.curve = Trace(s.params, Start, TimeStep, Points)
	return s
}

// View returns the current view.
func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Params returns the current coefficients.
func (s *State) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Curve returns the current trace.
func (s *State) Curve() []common.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.curve
}

// Rotate turns the view, keeping both angles within (-360, 360).
func (s *State) Rotate(dAzimuth, dElevation float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Azimuth = controls.Orbit(s.view.Azimuth + dAzimuth)
	s.view.Elevation = controls.Orbit(s.view.Elevation + dElevation)
}

// ResetView sets both view angles to 0.
func (s *State) ResetView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Azimuth, s.view.Elevation = 0, 0
}

// Zoom changes the view dimension, never below 5.
func (s *State) Zoom(delta float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Dim = max(s.view.Dim+delta, minDim)
}

// Adjust applies fn to the coefficients and retraces the curve.
func (s *State) Adjust(fn func(p *Params)) {
	s.mu.Lock()
	p := s.params
	s.mu.Unlock()

	fn(&p)
	curve := Trace(p, Start, TimeStep, Points)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = p
	s.curve = curve
}

// ResetParams restores the default coefficients and retraces the curve.
func (s *State) ResetParams() {
	s.Adjust(func(p *Params) { *p = DefaultParams })
}
