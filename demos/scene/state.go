package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
)

// Params is a snapshot of the scene viewer state.
type Params struct {
	Azimuth   float32
	Elevation float32
	Axes      bool
	Mode      int
}

// State is the interactive state of the scene viewer.
type State struct {
	mu sync.Mutex
	p  Params
}

// NewState returns the startup state: view angles 20,30, axes on, full scene.
func NewState() *State {
	return &State{p: Params{Azimuth: 20, Elevation: 30, Axes: true}}
}

// Params returns a copy of the current state.
func (s *State) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

// Rotate turns the view, keeping both angles within (-360, 360).
func (s *State) Rotate(dAzimuth, dElevation float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Azimuth = controls.Orbit(s.p.Azimuth + dAzimuth)
	s.p.Elevation = controls.Orbit(s.p.Elevation + dElevation)
}

// ResetView sets both view angles to 0.
func (s *State) ResetView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Azimuth, s.p.Elevation = 0, 0
}

// ToggleAxes shows or hides the axes.
func (s *State) ToggleAxes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Axes = !s.p.Axes
}

// CycleMode steps through the modes, wrapping at both ends.
func (s *State) CycleMode(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Mode = common.WrapIndex(s.p.Mode+delta, len(modeNames))
}
