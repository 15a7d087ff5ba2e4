package projections

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
	"github.com/jinzhu/copier"
)

const (
	turnStep = 3
	moveStep = 0.2
	maxPitch = 89
)

// orbitPose is the orientation the orthographic view starts from.
type orbitPose struct {
	Yaw, Pitch float32
}

// walkPose places the first-person camera at the edge of the village.
type walkPose struct {
	Yaw, Pitch float32
	Eye        common.Vec3
}

var (
	orbitStart = orbitPose{Yaw: 45, Pitch: 30}
	walkStart  = walkPose{Yaw: 147, Pitch: 0, Eye: common.Vec3{12, 1, 18}}
)

// Params is a snapshot of the projections demo state. Yaw and Pitch drive
// every mode: they are the view angles of the orthographic and perspective
// cameras and the heading of the first-person camera.
type Params struct {
	View camera.View
	Axes bool
}

// CameraView returns the camera view for the current mode.
func (p Params) CameraView() camera.View {
	v := p.View
	v.Azimuth, v.Elevation = v.Yaw, v.Pitch
	return v
}

// State is the interactive state of the projections demo.
type State struct {
	mu sync.Mutex
	p  Params
}

// NewState returns the startup state: the orthographic view from 45,30.
func NewState() *State {
	return &State{p: Params{View: camera.View{
		Projection: camera.ProjectionOrthographic,
		Dim:        10,
		Fov:        55,
		Yaw:        orbitStart.Yaw,
		Pitch:      orbitStart.Pitch,
		Eye:        walkStart.Eye,
	}}}
}

// Params returns a copy of the current state.
func (s *State) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

func (s *State) update(fn func(p *Params)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.p)
}

// Turn changes yaw, wrapped into [0, 360), and pitch, clamped to [-89, 89].
func (s *State) Turn(dYaw, dPitch float32) {
	s.update(func(p *Params) {
		p.View.Yaw = controls.Wrap360(p.View.Yaw + dYaw)
		p.View.Pitch = controls.Step(p.View.Pitch, dPitch, -maxPitch, maxPitch)
	})
}

// StepDim changes the view dimension, never below 1.
func (s *State) StepDim(delta float32) {
	s.update(func(p *Params) { p.View.Dim = max(p.View.Dim+delta, 1) })
}

// StepFov changes the field of view within [1, 179].
func (s *State) StepFov(delta float32) {
	s.update(func(p *Params) { p.View.Fov = controls.Step(p.View.Fov, delta, 1, 179) })
}

// ToggleAxes shows or hides the axes.
func (s *State) ToggleAxes() {
	s.update(func(p *Params) { p.Axes = !p.Axes })
}

// CycleMode moves to the next of orthographic, perspective and first
// person. Entering first person or orthographic resets the pose for that
// mode; perspective keeps the current angles.
func (s *State) CycleMode() {
	s.update(func(p *Params) {
		p.View.Projection = camera.Projection(common.WrapIndex(int(p.View.Projection)+1, 3))
		if p.View.Projection != camera.ProjectionPerspective {
			resetPose(p)
		}
	})
}

// Reset restores the pose of the current mode.
func (s *State) Reset() {
	s.update(resetPose)
}

// Walk moves the first-person eye along the look direction. It does nothing
// in the other modes.
func (s *State) Walk(step float32) {
	s.update(func(p *Params) {
		if p.View.Projection == camera.ProjectionFirstPerson {
			p.View.Move(step)
		}
	})
}

// Strafe moves the first-person eye sideways; positive steps go left. It
// does nothing in the other modes.
func (s *State) Strafe(step float32) {
	s.update(func(p *Params) {
		if p.View.Projection == camera.ProjectionFirstPerson {
			p.View.Sidestep(step)
		}
	})
}

func resetPose(p *Params) {
	var pose any = &orbitStart
	if p.View.Projection == camera.ProjectionFirstPerson {
		pose = &walkStart
	}
	if err := copier.Copy(&p.View, pose); err != nil {
		log.Printf("[Projections] reset pose: %v", err)
	}
}
