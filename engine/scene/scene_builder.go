package scene

import (
	"github.com/Carmen-Shannon/oxy-scenes/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scenes/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithLayouts appends the given layouts in order. The first layout is active.
//
// Parameters:
//   - layouts: the layouts to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLayouts(layouts ...Layout) SceneBuilderOption {
	return func(s *scene) {
		s.layouts = append(s.layouts, layouts...)
	}
}

// WithOverlay sets the objects built every frame regardless of the active layout.
//
// Parameters:
//   - objects: the overlay objects
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithOverlay(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.overlay = append(s.overlay, objects...)
	}
}

// WithLight attaches a light. Scenes without a light render unlit.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lgt = l
	}
}

// WithBuildWorkers sets the number of worker goroutines used to build objects
// in parallel. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of build workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBuildWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.buildWorkers = n
	}
}

// WithArenaCapacity sets the initial triangle capacity of each per-object mesh arena.
//
// Parameters:
//   - triangles: the number of triangles to preallocate
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithArenaCapacity(triangles int) SceneBuilderOption {
	return func(s *scene) {
		if triangles > 0 {
			s.capacity = triangles
		}
	}
}
