package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
	"github.com/Carmen-Shannon/oxy-scenes/engine/window"
)

const defaultTickRate = 60

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// interval converts a rate in frames per second to a frame duration.
// Non-positive rates yield 0.
func interval(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

// WithProfiling enables the periodic profiler log.
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets how often the tick callback runs. Values <= 0 select 60Hz.
//
// Parameters:
//   - fps: ticks per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = defaultTickRate
		}
		e.engineTickRate.Store(int64(interval(fps)))
	}
}

// WithWindow sets the window whose message loop, title and resize events the
// engine drives.
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene registers a scene at a z-index. Lower keys draw first; demos
// register a single scene at 0.
//
// Parameters:
//   - key: the z-index
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithRenderFrameLimit caps the render loop. 0 leaves it uncapped.
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit.Store(int64(interval(fps)))
	}
}

// WithFrameSource sets the function producing each frame's build inputs.
// A nil source keeps DefaultFrameSource.
//
// Parameters:
//   - source: function receiving the animation clock in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameSource(source func(elapsed float64) scene.Frame) EngineBuilderOption {
	return func(e *engine) {
		if source != nil {
			e.frameSource = source
		}
	}
}

// WithTickCallback sets the function run after each tick advances the animation clock.
func WithTickCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}

// WithHUD sets the function producing the window title after each presented frame.
func WithHUD(hud func(fps float64) string) EngineBuilderOption {
	return func(e *engine) {
		e.hudCallback = hud
	}
}
