// Package demos holds the startup sequence shared by every demo executable
// and the small pieces of scene wiring the demos have in common.
package demos

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/composite"
	"github.com/Carmen-Shannon/oxy-scenes/engine/config"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
	"github.com/Carmen-Shannon/oxy-scenes/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
	"github.com/Carmen-Shannon/oxy-scenes/engine/window"
)

// Demo is one windowed program. The runner owns the window, renderer, camera
// and engine; the demo owns its interactive state and turns it into scene
// content each frame.
type Demo interface {
	// Name returns the short demo name used for the config file lookup.
	//
	// Returns:
	//   - string: the demo name
	Name() string

	// Window returns the built-in window title and size.
	//
	// Returns:
	//   - title: the window title
	//   - width, height: the initial size in pixels
	Window() (title string, width, height int)

	// View returns the camera view the demo starts with.
	//
	// Returns:
	//   - camera.View: the initial view
	View() camera.View

	// Bindings returns the demo's key table.
	//
	// Returns:
	//   - controls.Bindings: the bindings
	Bindings() controls.Bindings

	// Setup adds the demo's layouts, overlay and light to a new scene.
	//
	// Parameters:
	//   - s: the scene to fill
	Setup(s scene.Scene)

	// Frame copies the current state into the scene (camera view, light,
	// active layout, overlay visibility) and returns the frame the layout is
	// built with. It runs on the render goroutine once per frame.
	//
	// Parameters:
	//   - s: the scene created by Setup
	//   - elapsed: the engine's animation clock in seconds
	//
	// Returns:
	//   - scene.Frame: the frame inputs
	Frame(s scene.Scene, elapsed float64) scene.Frame

	// HUD formats the status line shown in the window title.
	//
	// Parameters:
	//   - fps: the last measured frame rate
	//
	// Returns:
	//   - string: the status line
	HUD(fps float64) string
}

// Ticker is implemented by demos whose state moves with the animation clock.
// Tick runs on the engine tick goroutine.
type Ticker interface {
	// Tick advances the demo state to the animation clock.
	//
	// Parameters:
	//   - elapsed: seconds of animation time
	Tick(elapsed float64)
}

// TickFunc returns the engine tick callback for d, or nil when d does not
// implement Ticker.
//
// Parameters:
//   - d: the demo
//   - clock: the engine's animation clock
//
// Returns:
//   - func(deltaTime float32): the tick callback
func TickFunc(d Demo, clock func() float64) func(deltaTime float32) {
	t, ok := d.(Ticker)
	if !ok {
		return nil
	}
	return func(float32) {
		t.Tick(clock())
	}
}

// Run opens the demo's window and blocks until it closes. Startup failures
// are fatal; a broken config file is logged and the defaults are used.
//
// Parameters:
//   - d: the demo to run
func Run(d Demo) {
	title, width, height := d.Window()
	defaults := config.Default(title, width, height)
	cfg := defaults
	path, found := config.Find(".", d.Name())
	if found {
		loaded, err := config.Load(path, defaults)
		if err != nil {
			log.Printf("[Config] %v, using defaults", err)
		} else {
			cfg = loaded
		}
	}

	fmt.Println(controls.Banner(cfg.Window.Title, d.Bindings()))

	// ── Window ──────────────────────────────────────────────────────────
	w, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		log.Fatalf("[%s] create window: %v", d.Name(), err)
	}

	// ── Renderer ────────────────────────────────────────────────────────
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, w, RendererOptions(cfg.Renderer)...)
	if err != nil {
		log.Fatalf("[%s] create renderer: %v", d.Name(), err)
	}

	// ── Camera + Scene ──────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithView(d.View()),
		camera.WithAspect(float32(w.Width())/float32(max(w.Height(), 1))),
	)
	sc := scene.NewScene(d.Name(), cam, r,
		scene.WithActive(true),
		scene.WithBuildWorkers(cfg.Scene.BuildWorkers),
	)
	d.Setup(sc)
	d.Bindings().Attach(w)

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithScene(0, sc),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithFrameSource(func(elapsed float64) scene.Frame {
			return d.Frame(sc, elapsed)
		}),
		engine.WithHUD(d.HUD),
	)
	eng.SetTickCallback(TickFunc(d, eng.Elapsed))

	// ── Config reload ───────────────────────────────────────────────────
	// a file that failed to load above is still watched
	if found {
		watcher, err := config.Watch(path, defaults, func(c config.Config) {
			ApplyEngineConfig(eng, c.Engine)
		})
		if err != nil {
			log.Printf("[Config] not watching %s: %v", path, err)
		} else {
			defer watcher.Close()
		}
	}

	eng.Run()
	if err := w.Close(); err != nil {
		log.Printf("[%s] close window: %v", d.Name(), err)
	}
}

// RendererOptions maps the renderer section of a config file to builder options.
//
// Parameters:
//   - c: the renderer configuration
//
// Returns:
//   - []renderer.RendererBuilderOption: the options to pass to NewRenderer
func RendererOptions(c config.RendererConfig) []renderer.RendererBuilderOption {
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(PresentMode(c.PresentMode)),
		renderer.WithMSAA(SampleCount(c.MSAA)),
		renderer.WithForceSoftwareRenderer(c.Software),
		renderer.WithClearColor(c.ClearColor[0], c.ClearColor[1], c.ClearColor[2]),
	}
}

// PresentMode parses a config present mode name; anything but "uncapped" is vsync.
func PresentMode(name string) renderer.PresentMode {
	if name == "uncapped" {
		return renderer.PresentModeUncapped
	}
	return renderer.PresentModeVSync
}

// SampleCount maps a config MSAA value to a supported sample count. Unknown
// values fall back to 4x.
func SampleCount(n int) renderer.MSAASampleCount {
	switch n {
	case 0, 1:
		return renderer.MSAAOff
	case 8:
		return renderer.MSAA8x
	case 16:
		return renderer.MSAA16x
	default:
		return renderer.MSAA4x
	}
}

// EngineSettings is the part of Engine a config reload touches.
type EngineSettings interface {
	SetTickRate(fps float64)
	SetRenderFrameLimit(fps float64)
	SetProfiling(enabled bool)
}

// ApplyEngineConfig pushes the live-reloadable engine settings to e.
//
// Parameters:
//   - e: the engine to update
//   - c: the reloaded engine configuration
func ApplyEngineConfig(e EngineSettings, c config.EngineConfig) {
	if c.TickRate > 0 {
		e.SetTickRate(c.TickRate)
	}
	e.SetRenderFrameLimit(c.FrameLimit)
	e.SetProfiling(c.Profiling)
}

// Axes returns an overlay object drawing white axes of the given length.
//
// Parameters:
//   - length: the axis length
//   - enabled: whether the axes start visible
//
// Returns:
//   - game_object.GameObject: the axes object
func Axes(length float32, enabled bool) game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithName("axes"),
		game_object.WithEnabled(enabled),
		game_object.WithBuild(func(b mesh.Builder, _ mesh.Frame) {
			composite.Axes(b, length)
		}),
	)
}

// Placed returns an object that runs build at the origin of its own frame.
func Placed(name string, build game_object.BuildFunc) game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithName(name),
		game_object.WithBuild(build),
	)
}

// OrbitView returns the view of an orbit demo: orthographic or perspective
// around the origin, with azimuth and elevation in degrees.
func OrbitView(p camera.Projection, dim, fov, azimuth, elevation float32) camera.View {
	return camera.View{
		Projection: p,
		Dim:        dim,
		Fov:        fov,
		Azimuth:    azimuth,
		Elevation:  elevation,
	}
}

// OrbitKeys binds the arrow keys to rotate(dAzimuth, dElevation) by step degrees.
//
// Parameters:
//   - step: the rotation per key press in degrees
//   - rotate: the state command receiving the deltas
//
// Returns:
//   - []controls.BindingsBuilderOption: the arrow key bindings
func OrbitKeys(step float32, rotate func(dAzimuth, dElevation float32)) []controls.BindingsBuilderOption {
	return []controls.BindingsBuilderOption{
		controls.WithKey(common.KeyRight, "rotate right", func() { rotate(step, 0) }),
		controls.WithKey(common.KeyLeft, "rotate left", func() { rotate(-step, 0) }),
		controls.WithKey(common.KeyUp, "raise view", func() { rotate(0, step) }),
		controls.WithKey(common.KeyDown, "lower view", func() { rotate(0, -step) }),
	}
}
