package engine

import (
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
	"github.com/Carmen-Shannon/oxy-scenes/engine/window"
)

// engine implements the Engine interface.
// Coordinates engine, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	// engineTickRate is the tick interval as a time.Duration.
	engineTickRate atomic.Int64
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	// frameSource produces the per-frame build inputs from the seconds since Run.
	frameSource func(elapsed float64) scene.Frame

	// hudCallback produces the window title for the frame just presented.
	hudCallback func(fps float64) string

	// clock is the animation time as a time.Duration. Only ticks advance it.
	clock atomic.Int64

	scenes map[int]scene.Scene

	// renderFrameLimit is the minimum frame duration as a time.Duration; 0 = uncapped.
	renderFrameLimit atomic.Int64
}

// Engine is the main entry point for the engine.
// It orchestrates the engine loop, render loop, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback will be called at this rate for game logic updates.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, after
	// the animation clock has advanced. Must be set before Run.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Elapsed returns the animation clock in seconds. Ticks advance it by the
	// measured time between them; frames are built at this time.
	//
	// Returns:
	//   - float64: seconds of animation time
	Elapsed() float64

	// SetRenderCallback registers the function called each render frame.
	// Use this for GPU buffer updates and scene rendering.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetFrameSource registers the function producing each frame's build inputs.
	// The default derives only the animation phase from the animation clock.
	//
	// Parameters:
	//   - source: function receiving the animation clock in seconds
	SetFrameSource(source func(elapsed float64) scene.Frame)

	// SetHUDCallback registers the function producing the HUD line. The result
	// is shown as the window title after each presented frame.
	//
	// Parameters:
	//   - callback: function receiving the last measured frame rate
	SetHUDCallback(callback func(fps float64) string)

	// SetProfiling enables or disables performance profiling output.
	//
	// Parameters:
	//   - enabled: true to log profiler reports
	SetProfiling(enabled bool)

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order during the render loop.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the main engine loop (blocks until window closes).
	// Must be called from the goroutine that created the window.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Initializes message channels and profiler with sensible defaults.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		scenes:           make(map[int]scene.Scene),
		wg:               sync.WaitGroup{},
		profilingEnabled: false,
		frameSource:      DefaultFrameSource,
	}
	e.engineTickRate.Store(int64(interval(defaultTickRate)))

	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogging(e.profilingEnabled))

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if width <= 0 || height <= 0 {
				return
			}
			for _, s := range e.scenes {
				if r := s.Renderer(); r != nil {
					r.Resize(width, height)
				}
				if c := s.Camera(); c != nil {
					c.SetAspect(float32(width) / float32(height))
				}
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

// DefaultFrameSource returns a frame carrying only the animation phase for elapsed seconds.
func DefaultFrameSource(elapsed float64) scene.Frame {
	return scene.Frame{Zh: common.Phase(elapsed), Elapsed: elapsed}
}

// Run starts the engine goroutines and runs the window message loop on the
// calling goroutine. When the window closes, the engine goroutines are
// stopped and every scene is closed before Run returns.
func (e *engine) Run() {
	e.handle()
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
	for _, s := range e.scenes {
		s.Close()
	}
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handle launches the engine, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.running.Store(true)
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Each tick advances the animation clock and fires the tick callback; rate
// changes arrive via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(time.Duration(e.engineTickRate.Load()))
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			e.tick(now.Sub(lastTick))
			lastTick = now
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
		}
	}
}

// tick advances the animation clock by dt and runs the tick callback.
func (e *engine) tick(dt time.Duration) {
	e.clock.Add(int64(dt))
	if e.tickCallback != nil {
		e.tickCallback(float32(dt.Seconds()))
	}
}

func (e *engine) Elapsed() float64 {
	return time.Duration(e.clock.Load()).Seconds()
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			e.renderFrame(dt, e.Elapsed())

			if limit := time.Duration(e.renderFrameLimit.Load()); limit > 0 {
				if remaining := limit - time.Since(lastRender); remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// renderFrame draws one frame of every active scene in ascending z-index order.
// All scenes share the first active scene's renderer and a single render pass.
// A failed frame is logged and skipped.
func (e *engine) renderFrame(dt float32, elapsed float64) {
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var activeScenes []scene.Scene
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			activeScenes = append(activeScenes, s)
		}
	}
	if len(activeScenes) == 0 {
		return
	}
	frameRenderer := activeScenes[0].Renderer()
	if frameRenderer == nil {
		return
	}

	frame := e.frameSource(elapsed)
	for _, s := range activeScenes {
		if err := s.Prepare(frame); err != nil {
			log.Printf("[Engine] prepare %s: %v", s.Name(), err)
			return
		}
	}

	if err := frameRenderer.BeginFrame(); err != nil {
		log.Printf("[Engine] begin frame: %v", err)
		return
	}
	for _, s := range activeScenes {
		if err := s.DrawCalls(); err != nil {
			log.Printf("[Engine] draw %s: %v", s.Name(), err)
		}
	}
	frameRenderer.EndFrame()
	frameRenderer.Present()

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	e.profiler.Tick()
	if e.hudCallback != nil && e.window != nil {
		e.window.SetTitle(e.hudCallback(e.profiler.FPS()))
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.SetProfiling(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.SetProfiling(false)
}

func (e *engine) SetProfiling(enabled bool) {
	e.profiler.SetLogging(enabled)
}

func (e *engine) SetFrameSource(source func(elapsed float64) scene.Frame) {
	if source == nil {
		source = DefaultFrameSource
	}
	e.frameSource = source
}

func (e *engine) SetHUDCallback(callback func(fps float64) string) {
	e.hudCallback = callback
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
// Safe to call from any goroutine.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = defaultTickRate
	}
	newRate := interval(fps)
	e.engineTickRate.Store(int64(newRate))
	if !e.running.Load() {
		return
	}

	// replace any pending update
	for {
		select {
		case e.tickRateChannel <- newRate:
			return
		default:
		}
		select {
		case <-e.tickRateChannel:
		default:
		}
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop. Safe to call from any goroutine.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit.Store(int64(interval(fps)))
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
