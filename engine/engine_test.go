package engine

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
	"github.com/Carmen-Shannon/oxy-scenes/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
	"github.com/Carmen-Shannon/oxy-scenes/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	calls    []string
	beginErr error
	resized  [2]int
}

var _ renderer.Renderer = &fakeRenderer{}

func (r *fakeRenderer) Resize(width, height int)                 { r.resized = [2]int{width, height} }
func (r *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}
func (r *fakeRenderer) SetClearColor(red, green, blue float64)   {}
func (r *fakeRenderer) WriteFrame(f *renderer.GPUFrame)          { r.calls = append(r.calls, "frame") }
func (r *fakeRenderer) UploadMesh(key string, m model.Model) error {
	r.calls = append(r.calls, "upload "+key)
	return nil
}
func (r *fakeRenderer) BeginFrame() error {
	r.calls = append(r.calls, "begin")
	return r.beginErr
}
func (r *fakeRenderer) Draw(key string) error { r.calls = append(r.calls, "draw "+key); return nil }
func (r *fakeRenderer) EndFrame()             { r.calls = append(r.calls, "end") }
func (r *fakeRenderer) Present()              { r.calls = append(r.calls, "present") }

type fakeWindow struct {
	title    string
	onResize func(width, height int)
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(callback func())                  {}
func (w *fakeWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }
func (w *fakeWindow) SetKeyDownCallback(callback func(keyCode uint32))   {}
func (w *fakeWindow) SetKeyUpCallback(callback func(keyCode uint32))     {}
func (w *fakeWindow) SetCharCallback(callback func(char rune))           {}
func (w *fakeWindow) SetTitle(title string)                              { w.title = title }
func (w *fakeWindow) Title() string                                      { return w.title }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor         { return nil }
func (w *fakeWindow) IsRunning() bool                                    { return false }
func (w *fakeWindow) Close() error                                       { return nil }
func (w *fakeWindow) ProcessMessages()                                   {}
func (w *fakeWindow) Width() int                                         { return 600 }
func (w *fakeWindow) Height() int                                        { return 600 }

func newTestScene(r renderer.Renderer, seen *[]float32) scene.Scene {
	obj := game_object.NewGameObject(game_object.WithBuild(func(b mesh.Builder, f mesh.Frame) {
		*seen = append(*seen, f.Zh)
		b.Add(primitive.Box())
	}))
	return scene.NewScene("main", camera.NewCamera(), r,
		scene.WithActive(true),
		scene.WithLayouts(scene.Layout{Name: "only", Objects: []game_object.GameObject{obj}}),
		scene.WithBuildWorkers(1),
	)
}

func TestRenderFrameLifecycle(t *testing.T) {
	fr := &fakeRenderer{}
	fw := &fakeWindow{}
	var seen []float32
	s := newTestScene(fr, &seen)
	defer s.Close()

	e := NewEngine(
		WithWindow(fw),
		WithScene(0, s),
		WithHUD(func(fps float64) string { return "hud" }),
	).(*engine)

	e.renderFrame(0.016, 1)

	assert.Equal(t, []string{
		"frame",
		"upload main/triangles",
		"upload main/lines",
		"begin",
		"draw main/triangles",
		"draw main/lines",
		"end",
		"present",
	}, fr.calls)
	require.Len(t, seen, 1)
	assert.InDelta(t, 90, seen[0], 1e-4)
	assert.Equal(t, "hud", fw.title)
}

func TestRenderFrameSkipsOnBeginError(t *testing.T) {
	fr := &fakeRenderer{beginErr: errors.New("surface lost")}
	fw := &fakeWindow{}
	var seen []float32
	s := newTestScene(fr, &seen)
	defer s.Close()

	e := NewEngine(WithWindow(fw), WithScene(0, s), WithHUD(func(float64) string { return "hud" })).(*engine)
	e.renderFrame(0.016, 0)

	assert.NotContains(t, fr.calls, "present")
	assert.Empty(t, fw.title)
}

func TestInactiveScenesAreNotDrawn(t *testing.T) {
	fr := &fakeRenderer{}
	var seen []float32
	s := newTestScene(fr, &seen)
	defer s.Close()
	s.SetActive(false)

	e := NewEngine(WithScene(0, s)).(*engine)
	e.renderFrame(0.016, 0)
	assert.Empty(t, fr.calls)
	assert.Empty(t, seen)
}

func TestFrameSource(t *testing.T) {
	fr := &fakeRenderer{}
	var seen []float32
	s := newTestScene(fr, &seen)
	defer s.Close()

	e := NewEngine(WithScene(0, s), WithFrameSource(func(elapsed float64) scene.Frame {
		return scene.Frame{Zh: 7}
	})).(*engine)
	e.renderFrame(0, 123)
	assert.Equal(t, []float32{7}, seen)

	f := DefaultFrameSource(5)
	assert.InDelta(t, 90, f.Zh, 1e-4)
	assert.Equal(t, 5.0, f.Elapsed)
}

func TestResizeUpdatesRendererAndAspect(t *testing.T) {
	fr := &fakeRenderer{}
	fw := &fakeWindow{}
	var seen []float32
	s := newTestScene(fr, &seen)
	defer s.Close()

	NewEngine(WithWindow(fw), WithScene(0, s))
	require.NotNil(t, fw.onResize)

	fw.onResize(900, 600)
	assert.Equal(t, [2]int{900, 600}, fr.resized)
	assert.InDelta(t, 1.5, s.Camera().Aspect(), 1e-6)

	fw.onResize(0, 0)
	assert.Equal(t, [2]int{900, 600}, fr.resized)
}

func TestTickRateDefaults(t *testing.T) {
	e := NewEngine(WithTickRate(0)).(*engine)
	assert.Equal(t, e.engineTickRate.Load(), NewEngine(WithTickRate(60)).(*engine).engineTickRate.Load())

	e.SetTickRate(50)
	assert.Equal(t, int64(20*time.Millisecond), e.engineTickRate.Load())

	e.SetRenderFrameLimit(-1)
	assert.Zero(t, e.renderFrameLimit.Load())
}

func TestTicksAdvanceAnimationClock(t *testing.T) {
	fr := &fakeRenderer{}
	var seen []float32
	s := newTestScene(fr, &seen)
	defer s.Close()

	var dts []float32
	e := NewEngine(WithScene(0, s), WithTickCallback(func(dt float32) {
		dts = append(dts, dt)
	})).(*engine)
	assert.Zero(t, e.Elapsed())

	e.tick(500 * time.Millisecond)
	e.tick(500 * time.Millisecond)
	assert.InDelta(t, 1.0, e.Elapsed(), 1e-9)
	assert.Equal(t, []float32{0.5, 0.5}, dts)

	e.renderFrame(0.016, e.Elapsed())
	require.Len(t, seen, 1)
	assert.InDelta(t, 90, seen[0], 1e-4)
}

func TestTickLoopRunsCallback(t *testing.T) {
	var ticks atomic.Int32
	e := NewEngine(WithTickRate(1000), WithTickCallback(func(float32) {
		ticks.Add(1)
	})).(*engine)

	e.running.Store(true)
	e.wg.Add(1)
	go e.handleEngine()

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	e.SetTickRate(500)
	e.signalQuit()
	e.wg.Wait()
	assert.Positive(t, e.Elapsed())
	assert.False(t, e.running.Load())
}

func TestSettingsChangeWhileRendering(t *testing.T) {
	fr := &fakeRenderer{}
	var seen []float32
	s := newTestScene(fr, &seen)
	defer s.Close()

	var frames atomic.Int32
	e := NewEngine(WithScene(0, s), WithRenderFrameLimit(2000), WithFrameSource(func(elapsed float64) scene.Frame {
		frames.Add(1)
		return DefaultFrameSource(elapsed)
	})).(*engine)

	e.running.Store(true)
	e.wg.Add(1)
	go e.handleRender()

	for i := range 50 {
		e.SetRenderFrameLimit(float64(1000 + i))
		e.SetTickRate(float64(30 + i))
		e.SetProfiling(i%2 == 0)
	}
	assert.Eventually(t, func() bool { return frames.Load() >= 2 }, time.Second, time.Millisecond)
	e.SetRenderFrameLimit(0)

	e.signalQuit()
	e.wg.Wait()
	assert.Zero(t, e.renderFrameLimit.Load())
	assert.Equal(t, int64(interval(79)), e.engineTickRate.Load())
}

func TestIntervalKeepsFractionalRates(t *testing.T) {
	assert.Equal(t, 20*time.Millisecond, interval(50))
	assert.Greater(t, interval(59.94), interval(60))
	assert.Zero(t, interval(0))
}
