package demos

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/config"
	"github.com/Carmen-Shannon/oxy-scenes/engine/controls"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/renderer"
	"github.com/stretchr/testify/assert"
)

type recordingEngine struct {
	tickRate   float64
	frameLimit float64
	profiling  bool
	calls      int
}

func (r *recordingEngine) SetTickRate(fps float64)         { r.tickRate = fps; r.calls++ }
func (r *recordingEngine) SetRenderFrameLimit(fps float64) { r.frameLimit = fps; r.calls++ }
func (r *recordingEngine) SetProfiling(enabled bool)       { r.profiling = enabled; r.calls++ }

func TestPresentMode(t *testing.T) {
	assert.Equal(t, renderer.PresentModeUncapped, PresentMode("uncapped"))
	assert.Equal(t, renderer.PresentModeVSync, PresentMode("vsync"))
	assert.Equal(t, renderer.PresentModeVSync, PresentMode(""))
}

func TestSampleCount(t *testing.T) {
	assert.Equal(t, renderer.MSAAOff, SampleCount(1))
	assert.Equal(t, renderer.MSAAOff, SampleCount(0))
	assert.Equal(t, renderer.MSAA4x, SampleCount(4))
	assert.Equal(t, renderer.MSAA8x, SampleCount(8))
	assert.Equal(t, renderer.MSAA16x, SampleCount(16))
	assert.Equal(t, renderer.MSAA4x, SampleCount(3))
}

func TestRendererOptionsCoverEverySetting(t *testing.T) {
	opts := RendererOptions(config.Default("x", 1, 1).Renderer)
	assert.Len(t, opts, 4)
}

func TestApplyEngineConfig(t *testing.T) {
	e := &recordingEngine{}
	ApplyEngineConfig(e, config.EngineConfig{TickRate: 30, FrameLimit: 144, Profiling: true})
	assert.Equal(t, 30.0, e.tickRate)
	assert.Equal(t, 144.0, e.frameLimit)
	assert.True(t, e.profiling)

	// a zero tick rate leaves the loop alone
	e = &recordingEngine{tickRate: 60}
	ApplyEngineConfig(e, config.EngineConfig{})
	assert.Equal(t, 60.0, e.tickRate)
	assert.Equal(t, 2, e.calls)
}

func TestOrbitKeys(t *testing.T) {
	var az, el float32
	b := controls.NewBindings(OrbitKeys(5, func(da, de float32) { az += da; el += de })...)

	b.HandleKey(common.KeyRight)
	b.HandleKey(common.KeyRight)
	b.HandleKey(common.KeyLeft)
	b.HandleKey(common.KeyUp)
	assert.Equal(t, float32(5), az)
	assert.Equal(t, float32(5), el)

	b.HandleKey(common.KeyDown)
	b.HandleKey(common.KeyDown)
	assert.Equal(t, float32(-5), el)
}

func TestAxesOverlay(t *testing.T) {
	axes := Axes(1.5, false)
	assert.False(t, axes.Enabled())

	b := mesh.NewBuilder()
	axes.Build(b, mesh.Frame{})
	assert.Greater(t, b.LineCount(), 0)
	assert.Zero(t, b.TriangleCount())
}

func TestOrbitView(t *testing.T) {
	v := OrbitView(camera.ProjectionOrthographic, 2.5, 55, 20, 30)
	assert.Equal(t, camera.ProjectionOrthographic, v.Projection)
	assert.Equal(t, float32(2.5), v.Dim)
	assert.Equal(t, float32(20), v.Azimuth)
	assert.Equal(t, float32(30), v.Elevation)
}

type stillDemo struct{ Demo }

type tickingDemo struct {
	Demo
	seen []float64
}

func (d *tickingDemo) Tick(elapsed float64) { d.seen = append(d.seen, elapsed) }

func TestTickFunc(t *testing.T) {
	assert.Nil(t, TickFunc(&stillDemo{}, func() float64 { return 0 }))

	d := &tickingDemo{}
	clock := 0.0
	tick := TickFunc(d, func() float64 { return clock })
	clock = 0.25
	tick(0.25)
	clock = 0.5
	tick(0.25)
	assert.Equal(t, []float64{0.25, 0.5}, d.seen)
}
