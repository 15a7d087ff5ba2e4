package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scenes/engine/light"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
	"github.com/Carmen-Shannon/oxy-scenes/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer captures uploads and draws.
type recordingRenderer struct {
	frames  []renderer.GPUFrame
	uploads map[string]model.Model
	draws   []string
}

var _ renderer.Renderer = &recordingRenderer{}

func (r *recordingRenderer) Resize(width, height int)                 {}
func (r *recordingRenderer) SetPresentMode(mode renderer.PresentMode) {}
func (r *recordingRenderer) SetClearColor(red, green, blue float64)   {}
func (r *recordingRenderer) WriteFrame(f *renderer.GPUFrame)          { r.frames = append(r.frames, *f) }
func (r *recordingRenderer) BeginFrame() error                        { return nil }
func (r *recordingRenderer) EndFrame()                                {}
func (r *recordingRenderer) Present()                                 {}

func (r *recordingRenderer) UploadMesh(key string, m model.Model) error {
	if r.uploads == nil {
		r.uploads = map[string]model.Model{}
	}
	r.uploads[key] = m
	return nil
}

func (r *recordingRenderer) Draw(key string) error {
	if _, ok := r.uploads[key]; !ok {
		return renderer.ErrUnknownMesh
	}
	r.draws = append(r.draws, key)
	return nil
}

// boxAt places a unit box at x.
func boxAt(x float32) game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithPosition(x, 0, 0),
		game_object.WithBuild(func(b mesh.Builder, _ mesh.Frame) {
			b.Add(primitive.Box())
		}),
	)
}

func fourLayouts() []Layout {
	return []Layout{
		{Name: "zero", Objects: []game_object.GameObject{boxAt(0)}},
		{Name: "one", Objects: []game_object.GameObject{boxAt(1)}},
		{Name: "two", Objects: []game_object.GameObject{boxAt(2)}},
		{Name: "three", Objects: []game_object.GameObject{boxAt(3)}},
	}
}

func TestModeWraps(t *testing.T) {
	s := NewScene("test", camera.NewCamera(), nil, WithLayouts(fourLayouts()...), WithBuildWorkers(2))
	defer s.Close()

	assert.Equal(t, 0, s.Mode())
	assert.Equal(t, "zero", s.ModeName())
	assert.Equal(t, 3, s.SetMode(3))
	assert.Equal(t, 0, s.CycleMode(1))
	assert.Equal(t, 3, s.CycleMode(-1))
	assert.Equal(t, 2, s.SetMode(-2))
	assert.Equal(t, 1, s.SetMode(9))
	assert.Equal(t, "one", s.ModeName())
}

func TestModeWithoutLayouts(t *testing.T) {
	s := NewScene("empty", camera.NewCamera(), nil)
	defer s.Close()

	assert.Equal(t, 0, s.CycleMode(5))
	assert.Equal(t, "", s.ModeName())
	tris, lines := s.Build(Frame{})
	assert.True(t, tris.Empty())
	assert.True(t, lines.Empty())
}

func TestBuildMergesInOrder(t *testing.T) {
	objs := make([]game_object.GameObject, 0, 12)
	for i := range 12 {
		objs = append(objs, boxAt(float32(i)*3))
	}
	s := NewScene("order", camera.NewCamera(), nil,
		WithLayouts(Layout{Name: "row", Objects: objs}),
		WithBuildWorkers(4),
	)
	defer s.Close()

	tris, lines := s.Build(Frame{})
	assert.True(t, lines.Empty())
	require.Equal(t, 12*36, tris.VertexCount())

	verts := tris.Vertices()
	for i := range 12 {
		// every box vertex lies within 1 of its center
		v := verts[i*36]
		assert.InDelta(t, float32(i)*3, v.Position[0], 1.0001, "box %d", i)
	}

	again, _ := s.Build(Frame{})
	assert.Equal(t, tris.Vertices(), again.Vertices())
	assert.Equal(t, tris.Indices(), again.Indices())
}

func TestBuildSkipsDisabledAndIncludesOverlay(t *testing.T) {
	hidden := boxAt(5)
	hidden.SetEnabled(false)
	axes := game_object.NewGameObject(game_object.WithBuild(func(b mesh.Builder, _ mesh.Frame) {
		b.AddLines(primitive.Axes(1))
	}))

	s := NewScene("overlay", camera.NewCamera(), nil,
		WithLayouts(Layout{Name: "one", Objects: []game_object.GameObject{boxAt(0), hidden}}),
		WithOverlay(axes),
	)
	defer s.Close()

	tris, lines := s.Build(Frame{})
	assert.Equal(t, 36, tris.VertexCount())
	assert.Equal(t, 6, lines.VertexCount())
	assert.Equal(t, model.TopologyLines, lines.Topology())
}

func TestBuildPassesFrame(t *testing.T) {
	var seen []float32
	spy := game_object.NewGameObject(game_object.WithBuild(func(_ mesh.Builder, f mesh.Frame) {
		seen = append(seen, f.Zh)
	}))
	s := NewScene("frame", camera.NewCamera(), nil, WithLayouts(Layout{Objects: []game_object.GameObject{spy}}))
	defer s.Close()

	s.Build(Frame{Zh: 42})
	assert.Equal(t, []float32{42}, seen)
}

func TestPrepareAndDraw(t *testing.T) {
	rr := &recordingRenderer{}
	s := NewScene("demo", camera.NewCamera(), rr,
		WithLayouts(Layout{Name: "one", Objects: []game_object.GameObject{boxAt(0)}}),
		WithLight(light.NewLight()),
	)
	defer s.Close()

	require.NoError(t, s.Prepare(Frame{}))
	require.Len(t, rr.frames, 1)
	assert.Equal(t, uint32(1), rr.frames[0].Light.Flags[light.FlagLighting])
	assert.Equal(t, 36, rr.uploads["demo/triangles"].IndexCount())
	assert.Equal(t, 0, rr.uploads["demo/lines"].IndexCount())

	require.NoError(t, s.DrawCalls())
	assert.Equal(t, []string{"demo/triangles", "demo/lines"}, rr.draws)
}

func TestPrepareUnlitWithoutLight(t *testing.T) {
	rr := &recordingRenderer{}
	s := NewScene("dark", camera.NewCamera(), rr)
	defer s.Close()

	require.NoError(t, s.Prepare(Frame{}))
	assert.Equal(t, uint32(0), rr.frames[0].Light.Flags[light.FlagLighting])
}

func TestNoRenderer(t *testing.T) {
	s := NewScene("headless", camera.NewCamera(), nil)
	defer s.Close()

	assert.ErrorIs(t, s.Prepare(Frame{}), ErrNoRenderer)
	assert.ErrorIs(t, s.DrawCalls(), ErrNoRenderer)
}
