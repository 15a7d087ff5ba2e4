package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	engscene "github.com/Carmen-Shannon/oxy-scenes/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeKeys(t *testing.T) {
	d := New()
	b := d.Bindings()

	b.HandleChar('m')
	assert.Equal(t, "Angle=20,30  Helicopter", d.HUD(0))
	b.HandleChar('m')
	b.HandleChar('m')
	assert.Equal(t, 0, d.State().Params().Mode)
	b.HandleChar('M')
	assert.Equal(t, 2, d.State().Params().Mode)

	b.HandleKey(common.KeyUp)
	b.HandleChar('0')
	p := d.State().Params()
	assert.Zero(t, p.Azimuth)
	assert.Zero(t, p.Elevation)
}

func TestLayouts(t *testing.T) {
	layouts := Layouts()
	require.Len(t, layouts, 3)
	assert.Len(t, layouts[0].Objects, 5)
	assert.Len(t, layouts[1].Objects, 1)
	assert.Len(t, layouts[2].Objects, 1)
	for i, l := range layouts {
		assert.Equal(t, modeNames[i], l.Name)
	}
}

func TestHelicoptersCircle(t *testing.T) {
	heli := circling(5, 1.6, 0)
	b := mesh.NewBuilder()

	heli.Build(b, mesh.Frame{Zh: 0})
	x, y, z := heli.Position()
	assert.InDelta(t, 5, x, 1e-4)
	assert.InDelta(t, 1.6, y, 1e-6)
	assert.InDelta(t, 0, z, 1e-4)
	_, yaw, _ := heli.Rotation()
	assert.Equal(t, float32(90), yaw)

	b.Reset()
	heli.Build(b, mesh.Frame{Zh: 90})
	x, _, z = heli.Position()
	assert.InDelta(t, 0, x, 1e-4)
	assert.InDelta(t, -5, z, 1e-4)
	_, yaw, _ = heli.Rotation()
	assert.Equal(t, float32(180), yaw)

	sx, sy, sz := heli.Scale()
	assert.Equal(t, [3]float32{0.6, 0.6, 0.6}, [3]float32{sx, sy, sz})
}

func TestOpposingHelicopter(t *testing.T) {
	heli := circling(6.5, 2.0, 180)
	heli.Build(mesh.NewBuilder(), mesh.Frame{Zh: 0})
	x, y, z := heli.Position()
	assert.InDelta(t, -6.5, x, 1e-4)
	assert.InDelta(t, 2.0, y, 1e-6)
	assert.InDelta(t, 0, z, 1e-4)
}

func TestFullSceneBuildIsDeterministic(t *testing.T) {
	s := engscene.NewScene("scene", camera.NewCamera(), nil, engscene.WithLayouts(Layouts()...), engscene.WithBuildWorkers(3))
	defer s.Close()

	a, _ := s.Build(engscene.Frame{Zh: 45})
	b, _ := s.Build(engscene.Frame{Zh: 45})
	require.False(t, a.Empty())
	assert.Equal(t, a.VertexCount(), b.VertexCount())
	assert.Equal(t, a.Vertices(), b.Vertices())
}

func TestFrameSyncsScene(t *testing.T) {
	d := New()
	s := engscene.NewScene("scene", camera.NewCamera(), nil, engscene.WithBuildWorkers(1))
	defer s.Close()
	d.Setup(s)

	d.Bindings().HandleChar('M')
	d.Bindings().HandleKey(common.KeyRight)
	f := d.Frame(s, 2)

	assert.Equal(t, float32(180), f.Zh)
	assert.Equal(t, "Windmill", s.ModeName())
	v := s.Camera().View()
	assert.Equal(t, float32(dim), v.Dim)
	assert.Equal(t, float32(25), v.Azimuth)

	_, lines := s.Build(f)
	assert.False(t, lines.Empty(), "axes shown")
}
