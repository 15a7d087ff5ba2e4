package lorenz

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceFirstSteps(t *testing.T) {
	pts := Trace(DefaultParams, Start, TimeStep, 3)
	require.Len(t, pts, 3)
	assert.Equal(t, common.Vec3{1, 1, 1}, pts[0])

	// dx = 0, dy = 1*(28-1) - 1 = 26, dz = 1 - 2.6666
	assert.InDelta(t, 1, pts[1][0], 1e-6)
	assert.InDelta(t, 1.026, pts[1][1], 1e-6)
	assert.InDelta(t, 1-0.0016666, pts[1][2], 1e-6)

	// dx = 10*(1.026-1) = 0.26
	assert.InDelta(t, 1.00026, pts[2][0], 1e-6)
}

func TestTraceEdgeCases(t *testing.T) {
	assert.Nil(t, Trace(DefaultParams, Start, TimeStep, 0))
	assert.Len(t, Trace(DefaultParams, Start, TimeStep, 1), 1)
}

func TestTraceStaysOnAttractor(t *testing.T) {
	pts := Trace(DefaultParams, Start, TimeStep, Points)
	require.Len(t, pts, Points)
	for _, p := range pts[Points/2:] {
		assert.Less(t, p.Length(), float32(80))
	}
}

func TestCoefficientKeysRetrace(t *testing.T) {
	d := New()
	b := d.Bindings()
	before := d.State().Curve()

	b.HandleChar('R')
	b.HandleChar('s')
	b.HandleChar('B')
	p := d.State().Params()
	assert.Equal(t, 29.0, p.R)
	assert.Equal(t, 9.0, p.S)
	assert.InDelta(t, 2.7166, p.B, 1e-9)

	after := d.State().Curve()
	require.Len(t, after, Points)
	assert.Equal(t, before[0], after[0])
	assert.NotEqual(t, before[Points-1], after[Points-1])
	assert.Equal(t, "[LORENZ PARAMETERS] s = 9.00  r = 29.00  b = 2.7166  |  [VIEW ANGLE] az = 20  el = 30", d.HUD(0))

	b.HandleChar('i')
	assert.Equal(t, DefaultParams, d.State().Params())
	assert.Equal(t, before, d.State().Curve())
}

func TestViewKeys(t *testing.T) {
	d := New()
	b := d.Bindings()

	b.HandleChar('+')
	assert.Equal(t, float32(75), d.State().View().Dim)
	for range 40 {
		b.HandleChar('+')
	}
	assert.Equal(t, float32(minDim), d.State().View().Dim)
	b.HandleChar('-')
	assert.Equal(t, float32(minDim+zoomStep), d.State().View().Dim)

	b.HandleKey(common.KeyLeft)
	assert.Equal(t, float32(15), d.State().View().Azimuth)
	b.HandleChar('0')
	assert.Zero(t, d.State().View().Azimuth)
	assert.Zero(t, d.State().View().Elevation)
}

func TestSceneDrawsCurveAndAxes(t *testing.T) {
	d := New()
	s := scene.NewScene("lorenz", camera.NewCamera(), nil, scene.WithBuildWorkers(1))
	defer s.Close()
	d.Setup(s)

	f := d.Frame(s, 0)
	v := s.Camera().View()
	assert.Equal(t, camera.ProjectionOrthographic, v.Projection)
	assert.Equal(t, float32(startDim), v.Dim)

	tris, lines := s.Build(f)
	assert.True(t, tris.Empty())
	// 3 axis segments and Points-1 curve segments, two vertices each
	assert.Equal(t, 2*(3+Points-1), lines.VertexCount())

	verts := lines.Vertices()
	assert.Equal(t, [4]float32{1, 1, 1, 1}, verts[0].Color)
	assert.Equal(t, [4]float32{1, 1, 0, 1}, verts[len(verts)-1].Color)
}
