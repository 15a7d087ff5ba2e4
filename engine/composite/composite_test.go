package composite

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-3

func bounds(vs []model.GPUVertex) (lo, hi common.Vec3) {
	lo = common.Vec3{1e9, 1e9, 1e9}
	hi = common.Vec3{-1e9, -1e9, -1e9}
	for _, v := range vs {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo, hi
}

func TestBuildersRestoreBuilderState(t *testing.T) {
	start := model.RGB(0.1, 0.2, 0.3)
	builders := map[string]func(mesh.Builder){
		"tree":       func(b mesh.Builder) { Tree(b, 1, 0, 1, 2.2, 1.2) },
		"rock":       func(b mesh.Builder) { Rock(b, 1, 0, 0, 0.7, false) },
		"lamp":       func(b mesh.Builder) { StreetLamp(b, 3.6, 0, 0.8, 1, 10) },
		"house":      func(b mesh.Builder) { House(b, -6, 0, -4, 1.2, 1.6, 1.2, 10) },
		"windmill":   func(b mesh.Builder) { Windmill(b, DefaultWindmill.At(0, 0, -14), 30) },
		"helicopter": func(b mesh.Builder) { Helicopter(b, 0, 0, 0, 0.5, 45) },
		"marker":     func(b mesh.Builder) { LightMarker(b, 5, 0, 0, 0.1, 10) },
		"axes":       func(b mesh.Builder) { Axes(b, 2) },
	}
	for name, build := range builders {
		b := mesh.NewBuilder(mesh.WithMaterial(start))
		build(b)
		assert.Equal(t, common.IdentityMat4(), b.Transform(), name)
		assert.Equal(t, start, b.Material(), name)
		assert.Positive(t, b.TriangleCount()+b.LineCount(), name)
	}
}

func TestTreeShape(t *testing.T) {
	b := mesh.NewBuilder()
	Tree(b, 0, 0, 0, 2, 1)
	require.Equal(t, 4*12, b.TriangleCount())

	lo, hi := bounds(b.Triangles().Vertices())
	// trunk reaches 0.2h below its center, the top slab ends a level above 1.0h
	assert.InDelta(t, -0.2*2, lo[1], eps)
	assert.InDelta(t, 0.4*2+2.5*0.2*2+0.2*2, hi[1], eps)
	assert.InDelta(t, 1, hi[0], eps)
}

func TestRockScale(t *testing.T) {
	b := mesh.NewBuilder()
	Rock(b, 0, 0, 0, 2, false)
	require.Equal(t, 64, b.TriangleCount())
	lo, hi := bounds(b.Triangles().Vertices())
	assert.InDelta(t, 1.4, hi[1], eps)
	assert.InDelta(t, -1.2, lo[1], eps)
}

func TestHouseSitsOnGround(t *testing.T) {
	b := mesh.NewBuilder()
	House(b, 2, 0, -3, 0.9, 0.7, 0.8, -25)
	require.Equal(t, 12+24, b.TriangleCount())

	lo, hi := bounds(b.Triangles().Vertices())
	assert.InDelta(t, 0, lo[1], eps)
	assert.InDelta(t, 2*0.7+0.65*0.7, hi[1], eps)

	v := b.Triangles().Vertices()
	assert.Equal(t, HousePalette[0].Color, v[0].Color)
	assert.Equal(t, roof.Color, v[len(v)-1].Color)
}

func TestWindmillBladesSpin(t *testing.T) {
	still := mesh.NewBuilder()
	Windmill(still, DefaultWindmill, 0)
	turned := mesh.NewBuilder()
	Windmill(turned, DefaultWindmill, 45)

	require.Equal(t, still.TriangleCount(), turned.TriangleCount())
	assert.Equal(t, 48+96+4*12, still.TriangleCount())

	a, c := still.Triangles().Vertices(), turned.Triangles().Vertices()
	// pole and hub are static, blades are the trailing boxes
	assert.Equal(t, a[:3*(48+96)], c[:3*(48+96)])
	assert.NotEqual(t, a[len(a)-1].Position, c[len(c)-1].Position)

	_, hi := bounds(a)
	assert.InDelta(t, 5+1.1, hi[1], 0.05)
}

func TestWindmillClampsBlades(t *testing.T) {
	p := DefaultWindmill
	p.Blades = 0
	b := mesh.NewBuilder()
	Windmill(b, p, 0)
	assert.Equal(t, 48+96+2*12, b.TriangleCount())
}

func TestHelicopterIsDeterministic(t *testing.T) {
	a := mesh.NewBuilder()
	Helicopter(a, 0, 0, 0, 0, 30)
	c := mesh.NewBuilder()
	Helicopter(c, 0, 0, 0, 0, 30)
	assert.Equal(t, a.Triangles().Vertices(), c.Triangles().Vertices())

	lo, hi := bounds(a.Triangles().Vertices())
	// tail blades hang past the boom end; at 3*zh = 90 one main blade lies along x
	assert.Less(t, lo[0], float32(-7.5))
	assert.InDelta(t, 4, hi[0], 0.01)
	assert.Less(t, lo[1], float32(-1.2))
}

func TestHelicopterRotorsMove(t *testing.T) {
	a := mesh.NewBuilder()
	Helicopter(a, 0, 0, 0, 0, 0)
	c := mesh.NewBuilder()
	Helicopter(c, 0, 0, 0, 0, 20)
	assert.Equal(t, a.TriangleCount(), c.TriangleCount())
	assert.NotEqual(t, a.Triangles().Vertices(), c.Triangles().Vertices())
}

func TestStreetLampBulbAtTip(t *testing.T) {
	b := mesh.NewBuilder()
	StreetLamp(b, 0, 0, 0, 0.8, 10)

	tip := LampTip()
	var sum common.Vec3
	n := 0
	for _, v := range b.Triangles().Vertices() {
		if v.Emission[0] == 0 {
			continue
		}
		assert.Equal(t, [4]float32{0.8, 0.8, 0.8, 0}, v.Emission)
		for i := range sum {
			sum[i] += v.Position[i]
		}
		n++
	}
	require.Positive(t, n)
	for i := range sum {
		assert.InDelta(t, tip[i], sum[i]/float32(n), 0.01)
	}
}

func TestLightMarkerEmission(t *testing.T) {
	b := mesh.NewBuilder()
	LightMarker(b, 0, 1, 0, 0.1, 10)
	v := b.Triangles().Vertices()
	require.NotEmpty(t, v)
	for i := range 3 {
		assert.InDelta(t, 1, v[0].Emission[i], eps)
	}
	assert.InDelta(t, 0.1, common.Vec3{v[0].Position[0], v[0].Position[1] - 1, v[0].Position[2]}.Length(), eps)
}

func TestAxesAreLines(t *testing.T) {
	b := mesh.NewBuilder()
	Axes(b, 1.5)
	assert.Equal(t, 3, b.LineCount())
	assert.Equal(t, 0, b.TriangleCount())
	assert.Equal(t, model.TopologyLines, b.Lines().Topology())
}
