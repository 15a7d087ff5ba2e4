package primitive

import (
	"iter"
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func collect(seq iter.Seq[Triangle]) []Triangle {
	var out []Triangle
	for t := range seq {
		out = append(out, t)
	}
	return out
}

func TestTorusTriangleCount(t *testing.T) {
	assert.Equal(t, 48*16*2, Count(Torus(1.2, 0.3, 180, 48, 16)))
	assert.Equal(t, 32*16*2, Count(Torus(0.6, 0.05, 120, 32, 16)))
	assert.Equal(t, 3*3*2, Count(Torus(1, 0.2, 360, 1, -4)))
}

func TestTorusClampsArguments(t *testing.T) {
	// rings and sides clamp to 3, sweep to [0, 360]
	assert.Equal(t, collect(Torus(1, 0.2, 360, 3, 3)), collect(Torus(1, 0.2, 720, 2, 2)))
	assert.Equal(t, collect(Torus(1, 0.2, 90, 3, 3)), collect(Torus(1, 0.2, 90, 1, -4)))
	assert.Equal(t, collect(Torus(1, 0.2, 0, 8, 6)), collect(Torus(1, 0.2, -45, 8, 6)))
	assert.NotEqual(t, collect(Torus(1, 0.2, 360, 4, 3)), collect(Torus(1, 0.2, 360, 3, 3)))
}

func TestTorusHalfSweepStaysOnTube(t *testing.T) {
	const R, r = 1.2, 0.3
	for _, tri := range collect(Torus(R, r, 180, 48, 16)) {
		for _, v := range tri.V {
			p := v.Position
			rho := math32.Sqrt(p[0]*p[0] + p[1]*p[1])
			dist := math32.Sqrt((rho-R)*(rho-R) + p[2]*p[2])
			assert.InDelta(t, r, dist, eps)
			assert.GreaterOrEqual(t, p[1], float32(-eps))
			assert.InDelta(t, 1, v.Normal.Length(), eps)
		}
	}
}

func TestTorusFullSweepCloses(t *testing.T) {
	for _, v := range []float32{0, 45, 90, 200} {
		start := TorusPoint(1, 0.25, 0, v).Position
		end := TorusPoint(1, 0.25, 360, v).Position
		for i := range start {
			assert.InDelta(t, start[i], end[i], eps)
		}
	}

	// the final ring of the generated strip lands exactly on u = 360
	tris := collect(Torus(1, 0.25, 360, 12, 8))
	last := tris[len(tris)-1].V
	assert.InDelta(t, 0, last[1].Position[1], eps)
}

func TestBoxFaces(t *testing.T) {
	faces := BoxFaces()
	require.Len(t, faces, 6)
	for f, corners := range faces {
		require.Len(t, corners, 4)
		n := corners[0].Normal
		assert.InDelta(t, 1, n.Length(), eps)
		for i := range corners {
			assert.Equal(t, n, corners[i].Normal)
			edge := corners[(i+1)%4].Position.Sub(corners[i].Position)
			assert.InDelta(t, 0, edge.Dot(n), eps, "face %d edge %d", f, i)
		}
		// counter-clockwise seen from outside
		got := FlatNormal(corners[0].Position, corners[1].Position, corners[2].Position)
		assert.InDelta(t, 1, got.Dot(n), eps, "face %d", f)
	}
	assert.Equal(t, 12, Count(Box()))
}

func TestBallIsUnitSphere(t *testing.T) {
	tris := collect(Ball(DefaultBallIncrement))
	assert.Len(t, tris, 18*18*2)
	for _, tri := range tris {
		for _, v := range tri.V {
			assert.InDelta(t, 1, v.Position.Length(), eps)
			assert.Equal(t, v.Position, v.Normal)
		}
	}
}

func TestBallIncrementClamp(t *testing.T) {
	assert.Equal(t, collect(Ball(1)), collect(Ball(0)))
	assert.Equal(t, collect(Ball(45)), collect(Ball(90)))
	assert.Equal(t, 4*4*2, Count(Ball(45)))
}

func TestGeneratorsAreRestartable(t *testing.T) {
	seqs := map[string]iter.Seq[Triangle]{
		"rod":   Rod(2, 0.25, 32),
		"disk":  ExtrudedDisk(0.8, 0.3, 32),
		"tube":  TaperedTube(-2, -7.5, 0.25, 0.1, 15),
		"cone":  ConeY(1, 1, 0.65, 0),
		"dome":  HemisphereFront(1.2, 15),
		"prism": ExtrudedTriangle(common.Vec3{-.6, -.4, 0}, common.Vec3{.7, -.4, 0}, common.Vec3{0, .6, 0}, 2),
		"rock":  RockHull(false),
	}
	for name, seq := range seqs {
		first := collect(seq)
		assert.Equal(t, first, collect(seq), name)
	}
}

func TestGeneratorsStopEarly(t *testing.T) {
	n := 0
	for range Torus(1, 0.2, 360, 24, 12) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestRodAndDiskCounts(t *testing.T) {
	assert.Equal(t, 32*4, Count(Rod(2, 0.25, 32)))
	assert.Equal(t, 6*4, Count(Rod(2, 0.25, 2)))
	assert.Equal(t, 32*4, Count(ExtrudedDisk(0.8, 0.3, 32)))
	assert.Equal(t, 3*4, Count(ExtrudedDisk(0.8, 0.3, 0)))
}

func TestRodCapsFaceOutward(t *testing.T) {
	for _, tri := range collect(Rod(2, 0.5, 12)) {
		got := FlatNormal(tri.V[0].Position, tri.V[1].Position, tri.V[2].Position)
		switch tri.Part {
		case RodRightCap:
			assert.InDelta(t, 1, got[0], eps)
		case RodLeftCap:
			assert.InDelta(t, -1, got[0], eps)
		case RodSide:
			assert.Greater(t, got.Dot(tri.V[0].Normal), float32(0))
		}
	}
}

func TestExtrudedDiskParts(t *testing.T) {
	for _, tri := range collect(ExtrudedDisk(1, 0.5, 16)) {
		for _, v := range tri.V {
			switch tri.Part {
			case DiskBottom:
				assert.Equal(t, float32(0), v.Position[2])
				assert.Equal(t, float32(-1), v.Normal[2])
			case DiskTop:
				assert.Equal(t, float32(0.5), v.Position[2])
				assert.Equal(t, float32(1), v.Normal[2])
			case DiskSide:
				assert.Equal(t, float32(0), v.Normal[2])
				assert.InDelta(t, 1, v.Normal.Length(), eps)
			}
		}
	}
}

func TestExtrudedTriangle(t *testing.T) {
	a, b, c := common.Vec3{-.6, -.4, 0}, common.Vec3{.7, -.4, 0}, common.Vec3{0, .6, 0}
	tris := collect(ExtrudedTriangle(a, b, c, 2))
	require.Len(t, tris, 8)

	assert.Equal(t, PrismFront, tris[0].Part)
	assert.InDelta(t, 1, tris[0].V[0].Normal[2], eps)
	assert.Equal(t, PrismBack, tris[1].Part)
	assert.InDelta(t, -1, tris[1].V[0].Normal[2], eps)
	assert.Equal(t, float32(2), tris[1].V[0].Position[2])
	for _, tri := range tris[2:] {
		assert.Equal(t, PrismSide, tri.Part)
		assert.InDelta(t, 0, tri.V[0].Normal[2], eps)
	}
}

func TestTaperedTubeNormalsTilt(t *testing.T) {
	for _, tri := range collect(TaperedTube(0, 5, 0.14, 0.08, 15)) {
		for _, v := range tri.V {
			assert.InDelta(t, 1, v.Normal.Length(), eps)
			assert.Greater(t, v.Normal[0], float32(0))
		}
	}
	assert.Equal(t, 24*2, Count(TaperedTube(0, 5, 0.14, 0.08, 15)))
	assert.Equal(t, 2, Count(TaperedTube(0, 5, 1, 1, 1000)))
}

func TestConeY(t *testing.T) {
	tris := collect(ConeY(1, 1.2, 1, 0))
	require.Len(t, tris, 360/DefaultConeStep)
	for _, tri := range tris {
		assert.Equal(t, common.Vec3{0, 2, 0}, tri.V[0].Position)
		assert.Equal(t, float32(1), tri.V[1].Position[1])
		got := FlatNormal(tri.V[0].Position, tri.V[1].Position, tri.V[2].Position)
		assert.Greater(t, got[1], float32(0))
	}
}

func TestHemisphereFrontFacesX(t *testing.T) {
	tris := collect(HemisphereFront(1.2, 0))
	assert.Len(t, tris, 6*24*2)
	for _, tri := range tris {
		for _, v := range tri.V {
			assert.InDelta(t, 1.2, v.Position.Length(), eps)
			assert.GreaterOrEqual(t, v.Position[0], float32(-eps))
		}
	}
}

func TestRockHullBottomInversion(t *testing.T) {
	normal := collect(RockHull(false))
	inverted := collect(RockHull(true))
	require.Len(t, normal, RockSegments*4)
	require.Len(t, inverted, RockSegments*4)

	for i := range normal {
		n, m := normal[i].V[0].Normal, inverted[i].V[0].Normal
		if normal[i].Part == RockBottom {
			assert.Less(t, n[1], float32(0))
			assert.Equal(t, n.Scale(-1), m)
		} else {
			assert.Equal(t, n, m)
		}
	}
}

func TestAxesAndPolyline(t *testing.T) {
	var tips []common.Vec3
	for s := range Axes(2) {
		assert.Equal(t, common.Vec3{}, s.A)
		tips = append(tips, s.B)
	}
	assert.Equal(t, []common.Vec3{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}, tips)

	assert.Equal(t, 2, Count(Polyline([]common.Vec3{{}, {1, 0, 0}, {1, 1, 0}})))
	assert.Equal(t, 0, Count(Polyline(nil)))
}

func TestFlatNormal(t *testing.T) {
	n := FlatNormal(common.Vec3{0, 0, 0}, common.Vec3{1, 0, 0}, common.Vec3{0, 1, 0})
	assert.Equal(t, common.Vec3{0, 0, 1}, n)
	assert.Equal(t, common.Vec3{}, FlatNormal(common.Vec3{}, common.Vec3{}, common.Vec3{1, 0, 0}))
}
