package mesh

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertVec(t *testing.T, want common.Vec3, got [3]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d", i)
	}
}

func TestTranslateThenScale(t *testing.T) {
	b := NewBuilder()
	b.Translate(1, 2, 3)
	b.Scale(2, 2, 2)
	b.Add(primitive.Box())

	require.Equal(t, 12, b.TriangleCount())
	v := b.Triangles().Vertices()
	// first front-face corner (-1,-1,1) scaled then moved
	assertVec(t, common.Vec3{-1, 0, 5}, v[0].Position)
	assertVec(t, common.Vec3{0, 0, 1}, v[0].Normal)
}

func TestRotateAboutZ(t *testing.T) {
	b := NewBuilder()
	b.Rotate(90, 0, 0, 1)
	b.AddLines(primitive.Axes(1))

	v := b.Lines().Vertices()
	require.Len(t, v, 6)
	assertVec(t, common.Vec3{0, 1, 0}, v[1].Position)
	assertVec(t, common.Vec3{-1, 0, 0}, v[3].Position)
}

func TestPushPopRestoresTransformAndMaterial(t *testing.T) {
	b := NewBuilder()
	red := model.RGB(1, 0, 0)
	b.SetMaterial(red)
	b.Push()
	b.Translate(5, 0, 0)
	b.SetMaterial(model.RGB(0, 0, 1))
	b.Pop()

	assert.Equal(t, common.IdentityMat4(), b.Transform())
	assert.Equal(t, red, b.Material())

	// unbalanced pop falls back to identity
	b.Translate(1, 1, 1)
	b.Pop()
	assert.Equal(t, common.IdentityMat4(), b.Transform())
}

func TestNormalsUnderNonUniformScale(t *testing.T) {
	b := NewBuilder()
	b.Scale(4, 1, 0.5)
	b.Add(primitive.Ball(15))

	for _, v := range b.Triangles().Vertices() {
		n := common.Vec3(v.Normal)
		assert.InDelta(t, 1, n.Length(), eps)
	}

	// a tilted face keeps its normal perpendicular to its edges
	b.Reset()
	b.Scale(3, 1, 1)
	b.Rotate(30, 0, 0, 1)
	b.Add(primitive.Box())
	v := b.Triangles().Vertices()
	for i := 0; i+2 < len(v); i += 3 {
		n := common.Vec3(v[i].Normal)
		edge := common.Vec3(v[i+1].Position).Sub(common.Vec3(v[i].Position))
		assert.InDelta(t, 0, edge.Dot(n), eps)
	}
}

func TestAddPartsUsesPalette(t *testing.T) {
	palette := []model.Material{model.RGB(1, 0, 0), model.RGB(0, 1, 0)}
	b := NewBuilder(WithMaterial(model.RGB(0, 0, 1)))
	b.AddParts(primitive.Box(), palette)

	v := b.Triangles().Vertices()
	require.Len(t, v, 36)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, v[0].Color)
	assert.Equal(t, [4]float32{0, 1, 0, 1}, v[6].Color)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, v[12].Color)
}

func TestSnapshotsAreIndependentOfReset(t *testing.T) {
	b := NewBuilder(WithName("arena"), WithCapacity(64))
	b.Add(primitive.Box())
	tris := b.Triangles()
	b.Reset()

	assert.Equal(t, 0, b.TriangleCount())
	assert.Equal(t, "arena", tris.Name())
	assert.Equal(t, 36, tris.IndexCount())
	assert.Equal(t, model.TopologyTriangles, tris.Topology())
	assert.True(t, b.Lines().Empty())
}

func TestResetRestoresStartingMaterial(t *testing.T) {
	b := NewBuilder()
	b.SetMaterial(model.RGB(1, 0, 0))
	b.Reset()
	assert.Equal(t, model.DefaultMaterial, b.Material())

	gold := model.RGB(0.85, 0.65, 0.2)
	b = NewBuilder(WithMaterial(gold))
	b.SetMaterial(model.RGB(0, 0, 1))
	b.Add(primitive.Box())
	b.Reset()
	assert.Equal(t, gold, b.Material())

	b.Add(primitive.Box())
	for _, v := range b.Triangles().Vertices() {
		assert.Equal(t, gold.Color, v.Color)
	}
}

func TestMaterialEmissionReachesVertices(t *testing.T) {
	b := NewBuilder()
	b.SetMaterial(model.RGB(1, 1, 0.9).WithEmission(0.5, 0.5, 0.5).WithSpecular(0.6, 64))
	b.Add(primitive.Ball(45))

	v := b.Triangles().Vertices()[0]
	assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 0}, v.Emission)
	assert.Equal(t, [2]float32{0.6, 64}, v.Material)
}
