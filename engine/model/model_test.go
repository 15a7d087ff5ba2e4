package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVertexLayout(t *testing.T) {
	v := RGB(0.5, 0.25, 1).WithSpecular(0.3, 16).WithEmission(0, 0, 0.2).
		Vertex([3]float32{1, 2, 3}, [3]float32{0, 1, 0})

	assert.Equal(t, GPUVertexStride, v.Size())
	buf := v.Marshal()
	require.Len(t, buf, GPUVertexStride)

	at := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	assert.Equal(t, float32(1), at(0))
	assert.Equal(t, float32(1), at(4))
	assert.Equal(t, float32(0.25), at(7))
	assert.Equal(t, float32(1), at(9))
	assert.Equal(t, float32(0.2), at(12))
	assert.Equal(t, float32(0.3), at(14))
	assert.Equal(t, float32(16), at(15))
}

func TestModelAppendRebasesIndices(t *testing.T) {
	m := NewModel(WithName("tri"))
	tri := []GPUVertex{{}, {}, {}}
	m.Append(tri, []uint32{0, 1, 2})
	m.Append(tri, []uint32{0, 1, 2})

	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, m.Indices())
	assert.Len(t, m.VertexData(), 6*GPUVertexStride)
	assert.Len(t, m.IndexData(), 6*4)
}

func TestModelMergeRequiresMatchingTopology(t *testing.T) {
	tris := NewModel()
	lines := NewModel(WithTopology(TopologyLines),
		WithVertices([]GPUVertex{{}, {}}), WithIndices([]uint32{0, 1}))

	assert.False(t, tris.Merge(lines))
	assert.True(t, tris.Empty())

	other := NewModel(WithTopology(TopologyLines))
	assert.True(t, other.Merge(lines))
	assert.True(t, other.Merge(lines))
	assert.Equal(t, []uint32{0, 1, 2, 3}, other.Indices())
}
