package model

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scenes/common"
)

// model is the implementation of the Model interface.
type model struct {
	mu       sync.RWMutex
	name     string
	topology Topology
	vertices []GPUVertex
	indices  []uint32
}

// Model defines the interface for a CPU-side indexed mesh.
// A Model holds GPU-layout vertices and uint32 indices assembled by the mesh
// builder, and exposes them as raw byte slices ready for buffer upload.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Topology reports whether the index list describes triangles or lines.
	//
	// Returns:
	//   - Topology: the primitive topology
	Topology() Topology

	// Vertices returns a copy of the model's vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices returns a copy of the model's indices.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexCount returns the number of vertices in the model.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount returns the number of indices in the model.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// VertexData returns the raw vertex data for upload into a vertex buffer.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data for upload into an index buffer.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// Append adds vertices and indices to the model. Indices are relative to
	// the appended vertices and are rebased onto the existing vertex count.
	//
	// Parameters:
	//   - vertices: the vertices to append
	//   - indices: the indices into vertices
	Append(vertices []GPUVertex, indices []uint32)

	// Merge appends every vertex and index of other onto this model.
	// Models with a different topology are ignored.
	//
	// Parameters:
	//   - other: the model to merge in
	//
	// Returns:
	//   - bool: true if other was merged
	Merge(other Model) bool

	// Empty reports whether the model has no indices.
	//
	// Returns:
	//   - bool: true if nothing would be drawn
	Empty() bool
}

var _ Model = &model{}

// NewModel creates a new Model instance with the provided options.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the model
//
// Returns:
//   - Model: a new Model instance configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		topology: TopologyTriangles,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Topology() Topology {
	return m.topology
}

func (m *model) Vertices() []GPUVertex {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]GPUVertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

func (m *model) Indices() []uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]uint32, len(m.indices))
	copy(out, m.indices)
	return out
}

func (m *model) VertexCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vertices)
}

func (m *model) IndexCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.indices)
}

func (m *model) VertexData() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return common.SliceToBytes(m.vertices)
}

func (m *model) IndexData() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return common.SliceToBytes(m.indices)
}

func (m *model) Append(vertices []GPUVertex, indices []uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	base := uint32(len(m.vertices))
	m.vertices = append(m.vertices, vertices...)
	for _, idx := range indices {
		m.indices = append(m.indices, base+idx)
	}
}

func (m *model) Merge(other Model) bool {
	if other == nil || other.Topology() != m.topology {
		return false
	}
	m.Append(other.Vertices(), other.Indices())
	return true
}

func (m *model) Empty() bool {
	return m.IndexCount() == 0
}
