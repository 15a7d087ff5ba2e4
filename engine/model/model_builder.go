package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithTopology is an option builder that sets the primitive topology of the Model.
//
// Parameters:
//   - topology: TopologyTriangles or TopologyLines
//
// Returns:
//   - ModelBuilderOption: a function that applies the topology option to a model
func WithTopology(topology Topology) ModelBuilderOption {
	return func(m *model) {
		m.topology = topology
	}
}

// WithVertices is an option builder that seeds the Model's vertex list.
//
// Parameters:
//   - vertices: the initial vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that seeds the Model's index list.
//
// Parameters:
//   - indices: the initial indices into the vertex list
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}
