package mesh

import "github.com/Carmen-Shannon/oxy-scenes/engine/model"

// BuilderOption is a functional option for configuring a Builder via NewBuilder.
type BuilderOption func(*builder)

// WithName is an option builder that sets the name given to models produced by the Builder.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - BuilderOption: a function that applies the name option to a builder
func WithName(name string) BuilderOption {
	return func(b *builder) {
		b.name = name
	}
}

// WithCapacity is an option builder that preallocates room for the given number of triangles.
//
// Parameters:
//   - triangles: expected triangle count per frame
//
// Returns:
//   - BuilderOption: a function that applies the capacity option to a builder
func WithCapacity(triangles int) BuilderOption {
	return func(b *builder) {
		if triangles > 0 {
			b.triangles = make([]model.GPUVertex, 0, triangles*3)
		}
	}
}

// WithMaterial is an option builder that sets the initial material.
//
// Parameters:
//   - m: the starting material
//
// Returns:
//   - BuilderOption: a function that applies the material option to a builder
func WithMaterial(m model.Material) BuilderOption {
	return func(b *builder) {
		b.material = m
	}
}
