package mesh

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/primitive"
)

// Frame carries the per-frame inputs composite builders read.
type Frame struct {
	// Zh is the animation phase in degrees.
	Zh float32

	// Elapsed is the animation clock in seconds.
	Elapsed float64

	// LampEmission is the streetlamp bulb emissivity.
	LampEmission float32

	// BallIncrement is the band size in degrees used for spheres.
	BallIncrement int

	// InvertBottom flips the rock bottom cap normals.
	InvertBottom bool
}

// saved is one transform stack entry.
type saved struct {
	transform common.Mat4
	material  model.Material
}

// builder is the implementation of the Builder interface.
type builder struct {
	name     string
	stack    []saved
	current  common.Mat4
	normal   common.Mat4
	dirty    bool
	material model.Material
	// base is the material a fresh or reset builder starts with.
	base      model.Material
	triangles []model.GPUVertex
	lines     []model.GPUVertex
}

// Builder defines the interface for the mesh arena composite builders draw
// into. A Builder accumulates world-space triangles and line segments under a
// local transform stack and a current material. It is not safe for
// concurrent use; parallel builds use one Builder per goroutine.
type Builder interface {
	// Reset discards all geometry and transforms and restores the starting
	// material, keeping allocated capacity.
	Reset()

	// Push saves the current transform and material.
	Push()

	// Pop restores the transform and material saved by the matching Push.
	// Popping an empty stack resets to identity.
	Pop()

	// Translate post-multiplies the current transform by a translation.
	//
	// Parameters:
	//   - x, y, z: translation in local units
	Translate(x, y, z float32)

	// Rotate post-multiplies the current transform by a rotation.
	//
	// Parameters:
	//   - deg: rotation angle in degrees, counter-clockwise
	//   - x, y, z: rotation axis
	Rotate(deg, x, y, z float32)

	// Scale post-multiplies the current transform by a per-axis scale.
	//
	// Parameters:
	//   - x, y, z: scale factors
	Scale(x, y, z float32)

	// Transform returns the current local-to-world matrix.
	//
	// Returns:
	//   - common.Mat4: the column-major transform
	Transform() common.Mat4

	// SetMaterial sets the material applied to geometry added afterwards.
	//
	// Parameters:
	//   - m: the material
	SetMaterial(m model.Material)

	// Material returns the current material.
	//
	// Returns:
	//   - model.Material: the current material
	Material() model.Material

	// Add transforms every triangle of seq into world space and appends it
	// with the current material.
	//
	// Parameters:
	//   - seq: triangle sequence from a generator
	Add(seq iter.Seq[primitive.Triangle])

	// AddParts appends seq choosing the material per triangle part.
	// Parts beyond the palette use the current material.
	//
	// Parameters:
	//   - seq: triangle sequence from a generator
	//   - palette: materials indexed by triangle part
	AddParts(seq iter.Seq[primitive.Triangle], palette []model.Material)

	// AddLines transforms every segment of seq into world space and appends
	// it with the current material.
	//
	// Parameters:
	//   - seq: segment sequence
	AddLines(seq iter.Seq[primitive.Segment])

	// TriangleCount returns the number of triangles added since Reset.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// LineCount returns the number of segments added since Reset.
	//
	// Returns:
	//   - int: the segment count
	LineCount() int

	// Triangles copies the accumulated triangles into a new triangle-list Model.
	//
	// Returns:
	//   - model.Model: the triangle mesh
	Triangles() model.Model

	// Lines copies the accumulated segments into a new line-list Model.
	//
	// Returns:
	//   - model.Model: the line mesh
	Lines() model.Model
}

var _ Builder = &builder{}

// NewBuilder creates a new Builder instance with the provided options.
//
// Parameters:
//   - options: variadic list of BuilderOption functions to configure the builder
//
// Returns:
//   - Builder: a new Builder with an identity transform and the default material
func NewBuilder(options ...BuilderOption) Builder {
	b := &builder{
		current:  common.IdentityMat4(),
		normal:   common.IdentityMat4(),
		material: model.DefaultMaterial,
	}
	for _, opt := range options {
		opt(b)
	}
	b.base = b.material
	return b
}

func (b *builder) Reset() {
	b.material = b.base
	b.stack = b.stack[:0]
	b.current = common.IdentityMat4()
	b.normal = common.IdentityMat4()
	b.dirty = false
	b.triangles = b.triangles[:0]
	b.lines = b.lines[:0]
}

func (b *builder) Push() {
	b.stack = append(b.stack, saved{transform: b.current, material: b.material})
}

func (b *builder) Pop() {
	n := len(b.stack)
	if n == 0 {
		b.current = common.IdentityMat4()
		b.dirty = true
		return
	}
	top := b.stack[n-1]
	b.stack = b.stack[:n-1]
	b.current = top.transform
	b.material = top.material
	b.dirty = true
}

func (b *builder) Translate(x, y, z float32) {
	b.apply(common.Translation(x, y, z))
}

func (b *builder) Rotate(deg, x, y, z float32) {
	b.apply(common.Rotation(deg, x, y, z))
}

func (b *builder) Scale(x, y, z float32) {
	b.apply(common.Scaling(x, y, z))
}

func (b *builder) Transform() common.Mat4 {
	return b.current
}

func (b *builder) SetMaterial(m model.Material) {
	b.material = m
}

func (b *builder) Material() model.Material {
	return b.material
}

func (b *builder) Add(seq iter.Seq[primitive.Triangle]) {
	b.AddParts(seq, nil)
}

func (b *builder) AddParts(seq iter.Seq[primitive.Triangle], palette []model.Material) {
	nm := b.normalMatrix()
	for t := range seq {
		m := b.material
		if t.Part >= 0 && t.Part < len(palette) {
			m = palette[t.Part]
		}
		for _, v := range t.V {
			p := b.current.TransformPoint(v.Position)
			n := nm.TransformDirection(v.Normal).Normalize()
			b.triangles = append(b.triangles, m.Vertex(p, n))
		}
	}
}

func (b *builder) AddLines(seq iter.Seq[primitive.Segment]) {
	for s := range seq {
		a := b.current.TransformPoint(s.A)
		c := b.current.TransformPoint(s.B)
		b.lines = append(b.lines, b.material.Vertex(a, common.Vec3{}), b.material.Vertex(c, common.Vec3{}))
	}
}

func (b *builder) TriangleCount() int {
	return len(b.triangles) / 3
}

func (b *builder) LineCount() int {
	return len(b.lines) / 2
}

func (b *builder) Triangles() model.Model {
	return b.snapshot(b.triangles, model.TopologyTriangles)
}

func (b *builder) Lines() model.Model {
	return b.snapshot(b.lines, model.TopologyLines)
}

// apply post-multiplies the current transform by m.
func (b *builder) apply(m common.Mat4) {
	b.current = b.current.Mul(m)
	b.dirty = true
}

// normalMatrix returns the inverse transpose of the current transform,
// recomputing it only after the transform changed.
func (b *builder) normalMatrix() common.Mat4 {
	if b.dirty {
		b.normal = b.current.NormalMatrix()
		b.dirty = false
	}
	return b.normal
}

// snapshot copies vertices into a new Model with sequential indices.
func (b *builder) snapshot(vertices []model.GPUVertex, topology model.Topology) model.Model {
	verts := make([]model.GPUVertex, len(vertices))
	copy(verts, vertices)
	indices := make([]uint32, len(vertices))
	for i := range indices {
		indices[i] = uint32(i)
	}
	return model.NewModel(
		model.WithName(b.name),
		model.WithTopology(topology),
		model.WithVertices(verts),
		model.WithIndices(indices),
	)
}
