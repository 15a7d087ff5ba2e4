package model

// Topology selects how a model's index list is assembled into primitives.
type Topology int

const (
	// TopologyTriangles draws every three indices as a lit triangle.
	TopologyTriangles Topology = iota
	// TopologyLines draws every two indices as an unlit line segment.
	TopologyLines
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case TopologyLines:
		return "lines"
	default:
		return "triangles"
	}
}

// Material holds the surface properties applied to emitted vertices.
// Color feeds both the ambient and diffuse terms.
type Material struct {
	// Color is the RGBA surface color.
	Color [4]float32

	// Emission is the RGB light emitted by the surface regardless of lighting.
	Emission [3]float32

	// Specular is the specular reflection level in [0, 1].
	Specular float32

	// Shininess is the specular exponent.
	Shininess float32
}

// DefaultMaterial is opaque white with no emission and no specular highlight.
var DefaultMaterial = Material{
	Color:     [4]float32{1, 1, 1, 1},
	Shininess: 1,
}

// RGB returns DefaultMaterial with the given opaque color.
//
// Parameters:
//   - r, g, b: color components in [0, 1]
//
// Returns:
//   - Material: the colored material
func RGB(r, g, b float32) Material {
	m := DefaultMaterial
	m.Color = [4]float32{r, g, b, 1}
	return m
}

// WithSpecular returns a copy of m with the given specular level and shininess.
func (m Material) WithSpecular(level, shininess float32) Material {
	m.Specular = level
	m.Shininess = shininess
	return m
}

// WithEmission returns a copy of m emitting the given RGB light.
func (m Material) WithEmission(r, g, b float32) Material {
	m.Emission = [3]float32{r, g, b}
	return m
}

// Vertex packs a position and normal with m into a GPUVertex.
//
// Parameters:
//   - position: world-space position
//   - normal: world-space unit normal
//
// Returns:
//   - GPUVertex: the packed vertex
func (m Material) Vertex(position, normal [3]float32) GPUVertex {
	return GPUVertex{
		Position: position,
		Normal:   normal,
		Color:    m.Color,
		Emission: [4]float32{m.Emission[0], m.Emission[1], m.Emission[2], 0},
		Material: [2]float32{m.Specular, m.Shininess},
	}
}
