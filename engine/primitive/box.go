package primitive

import (
	"iter"

	"github.com/Carmen-Shannon/oxy-scenes/common"
)

// Box face indices, also used as the triangle part.
const (
	FaceFront = iota
	FaceBack
	FaceRight
	FaceLeft
	FaceTop
	FaceBottom
)

var boxNormals = [6]common.Vec3{
	{0, 0, 1},
	{0, 0, -1},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
}

var boxCorners = [6][4]common.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
}

// BoxFaces returns the six faces of the unit cube [-1,1]^3, four
// counter-clockwise corners each, all carrying the face's outward normal.
func BoxFaces() [6][4]Vertex {
	var faces [6][4]Vertex
	for f := range faces {
		for c := range faces[f] {
			faces[f][c] = Vertex{Position: boxCorners[f][c], Normal: boxNormals[f]}
		}
	}
	return faces
}

// Box generates the unit cube [-1,1]^3 as twelve triangles. The triangle part
// is the face index (FaceFront..FaceBottom).
//
// Returns:
//   - iter.Seq[Triangle]: the cube triangles
func Box() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for f, c := range BoxFaces() {
			if !quad(yield, f, c[0], c[1], c[2], c[3]) {
				return
			}
		}
	}
}
