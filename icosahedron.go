package geodesic

import "math"

// goldenRatio is φ = (1 + √5) / 2; the icosahedron's vertices are the cyclic
// permutations of (±1, ±φ, 0).
var goldenRatio = (1 + math.Sqrt(5)) / 2

// icosahedronVertices is the raw (un-normalized) vertex table; each vertex
// lies at distance √(1 + φ²) from the origin.
var icosahedronVertices = [12]Vector{
	{-1, goldenRatio, 0},
	{1, goldenRatio, 0},
	{-1, -goldenRatio, 0},
	{1, -goldenRatio, 0},
	{0, -1, goldenRatio},
	{0, 1, goldenRatio},
	{0, -1, -goldenRatio},
	{0, 1, -goldenRatio},
	{goldenRatio, 0, -1},
	{goldenRatio, 0, 1},
	{-goldenRatio, 0, -1},
	{-goldenRatio, 0, 1},
}

// icosahedronFaces is the canonical face-index table connecting the 12
// vertices into the 20 triangles of a closed icosahedron. It's a fixed
// constant of the construction, not computed.
var icosahedronFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// NewIcosahedronMesh returns the Mesh of a regular icosahedron centered at
// the origin, with all 12 vertices scaled onto the sphere of the given
// radius. This is the base shape every subdivision round starts from.
func NewIcosahedronMesh(radius float64) Mesh {

	scale := radius / math.Sqrt(1+goldenRatio*goldenRatio)

	verts := make([]Vector, 0, len(icosahedronVertices))
	for _, v := range icosahedronVertices {
		verts = append(verts, v.Scale(scale))
	}

	faces := make([][3]int, 0, len(icosahedronFaces))
	faces = append(faces, icosahedronFaces[:]...)

	return Mesh{
		Vertices: verts,
		Faces:    faces,
		Radius:   radius,
	}

}
