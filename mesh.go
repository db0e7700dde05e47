package geodesic

import (
	"math"
)

// Dimensions represents the minimum and maximum spatial corners of a set of vertices.
type Dimensions [2]Vector

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector {
	return Vector{
		X: (dim[1].X + dim[0].X) / 2,
		Y: (dim[1].Y + dim[0].Y) / 2,
		Z: (dim[1].Z + dim[0].Z) / 2,
	}
}

func (dim Dimensions) Width() float64 {
	return dim[1].X - dim[0].X
}

func (dim Dimensions) Height() float64 {
	return dim[1].Y - dim[0].Y
}

func (dim Dimensions) Depth() float64 {
	return dim[1].Z - dim[0].Z
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float64 {
	return math.Max(math.Max(dim.Width(), dim.Height()), dim.Depth())
}

// grow widens the dimension set to include the given vertex.
func (dim Dimensions) grow(vec Vector) Dimensions {

	if dim[0].X > vec.X {
		dim[0].X = vec.X
	}
	if dim[0].Y > vec.Y {
		dim[0].Y = vec.Y
	}
	if dim[0].Z > vec.Z {
		dim[0].Z = vec.Z
	}

	if dim[1].X < vec.X {
		dim[1].X = vec.X
	}
	if dim[1].Y < vec.Y {
		dim[1].Y = vec.Y
	}
	if dim[1].Z < vec.Z {
		dim[1].Z = vec.Z
	}

	return dim

}

// A Mesh is the indexed form of the sphere used between pipeline stages: a
// list of unique vertices, plus faces referencing those vertices as index
// triples. Meshes are treated as values; Subdivide and SubdivideBy leave the
// calling Mesh untouched and return freshly built ones.
type Mesh struct {
	Vertices []Vector
	Faces    [][3]int
	Radius   float64 // Radius of the sphere new vertices are projected onto
}

// An edgeKey identifies an edge by its two vertex indices, irrespective of
// their order, so the two faces sharing an edge resolve to the same midpoint.
type edgeKey [2]int

func newEdgeKey(i1, i2 int) edgeKey {
	if i2 < i1 {
		i1, i2 = i2, i1
	}
	return edgeKey{i1, i2}
}

// Subdivide performs one midpoint-subdivision round, splitting every face
// into four by its edge midpoints and projecting each new midpoint onto the
// sphere of the Mesh's Radius. Midpoints are cached by edge for the duration
// of the round, so the faces on either side of an edge share one midpoint
// vertex rather than computing two subtly different ones. Face emission order
// follows input face order, so equal input Meshes subdivide identically.
func (mesh Mesh) Subdivide() (Mesh, error) {

	verts := make([]Vector, len(mesh.Vertices), len(mesh.Vertices)+len(mesh.Faces)*3/2)
	copy(verts, mesh.Vertices)

	faces := make([][3]int, 0, len(mesh.Faces)*4)

	midpoints := map[edgeKey]int{}

	var projErr error

	midpoint := func(i1, i2 int) int {

		key := newEdgeKey(i1, i2)

		if index, exists := midpoints[key]; exists {
			return index
		}

		mid := verts[i1].Add(verts[i2]).Scale(0.5)
		mid, err := projectToSphere(mid, mesh.Radius)
		if err != nil && projErr == nil {
			projErr = err
		}

		verts = append(verts, mid)
		index := len(verts) - 1
		midpoints[key] = index
		return index

	}

	for _, face := range mesh.Faces {

		v0, v1, v2 := face[0], face[1], face[2]

		m01 := midpoint(v0, v1)
		m12 := midpoint(v1, v2)
		m20 := midpoint(v2, v0)

		faces = append(faces,
			[3]int{v0, m01, m20},
			[3]int{v1, m12, m01},
			[3]int{v2, m20, m12},
			[3]int{m01, m12, m20},
		)

	}

	if projErr != nil {
		return Mesh{}, projErr
	}

	return Mesh{
		Vertices: verts,
		Faces:    faces,
		Radius:   mesh.Radius,
	}, nil

}

// SubdivideBy runs the given number of subdivision rounds and returns the
// resulting Mesh. 0 rounds returns the Mesh unchanged.
func (mesh Mesh) SubdivideBy(rounds int) (Mesh, error) {

	var err error

	for i := 0; i < rounds; i++ {
		mesh, err = mesh.Subdivide()
		if err != nil {
			return Mesh{}, err
		}
	}

	return mesh, nil

}

// Triangles flattens the Mesh into a list of independent Triangles, one per
// face, with no shared-vertex indexing remaining.
func (mesh Mesh) Triangles() []Triangle {

	triangles := make([]Triangle, 0, len(mesh.Faces))

	for _, face := range mesh.Faces {
		triangles = append(triangles, Triangle{
			mesh.Vertices[face[0]],
			mesh.Vertices[face[1]],
			mesh.Vertices[face[2]],
		})
	}

	return triangles

}

// Dimensions returns the spatial extents of the Mesh's vertices.
func (mesh Mesh) Dimensions() Dimensions {

	dim := Dimensions{
		{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}

	for _, v := range mesh.Vertices {
		dim = dim.grow(v)
	}

	return dim

}
