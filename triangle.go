package geodesic

// A Triangle is one face of the generated sphere, fully described by its own
// three vertices. The vertex order is deterministic but no particular winding
// (CW or CCW) is guaranteed or relied upon.
type Triangle [3]Vector

// Centroid returns the arithmetic mean position of the Triangle's three vertices.
func (tri Triangle) Centroid() Vector {
	return tri[0].Add(tri[1]).Add(tri[2]).Divide(3)
}

// Shrunk returns a copy of the Triangle with every vertex moved toward the
// Triangle's own centroid: vi' = c + factor*(vi - c). The centroid itself is
// unchanged, so each face floats in place rather than collapsing toward the
// sphere's center. A factor of 1 is the identity; factors above 1 expand the
// face instead.
func (tri Triangle) Shrunk(factor float64) Triangle {

	center := tri.Centroid()

	for i, v := range tri {
		tri[i] = center.Add(v.Sub(center).Scale(factor))
	}

	return tri

}

// Equals returns true if the two Triangles' vertices are close enough in all
// values, position for position.
func (tri Triangle) Equals(other Triangle) bool {
	return tri[0].Equals(other[0]) && tri[1].Equals(other[1]) && tri[2].Equals(other[2])
}

// Dimensions returns the spatial extents of the Triangle's vertices.
func (tri Triangle) Dimensions() Dimensions {

	dim := Dimensions{tri[0], tri[0]}
	dim = dim.grow(tri[1])
	dim = dim.grow(tri[2])

	return dim

}
