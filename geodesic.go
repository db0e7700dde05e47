package geodesic

// geodesic generates the geometry of a "floating triangle" geodesic sphere: a
// regular icosahedron, midpoint-subdivided onto a sphere, with every face
// shrunk toward its own centroid so the triangles visibly detach from one
// another. The package produces geometry only; drawing it is up to the caller.

import (
	"errors"
	"fmt"
)

const (
	ErrorInvalidSubdivisions = "invalid configuration: subdivision count cannot be negative"
	ErrorInvalidShrinkFactor = "invalid configuration: shrink factor must be greater than zero"
	ErrorInvalidRadius       = "invalid configuration: radius must be greater than zero"
	ErrorDegenerateGeometry  = "degenerate geometry: cannot project a zero-length vector onto the sphere"
)

// Generate builds the floating-triangle geodesic sphere and returns its faces
// as a flat list of independent Triangles; no vertices are shared between the
// returned faces. The icosahedron is built at the given radius, subdivided the
// given number of rounds (each new vertex re-projected onto the sphere), and
// every resulting face is then shrunk toward its own centroid by shrinkFactor.
// The result always contains exactly 20 * 4^subdivisions triangles.
//
// A shrinkFactor of 1 leaves the faces touching; values between 0 and 1 open
// gaps between them; values above 1 are permitted and expand the faces into
// overlap. Generate is pure and deterministic - the same arguments always
// produce the same triangles in the same order.
func Generate(subdivisions int, shrinkFactor, radius float64) ([]Triangle, error) {

	if subdivisions < 0 {
		return nil, fmt.Errorf("%s: %d", ErrorInvalidSubdivisions, subdivisions)
	}

	if shrinkFactor <= 0 {
		return nil, fmt.Errorf("%s: %v", ErrorInvalidShrinkFactor, shrinkFactor)
	}

	if radius <= 0 {
		return nil, fmt.Errorf("%s: %v", ErrorInvalidRadius, radius)
	}

	mesh := NewIcosahedronMesh(radius)

	mesh, err := mesh.SubdivideBy(subdivisions)
	if err != nil {
		return nil, err
	}

	triangles := mesh.Triangles()

	for i, tri := range triangles {
		triangles[i] = tri.Shrunk(shrinkFactor)
	}

	return triangles, nil

}

// projectToSphere rescales the vertex to lie exactly on the sphere of the
// given radius. A zero-length vertex has no defined projection; that can't
// happen for any midpoint of an icosahedral subdivision, but it's surfaced as
// an error rather than silently producing NaN coordinates.
func projectToSphere(vec Vector, radius float64) (Vector, error) {
	if vec.IsZero() {
		return vec, errors.New(ErrorDegenerateGeometry)
	}
	return vec.Scale(radius / vec.Magnitude()), nil
}
