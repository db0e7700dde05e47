package geodesic

import "sort"

// ProjectionOptions controls how ProjectTriangles orients the sphere before
// flattening it.
type ProjectionOptions struct {
	ViewAngleX float64 // Rotation around the X axis, in radians, applied first
	ViewAngleY float64 // Rotation around the Y axis, in radians, applied second
}

// DefaultProjectionOptions creates a ProjectionOptions instance with a
// slightly tilted viewing angle that keeps the sphere from being seen
// pole-on.
func DefaultProjectionOptions() *ProjectionOptions {
	return &ProjectionOptions{
		ViewAngleX: 0.4,
		ViewAngleY: 0.3,
	}
}

// A ProjectedTriangle is a Triangle after orthographic projection: its
// vertices are rotated into view space, with the X and Y components forming
// the 2D silhouette and Depth recording the mean view-space Z, used for
// painter's-style ordering.
type ProjectedTriangle struct {
	Points Triangle
	Depth  float64
}

// ProjectTriangles rotates the triangles by the view angles and projects them
// orthographically onto the viewing plane (dropping Z is up to the consumer -
// the rotated Z values are kept so depth remains available). The result is
// ordered back to front by Depth; the sort is stable, so equal inputs always
// produce identical output order. Passing nil options uses
// DefaultProjectionOptions.
func ProjectTriangles(triangles []Triangle, options *ProjectionOptions) []ProjectedTriangle {

	if options == nil {
		options = DefaultProjectionOptions()
	}

	projected := make([]ProjectedTriangle, 0, len(triangles))

	for _, tri := range triangles {

		p := ProjectedTriangle{}

		for i, v := range tri {
			rotated := v.Rotate(VecX, options.ViewAngleX).Rotate(VecY, options.ViewAngleY)
			p.Points[i] = rotated
			p.Depth += rotated.Z
		}

		p.Depth /= 3

		projected = append(projected, p)

	}

	sort.SliceStable(projected, func(i, j int) bool {
		return projected[i].Depth < projected[j].Depth
	})

	return projected

}
