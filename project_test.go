package geodesic

import (
	"math"
	"testing"
)

func TestProjectTrianglesOrdering(t *testing.T) {

	triangles, err := Generate(2, 0.75, 1)
	if err != nil {
		t.Fatal(err)
	}

	projected := ProjectTriangles(triangles, nil)

	if len(projected) != len(triangles) {
		t.Fatal("projection changed the face count")
	}

	for i := 1; i < len(projected); i++ {
		if projected[i].Depth < projected[i-1].Depth {
			t.Fatal("faces are not ordered back to front at index", i)
		}
	}

}

func TestProjectTrianglesPreservesShape(t *testing.T) {

	triangles, err := Generate(1, 0.75, 1)
	if err != nil {
		t.Fatal(err)
	}

	projected := ProjectTriangles(triangles, &ProjectionOptions{ViewAngleX: 0.4, ViewAngleY: 0.3})

	// A pure rotation; no vertex may leave the unit sphere.
	for i, p := range projected {
		for j, v := range p.Points {
			if v.Magnitude() > 1+testEpsilon {
				t.Fatal("projected face", i, "vertex", j, "left the sphere:", v.Magnitude())
			}
		}
	}

}

func TestProjectTrianglesDeterministic(t *testing.T) {

	triangles, err := Generate(2, 0.75, 1)
	if err != nil {
		t.Fatal(err)
	}

	first := ProjectTriangles(triangles, nil)
	second := ProjectTriangles(triangles, nil)

	for i := range first {
		if first[i] != second[i] {
			t.Fatal("projection differs between identical calls at index", i)
		}
	}

}

func TestProjectTrianglesZeroAnglesKeepXY(t *testing.T) {

	triangles, err := Generate(0, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	projected := ProjectTriangles(triangles, &ProjectionOptions{})

	// With no view rotation, projection is a pure reorder of the faces.
	matched := 0
	for _, p := range projected {
		for _, tri := range triangles {
			if p.Points.Equals(tri) {
				matched++
				break
			}
		}
	}

	if matched != len(triangles) {
		t.Fatal("only", matched, "projected faces match their sources")
	}

	if math.Abs(projected[0].Depth-projected[0].Points.Centroid().Z) > testEpsilon {
		t.Fatal("depth is not the mean Z of the face")
	}

}
