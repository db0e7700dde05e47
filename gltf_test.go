package geodesic

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestSaveGLTFFile(t *testing.T) {

	triangles, err := Generate(1, 0.75, 1)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"geodesic.gltf", "geodesic.glb"} {

		path := filepath.Join(t.TempDir(), name)

		if err := SaveGLTFFile(path, triangles, nil); err != nil {
			t.Fatal(err)
		}

		doc, err := gltf.Open(path)
		if err != nil {
			t.Fatal(err)
		}

		if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
			t.Fatal(name, "does not hold exactly one mesh primitive")
		}

		primitive := doc.Meshes[0].Primitives[0]

		positions := doc.Accessors[primitive.Attributes[gltf.POSITION]]
		if int(positions.Count) != len(triangles)*3 {
			t.Fatal(name, "holds", positions.Count, "positions, want", len(triangles)*3)
		}

		indices := doc.Accessors[*primitive.Indices]
		if int(indices.Count) != len(triangles)*3 {
			t.Fatal(name, "holds", indices.Count, "indices, want", len(triangles)*3)
		}

		if len(doc.Materials) != 1 || !doc.Materials[0].DoubleSided {
			t.Fatal(name, "is missing the double-sided material")
		}

	}

}

func TestExportGLTFDocumentColor(t *testing.T) {

	triangles, err := Generate(0, 0.9, 1)
	if err != nil {
		t.Fatal(err)
	}

	options := DefaultGLTFSaveOptions()
	options.Color = NewColor(0.25, 0.5, 0.75, 1)

	doc := ExportGLTFDocument(triangles, options)

	factor := doc.Materials[0].PBRMetallicRoughness.BaseColorFactor
	if factor == nil {
		t.Fatal("material has no base color factor")
	}

	if factor[0] != 0.25 || factor[1] != 0.5 || factor[2] != 0.75 || factor[3] != 1 {
		t.Fatal("base color factor is", *factor)
	}

	defaultFactor := ExportGLTFDocument(triangles, nil).Materials[0].PBRMetallicRoughness.BaseColorFactor
	r, g, b, a := royalBlue.RGBA64()
	if *defaultFactor != [4]float64{r, g, b, a} {
		t.Fatal("default base color factor is", *defaultFactor)
	}

}
