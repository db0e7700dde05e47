package geodesic

import (
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLTFSaveOptions controls how the triangle set is written out as a glTF 2.0
// document.
type GLTFSaveOptions struct {
	MeshName string
	Color    Color // Base color of the single material applied to every face
	// DoubleSided marks the material double-sided; with no consistent winding
	// guarantee on the faces, leaving this on keeps viewers from culling half
	// of them.
	DoubleSided bool
}

// DefaultGLTFSaveOptions creates a GLTFSaveOptions instance with some sensible defaults.
func DefaultGLTFSaveOptions() *GLTFSaveOptions {
	return &GLTFSaveOptions{
		MeshName:    "geodesic",
		Color:       royalBlue,
		DoubleSided: true,
	}
}

// ExportGLTFDocument builds a glTF 2.0 document holding the triangles as one
// mesh primitive. Vertices are written unindexed-style, three per face, so
// the exported mesh preserves the faces' disjointness exactly. Passing nil
// options uses DefaultGLTFSaveOptions.
func ExportGLTFDocument(triangles []Triangle, options *GLTFSaveOptions) *gltf.Document {

	if options == nil {
		options = DefaultGLTFSaveOptions()
	}

	positions := make([][3]float32, 0, len(triangles)*3)
	indices := make([]uint32, 0, len(triangles)*3)

	for _, tri := range triangles {
		for _, v := range tri {
			indices = append(indices, uint32(len(positions)))
			floats := v.Floats()
			positions = append(positions, [3]float32{float32(floats[0]), float32(floats[1]), float32(floats[2])})
		}
	}

	r, g, b, a := options.Color.RGBA64()

	doc := gltf.NewDocument()

	doc.Materials = []*gltf.Material{{
		Name: options.MeshName,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{r, g, b, a},
		},
		DoubleSided: options.DoubleSided,
	}}

	doc.Meshes = []*gltf.Mesh{{
		Name: options.MeshName,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: modeler.WritePosition(doc, positions),
			},
			Material: gltf.Index(0),
		}},
	}}

	doc.Nodes = []*gltf.Node{{Name: options.MeshName, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc

}

// SaveGLTFFile exports the triangles as a glTF file to the given path; a
// ".glb" extension selects the binary container, anything else the JSON one.
func SaveGLTFFile(path string, triangles []Triangle, options *GLTFSaveOptions) error {

	doc := ExportGLTFDocument(triangles, options)

	if strings.HasSuffix(path, ".glb") {
		return gltf.SaveBinary(doc, path)
	}

	// The JSON container can't carry a bare binary chunk, so the buffer is
	// embedded as a data URI to keep the file self-contained.
	for _, buffer := range doc.Buffers {
		buffer.EmbeddedResource()
	}

	return gltf.Save(doc, path)

}
