package geodesic

import (
	"fmt"
	"io"
	"os"
)

// SVGExportOptions controls how ExportSVG projects and styles the triangle
// set. Opacity fades from MinOpacity at the back of the sphere to MaxOpacity
// at the front, which is what gives the flat projection its sense of depth.
type SVGExportOptions struct {
	Projection  *ProjectionOptions
	Color       Color
	StrokeWidth float64
	MinOpacity  float64
	MaxOpacity  float64
	Margin      float64 // Fraction of the drawing's span left blank around it
}

// DefaultSVGExportOptions creates an SVGExportOptions instance with some sensible defaults.
func DefaultSVGExportOptions() *SVGExportOptions {
	return &SVGExportOptions{
		Projection:  DefaultProjectionOptions(),
		Color:       royalBlue,
		StrokeWidth: 0.5,
		MinOpacity:  0.4,
		MaxOpacity:  1,
		Margin:      0.05,
	}
}

// royalBlue is #4169E1, the default face color.
var royalBlue = Color{R: 65.0 / 255, G: 105.0 / 255, B: 225.0 / 255, A: 1}

////////////////////////////////////////////////////////////////////////////
// SVG serialization helper

type svgWriter struct {
	writer io.Writer
	err    error
}

func (svg *svgWriter) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func (svg *svgWriter) start(minX, minY, width, height float64) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, minX, minY, width, height)
}

func (svg *svgWriter) end() {
	svg.printf("</svg>\n")
}

func (svg *svgWriter) polygon(points Triangle, fill string, opacity, strokeWidth float64) {
	// SVG's Y axis points down, so Y is flipped here.
	svg.printf("<polygon points='%f,%f %f,%f %f,%f' fill='%s' fill-opacity='%f' stroke='%s' stroke-width='%f'/>\n",
		points[0].X, -points[0].Y,
		points[1].X, -points[1].Y,
		points[2].X, -points[2].Y,
		fill, opacity, fill, strokeWidth)
}

// ExportSVG projects the triangles orthographically and writes them to w as a
// standalone SVG document, one filled polygon per triangle, drawn back to
// front with depth-faded opacity. The viewBox is fitted to the projected
// drawing. Passing nil options uses DefaultSVGExportOptions.
func ExportSVG(w io.Writer, triangles []Triangle, options *SVGExportOptions) error {

	if options == nil {
		options = DefaultSVGExportOptions()
	}

	projected := ProjectTriangles(triangles, options.Projection)

	// Projected extents; Y is negated to match the flipped output coordinates.
	var dim Dimensions
	first := true
	for _, p := range projected {
		for _, v := range p.Points {
			flipped := Vector{X: v.X, Y: -v.Y, Z: v.Z}
			if first {
				dim = Dimensions{flipped, flipped}
				first = false
			}
			dim = dim.grow(flipped)
		}
	}

	margin := dim.MaxSpan() * options.Margin

	svg := &svgWriter{writer: w}
	svg.start(
		dim[0].X-margin,
		dim[0].Y-margin,
		dim.Width()+margin*2,
		dim.Height()+margin*2,
	)

	fill := options.Color.HexString()

	var backDepth, frontDepth float64
	if len(projected) > 0 {
		backDepth = projected[0].Depth
		frontDepth = projected[len(projected)-1].Depth
	}

	for _, p := range projected {

		opacity := options.MaxOpacity
		if frontDepth > backDepth {
			t := (p.Depth - backDepth) / (frontDepth - backDepth)
			opacity = options.MinOpacity + (options.MaxOpacity-options.MinOpacity)*t
		}
		opacity = clamp(opacity, options.MinOpacity, options.MaxOpacity)

		svg.polygon(p.Points, fill, opacity, options.StrokeWidth)

	}

	svg.end()

	return svg.err

}

// SaveSVGFile exports the triangles as an SVG document to the given path.
func SaveSVGFile(path string, triangles []Triangle, options *SVGExportOptions) error {

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ExportSVG(file, triangles, options); err != nil {
		file.Close()
		return err
	}

	return file.Close()

}
