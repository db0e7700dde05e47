package geodesic

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportSVG(t *testing.T) {

	triangles, err := Generate(2, 0.75, 2.5)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}

	if err := ExportSVG(buf, triangles, nil); err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	if !strings.HasPrefix(out, `<?xml version="1.0"?>`) {
		t.Fatal("output is missing the XML prologue")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatal("output is missing the closing svg tag")
	}

	if count := strings.Count(out, "<polygon "); count != len(triangles) {
		t.Fatal("expected", len(triangles), "polygons, found", count)
	}

	for _, bad := range []string{"NaN", "Inf"} {
		if strings.Contains(out, bad) {
			t.Fatal("output contains", bad)
		}
	}

	if !strings.Contains(out, "#4169e1") {
		t.Fatal("default color missing from output")
	}

}

func TestExportSVGCustomColor(t *testing.T) {

	triangles, err := Generate(0, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	options := DefaultSVGExportOptions()
	options.Color = NewColor(1, 0, 0, 1)

	buf := &bytes.Buffer{}
	if err := ExportSVG(buf, triangles, options); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "#ff0000") {
		t.Fatal("custom color missing from output")
	}

}

func TestExportSVGEmpty(t *testing.T) {

	buf := &bytes.Buffer{}

	if err := ExportSVG(buf, nil, nil); err != nil {
		t.Fatal(err)
	}

	if strings.Count(buf.String(), "<polygon ") != 0 {
		t.Fatal("empty input produced polygons")
	}

}
