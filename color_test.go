package geodesic

import (
	"math"
	"testing"
)

func TestNewColorFromHexString(t *testing.T) {

	color, err := NewColorFromHexString("#4169E1")
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(float64(color.R)-65.0/255) > 1e-6 ||
		math.Abs(float64(color.G)-105.0/255) > 1e-6 ||
		math.Abs(float64(color.B)-225.0/255) > 1e-6 ||
		color.A != 1 {
		t.Fatal("parsed the wrong color:", color)
	}

	if color.HexString() != "#4169e1" {
		t.Fatal("hex round trip gave", color.HexString())
	}

	withAlpha, err := NewColorFromHexString("4169e180")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(float64(withAlpha.A)-128.0/255) > 1e-6 {
		t.Fatal("alpha pair parsed as", withAlpha.A)
	}

	for _, bad := range []string{"", "#12345", "#gghhii", "not a color"} {
		if _, err := NewColorFromHexString(bad); err == nil {
			t.Fatal("expected an error for", bad)
		}
	}

}

func TestNewColorFromName(t *testing.T) {

	color, err := NewColorFromName("RoyalBlue")
	if err != nil {
		t.Fatal(err)
	}

	if color.HexString() != "#4169e1" {
		t.Fatal("royalblue resolved to", color.HexString())
	}

	if _, err := NewColorFromName("notarealcolor"); err == nil {
		t.Fatal("expected an error for an unknown name")
	}

}

func TestParseColor(t *testing.T) {

	hex, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatal(err)
	}

	named, err := ParseColor("red")
	if err != nil {
		t.Fatal(err)
	}

	if hex != named {
		t.Fatal("hex and named red disagree:", hex, named)
	}

	if _, err := ParseColor("#zzz"); err == nil {
		t.Fatal("expected an error for unparseable input")
	}

}
