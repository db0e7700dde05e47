package geodesic

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const (
	ErrorInvalidHexColor  = "invalid hex color string"
	ErrorUnknownColorName = "unknown color name"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
// Colors are passed explicitly into the exporters; the geometry itself is colorless.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHexString returns a Color from the hex string provided ("#rrggbb",
// "rrggbb", or the same with a trailing "aa" alpha pair). The alpha defaults
// to 1 when not given.
func NewColorFromHexString(hex string) (Color, error) {

	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%s: %q", ErrorInvalidHexColor, hex)
	}

	value, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("%s: %q", ErrorInvalidHexColor, hex)
	}

	color := Color{A: 1}

	if len(hex) == 8 {
		color.A = float32(value&0xFF) / 255
		value >>= 8
	}

	color.B = float32(value&0xFF) / 255
	value >>= 8
	color.G = float32(value&0xFF) / 255
	value >>= 8
	color.R = float32(value&0xFF) / 255

	return color, nil

}

// NewColorFromName returns the named SVG 1.1 color ("royalblue", "tomato",
// and so on; case-insensitive).
func NewColorFromName(name string) (Color, error) {

	rgba, exists := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !exists {
		return Color{}, fmt.Errorf("%s: %q", ErrorUnknownColorName, name)
	}

	return Color{
		R: float32(rgba.R) / 255,
		G: float32(rgba.G) / 255,
		B: float32(rgba.B) / 255,
		A: float32(rgba.A) / 255,
	}, nil

}

// ParseColor resolves a color given either as a hex string or as an SVG color
// name, in that order of preference.
func ParseColor(s string) (Color, error) {

	if color, err := NewColorFromHexString(s); err == nil {
		return color, nil
	}

	if color, err := NewColorFromName(s); err == nil {
		return color, nil
	}

	return Color{}, errors.New(ErrorUnknownColorName + ": " + strconv.Quote(s))

}

// HexString returns the Color as a "#rrggbb" hex string, ignoring alpha.
func (color Color) HexString() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(float64(clamp(color.R, 0, 1))*255)),
		uint8(math.Round(float64(clamp(color.G, 0, 1))*255)),
		uint8(math.Round(float64(clamp(color.B, 0, 1))*255)),
	)
}

// RGBA64 returns the Color's components as float64 values.
func (color Color) RGBA64() (float64, float64, float64, float64) {
	return float64(color.R), float64(color.G), float64(color.B), float64(color.A)
}

func clamp[V float64 | float32 | int](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}
