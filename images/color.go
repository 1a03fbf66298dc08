package images

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// Color is an 8-bit RGB triple used by the drawing operations.
//
// Values always carry red-green-blue order at this API boundary; the swap to
// the backend's blue-green-red scalar order happens inside the gocv binding
// when the color is handed over as a color.RGBA.
type Color struct {
	R, G, B uint8
}

// ParseColor parses a "#RRGGBB" hex string (the leading '#' is optional)
// into a Color.
//
// Returns:
// - The parsed Color.
// - An error if the string is not a six-digit hex triple.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, errors.Errorf("invalid hex color %q: want #RRGGBB", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, errors.Wrapf(err, "invalid hex color %q", s)
	}
	return Color{R: r, G: g, B: b}, nil
}

// RGBA converts the color to the color.RGBA value the gocv drawing functions
// expect. Alpha is fully opaque.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Swapped returns the color with red and blue exchanged. Useful when a buffer
// is carried in the non-default channel order.
func (c Color) Swapped() Color {
	return Color{R: c.B, G: c.G, B: c.R}
}
