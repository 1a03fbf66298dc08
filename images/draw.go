package images

import (
	"image"
	"strings"

	"gocv.io/x/gocv"
)

// TextStyle bundles the font parameters for DrawText.
type TextStyle struct {
	// Font is the Hershey font face. The zero value is simplex; use
	// DefaultTextStyle for the adapter's duplex default.
	Font gocv.HersheyFont
	// Scale is the font scale factor. Zero falls back to 1.
	Scale float64
	// Thickness is the stroke thickness. Zero falls back to 1.
	Thickness int
	// Wrap splits the text on newlines and renders each line horizontally
	// centered, stacked vertically with a gap of glyph height + 10.
	Wrap bool
}

// DefaultTextStyle is the style DrawText has always used by default: duplex
// face, scale 1, thickness 1, no wrapping.
func DefaultTextStyle() TextStyle {
	return TextStyle{Font: gocv.FontHersheyDuplex, Scale: 1, Thickness: 1}
}

func (s TextStyle) withDefaults() TextStyle {
	if s.Scale == 0 {
		s.Scale = 1
	}
	if s.Thickness == 0 {
		s.Thickness = 1
	}
	return s
}

// DrawText renders text onto the matrix in place.
//
// Arguments:
// - dst: The target matrix, mutated in place.
// - text: The text; with style.Wrap it may span multiple lines.
// - position: Anchor point of the text baseline (ignored when wrapping,
//   wrapped lines are centered on the canvas).
// - c: The text color. Use ParseColor to accept "#RRGGBB" inputs.
// - style: Font, scale, thickness and wrap mode.
func DrawText(dst *gocv.Mat, text string, position image.Point, c Color, style TextStyle) {
	style = style.withDefaults()

	if !style.Wrap {
		gocv.PutText(dst, text, position, style.Font, style.Scale, c.RGBA(), style.Thickness)
		return
	}

	for i, line := range strings.Split(text, "\n") {
		size := gocv.GetTextSize(line, style.Font, style.Scale, style.Thickness)
		gap := size.Y + 10

		y := (dst.Rows()+size.Y)/2 + i*gap
		x := (dst.Cols() - size.X) / 2

		gocv.PutTextWithParams(dst, line, image.Pt(x, y),
			style.Font, style.Scale, c.RGBA(), style.Thickness, gocv.LineAA, false)
	}
}

// DrawSquare draws a rectangle onto the matrix in place.
//
// position holds the top-left corner in its first two elements and the
// bottom-right corner in its last two.
func DrawSquare(dst *gocv.Mat, position [4]int, c Color, thickness int, lineType gocv.LineType, shift int) {
	if thickness == 0 {
		thickness = 1
	}
	if lineType == 0 {
		lineType = gocv.Line8
	}
	rect := image.Rect(position[0], position[1], position[2], position[3])
	gocv.RectangleWithParams(dst, rect, c.RGBA(), thickness, lineType, shift)
}
