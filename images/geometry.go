package images

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// FlipMode selects the axis for Flip.
type FlipMode string

const (
	// FlipHorizontal mirrors around the vertical axis.
	FlipHorizontal FlipMode = "horizontal"
	// FlipVertical mirrors around the horizontal axis.
	FlipVertical FlipMode = "vertical"
	// FlipBoth mirrors around both axes.
	FlipBoth FlipMode = "both"
)

// Resize scales the source matrix, preserving aspect ratio when only one
// target dimension is given.
//
// Dimensions that are zero or negative count as "not given". With neither
// given the source is returned unchanged; with one given the other is derived
// from the source aspect ratio; with both given the source is stretched to
// the exact size.
func Resize(src gocv.Mat, width, height int, interp gocv.InterpolationFlags) gocv.Mat {
	if width <= 0 && height <= 0 {
		return src
	}

	srcW, srcH := src.Cols(), src.Rows()
	if width <= 0 {
		width = int(float64(height) / float64(srcH) * float64(srcW))
	}
	if height <= 0 {
		height = int(float64(width) / float64(srcW) * float64(srcH))
	}

	dst := gocv.NewMat()
	gocv.Resize(src, &dst, image.Pt(width, height), 0, 0, interp)
	return dst
}

// Flip mirrors the source matrix.
//
// Returns:
// - The flipped matrix.
// - ErrUnsupportedFlipMode for any mode other than FlipHorizontal,
//   FlipVertical or FlipBoth.
func Flip(src gocv.Mat, mode FlipMode) (gocv.Mat, error) {
	var flipCode int
	switch mode {
	case FlipVertical:
		flipCode = 0
	case FlipHorizontal:
		flipCode = 1
	case FlipBoth:
		flipCode = -1
	default:
		return gocv.NewMat(), errors.Wrapf(ErrUnsupportedFlipMode,
			"%q: only %q, %q or %q", mode, FlipHorizontal, FlipVertical, FlipBoth)
	}

	dst := gocv.NewMat()
	gocv.Flip(src, &dst, flipCode)
	return dst, nil
}

// Zoom scales the content about a center point without changing the canvas
// size, using a pure-scale affine transform.
//
// Arguments:
// - src: The source matrix.
// - level: The zoom factor; 1 is the identity and returns src unchanged.
// - center: The zoom center, or nil for the geometric center.
//
// Returns:
// - The zoomed matrix (or src itself when level == 1).
// - ErrCenterOutOfBounds if a supplied center lies outside the source.
func Zoom(src gocv.Mat, level float64, center *image.Point) (gocv.Mat, error) {
	if level == 1 {
		return src, nil
	}

	w, h := src.Cols(), src.Rows()
	c, err := resolveCenter(center, w, h)
	if err != nil {
		return gocv.NewMat(), err
	}

	m := gocv.GetRotationMatrix2D(c, 0, level)
	defer m.Close()

	dst := gocv.NewMat()
	gocv.WarpAffine(src, &dst, m, image.Pt(w, h))
	return dst, nil
}

// RotateBound rotates the content by -angle degrees about the center and
// grows the canvas so nothing is clipped.
//
// The new canvas size comes from the rotation's cosine and sine, and the
// transform's translation terms are re-centered into it.
func RotateBound(src gocv.Mat, angle float64) gocv.Mat {
	w, h := src.Cols(), src.Rows()
	cX, cY := w/2, h/2

	m := gocv.GetRotationMatrix2D(image.Pt(cX, cY), -angle, 1.0)
	defer m.Close()

	cos := math.Abs(m.GetDoubleAt(0, 0))
	sin := math.Abs(m.GetDoubleAt(0, 1))

	newW := int(float64(h)*sin + float64(w)*cos)
	newH := int(float64(h)*cos + float64(w)*sin)

	m.SetDoubleAt(0, 2, m.GetDoubleAt(0, 2)+float64(newW)/2-float64(cX))
	m.SetDoubleAt(1, 2, m.GetDoubleAt(1, 2)+float64(newH)/2-float64(cY))

	dst := gocv.NewMat()
	gocv.WarpAffine(src, &dst, m, image.Pt(newW, newH))
	return dst
}

// RotateCrop rotates the content by -angle degrees about center (or the
// geometric center when nil), keeping the original canvas size and clipping
// whatever rotates outside the frame.
func RotateCrop(src gocv.Mat, angle float64, center *image.Point) (gocv.Mat, error) {
	w, h := src.Cols(), src.Rows()
	c, err := resolveCenter(center, w, h)
	if err != nil {
		return gocv.NewMat(), err
	}

	m := gocv.GetRotationMatrix2D(c, -angle, 1.0)
	defer m.Close()

	dst := gocv.NewMat()
	gocv.WarpAffine(src, &dst, m, image.Pt(w, h))
	return dst, nil
}

func resolveCenter(center *image.Point, w, h int) (image.Point, error) {
	if center == nil {
		return image.Pt(w/2, h/2), nil
	}
	if center.X < 0 || center.X > w || center.Y < 0 || center.Y > h {
		return image.Point{}, errors.Wrapf(ErrCenterOutOfBounds, "(%d, %d) not inside %dx%d", center.X, center.Y, w, h)
	}
	return *center, nil
}
