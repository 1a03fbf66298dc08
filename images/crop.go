package images

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Crop extracts the region described by box from the source matrix.
//
// An all-zero box is the documented "no crop" value: the source matrix is
// returned as-is, not a copy. Any other box is rounded and clamped to the
// source bounds (see Box.clampRect for the legacy clamping quirk) and the
// region is returned as a new matrix owned by the caller.
func Crop(src gocv.Mat, box Box) gocv.Mat {
	if box.IsZero() {
		return src
	}

	region := src.Region(box.clampRect(src.Cols(), src.Rows()))
	defer region.Close()
	return region.Clone()
}

// CropMargin expands the box outward by margin on all sides and crops.
func CropMargin(src gocv.Mat, margin float32, box Box) gocv.Mat {
	return Crop(src, box.Expand(margin))
}

// CropCenter crops a width x height region centered in the source.
//
// Arguments:
// - src: The source matrix.
// - width, height: The requested crop size.
//
// Returns:
// - The centered crop.
// - ErrCropTooLarge if either dimension is >= the corresponding source
//   dimension.
func CropCenter(src gocv.Mat, width, height int) (gocv.Mat, error) {
	srcW, srcH := src.Cols(), src.Rows()
	if width >= srcW || height >= srcH {
		return gocv.NewMat(), errors.Wrapf(ErrCropTooLarge, "(%d, %d) >= (%d, %d)", width, height, srcW, srcH)
	}

	x := math32.Round(float32(srcW-width) / 2)
	y := math32.Round(float32(srcH-height) / 2)
	return Crop(src, Box{X: x, Y: y, W: float32(width), H: float32(height)}), nil
}

// CropScale crops the box out of the source, then resizes the crop to
// width x height when both are positive. An all-zero box means the full
// source extent.
func CropScale(src gocv.Mat, box Box, width, height int) gocv.Mat {
	if box.IsZero() {
		box = Box{W: float32(src.Cols()), H: float32(src.Rows())}
	}

	cropped := Crop(src, box)
	if width <= 0 && height <= 0 {
		return cropped
	}

	// At least one target dimension is set, so Resize always allocates.
	scaled := Resize(cropped, width, height, gocv.InterpolationLinear)
	cropped.Close()
	return scaled
}
