package images

import "github.com/pkg/errors"

// Sentinel errors returned by the adapter. Wrapped errors keep these as their
// cause, so callers can test with errors.Is.
var (
	// ErrEmptyBuffer is returned when a decode is attempted on an empty buffer.
	ErrEmptyBuffer = errors.New("images: empty encoded buffer")
	// ErrEmptyMat is returned when an operation receives an empty matrix.
	ErrEmptyMat = errors.New("images: empty source matrix")
	// ErrExists is returned by WriteFile when the destination exists and
	// overwrite was not requested.
	ErrExists = errors.New("images: destination file already exists")
	// ErrUnsupportedFlipMode is returned by Flip for unknown modes.
	ErrUnsupportedFlipMode = errors.New("images: unsupported flip mode")
	// ErrCenterOutOfBounds is returned by Zoom and RotateCrop when the supplied
	// center does not lie inside the source matrix.
	ErrCenterOutOfBounds = errors.New("images: center lies outside the source bounds")
	// ErrCropTooLarge is returned by CropCenter when the requested size is not
	// strictly smaller than the source in both dimensions.
	ErrCropTooLarge = errors.New("images: crop size must be smaller than the source size")
)
