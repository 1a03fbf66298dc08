package images

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Fixed conversion matrices, applied as out[c] = sum_k in[k] * m[k][c].
// The coefficients must stay exactly as they are: the YUV2RGB matrix and the
// bias terms below were fitted to invert RGB2YUV after the uint8 truncation,
// and round-trip consumers depend on the resulting +-2 bound.
var (
	rgbToYUV = [3][3]float64{
		{0.29900, -0.16874, 0.50000},
		{0.58700, -0.33126, -0.41869},
		{0.11400, 0.50000, -0.08131},
	}

	yuvToRGB = [3][3]float64{
		{1.0, 1.0, 1.0},
		{-0.000007154783816076815, -0.3441331386566162, 1.7720025777816772},
		{1.4019975662231445, -0.7141380310058594, 0.00001542569043522235},
	}

	yuvToRGBBias = [3]float64{-179.45477266423404, 135.45870971679688, -226.8183044444304}
)

// RGB2YUV converts an RGB-ordered 8-bit matrix to YUV.
//
// The transform is a fixed 3x3 linear map with +128 added to the two chroma
// channels, truncated back to 8 bits. Together with YUV2RGB it forms an
// approximate (lossy) round trip.
//
// Returns:
// - A new YUV matrix owned by the caller.
// - An error if the source is empty or not 3-channel 8-bit.
func RGB2YUV(src gocv.Mat) (gocv.Mat, error) {
	return matTransform(src, rgbToYUV, [3]float64{0, 128, 128})
}

// YUV2RGB converts a YUV 8-bit matrix back to RGB. Approximate inverse of
// RGB2YUV; see the matrix comments for the bias terms.
func YUV2RGB(src gocv.Mat) (gocv.Mat, error) {
	return matTransform(src, yuvToRGB, yuvToRGBBias)
}

// matTransform applies out[c] = sum_k in[k]*m[k][c] + bias[c] per pixel,
// accumulating in float64 and truncating to uint8.
func matTransform(src gocv.Mat, m [3][3]float64, bias [3]float64) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), ErrEmptyMat
	}
	if src.Channels() != 3 || src.Type() != gocv.MatTypeCV8UC3 {
		return gocv.NewMat(), errors.Errorf("images: want 8-bit 3-channel matrix, got type %d", src.Type())
	}

	in := src
	if !in.IsContinuous() {
		cont := in.Clone()
		defer cont.Close()
		in = cont
	}

	data, err := in.DataPtrUint8()
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "reading matrix data")
	}

	out := make([]byte, len(data))
	for i := 0; i < len(data); i += 3 {
		c0 := float64(data[i])
		c1 := float64(data[i+1])
		c2 := float64(data[i+2])

		for c := 0; c < 3; c++ {
			v := c0*m[0][c] + c1*m[1][c] + c2*m[2][c] + bias[c]
			// Truncation matches the backend's uint8 cast, wrapping on
			// overflow rather than saturating.
			out[i+c] = uint8(int64(v))
		}
	}

	dst, err := gocv.NewMatFromBytes(src.Rows(), src.Cols(), gocv.MatTypeCV8UC3, out)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "wrapping converted pixels")
	}
	return dst, nil
}
