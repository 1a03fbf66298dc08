package images

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"
)

// Normalize rescales an 8-bit matrix to the 0-1 range and applies per-channel
// standardization: (value - mean[c]) / std[c].
//
// Arguments:
// - src: The source matrix (8-bit, any channel count).
// - mean, std: Per-channel statistics; length must equal src.Channels().
//
// Returns:
// - A float32 tensor in height x width x channel layout.
// - An error on empty input or mismatched statistics.
func Normalize(src gocv.Mat, mean, std []float32) (*tensor.Dense, error) {
	if src.Empty() {
		return nil, ErrEmptyMat
	}

	channels := src.Channels()
	if len(mean) != channels || len(std) != channels {
		return nil, errors.Errorf("images: mean/std length (%d, %d) must match %d channels",
			len(mean), len(std), channels)
	}

	in := src
	if !in.IsContinuous() {
		cont := in.Clone()
		defer cont.Close()
		in = cont
	}

	data, err := in.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "reading matrix data")
	}

	out := make([]float32, len(data))
	for i, v := range data {
		c := i % channels
		out[i] = (float32(v)/255 - mean[c]) / std[c]
	}

	return tensor.New(
		tensor.WithShape(src.Rows(), src.Cols(), channels),
		tensor.WithBacking(out),
	), nil
}

// Preprocess resizes an image to width x height with Lanczos3 resampling and
// normalizes it into a channel-first float32 tensor, the layout inference
// runtimes consume.
//
// Arguments:
// - img: The source image.
// - width, height: The model input size.
// - mean, std: Per-channel RGB statistics.
//
// Returns:
// - A float32 tensor with shape (3, height, width), planes in RGB order.
// - An error when the target size is not positive.
func Preprocess(img image.Image, width, height int, mean, std [3]float32) (*tensor.Dense, error) {
	if img == nil {
		return nil, errors.New("images: nil source image")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("images: invalid target size %dx%d", width, height)
	}

	resized := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)

	plane := width * height
	out := make([]float32, 3*plane)
	red := out[:plane]
	green := out[plane : 2*plane]
	blue := out[2*plane:]

	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			red[i] = (float32(r>>8)/255 - mean[0]) / std[0]
			green[i] = (float32(g>>8)/255 - mean[1]) / std[1]
			blue[i] = (float32(b>>8)/255 - mean[2]) / std[2]
			i++
		}
	}

	return tensor.New(
		tensor.WithShape(3, height, width),
		tensor.WithBacking(out),
	), nil
}
