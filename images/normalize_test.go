package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestNormalize(t *testing.T) {
	src := uniformMat(t, 2, 2, 255)
	defer src.Close()

	out, err := Normalize(src, []float32{0.5, 0.5, 0.5}, []float32{0.5, 0.5, 0.5})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2, 3}, out.Shape(), "output should be height x width x channel")

	for _, v := range out.Data().([]float32) {
		assert.InDelta(t, 1.0, v, 1e-6, "(1.0 - 0.5) / 0.5 should be 1")
	}
}

func TestNormalizeMismatchedStats(t *testing.T) {
	src := uniformMat(t, 2, 2, 0)
	defer src.Close()

	_, err := Normalize(src, []float32{0.5}, []float32{0.5, 0.5, 0.5})
	assert.Error(t, err, "mean length must match the channel count")
}

func TestNormalizeEmpty(t *testing.T) {
	empty := emptyMat()
	defer empty.Close()

	_, err := Normalize(empty, []float32{0, 0, 0}, []float32{1, 1, 1})
	assert.ErrorIs(t, err, ErrEmptyMat)
}

func TestPreprocess(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	out, err := Preprocess(img, 4, 4, [3]float32{0, 0, 0}, [3]float32{1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 4, 4}, out.Shape(), "output should be channel-first")

	data := out.Data().([]float32)
	plane := 4 * 4
	for i := 0; i < plane; i++ {
		assert.InDelta(t, 1.0, data[i], 0.01, "red plane should be full")
		assert.InDelta(t, 0.0, data[plane+i], 0.01, "green plane should be empty")
		assert.InDelta(t, 0.0, data[2*plane+i], 0.01, "blue plane should be empty")
	}
}

func TestPreprocessInvalidSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	_, err := Preprocess(img, 0, 4, [3]float32{}, [3]float32{1, 1, 1})
	assert.Error(t, err)

	_, err = Preprocess(nil, 4, 4, [3]float32{}, [3]float32{1, 1, 1})
	assert.Error(t, err)
}
