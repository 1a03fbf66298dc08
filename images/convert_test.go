package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestRGB2YUVGray(t *testing.T) {
	// A gray pixel maps to luma = gray, chroma centered at 128.
	src := uniformMat(t, 4, 4, 100)
	defer src.Close()

	yuv, err := RGB2YUV(src)
	require.NoError(t, err)
	defer yuv.Close()

	data := matBytes(t, yuv)
	for i := 0; i < len(data); i += 3 {
		assert.InDelta(t, 100, data[i], 1, "luma should match the gray level")
		assert.InDelta(t, 128, data[i+1], 1, "chroma should be centered")
		assert.InDelta(t, 128, data[i+2], 1, "chroma should be centered")
	}
}

func TestColorSpaceRoundTrip(t *testing.T) {
	src := uniformMat(t, 8, 8, 128)
	defer src.Close()

	yuv, err := RGB2YUV(src)
	require.NoError(t, err)
	defer yuv.Close()

	back, err := YUV2RGB(yuv)
	require.NoError(t, err)
	defer back.Close()

	srcData := matBytes(t, src)
	gotData := matBytes(t, back)
	for i := range srcData {
		diff := int(srcData[i]) - int(gotData[i])
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, 2, "round trip should stay within the lossy bound at %d", i)
	}
}

func TestConvertRejectsEmpty(t *testing.T) {
	empty := emptyMat()
	defer empty.Close()

	_, err := RGB2YUV(empty)
	assert.ErrorIs(t, err, ErrEmptyMat)
}

func TestConvertRejectsWrongType(t *testing.T) {
	gray := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC1)
	defer gray.Close()

	_, err := RGB2YUV(gray)
	assert.Error(t, err, "single channel input should be rejected")
}
