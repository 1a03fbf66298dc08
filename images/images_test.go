package images

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// testMat builds a deterministic 3-channel test matrix.
func testMat(t *testing.T, rows, cols int) gocv.Mat {
	t.Helper()

	data := make([]byte, rows*cols*3)
	for i := range data {
		data[i] = byte(i * 31 % 251)
	}

	m, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err, "building test matrix should succeed")
	return m
}

// uniformMat builds a 3-channel matrix with every byte set to value.
func uniformMat(t *testing.T, rows, cols int, value byte) gocv.Mat {
	t.Helper()

	data := make([]byte, rows*cols*3)
	for i := range data {
		data[i] = value
	}

	m, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err, "building uniform matrix should succeed")
	return m
}

// newMatFromPixels wraps raw interleaved 3-channel pixel data.
func newMatFromPixels(rows, cols int, data []byte) (gocv.Mat, error) {
	return gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, data)
}

func emptyMat() gocv.Mat {
	return gocv.NewMat()
}

func matBytes(t *testing.T, m gocv.Mat) []byte {
	t.Helper()

	data, err := m.DataPtrUint8()
	require.NoError(t, err, "matrix data should be readable")
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
