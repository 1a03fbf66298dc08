package images

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawTextMutatesInPlace(t *testing.T) {
	dst := uniformMat(t, 60, 200, 0)
	defer dst.Close()

	before := MatChecksum(dst)
	DrawText(&dst, "hello", image.Pt(10, 30), Color{R: 255, G: 255, B: 255}, DefaultTextStyle())
	assert.NotEqual(t, before, MatChecksum(dst), "drawing should change the buffer")
}

func TestDrawTextWrap(t *testing.T) {
	dst := uniformMat(t, 120, 200, 0)
	defer dst.Close()

	style := DefaultTextStyle()
	style.Wrap = true

	before := MatChecksum(dst)
	DrawText(&dst, "line one\nline two", image.Point{}, Color{R: 255, G: 255, B: 255}, style)
	assert.NotEqual(t, before, MatChecksum(dst), "wrapped drawing should change the buffer")
}

func TestDrawSquare(t *testing.T) {
	dst := uniformMat(t, 50, 50, 0)
	defer dst.Close()

	DrawSquare(&dst, [4]int{10, 10, 20, 20}, Color{G: 255}, 1, 0, 0)

	data := matBytes(t, dst)
	// A border pixel should carry the green value in BGR layout.
	idx := (10*50 + 15) * 3
	assert.EqualValues(t, 0, data[idx], "blue should be empty on the border")
	assert.EqualValues(t, 255, data[idx+1], "green should be full on the border")
}

func TestMatChecksum(t *testing.T) {
	a := testMat(t, 10, 10)
	defer a.Close()

	clone := a.Clone()
	defer clone.Close()
	assert.Equal(t, MatChecksum(a), MatChecksum(clone), "identical content should hash identically")

	b := uniformMat(t, 10, 10, 7)
	defer b.Close()
	assert.NotEqual(t, MatChecksum(a), MatChecksum(b))

	empty := emptyMat()
	defer empty.Close()
	assert.Equal(t, "empty", MatChecksum(empty))
}
