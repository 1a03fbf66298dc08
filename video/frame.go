// Package video wraps the backend's capture and writer primitives behind a
// channel-based frame reader, reusing the images codec for per-frame
// encoding. Capture sources can be files, device indexes or stream URLs; all
// decoding is delegated to the backend.
package video

import (
	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-media/images"
)

// Frame is a single decoded BGR video frame.
type Frame struct {
	// Mat holds the frame pixels. The frame owns it; call Close when done.
	Mat gocv.Mat
	// Index is the zero-based position of the frame in the capture sequence.
	Index int
}

// Width returns the frame width in pixels.
func (f Frame) Width() int { return f.Mat.Cols() }

// Height returns the frame height in pixels.
func (f Frame) Height() int { return f.Mat.Rows() }

// Encode compresses the frame through the image codec.
func (f Frame) Encode(c *images.Codec, format images.Format, opts images.EncodeOptions) ([]byte, error) {
	return c.Encode(f.Mat, format, opts)
}

// Save writes the frame to a file through the image codec, with the same
// extension fixup and overwrite guard as Codec.WriteFile.
func (f Frame) Save(c *images.Codec, path string, format images.Format, opts images.WriteOptions) (string, error) {
	return c.WriteFile(f.Mat, path, format, opts)
}

// Close releases the frame's native memory. Safe on a zero-value Frame,
// such as the one returned alongside a Read error.
func (f *Frame) Close() {
	if !f.Mat.Closed() {
		f.Mat.Close()
	}
}
