package video

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Writer appends frames to a video file through the backend's writer.
type Writer struct {
	vw *gocv.VideoWriter
}

// NewWriter opens a video file for writing.
//
// Arguments:
// - path: Destination file.
// - fourcc: Codec fourcc, e.g. "MJPG" or "avc1".
// - fps: Frame rate of the output.
// - width, height: Frame size; every written frame must match.
//
// Returns:
// - The writer, or an error when the backend cannot open the destination.
func NewWriter(path, fourcc string, fps float64, width, height int) (*Writer, error) {
	vw, err := gocv.VideoWriterFile(path, fourcc, fps, width, height, true)
	if err != nil {
		return nil, errors.Wrapf(err, "opening writer %s", path)
	}
	if !vw.IsOpened() {
		vw.Close()
		return nil, errors.Errorf("video: writer %s did not open", path)
	}
	return &Writer{vw: vw}, nil
}

// Write appends one frame.
func (w *Writer) Write(f Frame) error {
	return errors.Wrap(w.vw.Write(f.Mat), "writing frame")
}

// Close flushes and releases the writer.
func (w *Writer) Close() error {
	return errors.Wrap(w.vw.Close(), "closing writer")
}
