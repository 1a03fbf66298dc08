package images

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// WriteOptions controls WriteFile.
type WriteOptions struct {
	EncodeOptions
	// Overwrite allows replacing an existing file. Without it WriteFile fails
	// with ErrExists and leaves the existing file untouched.
	Overwrite bool
}

// ReadFile reads and decodes an image file.
//
// Arguments:
// - path: The image file path.
// - pf: The desired channel order of the output matrix.
//
// Returns:
// - The decoded matrix. The caller owns it and must Close it.
// - An error if reading or decoding fails.
func (c *Codec) ReadFile(path string, pf PixelFormat) (gocv.Mat, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return gocv.NewMat(), errors.Wrapf(err, "reading %s", path)
	}
	return c.Decode(buf, pf)
}

// ReadFrom reads an entire stream and decodes it.
func (c *Codec) ReadFrom(r io.Reader, pf PixelFormat) (gocv.Mat, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "reading stream")
	}
	return c.Decode(buf, pf)
}

// WriteFile encodes a matrix and writes it to a file.
//
// The extension matching the format (".jpg" or ".png") is appended when the
// path doesn't already end in it. Unless opts.Overwrite is set, an existing
// destination fails with ErrExists before any byte is written. Encoding
// happens before the file is created, so a codec failure never leaves a
// partial file, and the handle is closed on every path.
//
// Returns:
// - The path actually written (after any extension fixup).
// - An error on encode or I/O failure.
func (c *Codec) WriteFile(m gocv.Mat, path string, format Format, opts WriteOptions) (string, error) {
	ext := format.Extension()
	if !strings.HasSuffix(path, "."+ext) {
		path += "." + ext
	}

	encoded, err := c.Encode(m, format, opts.EncodeOptions)
	if err != nil {
		return path, err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.Overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return path, errors.Wrapf(ErrExists, "%s", path)
		}
		return path, errors.Wrapf(err, "opening %s", path)
	}

	_, werr := f.Write(encoded)
	cerr := f.Close()
	if werr != nil {
		return path, errors.Wrapf(werr, "writing %s", path)
	}
	if cerr != nil {
		return path, errors.Wrapf(cerr, "closing %s", path)
	}
	return path, nil
}

// WriteTo encodes a matrix and writes it to a stream. The stream is the
// caller's to close.
func (c *Codec) WriteTo(m gocv.Mat, w io.Writer, format Format, opts EncodeOptions) error {
	encoded, err := c.Encode(m, format, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(encoded); err != nil {
		return errors.Wrap(err, "writing stream")
	}
	return nil
}
