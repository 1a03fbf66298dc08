package images

import (
	"bytes"
	"image"

	jpeg2000 "github.com/mrjoshuak/go-jpeg2000"
	"github.com/pkg/errors"
	"github.com/viam-labs/go-libjpeg/jpeg"
	"github.com/viam-labs/go-libjpeg/rgb"
	"gocv.io/x/gocv"
)

// DefaultQuality is the encode quality used when EncodeOptions leaves
// Quality unset.
const DefaultQuality = 95

// EncodeOptions controls a single encode call.
type EncodeOptions struct {
	// Quality is the lossy quality scale. For PNG it is rescaled to the
	// 0-9 compression level via clamp(quality/10-1, 0, 9). Zero or negative
	// means "use the codec default" (DefaultQuality), so the lowest
	// selectable quality is 1.
	Quality int
	// PixelFormat is the channel order of the input matrix.
	PixelFormat PixelFormat
}

// Codec encodes and decodes images, dispatching between the accelerated
// libjpeg-turbo path and the OpenCV backend.
//
// A Codec carries only options and is safe for concurrent use; construct one
// with NewCodec and share it, or inject it where image I/O is needed.
type Codec struct {
	dctMethod jpeg.DCTMethod
}

// NewCodec constructs a Codec using the fast integer DCT for the JPEG path.
func NewCodec() *Codec {
	return &Codec{dctMethod: jpeg.DCTIFast}
}

// Encode compresses a matrix into the requested format.
//
// JPEG goes through libjpeg-turbo with the 0-100 quality handed over
// directly. Any other format value takes the PNG path through OpenCV, with
// quality rescaled to the 0-9 PNG compression level.
//
// Arguments:
// - m: The source matrix (8-bit, 3 channels).
// - format: Target format; values other than FormatJPEG fall through to PNG.
// - opts: Quality and input channel order.
//
// Returns:
// - The encoded bytes.
// - An error if the matrix is empty or the backend fails.
func (c *Codec) Encode(m gocv.Mat, format Format, opts EncodeOptions) ([]byte, error) {
	if m.Empty() {
		return nil, ErrEmptyMat
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}

	if format == FormatJPEG {
		return c.encodeJPEG(m, quality, opts.PixelFormat)
	}
	return c.encodePNG(m, quality, opts.PixelFormat)
}

func (c *Codec) encodeJPEG(m gocv.Mat, quality int, pf PixelFormat) ([]byte, error) {
	// libjpeg consumes packed RGB, so a BGR matrix is swapped first.
	src := m
	if pf == PixelFormatBGR {
		swapped := gocv.NewMat()
		gocv.CvtColor(m, &swapped, gocv.ColorBGRToRGB)
		defer swapped.Close()
		src = swapped
	}
	if !src.IsContinuous() {
		cont := src.Clone()
		defer cont.Close()
		src = cont
	}

	data, err := src.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "reading matrix data")
	}

	img := rgb.NewImage(image.Rect(0, 0, src.Cols(), src.Rows()))
	copy(img.Pix, data)

	var buf bytes.Buffer
	err = jpeg.Encode(&buf, img, &jpeg.EncoderOptions{
		Quality:   quality,
		DCTMethod: c.dctMethod,
	})
	if err != nil {
		return nil, errors.Wrap(err, "jpeg encode")
	}
	return buf.Bytes(), nil
}

func (c *Codec) encodePNG(m gocv.Mat, quality int, pf PixelFormat) ([]byte, error) {
	// The OpenCV encoder expects BGR order.
	src := m
	if pf == PixelFormatRGB {
		swapped := gocv.NewMat()
		gocv.CvtColor(m, &swapped, gocv.ColorBGRToRGB)
		defer swapped.Close()
		src = swapped
	}

	level := quality/10 - 1
	if level < 0 {
		level = 0
	}
	if level > 9 {
		level = 9
	}

	native, err := gocv.IMEncodeWithParams(gocv.PNGFileExt, src, []int{gocv.IMWritePngCompression, level})
	if err != nil {
		return nil, errors.Wrap(err, "png encode")
	}
	defer native.Close()

	encoded := native.GetBytes()
	out := make([]byte, len(encoded))
	copy(out, encoded)
	return out, nil
}

// Decode decompresses an encoded buffer into a matrix.
//
// The buffer's format is sniffed from its magic bytes rather than taken from
// the caller. JPEG buffers take the accelerated libjpeg-turbo path and JPEG
// 2000 buffers the pure-Go decoder, both honoring the requested channel
// order. Everything else falls back to the OpenCV decoder, which always
// produces a 3-channel BGR matrix and ignores the requested order.
//
// Arguments:
// - buf: The encoded image bytes.
// - pf: The desired channel order of the output matrix.
//
// Returns:
// - The decoded matrix. The caller owns it and must Close it.
// - An error if the buffer is empty or the backend fails.
func (c *Codec) Decode(buf []byte, pf PixelFormat) (gocv.Mat, error) {
	if len(buf) == 0 {
		return gocv.NewMat(), ErrEmptyBuffer
	}

	switch DetectFormat(buf) {
	case FormatJPEG:
		return c.decodeJPEG(buf, pf)
	case FormatJPEG2000:
		return c.decodeJPEG2000(buf, pf)
	default:
		m, err := gocv.IMDecode(buf, gocv.IMReadColor)
		if err != nil {
			return gocv.NewMat(), errors.Wrap(err, "opencv decode")
		}
		if m.Empty() {
			m.Close()
			return gocv.NewMat(), errors.New("opencv decode: no image in buffer")
		}
		return m, nil
	}
}

func (c *Codec) decodeJPEG(buf []byte, pf PixelFormat) (gocv.Mat, error) {
	img, err := jpeg.DecodeIntoRGB(bytes.NewReader(buf), &jpeg.DecoderOptions{DCTMethod: c.dctMethod})
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "jpeg decode")
	}

	bounds := img.Rect
	m, err := gocv.NewMatFromBytes(bounds.Dy(), bounds.Dx(), gocv.MatTypeCV8UC3, img.Pix)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "wrapping decoded pixels")
	}
	return swapToOrder(m, PixelFormatRGB, pf), nil
}

func (c *Codec) decodeJPEG2000(buf []byte, pf PixelFormat) (gocv.Mat, error) {
	img, err := jpeg2000.Decode(bytes.NewReader(buf))
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "jpeg2000 decode")
	}

	m, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "converting decoded image")
	}
	return swapToOrder(m, PixelFormatBGR, pf), nil
}

// swapToOrder converts a matrix from one channel order to another, closing
// the input when a new matrix is produced. No-op when the orders match.
func swapToOrder(m gocv.Mat, have, want PixelFormat) gocv.Mat {
	if have == want {
		return m
	}
	// COLOR_BGR2RGB and COLOR_RGB2BGR are the same symmetric swap.
	out := gocv.NewMat()
	gocv.CvtColor(m, &out, gocv.ColorBGRToRGB)
	m.Close()
	return out
}
