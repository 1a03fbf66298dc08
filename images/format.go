// Package images provides encode/decode, file I/O and basic geometric and
// photometric transforms on OpenCV matrices.
//
// All heavy lifting is delegated to two backends: OpenCV (via gocv) for the
// general decode/encode/warp/draw primitives, and libjpeg-turbo (via
// go-libjpeg) for the JPEG fast path, which is typically 2-6x faster than the
// OpenCV codec. JPEG 2000 buffers are routed to a pure-Go decoder so that the
// whole JPEG family stays off the OpenCV fallback.
//
// The package holds no global state. Codec instances are constructed
// explicitly and carry the codec options; transform functions are pure
// except for the drawing operations, which mutate the target Mat in place.
package images

import "bytes"

// Format identifies an encoded image format.
type Format string

const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG Format = "jpeg"
	// FormatPNG is the PNG image format.
	FormatPNG Format = "png"
	// FormatJPEG2000 is the JPEG 2000 format (JP2 container or raw codestream).
	FormatJPEG2000 Format = "jp2"
	// FormatUnknown is returned when no known signature matches.
	FormatUnknown Format = ""
)

// PixelFormat describes the channel order of a decoded pixel buffer.
type PixelFormat int

const (
	// PixelFormatBGR is the OpenCV-native blue-green-red order (default).
	PixelFormatBGR PixelFormat = iota
	// PixelFormatRGB is red-green-blue order.
	PixelFormatRGB
)

// Magic signatures of the formats the codec can classify. The decode path
// trusts these over any filename extension.
var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jp2Magic  = []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20}
	j2kMagic  = []byte{0xFF, 0x4F, 0xFF, 0x51}
)

// DetectFormat classifies an encoded buffer by its leading magic bytes.
//
// Arguments:
// - buf: The encoded image bytes.
//
// Returns:
// - The detected Format, or FormatUnknown when no signature matches.
func DetectFormat(buf []byte) Format {
	switch {
	case bytes.HasPrefix(buf, jpegMagic):
		return FormatJPEG
	case bytes.HasPrefix(buf, pngMagic):
		return FormatPNG
	case bytes.HasPrefix(buf, jp2Magic), bytes.HasPrefix(buf, j2kMagic):
		return FormatJPEG2000
	default:
		return FormatUnknown
	}
}

// Extension returns the file extension conventionally used for the format,
// without the leading dot. Unknown formats map to the PNG extension, matching
// the encoder's fallthrough behavior.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}
