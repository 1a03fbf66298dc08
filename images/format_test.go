package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want Format
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, FormatJPEG},
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, FormatPNG},
		{"jp2 container", []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20, 0x0D}, FormatJPEG2000},
		{"jp2 codestream", []byte{0xFF, 0x4F, 0xFF, 0x51, 0x00}, FormatJPEG2000},
		{"junk", []byte("not an image"), FormatUnknown},
		{"empty", nil, FormatUnknown},
		{"truncated jpeg magic", []byte{0xFF, 0xD8}, FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.buf))
		})
	}
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, "jpg", FormatJPEG.Extension())
	assert.Equal(t, "png", FormatPNG.Extension())
	// Unknown formats encode as PNG, so they carry the PNG extension.
	assert.Equal(t, "png", Format("bmp").Extension())
}
