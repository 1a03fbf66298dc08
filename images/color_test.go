package images

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{"with hash", "#FF8000", Color{R: 0xFF, G: 0x80, B: 0x00}, false},
		{"without hash", "ff8000", Color{R: 0xFF, G: 0x80, B: 0x00}, false},
		{"black", "#000000", Color{}, false},
		{"white", "#FFFFFF", Color{R: 255, G: 255, B: 255}, false},
		{"too short", "#FFF", Color{}, true},
		{"too long", "#FF8000AA", Color{}, true},
		{"not hex", "#GGHHII", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.Error(t, err, "ParseColor(%q) should fail", tt.in)
				return
			}
			require.NoError(t, err, "ParseColor(%q) should succeed", tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorSwapped(t *testing.T) {
	c := Color{R: 1, G: 2, B: 3}
	assert.Equal(t, Color{R: 3, G: 2, B: 1}, c.Swapped())
	assert.Equal(t, c, c.Swapped().Swapped(), "swapping twice should be the identity")
}

func TestColorRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, Color{R: 10, G: 20, B: 30}.RGBA())
}
