// Package util holds small filesystem helpers around the image codec.
package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-media/images"
)

// ImageFile represents an image file read from disk but not yet decoded.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
}

// Decode decompresses the file contents through the codec, sniffing the
// format from the bytes rather than the extension.
func (f ImageFile) Decode(c *images.Codec, pf images.PixelFormat) (gocv.Mat, error) {
	return c.Decode(f.Data, pf)
}

// LoadDirectoryImageFiles reads all image files from a directory, sorted by
// file name. Only files with image extensions are picked up; subdirectories
// are skipped.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []ImageFile: One entry per image file, each containing the raw bytes.
// - error: Error if listing or reading fails.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var out []ImageFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(file.Name())) {
		case ".jpg", ".jpeg", ".png", ".jp2", ".bmp":
			path := filepath.Join(dir, file.Name())
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				return nil, errors.Wrapf(readErr, "reading %s", path)
			}
			out = append(out, ImageFile{Path: path, Data: data})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out, nil
}
