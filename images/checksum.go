package images

import (
	"crypto/md5"
	"fmt"

	"gocv.io/x/gocv"
)

// MatChecksum generates a deterministic checksum of a matrix's pixel data,
// useful for verifying that an operation did (or did not) mutate a buffer.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for an empty matrix.
func MatChecksum(m gocv.Mat) string {
	if m.Empty() {
		return "empty"
	}

	data, _ := m.DataPtrUint8()
	hash := md5.New()
	hash.Write(data)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
