//go:build imaging

package imaging

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Decoder verifies that image files actually decode. Requires OpenCV and
// a build with -tags=imaging.
type Decoder struct{}

// NewDecoder creates a new OpenCV-backed image decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Available reports whether decode verification is compiled in
func (d *Decoder) Available() bool {
	return true
}

// Check decodes the image and fails on an empty or unreadable result
func (d *Decoder) Check(path string) error {
	img := gocv.IMRead(path, gocv.IMReadColor)
	defer img.Close()

	if img.Empty() {
		return fmt.Errorf("image %s could not be decoded", path)
	}
	if img.Cols() == 0 || img.Rows() == 0 {
		return fmt.Errorf("image %s has zero dimensions", path)
	}
	return nil
}
