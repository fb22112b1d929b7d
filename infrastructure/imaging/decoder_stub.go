//go:build !imaging

package imaging

// Decoder is a stub when OpenCV is not available. Decode verification
// requires building with -tags=imaging.
type Decoder struct{}

// NewDecoder creates a stub decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Available reports whether decode verification is compiled in
func (d *Decoder) Available() bool {
	return false
}

// Check is a no-op in stub mode; extension and magic-byte checks still run
func (d *Decoder) Check(path string) error {
	return nil
}
