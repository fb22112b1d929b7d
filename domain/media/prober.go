package media

import "context"

// DurationProber defines the interface for reading media durations
// This is a port that can be implemented by different infrastructure adapters
type DurationProber interface {
	// Duration returns the duration of the media file in seconds
	Duration(ctx context.Context, path string) (float64, error)
}

// ContentSniffer defines the interface for magic-byte content checks
type ContentSniffer interface {
	// Matches reports whether the file content matches the kind's
	// accepted formats, with a human-readable detected type on mismatch
	Matches(path string, kind Kind) (bool, string, error)
}

// FileChecker defines the interface for checking file existence
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
}

// ImageDecoder defines the interface for full image decode verification.
// Unlike the sniffer, which only reads magic bytes, a decoder parses the
// whole image and catches truncated or corrupted files.
type ImageDecoder interface {
	// Available reports whether decode verification is compiled in
	Available() bool
	// Check returns an error if the image cannot be decoded
	Check(path string) error
}
