package sniff

import (
	"fmt"
	"os"

	"sudan-mm-collector/domain/media"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
)

// headerSize is the number of leading bytes filetype needs for matching
const headerSize = 262

// Sniffer implements media.ContentSniffer using magic-byte detection
type Sniffer struct{}

// NewSniffer creates a new magic-byte content sniffer
func NewSniffer() *Sniffer {
	return &Sniffer{}
}

// acceptedTypes maps each kind to the file types its content may carry
var acceptedTypes = map[media.Kind][]types.Type{
	media.KindImage: {matchers.TypeJpeg, matchers.TypePng},
	media.KindVideo: {matchers.TypeMp4},
	media.KindAudio: {matchers.TypeMp3},
}

// Matches implements media.ContentSniffer
func (s *Sniffer) Matches(path string, kind media.Kind) (bool, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return false, "", fmt.Errorf("failed to read file header: %w", err)
	}

	detected, err := filetype.Match(header[:n])
	if err != nil {
		return false, "", fmt.Errorf("failed to match file type: %w", err)
	}

	for _, t := range acceptedTypes[kind] {
		if detected == t {
			return true, detected.MIME.Value, nil
		}
	}

	// filetype only recognizes ID3-tagged or 0xFF 0xFB MP3s; bare-frame
	// files (MPEG-2/2.5, protected frames) carry other sync bytes and come
	// back unknown. Accept any MPEG audio frame sync for audio files; the
	// duration probe still has to read them.
	if kind == media.KindAudio && detected == types.Unknown && isMPEGAudioFrame(header[:n]) {
		return true, matchers.TypeMp3.MIME.Value, nil
	}

	name := detected.MIME.Value
	if detected == types.Unknown {
		name = "unknown type"
	}
	return false, name, nil
}

// isMPEGAudioFrame reports whether the header starts with the 11-bit
// MPEG audio frame sync (0xFF followed by a byte with the top 3 bits set)
func isMPEGAudioFrame(header []byte) bool {
	return len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0
}

// Ensure Sniffer implements media.ContentSniffer
var _ media.ContentSniffer = (*Sniffer)(nil)
