package sniff

import (
	"os"
	"path/filepath"
	"testing"

	"sudan-mm-collector/domain/media"
)

// Minimal valid headers for magic-byte detection
var (
	jpegHeader      = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	pngHeader       = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	gifHeader       = []byte("GIF89a")
	mp3Header       = []byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	mp3BareV2Header = []byte{0xFF, 0xF3, 0x48, 0xC4, 0x00, 0x00, 0x00, 0x00} // MPEG-2 Layer III, no ID3 tag
	mp3BareV1Header = []byte{0xFF, 0xFA, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00} // MPEG-1 Layer III, protected
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestSniffer_Matches(t *testing.T) {
	tests := []struct {
		name         string
		fileName     string
		content      []byte
		kind         media.Kind
		want         bool
		wantDetected string
	}{
		{
			name:         "jpeg content as image",
			fileName:     "photo.jpg",
			content:      jpegHeader,
			kind:         media.KindImage,
			want:         true,
			wantDetected: "image/jpeg",
		},
		{
			name:         "png content as image",
			fileName:     "photo.png",
			content:      pngHeader,
			kind:         media.KindImage,
			want:         true,
			wantDetected: "image/png",
		},
		{
			name:         "gif renamed to jpg rejected",
			fileName:     "photo.jpg",
			content:      gifHeader,
			kind:         media.KindImage,
			want:         false,
			wantDetected: "image/gif",
		},
		{
			name:         "mp3 content as audio",
			fileName:     "caption.mp3",
			content:      mp3Header,
			kind:         media.KindAudio,
			want:         true,
			wantDetected: "audio/mpeg",
		},
		{
			name:         "bare-frame mpeg2 mp3 as audio",
			fileName:     "caption.mp3",
			content:      mp3BareV2Header,
			kind:         media.KindAudio,
			want:         true,
			wantDetected: "audio/mpeg",
		},
		{
			name:         "bare-frame mpeg1 mp3 as audio",
			fileName:     "caption.mp3",
			content:      mp3BareV1Header,
			kind:         media.KindAudio,
			want:         true,
			wantDetected: "audio/mpeg",
		},
		{
			name:     "bare mpeg frame as image rejected",
			fileName: "photo.jpg",
			content:  mp3BareV2Header,
			kind:     media.KindImage,
			want:     false,
		},
		{
			name:     "jpeg content as audio rejected",
			fileName: "caption.mp3",
			content:  jpegHeader,
			kind:     media.KindAudio,
			want:     false,
		},
		{
			name:         "unrecognized bytes",
			fileName:     "clip.mp4",
			content:      []byte("plain text, not a video"),
			kind:         media.KindVideo,
			want:         false,
			wantDetected: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.fileName, tt.content)
			s := NewSniffer()

			got, detected, err := s.Matches(path, tt.kind)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got match=%v, want %v (detected %s)", got, tt.want, detected)
			}
			if tt.wantDetected != "" && detected != tt.wantDetected {
				t.Errorf("got detected type %q, want %q", detected, tt.wantDetected)
			}
		})
	}
}

func TestSniffer_MissingFile(t *testing.T) {
	s := NewSniffer()
	_, _, err := s.Matches(filepath.Join(t.TempDir(), "nope.jpg"), media.KindImage)
	if err == nil {
		t.Error("expected error for missing file")
	}
}
