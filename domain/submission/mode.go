package submission

import (
	"fmt"
	"strings"
)

// Mode identifies the kind of media being submitted
type Mode string

const (
	ModeImage Mode = "Image"
	ModeVideo Mode = "Video"
)

// ParseMode parses a mode string (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image", "img":
		return ModeImage, nil
	case "video", "vid":
		return ModeVideo, nil
	default:
		return "", fmt.Errorf("invalid mode %q: expected Image or Video", s)
	}
}

// Prefix returns the ID prefix for this mode ("img_" or "vid_")
func (m Mode) Prefix() string {
	if m == ModeVideo {
		return "vid_"
	}
	return "img_"
}

// TabName returns the ledger tab recording submissions of this mode
func (m Mode) TabName() string {
	if m == ModeVideo {
		return "Videos"
	}
	return "Images"
}

// MediaFolder returns the Drive folder name for media files of this mode
func (m Mode) MediaFolder() string {
	if m == ModeVideo {
		return "Videos"
	}
	return "Images"
}

// AudioFolder returns the Drive folder name for audio captions of this mode
func (m Mode) AudioFolder() string {
	if m == ModeVideo {
		return "Video_Audio_Transcriptions"
	}
	return "Image_Audio_Transcriptions"
}

// String returns the mode as a display string
func (m Mode) String() string {
	return string(m)
}
