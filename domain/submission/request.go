package submission

import (
	"fmt"
	"strings"
)

// Request represents a contributor's submission before processing
type Request struct {
	Mode            Mode
	MediaPath       string
	AudioPath       string
	MSACaption      string
	SudaneseCaption string
	Category        string
}

// NewRequest creates a Request, validating required fields and the category.
// Captions are trimmed; submission is all-or-nothing, so any missing field
// is an error.
func NewRequest(mode Mode, mediaPath, audioPath, msaCaption, sudaneseCaption, category string) (*Request, error) {
	req := &Request{
		Mode:            mode,
		MediaPath:       strings.TrimSpace(mediaPath),
		AudioPath:       strings.TrimSpace(audioPath),
		MSACaption:      strings.TrimSpace(msaCaption),
		SudaneseCaption: strings.TrimSpace(sudaneseCaption),
	}

	canonical, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}
	req.Category = canonical

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks that all required fields are present
func (r *Request) Validate() error {
	if r.Mode != ModeImage && r.Mode != ModeVideo {
		return fmt.Errorf("mode is required")
	}
	if r.MediaPath == "" {
		return fmt.Errorf("media file is required")
	}
	if r.AudioPath == "" {
		return fmt.Errorf("audio file is required")
	}
	if r.MSACaption == "" {
		return fmt.Errorf("MSA caption is required")
	}
	if r.SudaneseCaption == "" {
		return fmt.Errorf("Sudanese Arabic caption is required")
	}
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}
