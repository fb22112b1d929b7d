package submission

import (
	"strings"
	"testing"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		media    string
		audio    string
		msa      string
		sudanese string
		category string
		wantErr  string
	}{
		{
			name:     "valid image request",
			mode:     ModeImage,
			media:    "/tmp/photo.jpg",
			audio:    "/tmp/caption.mp3",
			msa:      "caption in MSA",
			sudanese: "caption in Sudanese",
			category: "Food",
		},
		{
			name:     "category is case-insensitive and canonicalized",
			mode:     ModeVideo,
			media:    "/tmp/clip.mp4",
			audio:    "/tmp/caption.mp3",
			msa:      "a",
			sudanese: "b",
			category: "food",
		},
		{
			name:     "missing media path",
			mode:     ModeImage,
			media:    "   ",
			audio:    "/tmp/caption.mp3",
			msa:      "a",
			sudanese: "b",
			category: "Food",
			wantErr:  "media file is required",
		},
		{
			name:     "missing audio path",
			mode:     ModeImage,
			media:    "/tmp/photo.jpg",
			audio:    "",
			msa:      "a",
			sudanese: "b",
			category: "Food",
			wantErr:  "audio file is required",
		},
		{
			name:     "missing MSA caption",
			mode:     ModeImage,
			media:    "/tmp/photo.jpg",
			audio:    "/tmp/caption.mp3",
			msa:      "  ",
			sudanese: "b",
			category: "Food",
			wantErr:  "MSA caption is required",
		},
		{
			name:     "missing Sudanese caption",
			mode:     ModeImage,
			media:    "/tmp/photo.jpg",
			audio:    "/tmp/caption.mp3",
			msa:      "a",
			sudanese: "",
			category: "Food",
			wantErr:  "Sudanese Arabic caption is required",
		},
		{
			name:     "unknown category",
			mode:     ModeImage,
			media:    "/tmp/photo.jpg",
			audio:    "/tmp/caption.mp3",
			msa:      "a",
			sudanese: "b",
			category: "Sports",
			wantErr:  "invalid category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.mode, tt.media, tt.audio, tt.msa, tt.sudanese, tt.category)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// Category is always stored in canonical form
			if _, err := ParseCategory(req.Category); err != nil {
				t.Errorf("category %q not canonical: %v", req.Category, err)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if len(Categories) != 10 {
		t.Fatalf("expected 10 fixed categories, got %d", len(Categories))
	}

	got, err := ParseCategory("  clothing & textiles ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Clothing & textiles" {
		t.Errorf("got %q, want canonical form", got)
	}

	if _, err := ParseCategory("Architecture"); err == nil {
		t.Error("expected error for unknown category")
	}
}
