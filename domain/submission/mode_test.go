package submission

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "Image", want: ModeImage},
		{in: "image", want: ModeImage},
		{in: "img", want: ModeImage},
		{in: "Video", want: ModeVideo},
		{in: "VID", want: ModeVideo},
		{in: "audio", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeNames(t *testing.T) {
	if ModeImage.Prefix() != "img_" || ModeVideo.Prefix() != "vid_" {
		t.Error("unexpected prefixes")
	}
	if ModeImage.TabName() != "Images" || ModeVideo.TabName() != "Videos" {
		t.Error("unexpected tab names")
	}
	if ModeImage.AudioFolder() != "Image_Audio_Transcriptions" {
		t.Errorf("got %q", ModeImage.AudioFolder())
	}
	if ModeVideo.AudioFolder() != "Video_Audio_Transcriptions" {
		t.Errorf("got %q", ModeVideo.AudioFolder())
	}
}

func TestFolderTree(t *testing.T) {
	tree := FolderTree{
		ParentID:              "parent",
		ImagesID:              "images",
		VideosID:              "videos",
		ImageTranscriptionsID: "img-audio",
		VideoTranscriptionsID: "vid-audio",
	}

	if err := tree.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.MediaFolderID(ModeImage) != "images" || tree.MediaFolderID(ModeVideo) != "videos" {
		t.Error("wrong media folder routing")
	}
	if tree.AudioFolderID(ModeImage) != "img-audio" || tree.AudioFolderID(ModeVideo) != "vid-audio" {
		t.Error("wrong audio folder routing")
	}

	incomplete := FolderTree{ParentID: "parent"}
	if err := incomplete.Validate(); err == nil {
		t.Error("expected error for incomplete tree")
	}
}
