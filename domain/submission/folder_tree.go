package submission

import "fmt"

// FolderTree holds the resolved Drive folder IDs for the fixed submission
// hierarchy: one parent with four subfolders
type FolderTree struct {
	ParentID              string
	ImagesID              string
	VideosID              string
	ImageTranscriptionsID string
	VideoTranscriptionsID string
}

// SubfolderNames lists the four required subfolders under the parent
var SubfolderNames = []string{
	"Images",
	"Videos",
	"Image_Audio_Transcriptions",
	"Video_Audio_Transcriptions",
}

// MediaFolderID returns the folder ID holding media files for the mode
func (t FolderTree) MediaFolderID(mode Mode) string {
	if mode == ModeVideo {
		return t.VideosID
	}
	return t.ImagesID
}

// AudioFolderID returns the folder ID holding audio captions for the mode
func (t FolderTree) AudioFolderID(mode Mode) string {
	if mode == ModeVideo {
		return t.VideoTranscriptionsID
	}
	return t.ImageTranscriptionsID
}

// Validate checks that every folder in the tree has been resolved
func (t FolderTree) Validate() error {
	if t.ParentID == "" {
		return fmt.Errorf("parent folder not resolved")
	}
	if t.ImagesID == "" || t.VideosID == "" || t.ImageTranscriptionsID == "" || t.VideoTranscriptionsID == "" {
		return fmt.Errorf("folder tree incomplete: all four subfolders must be resolved")
	}
	return nil
}
