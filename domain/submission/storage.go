package submission

import "context"

// StorageClient defines the interface for Drive folder and file operations
// This is a port that can be implemented by different infrastructure adapters
type StorageClient interface {
	// FindFolder finds a folder by name under an optional parent,
	// returning "" when no such folder exists
	FindFolder(ctx context.Context, name, parentID string) (string, error)

	// CreateFolder creates a folder under an optional parent and returns its ID
	CreateFolder(ctx context.Context, name, parentID string) (string, error)

	// VerifyFolderAccess checks that the ID refers to an accessible folder
	VerifyFolderAccess(ctx context.Context, folderID string) error

	// Upload uploads a local file into a folder
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)

	// FindSpreadsheet finds a spreadsheet by name, returning "" when absent
	FindSpreadsheet(ctx context.Context, name string) (string, error)

	// MoveToFolder reparents a Drive file under the given folder
	MoveToFolder(ctx context.Context, fileID, folderID string) error
}

// UploadRequest contains the parameters needed to upload a file to Drive
type UploadRequest struct {
	LocalPath string // Full path to the local file
	FileName  string // Target filename in Drive
	FolderID  string // Target folder ID in Drive
	MimeType  string // MIME type of the file
}

// UploadResult contains the result of a successful upload
type UploadResult struct {
	FileID   string // Drive file ID
	FileName string // Name of the uploaded file
	WebLink  string // Browser link to the uploaded file
	Size     int64  // Size of the uploaded file in bytes
}

// MIME type constants for the accepted media formats
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeMP4  = "video/mp4"
	MimeTypeMP3  = "audio/mpeg"
)
