package drive

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"sudan-mm-collector/domain/submission"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	folderMimeType      = "application/vnd.google-apps.folder"
	spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"
)

// DriveService defines the interface for Google Drive API operations
// This allows mocking the Google Drive API in tests
type DriveService interface {
	ListFiles(ctx context.Context, query string, fields string) ([]*drive.File, error)
	CreateFolder(ctx context.Context, name string, parentID string) (*drive.File, error)
	UploadFile(ctx context.Context, fileName, mimeType, folderID, localPath string) (*drive.File, error)
	GetFile(ctx context.Context, fileID string, fields string) (*drive.File, error)
	UpdateParents(ctx context.Context, fileID, addParents, removeParents string) error
}

// GoogleDriveService is the production implementation using the Google Drive API
type GoogleDriveService struct {
	service *drive.Service
}

// ListFiles lists files matching the query
func (s *GoogleDriveService) ListFiles(ctx context.Context, query string, fields string) ([]*drive.File, error) {
	r, err := s.service.Files.List().
		Q(query).
		Fields(googleapi.Field("files(" + fields + ")")).
		Spaces("drive").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return r.Files, nil
}

// CreateFolder creates a folder, optionally under a parent
func (s *GoogleDriveService) CreateFolder(ctx context.Context, name string, parentID string) (*drive.File, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}
	return s.service.Files.Create(meta).Fields("id").Context(ctx).Do()
}

// UploadFile uploads a local file into a folder
func (s *GoogleDriveService) UploadFile(ctx context.Context, fileName, mimeType, folderID, localPath string) (*drive.File, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	meta := &drive.File{
		Name:    fileName,
		Parents: []string{folderID},
	}

	return s.service.Files.Create(meta).
		Media(f, googleapi.ContentType(mimeType)).
		Fields("id, name, size, webViewLink").
		Context(ctx).
		Do()
}

// GetFile fetches file metadata
func (s *GoogleDriveService) GetFile(ctx context.Context, fileID string, fields string) (*drive.File, error) {
	return s.service.Files.Get(fileID).Fields(googleapi.Field(fields)).Context(ctx).Do()
}

// UpdateParents moves a file between parents
func (s *GoogleDriveService) UpdateParents(ctx context.Context, fileID, addParents, removeParents string) error {
	call := s.service.Files.Update(fileID, nil).AddParents(addParents).Fields("id, parents")
	if removeParents != "" {
		call = call.RemoveParents(removeParents)
	}
	_, err := call.Context(ctx).Do()
	return err
}

// Client implements submission.StorageClient using the Google Drive API
type Client struct {
	driveService DriveService
}

// ClientOption is a functional option for configuring Client
type ClientOption func(*Client)

// WithDriveService sets a custom drive service (for testing)
func WithDriveService(svc DriveService) ClientOption {
	return func(c *Client) {
		c.driveService = svc
	}
}

// NewClient creates a new Google Drive client backed by an authenticated
// HTTP client. If a custom drive service is injected via options, the
// HTTP client may be nil.
func NewClient(ctx context.Context, httpClient *http.Client, opts ...ClientOption) (*Client, error) {
	c := &Client{}

	for _, opt := range opts {
		opt(c)
	}

	// If no custom drive service was provided, create a real one
	if c.driveService == nil {
		srv, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("unable to create drive service: %w", err)
		}
		c.driveService = &GoogleDriveService{service: srv}
	}

	return c, nil
}

// escapeQueryValue escapes single quotes for use inside a Drive query literal
func escapeQueryValue(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// FindFolder implements submission.StorageClient
func (c *Client) FindFolder(ctx context.Context, name, parentID string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQueryValue(name), folderMimeType)
	if parentID != "" {
		query += fmt.Sprintf(" and '%s' in parents", parentID)
	}

	files, err := c.driveService.ListFiles(ctx, query, "id, name")
	if err != nil {
		return "", fmt.Errorf("failed to search for folder %q: %w", name, err)
	}
	if len(files) == 0 {
		return "", nil
	}
	return files[0].Id, nil
}

// CreateFolder implements submission.StorageClient
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	folder, err := c.driveService.CreateFolder(ctx, name, parentID)
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}
	return folder.Id, nil
}

// VerifyFolderAccess implements submission.StorageClient
func (c *Client) VerifyFolderAccess(ctx context.Context, folderID string) error {
	f, err := c.driveService.GetFile(ctx, folderID, "id, name, mimeType")
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok {
			switch apiErr.Code {
			case 404:
				return fmt.Errorf("folder %s not found: check the folder ID", folderID)
			case 403:
				return fmt.Errorf("permission denied for folder %s", folderID)
			}
		}
		return fmt.Errorf("cannot access folder %s: %w", folderID, err)
	}

	if f.MimeType != folderMimeType {
		return fmt.Errorf("id %s is not a folder", folderID)
	}
	return nil
}

// Upload implements submission.StorageClient
func (c *Client) Upload(ctx context.Context, req submission.UploadRequest) (*submission.UploadResult, error) {
	f, err := c.driveService.UploadFile(ctx, req.FileName, req.MimeType, req.FolderID, req.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %q: %w", req.FileName, err)
	}

	return &submission.UploadResult{
		FileID:   f.Id,
		FileName: f.Name,
		WebLink:  f.WebViewLink,
		Size:     f.Size,
	}, nil
}

// FindSpreadsheet implements submission.StorageClient
func (c *Client) FindSpreadsheet(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQueryValue(name), spreadsheetMimeType)

	files, err := c.driveService.ListFiles(ctx, query, "id, name")
	if err != nil {
		return "", fmt.Errorf("failed to search for spreadsheet %q: %w", name, err)
	}
	if len(files) == 0 {
		return "", nil
	}
	return files[0].Id, nil
}

// MoveToFolder implements submission.StorageClient
func (c *Client) MoveToFolder(ctx context.Context, fileID, folderID string) error {
	f, err := c.driveService.GetFile(ctx, fileID, "parents")
	if err != nil {
		return fmt.Errorf("failed to read parents of %s: %w", fileID, err)
	}

	previous := strings.Join(f.Parents, ",")
	if err := c.driveService.UpdateParents(ctx, fileID, folderID, previous); err != nil {
		return fmt.Errorf("failed to move %s into folder %s: %w", fileID, folderID, err)
	}
	return nil
}

// Ensure Client implements submission.StorageClient
var _ submission.StorageClient = (*Client)(nil)
