package submission

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sudan-mm-collector/domain/media"
	"sudan-mm-collector/domain/submission"
)

// deleteRetries bounds the best-effort retry of temp file deletion
const deleteRetries = 3

// ValidationError is a user-facing rejection of the submission; it means
// the input was refused, not that the workflow broke
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Service orchestrates the complete submission workflow:
// validate, allocate ID, upload, append to the ledger
type Service struct {
	validator     *media.Validator
	storage       submission.StorageClient
	ledger        submission.LedgerClient
	folders       submission.FolderTree
	spreadsheetID string
	output        io.Writer
}

// NewService creates a new submission service
func NewService(
	validator *media.Validator,
	storage submission.StorageClient,
	ledger submission.LedgerClient,
	folders submission.FolderTree,
	spreadsheetID string,
	output io.Writer,
) *Service {
	if output == nil {
		output = io.Discard
	}
	return &Service{
		validator:     validator,
		storage:       storage,
		ledger:        ledger,
		folders:       folders,
		spreadsheetID: spreadsheetID,
		output:        output,
	}
}

// Result contains the results of an accepted submission
type Result struct {
	ID            string
	Record        submission.Record
	MediaFileName string
	AudioFileName string
	MediaURL      string
	AudioURL      string
	VideoDuration float64
	AudioDuration float64
}

// Submit runs the full workflow for one submission. Any failing step
// aborts the remaining ones. Files already uploaded when a later step
// fails are left in place; there is no compensating rollback.
func (s *Service) Submit(ctx context.Context, req *submission.Request) (*Result, error) {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	mediaKind := media.KindImage
	if req.Mode == submission.ModeVideo {
		mediaKind = media.KindVideo
	}

	// Step 1: Format checks, entirely local
	fmt.Fprintf(s.output, "[1/6] Validating formats...\n")
	if r := s.validator.ValidateFormat(req.MediaPath, mediaKind); !r.Valid {
		return nil, &ValidationError{Message: r.Message}
	}
	if r := s.validator.ValidateFormat(req.AudioPath, media.KindAudio); !r.Valid {
		return nil, &ValidationError{Message: r.Message}
	}
	fmt.Fprintf(s.output, "      Formats OK\n\n")

	// Step 2: Duration checks
	fmt.Fprintf(s.output, "[2/6] Validating durations...\n")
	var videoDuration float64
	if req.Mode == submission.ModeVideo {
		r := s.validator.ValidateVideoDuration(ctx, req.MediaPath)
		if !r.Valid {
			return nil, &ValidationError{Message: r.Message}
		}
		videoDuration = r.Duration
		fmt.Fprintf(s.output, "      Video: %.2fs\n", r.Duration)
	}
	audioResult := s.validator.ValidateAudioDuration(ctx, req.AudioPath)
	if !audioResult.Valid {
		return nil, &ValidationError{Message: audioResult.Message}
	}
	fmt.Fprintf(s.output, "      Audio: %.2fs\n\n", audioResult.Duration)

	// Step 3: Allocate the next sequential ID from the ledger
	fmt.Fprintf(s.output, "[3/6] Allocating ID...\n")
	rows, err := s.ledger.ReadRows(ctx, s.spreadsheetID, req.Mode.TabName())
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	id := submission.NextID(rows, req.Mode)
	fmt.Fprintf(s.output, "      Assigned: %s\n\n", id)

	// Step 4: Stage renamed temp copies
	mediaName := id.String() + strings.ToLower(filepath.Ext(req.MediaPath))
	audioName := id.String() + ".mp3"

	stageDir, err := os.MkdirTemp("", "sudan-mm-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer s.cleanupStaging(stageDir)

	mediaStaged := filepath.Join(stageDir, mediaName)
	audioStaged := filepath.Join(stageDir, audioName)
	if err := copyFile(req.MediaPath, mediaStaged); err != nil {
		return nil, fmt.Errorf("failed to stage media file: %w", err)
	}
	if err := copyFile(req.AudioPath, audioStaged); err != nil {
		return nil, fmt.Errorf("failed to stage audio file: %w", err)
	}

	// Step 5: Upload media then audio
	fmt.Fprintf(s.output, "[4/6] Uploading media...\n")
	mediaUpload, err := s.storage.Upload(ctx, submission.UploadRequest{
		LocalPath: mediaStaged,
		FileName:  mediaName,
		FolderID:  s.folders.MediaFolderID(req.Mode),
		MimeType:  mimeTypeForExt(filepath.Ext(mediaName)),
	})
	if err != nil {
		return nil, fmt.Errorf("media upload failed: %w", err)
	}
	fmt.Fprintf(s.output, "      Uploaded: %s (%.1f KB)\n\n", mediaName, float64(mediaUpload.Size)/1024)

	fmt.Fprintf(s.output, "[5/6] Uploading audio caption...\n")
	audioUpload, err := s.storage.Upload(ctx, submission.UploadRequest{
		LocalPath: audioStaged,
		FileName:  audioName,
		FolderID:  s.folders.AudioFolderID(req.Mode),
		MimeType:  submission.MimeTypeMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("audio upload failed: %w", err)
	}
	fmt.Fprintf(s.output, "      Uploaded: %s (%.1f KB)\n\n", audioName, float64(audioUpload.Size)/1024)

	// Step 6: Append the metadata row
	fmt.Fprintf(s.output, "[6/6] Recording in ledger...\n")
	record := submission.Record{
		ID:              id.String(),
		MediaLink:       req.Mode.MediaFolder() + "/" + mediaName,
		MSACaption:      req.MSACaption,
		SudaneseCaption: req.SudaneseCaption,
		AudioLink:       req.Mode.AudioFolder() + "/" + audioName,
		Category:        req.Category,
	}
	if err := s.ledger.AppendRow(ctx, s.spreadsheetID, req.Mode.TabName(), record.Row()); err != nil {
		// The uploads above are not rolled back; the orphaned files stay
		// in Drive and the contributor is asked to retry
		return nil, fmt.Errorf("failed to record submission %s (uploaded files were kept): %w", id, err)
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(s.output, "      Recorded %s in %s\n", id, req.Mode.TabName())
	fmt.Fprintf(s.output, "\nDone! Completed in %.1fs\n", elapsed.Seconds())

	return &Result{
		ID:            id.String(),
		Record:        record,
		MediaFileName: mediaName,
		AudioFileName: audioName,
		MediaURL:      mediaUpload.WebLink,
		AudioURL:      audioUpload.WebLink,
		VideoDuration: videoDuration,
		AudioDuration: audioResult.Duration,
	}, nil
}

// NextID reads the ledger and returns the ID the next submission of the
// mode would receive. Idempotent until a row is actually appended.
func (s *Service) NextID(ctx context.Context, mode submission.Mode) (submission.ID, error) {
	rows, err := s.ledger.ReadRows(ctx, s.spreadsheetID, mode.TabName())
	if err != nil {
		return submission.ID{}, fmt.Errorf("failed to read ledger: %w", err)
	}
	return submission.NextID(rows, mode), nil
}

// cleanupStaging removes the staging directory with bounded retries.
// Deletion failure is logged, not fatal.
func (s *Service) cleanupStaging(dir string) {
	var err error
	for attempt := 1; attempt <= deleteRetries; attempt++ {
		err = os.RemoveAll(dir)
		if err == nil {
			return
		}
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	fmt.Fprintf(s.output, "Warning: could not remove temp files in %s: %v\n", dir, err)
}

// copyFile copies src to dst, creating or truncating dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// mimeTypeForExt maps an accepted extension to its MIME type
func mimeTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return submission.MimeTypeJPEG
	case ".png":
		return submission.MimeTypePNG
	case ".mp4":
		return submission.MimeTypeMP4
	case ".mp3":
		return submission.MimeTypeMP3
	}
	return "application/octet-stream"
}
