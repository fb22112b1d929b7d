//go:build integration

package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appsubmission "sudan-mm-collector/application/submission"
	"sudan-mm-collector/domain/media"
	"sudan-mm-collector/domain/submission"
	"sudan-mm-collector/infrastructure/filesystem"
	"sudan-mm-collector/infrastructure/sniff"

	"github.com/cucumber/godog"
)

// Minimal file headers that pass magic-byte detection
var (
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	gifHeader  = []byte("GIF89a")
	mp3Header  = []byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	mp4Header  = []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm', 0x00, 0x00, 0x00, 0x00}
)

// submissionMockStorage records uploads against named folders
type submissionMockStorage struct {
	uploads     []submission.UploadRequest
	folderNames map[string]string // folder ID -> display name
	nextFileID  int
}

func (m *submissionMockStorage) FindFolder(ctx context.Context, name, parentID string) (string, error) {
	return "", nil
}

func (m *submissionMockStorage) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	return "", fmt.Errorf("not used in submission scenarios")
}

func (m *submissionMockStorage) VerifyFolderAccess(ctx context.Context, folderID string) error {
	return nil
}

func (m *submissionMockStorage) Upload(ctx context.Context, req submission.UploadRequest) (*submission.UploadResult, error) {
	info, err := os.Stat(req.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	m.uploads = append(m.uploads, req)
	m.nextFileID++
	fileID := fmt.Sprintf("uploaded-file-%d", m.nextFileID)
	return &submission.UploadResult{
		FileID:   fileID,
		FileName: req.FileName,
		WebLink:  fmt.Sprintf("https://drive.google.com/file/d/%s/view", fileID),
		Size:     info.Size(),
	}, nil
}

func (m *submissionMockStorage) FindSpreadsheet(ctx context.Context, name string) (string, error) {
	return "", nil
}

func (m *submissionMockStorage) MoveToFolder(ctx context.Context, fileID, folderID string) error {
	return nil
}

// submissionMockLedger keeps rows in memory, per tab
type submissionMockLedger struct {
	rows      map[string][][]string
	appended  map[string][][]string
	appendErr error
}

func (m *submissionMockLedger) CreateLedger(ctx context.Context, name string) (string, error) {
	return "", fmt.Errorf("not used in submission scenarios")
}

func (m *submissionMockLedger) ReadRows(ctx context.Context, spreadsheetID, tab string) ([][]string, error) {
	return m.rows[tab], nil
}

func (m *submissionMockLedger) AppendRow(ctx context.Context, spreadsheetID, tab string, row []string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.rows[tab] = append(m.rows[tab], row)
	m.appended[tab] = append(m.appended[tab], row)
	return nil
}

// pathProber returns durations configured per file path
type pathProber struct {
	durations map[string]float64
}

func (p *pathProber) Duration(ctx context.Context, path string) (float64, error) {
	d, ok := p.durations[path]
	if !ok {
		return 0, fmt.Errorf("no duration configured for %s", path)
	}
	return d, nil
}

// submissionContext holds test state for submission scenarios
type submissionContext struct {
	tempDir   string
	storage   *submissionMockStorage
	ledger    *submissionMockLedger
	prober    *pathProber
	service   *appsubmission.Service
	mediaPath string
	audioPath string
	result    *appsubmission.Result
	err       error
}

// SharedSubmissionContext is reset before each scenario via Before hook
var SharedSubmissionContext *submissionContext

func getSubmissionContext() *submissionContext {
	return SharedSubmissionContext
}

func InitializeSubmissionScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "sudan-mm-features-*")
		if err != nil {
			return c, err
		}
		SharedSubmissionContext = &submissionContext{
			tempDir: dir,
			storage: &submissionMockStorage{
				folderNames: map[string]string{
					"images-id":    "Images",
					"videos-id":    "Videos",
					"img-audio-id": "Image_Audio_Transcriptions",
					"vid-audio-id": "Video_Audio_Transcriptions",
				},
			},
			ledger: &submissionMockLedger{
				rows:     make(map[string][][]string),
				appended: make(map[string][][]string),
			},
			prober: &pathProber{durations: make(map[string]float64)},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedSubmissionContext != nil && SharedSubmissionContext.tempDir != "" {
			os.RemoveAll(SharedSubmissionContext.tempDir)
		}
		SharedSubmissionContext = nil
		return c, nil
	})

	ctx.Step(`^a provisioned workspace$`, aProvisionedWorkspace)
	ctx.Step(`^the "([^"]*)" tab already contains IDs up to "([^"]*)"$`, theTabAlreadyContainsIDsUpTo)
	ctx.Step(`^the ledger append will fail$`, theLedgerAppendWillFail)
	ctx.Step(`^I have a JPEG image at "([^"]*)"$`, iHaveAJPEGImageAt)
	ctx.Step(`^I have a GIF disguised as "([^"]*)"$`, iHaveAGIFDisguisedAs)
	ctx.Step(`^I have an MP4 video at "([^"]*)" lasting (\d+(?:\.\d+)?) seconds$`, iHaveAnMP4VideoAt)
	ctx.Step(`^I have an MP3 audio at "([^"]*)" lasting (\d+(?:\.\d+)?) seconds$`, iHaveAnMP3AudioAt)
	ctx.Step(`^I submit it as an? (image|video) with category "([^"]*)"$`, iSubmitItWithCategory)
	ctx.Step(`^the submission should succeed$`, theSubmissionShouldSucceed)
	ctx.Step(`^the submission should be rejected with "([^"]*)"$`, theSubmissionShouldBeRejectedWith)
	ctx.Step(`^the submission should fail mentioning kept uploads$`, theSubmissionShouldFailMentioningKeptUploads)
	ctx.Step(`^the assigned ID should be "([^"]*)"$`, theAssignedIDShouldBe)
	ctx.Step(`^the media should be uploaded to the "([^"]*)" folder as "([^"]*)"$`, theMediaShouldBeUploadedAs)
	ctx.Step(`^the audio should be uploaded to the "([^"]*)" folder as "([^"]*)"$`, theAudioShouldBeUploadedAs)
	ctx.Step(`^the ledger row should link the media as "([^"]*)"$`, theLedgerRowShouldLinkTheMediaAs)
	ctx.Step(`^no files should be uploaded$`, noFilesShouldBeUploaded)
	ctx.Step(`^both files should have been uploaded$`, bothFilesShouldHaveBeenUploaded)
}

func aProvisionedWorkspace() error {
	s := getSubmissionContext()

	tree := submission.FolderTree{
		ParentID:              "parent-id",
		ImagesID:              "images-id",
		VideosID:              "videos-id",
		ImageTranscriptionsID: "img-audio-id",
		VideoTranscriptionsID: "vid-audio-id",
	}

	validator := media.NewValidator(s.prober, sniff.NewSniffer(), filesystem.NewChecker())
	s.service = appsubmission.NewService(validator, s.storage, s.ledger, tree, "sheet-1", nil)
	return nil
}

func theTabAlreadyContainsIDsUpTo(tab, last string) error {
	s := getSubmissionContext()

	mode := submission.ModeImage
	if tab == submission.ModeVideo.TabName() {
		mode = submission.ModeVideo
	}
	id, err := submission.ParseID(last, mode)
	if err != nil {
		return fmt.Errorf("invalid ID in step: %v", err)
	}

	rows := [][]string{submission.Header}
	for n := 1; n <= id.Number; n++ {
		existing := submission.ID{Mode: id.Mode, Number: n}
		rows = append(rows, []string{existing.String(), "", "", "", "", ""})
	}
	s.ledger.rows[tab] = rows
	return nil
}

func theLedgerAppendWillFail() error {
	s := getSubmissionContext()
	s.ledger.appendErr = fmt.Errorf("googleapi: Error 500: backend error")
	return nil
}

func (s *submissionContext) writeFile(name string, content []byte) (string, error) {
	path := filepath.Join(s.tempDir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write test file: %v", err)
	}
	return path, nil
}

func iHaveAJPEGImageAt(name string) error {
	s := getSubmissionContext()
	path, err := s.writeFile(name, jpegHeader)
	if err != nil {
		return err
	}
	s.mediaPath = path
	return nil
}

func iHaveAGIFDisguisedAs(name string) error {
	s := getSubmissionContext()
	path, err := s.writeFile(name, gifHeader)
	if err != nil {
		return err
	}
	s.mediaPath = path
	return nil
}

func iHaveAnMP4VideoAt(name string, seconds float64) error {
	s := getSubmissionContext()
	path, err := s.writeFile(name, mp4Header)
	if err != nil {
		return err
	}
	s.mediaPath = path
	s.prober.durations[path] = seconds
	return nil
}

func iHaveAnMP3AudioAt(name string, seconds float64) error {
	s := getSubmissionContext()
	path, err := s.writeFile(name, mp3Header)
	if err != nil {
		return err
	}
	s.audioPath = path
	s.prober.durations[path] = seconds
	return nil
}

func iSubmitItWithCategory(modeName, category string) error {
	s := getSubmissionContext()

	mode, err := submission.ParseMode(modeName)
	if err != nil {
		return err
	}

	req, err := submission.NewRequest(mode, s.mediaPath, s.audioPath,
		"A caption in Modern Standard Arabic", "A caption in Sudanese Arabic", category)
	if err != nil {
		s.err = err
		return nil
	}

	s.result, s.err = s.service.Submit(context.Background(), req)
	return nil
}

func theSubmissionShouldSucceed() error {
	s := getSubmissionContext()
	if s.err != nil {
		return fmt.Errorf("expected submission to succeed, but got error: %v", s.err)
	}
	if s.result == nil {
		return fmt.Errorf("no submission result")
	}
	return nil
}

func theSubmissionShouldBeRejectedWith(expected string) error {
	s := getSubmissionContext()
	if s.err == nil {
		return fmt.Errorf("expected rejection but submission succeeded")
	}
	var verr *appsubmission.ValidationError
	if !errors.As(s.err, &verr) {
		return fmt.Errorf("expected a validation rejection, got: %v", s.err)
	}
	if !strings.Contains(verr.Message, expected) {
		return fmt.Errorf("rejection %q does not mention %q", verr.Message, expected)
	}
	return nil
}

func theSubmissionShouldFailMentioningKeptUploads() error {
	s := getSubmissionContext()
	if s.err == nil {
		return fmt.Errorf("expected an error but got none")
	}
	if !strings.Contains(s.err.Error(), "uploaded files were kept") {
		return fmt.Errorf("error %q does not mention kept uploads", s.err.Error())
	}
	return nil
}

func theAssignedIDShouldBe(expected string) error {
	s := getSubmissionContext()
	if s.result == nil {
		return fmt.Errorf("no submission result")
	}
	if s.result.ID != expected {
		return fmt.Errorf("got ID %q, want %q", s.result.ID, expected)
	}
	return nil
}

func (s *submissionContext) findUpload(folderName, fileName string) error {
	for _, u := range s.storage.uploads {
		if u.FileName == fileName {
			if got := s.storage.folderNames[u.FolderID]; got != folderName {
				return fmt.Errorf("%s was uploaded to %q, want %q", fileName, got, folderName)
			}
			return nil
		}
	}
	return fmt.Errorf("no upload named %q (got %d uploads)", fileName, len(s.storage.uploads))
}

func theMediaShouldBeUploadedAs(folderName, fileName string) error {
	return getSubmissionContext().findUpload(folderName, fileName)
}

func theAudioShouldBeUploadedAs(folderName, fileName string) error {
	return getSubmissionContext().findUpload(folderName, fileName)
}

func theLedgerRowShouldLinkTheMediaAs(link string) error {
	s := getSubmissionContext()
	for _, rows := range s.ledger.appended {
		for _, row := range rows {
			if len(row) > 1 && row[1] == link {
				return nil
			}
		}
	}
	return fmt.Errorf("no appended ledger row links %q", link)
}

func noFilesShouldBeUploaded() error {
	s := getSubmissionContext()
	if len(s.storage.uploads) > 0 {
		return fmt.Errorf("expected no uploads, got %d", len(s.storage.uploads))
	}
	return nil
}

func bothFilesShouldHaveBeenUploaded() error {
	s := getSubmissionContext()
	if len(s.storage.uploads) != 2 {
		return fmt.Errorf("expected 2 uploads, got %d", len(s.storage.uploads))
	}
	return nil
}
