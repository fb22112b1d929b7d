package cmd

import (
	"context"
	"fmt"

	appprov "sudan-mm-collector/application/provision"
	"sudan-mm-collector/domain/media"
	"sudan-mm-collector/domain/submission"
	"sudan-mm-collector/infrastructure/config"
	"sudan-mm-collector/infrastructure/drive"
	"sudan-mm-collector/infrastructure/ffprobe"
	"sudan-mm-collector/infrastructure/filesystem"
	"sudan-mm-collector/infrastructure/googleauth"
	"sudan-mm-collector/infrastructure/imaging"
	"sudan-mm-collector/infrastructure/sheets"
	"sudan-mm-collector/infrastructure/sniff"
)

// newClients builds the Drive and Sheets clients from config
func newClients(ctx context.Context, cfg *config.Config) (submission.StorageClient, submission.LedgerClient, error) {
	httpClient, err := googleauth.HTTPClient(ctx, googleauth.Options{
		AuthMode:        cfg.Google.AuthMode,
		CredentialsFile: cfg.Google.CredentialsFile,
		TokenFile:       cfg.Google.TokenFile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("authentication failed: %w", err)
	}

	storage, err := drive.NewClient(ctx, httpClient)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Google Drive client: %w", err)
	}

	ledger, err := sheets.NewClient(ctx, httpClient)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Google Sheets client: %w", err)
	}

	return storage, ledger, nil
}

// newValidator builds the media validator, applying duration overrides
// from config when present
func newValidator(cfg *config.Config) *media.Validator {
	var opts []media.ValidatorOption
	v := cfg.Validation
	if v.VideoMinSeconds > 0 || v.VideoMaxSeconds > 0 {
		bounds := media.DefaultVideoBounds
		if v.VideoMinSeconds > 0 {
			bounds.Min = v.VideoMinSeconds
		}
		if v.VideoMaxSeconds > 0 {
			bounds.Max = v.VideoMaxSeconds
		}
		opts = append(opts, media.WithVideoBounds(bounds))
	}
	if v.AudioMinSeconds > 0 || v.AudioMaxSeconds > 0 {
		bounds := media.DefaultAudioBounds
		if v.AudioMinSeconds > 0 {
			bounds.Min = v.AudioMinSeconds
		}
		if v.AudioMaxSeconds > 0 {
			bounds.Max = v.AudioMaxSeconds
		}
		opts = append(opts, media.WithAudioBounds(bounds))
	}

	opts = append(opts, media.WithImageDecoder(imaging.NewDecoder()))

	return media.NewValidator(ffprobe.NewProber(), sniff.NewSniffer(), filesystem.NewChecker(), opts...)
}

// provisionInput maps config to provisioning parameters
func provisionInput(cfg *config.Config) appprov.Input {
	return appprov.Input{
		ParentFolderName: cfg.Google.ParentFolderName,
		ParentFolderID:   cfg.Google.ParentFolderID,
		SpreadsheetName:  cfg.Google.SpreadsheetName,
	}
}
