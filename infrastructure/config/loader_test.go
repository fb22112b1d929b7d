package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
team_name: TeamA
google:
  auth_mode: service_account
  credentials_file: sa.json
  parent_folder_name: Sudan-MM-Submission-TeamA
  parent_folder_id: folder-123
  spreadsheet_name: Sudan-MM-Metadata
validation:
  video_min_seconds: 2
  video_max_seconds: 20
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TeamName != "TeamA" {
		t.Errorf("got team name %q", cfg.TeamName)
	}
	if cfg.Google.AuthMode != AuthModeServiceAccount {
		t.Errorf("got auth mode %q", cfg.Google.AuthMode)
	}
	if cfg.Google.CredentialsFile != "sa.json" {
		t.Errorf("got credentials file %q", cfg.Google.CredentialsFile)
	}
	if cfg.Google.ParentFolderID != "folder-123" {
		t.Errorf("got parent folder id %q", cfg.Google.ParentFolderID)
	}
	if cfg.Validation.VideoMinSeconds != 2 || cfg.Validation.VideoMaxSeconds != 20 {
		t.Errorf("got video bounds %v-%v", cfg.Validation.VideoMinSeconds, cfg.Validation.VideoMaxSeconds)
	}
	// Unset audio bounds stay zero so the domain defaults apply
	if cfg.Validation.AudioMinSeconds != 0 || cfg.Validation.AudioMaxSeconds != 0 {
		t.Errorf("expected zero audio bounds, got %v-%v", cfg.Validation.AudioMinSeconds, cfg.Validation.AudioMaxSeconds)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, "team_name: TeamB\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Google.AuthMode != AuthModeOAuth {
		t.Errorf("got auth mode %q, want %q", cfg.Google.AuthMode, AuthModeOAuth)
	}
	if cfg.Google.CredentialsFile != DefaultCredentialsFile {
		t.Errorf("got credentials file %q", cfg.Google.CredentialsFile)
	}
	if cfg.Google.TokenFile != DefaultTokenFile {
		t.Errorf("got token file %q", cfg.Google.TokenFile)
	}
	if cfg.Google.ParentFolderName != DefaultParentFolderName {
		t.Errorf("got parent folder name %q", cfg.Google.ParentFolderName)
	}
	if cfg.Google.SpreadsheetName != DefaultSpreadsheetName {
		t.Errorf("got spreadsheet name %q", cfg.Google.SpreadsheetName)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfigFile(t, "team_name: [broken\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := &Config{
		TeamName: "TeamC",
		Google: GoogleConfig{
			AuthMode:         AuthModeOAuth,
			CredentialsFile:  "credentials.json",
			TokenFile:        "token.json",
			ParentFolderName: "Sudan-MM-Submission-TeamC",
			SpreadsheetName:  "Sudan-MM-Metadata",
		},
		Validation: ValidationConfig{
			AudioMinSeconds: 3,
			AudioMaxSeconds: 30,
		},
	}

	if err := Save(original, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.TeamName != original.TeamName {
		t.Errorf("got team name %q", loaded.TeamName)
	}
	if loaded.Google != original.Google {
		t.Errorf("google config changed in roundtrip: %+v", loaded.Google)
	}
	if loaded.Validation != original.Validation {
		t.Errorf("validation config changed in roundtrip: %+v", loaded.Validation)
	}
}
