package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	TeamName   string           `yaml:"team_name"`
	Google     GoogleConfig     `yaml:"google"`
	Validation ValidationConfig `yaml:"validation"`
}

// GoogleConfig contains Google API settings
type GoogleConfig struct {
	// AuthMode selects the credential type: "oauth" or "service_account"
	AuthMode         string `yaml:"auth_mode"`
	CredentialsFile  string `yaml:"credentials_file"`
	TokenFile        string `yaml:"token_file"`
	ParentFolderName string `yaml:"parent_folder_name"`
	ParentFolderID   string `yaml:"parent_folder_id"`
	SpreadsheetName  string `yaml:"spreadsheet_name"`
}

// ValidationConfig contains duration bounds for submitted media.
// Zero values fall back to the domain defaults.
type ValidationConfig struct {
	VideoMinSeconds float64 `yaml:"video_min_seconds"`
	VideoMaxSeconds float64 `yaml:"video_max_seconds"`
	AudioMinSeconds float64 `yaml:"audio_min_seconds"`
	AudioMaxSeconds float64 `yaml:"audio_max_seconds"`
}

// Defaults used when config values are absent
const (
	DefaultParentFolderName = "Sudan-MM-Submission-DefaultTeam"
	DefaultSpreadsheetName  = "Sudan-MM-Metadata"
	DefaultTokenFile        = "token.json"
	DefaultCredentialsFile  = "credentials.json"
	AuthModeOAuth           = "oauth"
	AuthModeServiceAccount  = "service_account"
)

// Load reads and parses the configuration from the specified YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills in defaults for optional settings
func (c *Config) applyDefaults() {
	if c.Google.AuthMode == "" {
		c.Google.AuthMode = AuthModeOAuth
	}
	if c.Google.CredentialsFile == "" {
		c.Google.CredentialsFile = DefaultCredentialsFile
	}
	if c.Google.TokenFile == "" {
		c.Google.TokenFile = DefaultTokenFile
	}
	if c.Google.ParentFolderName == "" {
		c.Google.ParentFolderName = DefaultParentFolderName
	}
	if c.Google.SpreadsheetName == "" {
		c.Google.SpreadsheetName = DefaultSpreadsheetName
	}
}
