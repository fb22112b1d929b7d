package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"sudan-mm-collector/infrastructure/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through setting up your configuration file
with the Google credentials, Drive folder and ledger settings.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to sudan-mm-collector setup!")
	fmt.Println()

	cfg := &config.Config{}

	if err := promptTeam(prompter, cfg); err != nil {
		return err
	}

	if err := promptGoogle(prompter, cfg); err != nil {
		return err
	}

	if err := promptValidation(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Save configuration
	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func promptTeam(prompter Prompter, cfg *config.Config) error {
	team, err := prompter.Input("Team name?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if team == "" {
		return fmt.Errorf("team name is required")
	}
	cfg.TeamName = team
	return nil
}

func promptGoogle(prompter Prompter, cfg *config.Config) error {
	authMode, err := prompter.Select("Google authentication mode?", []string{
		config.AuthModeOAuth,
		config.AuthModeServiceAccount,
	})
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.AuthMode = authMode

	credentials, err := prompter.Input("Path to Google credentials file?", config.DefaultCredentialsFile)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if credentials == "" {
		credentials = config.DefaultCredentialsFile
	}
	cfg.Google.CredentialsFile = credentials

	if authMode == config.AuthModeOAuth {
		token, err := prompter.Input("Path for the OAuth token file?", config.DefaultTokenFile)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if token == "" {
			token = config.DefaultTokenFile
		}
		cfg.Google.TokenFile = token
	}

	folderName, err := prompter.Input("Drive parent folder name?", "Sudan-MM-Submission-"+cfg.TeamName)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.ParentFolderName = folderName

	folderID, err := prompter.Input("Existing parent folder ID (leave empty to create by name)?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.ParentFolderID = folderID

	spreadsheet, err := prompter.Input("Metadata spreadsheet name?", config.DefaultSpreadsheetName)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if spreadsheet == "" {
		spreadsheet = config.DefaultSpreadsheetName
	}
	cfg.Google.SpreadsheetName = spreadsheet

	return nil
}

func promptValidation(prompter Prompter, cfg *config.Config) error {
	customize, err := prompter.Confirm("Customize duration limits?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if !customize {
		return nil
	}

	fields := []struct {
		label string
		value *float64
	}{
		{"Video minimum seconds?", &cfg.Validation.VideoMinSeconds},
		{"Video maximum seconds?", &cfg.Validation.VideoMaxSeconds},
		{"Audio minimum seconds?", &cfg.Validation.AudioMinSeconds},
		{"Audio maximum seconds?", &cfg.Validation.AudioMaxSeconds},
	}

	for _, f := range fields {
		answer, err := prompter.Input(f.label, "")
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if answer == "" {
			continue
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid duration %q: expected a positive number", answer)
		}
		*f.value = v
	}

	return nil
}
