//go:build integration

package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sudan-mm-collector/cmd"
	"sudan-mm-collector/infrastructure/config"

	"github.com/cucumber/godog"
)

// MockPrompter implements cmd.Prompter with scripted responses
type MockPrompter struct {
	inputResponses   []string
	confirmResponses []bool
	selectResponses  []string
	inputIndex       int
	confirmIndex     int
	selectIndex      int
}

func (m *MockPrompter) Input(message string, defaultValue string) (string, error) {
	if m.inputIndex >= len(m.inputResponses) {
		if defaultValue != "" {
			return defaultValue, nil
		}
		return "", fmt.Errorf("no more input responses available for message: %s", message)
	}
	response := m.inputResponses[m.inputIndex]
	m.inputIndex++
	return response, nil
}

func (m *MockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if m.confirmIndex >= len(m.confirmResponses) {
		return defaultValue, nil
	}
	response := m.confirmResponses[m.confirmIndex]
	m.confirmIndex++
	return response, nil
}

func (m *MockPrompter) Select(message string, options []string) (string, error) {
	if m.selectIndex >= len(m.selectResponses) {
		return "", fmt.Errorf("no more select responses available for message: %s", message)
	}
	response := m.selectResponses[m.selectIndex]
	m.selectIndex++
	return response, nil
}

func (m *MockPrompter) Multiline(message string) (string, error) {
	return m.Input(message, "")
}

// setupContext holds test state for setup scenarios
type setupContext struct {
	tempDir         string
	configPath      string
	originalContent string
	err             error
}

// SharedSetupContext is reset before each scenario via Before hook
var SharedSetupContext *setupContext

func getSetupContext() *setupContext {
	return SharedSetupContext
}

func InitializeSetupScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "setup-test-*")
		if err != nil {
			return c, err
		}
		SharedSetupContext = &setupContext{
			tempDir:    dir,
			configPath: filepath.Join(dir, "config", "config.yaml"),
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedSetupContext != nil && SharedSetupContext.tempDir != "" {
			os.RemoveAll(SharedSetupContext.tempDir)
		}
		SharedSetupContext = nil
		return c, nil
	})

	ctx.Step(`^no config file exists$`, noConfigFileExists)
	ctx.Step(`^a config file already exists$`, aConfigFileAlreadyExists)
	ctx.Step(`^I run the setup command with inputs:$`, iRunTheSetupCommandWithInputs)
	ctx.Step(`^I run the setup command declining the overwrite$`, iRunTheSetupCommandDecliningTheOverwrite)
	ctx.Step(`^a config file should exist$`, aConfigFileShouldExist)
	ctx.Step(`^the config team name should be "([^"]*)"$`, theConfigTeamNameShouldBe)
	ctx.Step(`^the config parent folder name should be "([^"]*)"$`, theConfigParentFolderNameShouldBe)
	ctx.Step(`^the existing config should be unchanged$`, theExistingConfigShouldBeUnchanged)
}

func noConfigFileExists() error {
	s := getSetupContext()
	return os.MkdirAll(filepath.Dir(s.configPath), 0755)
}

func aConfigFileAlreadyExists() error {
	s := getSetupContext()
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return err
	}

	content := `team_name: OriginalTeam
google:
  auth_mode: oauth
  parent_folder_name: Sudan-MM-Submission-OriginalTeam
`
	s.originalContent = content
	return os.WriteFile(s.configPath, []byte(content), 0644)
}

// parseSetupTable splits the prompt table into the three response queues
// in the order the setup flow consumes them
func parseSetupTable(table *godog.Table) *MockPrompter {
	p := &MockPrompter{}
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		prompt := strings.ToLower(row.Cells[0].Value)
		value := row.Cells[1].Value

		switch {
		case strings.HasPrefix(prompt, "auth mode"):
			p.selectResponses = append(p.selectResponses, value)
		case strings.HasPrefix(prompt, "customize"):
			p.confirmResponses = append(p.confirmResponses, strings.ToLower(value) == "y")
		default:
			p.inputResponses = append(p.inputResponses, value)
		}
	}
	return p
}

func iRunTheSetupCommandWithInputs(table *godog.Table) error {
	s := getSetupContext()

	prompter := parseSetupTable(table)
	s.err = cmd.RunSetupWithPrompter(prompter, s.configPath)
	if s.err != nil {
		return fmt.Errorf("setup command failed: %w", s.err)
	}
	return nil
}

func iRunTheSetupCommandDecliningTheOverwrite() error {
	s := getSetupContext()

	prompter := &MockPrompter{confirmResponses: []bool{false}}
	s.err = cmd.RunSetupWithPrompter(prompter, s.configPath)
	return s.err
}

func aConfigFileShouldExist() error {
	s := getSetupContext()
	if _, err := os.Stat(s.configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist at %s", s.configPath)
	}
	return nil
}

func theConfigTeamNameShouldBe(expected string) error {
	s := getSetupContext()
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TeamName != expected {
		return fmt.Errorf("expected team name %q, got %q", expected, cfg.TeamName)
	}
	return nil
}

func theConfigParentFolderNameShouldBe(expected string) error {
	s := getSetupContext()
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Google.ParentFolderName != expected {
		return fmt.Errorf("expected parent folder name %q, got %q", expected, cfg.Google.ParentFolderName)
	}
	return nil
}

func theExistingConfigShouldBeUnchanged() error {
	s := getSetupContext()
	content, err := os.ReadFile(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if string(content) != s.originalContent {
		return fmt.Errorf("config content was changed")
	}
	return nil
}
