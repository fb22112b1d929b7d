package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	appprov "sudan-mm-collector/application/provision"
	"sudan-mm-collector/domain/submission"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Provision the Drive folder tree and the metadata ledger",
	Long: `Resolve or create the Google Drive folder hierarchy and the metadata
spreadsheet used by submissions:

  <parent folder>/
    Images/
    Videos/
    Image_Audio_Transcriptions/
    Video_Audio_Transcriptions/
    <spreadsheet with Images and Videos tabs>

Everything is looked up by name before being created, so re-running init
against an existing setup changes nothing.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded; run 'sudan-mm-collector setup' first")
	}

	ctx := cmd.Context()
	storage, ledger, err := newClients(ctx, cfg)
	if err != nil {
		return err
	}

	return RunInitWithDependencies(ctx, storage, ledger, provisionInput(cfg), os.Stdout)
}

// RunInitWithDependencies runs the init command with injected dependencies
// (for testing)
func RunInitWithDependencies(
	ctx context.Context,
	storage submission.StorageClient,
	ledger submission.LedgerClient,
	input appprov.Input,
	output io.Writer,
) error {
	provisioner := appprov.NewProvisioner(storage, ledger, output)

	setup, err := provisioner.Provision(ctx, input)
	if err != nil {
		return fmt.Errorf("provisioning failed: %w", err)
	}

	fmt.Fprintln(output)
	fmt.Fprintf(output, "Setup complete!\n")
	fmt.Fprintf(output, "  Parent folder: %s\n", setup.Folders.ParentID)
	fmt.Fprintf(output, "  Spreadsheet:   %s\n", setup.SpreadsheetID)
	return nil
}
