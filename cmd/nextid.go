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

var nextIDMode string

var nextIDCmd = &cobra.Command{
	Use:   "next-id",
	Short: "Show the ID the next submission would receive",
	Long: `Read the metadata ledger and print the next sequential ID for the
given mode without uploading anything.

Example:
  sudan-mm-collector next-id --mode image`,
	RunE: runNextID,
}

func init() {
	rootCmd.AddCommand(nextIDCmd)
	nextIDCmd.Flags().StringVar(&nextIDMode, "mode", "image", "Submission mode: image or video")
}

func runNextID(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded; run 'sudan-mm-collector setup' first")
	}

	mode, err := submission.ParseMode(nextIDMode)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	storage, ledger, err := newClients(ctx, cfg)
	if err != nil {
		return err
	}

	return RunNextIDWithDependencies(ctx, storage, ledger, provisionInput(cfg), mode, os.Stdout)
}

// RunNextIDWithDependencies runs the next-id command with injected
// dependencies (for testing)
func RunNextIDWithDependencies(
	ctx context.Context,
	storage submission.StorageClient,
	ledger submission.LedgerClient,
	input appprov.Input,
	mode submission.Mode,
	output io.Writer,
) error {
	provisioner := appprov.NewProvisioner(storage, ledger, io.Discard)
	setup, err := provisioner.Provision(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to resolve ledger: %w", err)
	}

	rows, err := ledger.ReadRows(ctx, setup.SpreadsheetID, mode.TabName())
	if err != nil {
		return fmt.Errorf("failed to read ledger: %w", err)
	}

	fmt.Fprintf(output, "%s\n", submission.NextID(rows, mode))
	return nil
}
