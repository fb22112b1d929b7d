package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	appprov "sudan-mm-collector/application/provision"
	appsub "sudan-mm-collector/application/submission"
	"sudan-mm-collector/domain/media"
	"sudan-mm-collector/domain/submission"

	"github.com/spf13/cobra"
)

var (
	submitMode     string
	submitMedia    string
	submitAudio    string
	submitMSA      string
	submitSudanese string
	submitCategory string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit one multimodal pair (media + audio caption + text captions)",
	Long: `Submit a media file with its audio caption, two text captions and a
category to the Sudan-MM-2025 dataset.

Run without flags to be walked through an interactive form. All flags must
be provided together to skip the form.

The submission is all-or-nothing: validation failures block it before any
upload happens. Accepted submissions are uploaded to the Drive folder tree
and recorded as one row in the metadata ledger.

Example:
  sudan-mm-collector submit
  sudan-mm-collector submit --mode video --media clip.mp4 --audio caption.mp3 \
      --msa "..." --sudanese "..." --category Food`,
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().StringVar(&submitMode, "mode", "", "Submission mode: image or video")
	submitCmd.Flags().StringVar(&submitMedia, "media", "", "Path to the media file")
	submitCmd.Flags().StringVar(&submitAudio, "audio", "", "Path to the MP3 audio caption")
	submitCmd.Flags().StringVar(&submitMSA, "msa", "", "Modern Standard Arabic caption")
	submitCmd.Flags().StringVar(&submitSudanese, "sudanese", "", "Sudanese Arabic caption")
	submitCmd.Flags().StringVar(&submitCategory, "category", "", "Submission category")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded; run 'sudan-mm-collector setup' first")
	}

	ctx := cmd.Context()

	req, err := buildRequest(DefaultPrompter)
	if err != nil {
		return err
	}

	storage, ledger, err := newClients(ctx, cfg)
	if err != nil {
		return err
	}

	return RunSubmitWithDependencies(ctx, storage, ledger, newValidator(cfg), provisionInput(cfg), req, os.Stdout)
}

// buildRequest assembles the submission request from flags, prompting
// interactively for anything not provided
func buildRequest(prompter Prompter) (*submission.Request, error) {
	modeStr := submitMode
	if modeStr == "" {
		var err error
		modeStr, err = prompter.Select("Select mode:", []string{string(submission.ModeImage), string(submission.ModeVideo)})
		if err != nil {
			return nil, fmt.Errorf("prompt cancelled")
		}
	}
	mode, err := submission.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	mediaPath := submitMedia
	if mediaPath == "" {
		label := "Path to image file (.jpg, .jpeg, .png):"
		if mode == submission.ModeVideo {
			label = "Path to video file (.mp4, 3-10 seconds):"
		}
		mediaPath, err = prompter.Input(label, "")
		if err != nil {
			return nil, fmt.Errorf("prompt cancelled")
		}
	}

	audioPath := submitAudio
	if audioPath == "" {
		audioPath, err = prompter.Input("Path to audio caption (.mp3, 5-15 seconds):", "")
		if err != nil {
			return nil, fmt.Errorf("prompt cancelled")
		}
	}

	msa := submitMSA
	if msa == "" {
		msa, err = prompter.Multiline("MSA caption (Modern Standard Arabic):")
		if err != nil {
			return nil, fmt.Errorf("prompt cancelled")
		}
	}

	sudanese := submitSudanese
	if sudanese == "" {
		sudanese, err = prompter.Multiline("Sudanese Arabic caption:")
		if err != nil {
			return nil, fmt.Errorf("prompt cancelled")
		}
	}

	category := submitCategory
	if category == "" {
		category, err = prompter.Select("Category:", submission.Categories)
		if err != nil {
			return nil, fmt.Errorf("prompt cancelled")
		}
	}

	return submission.NewRequest(mode, mediaPath, audioPath, msa, sudanese, category)
}

// RunSubmitWithDependencies runs the submit command with injected
// dependencies (for testing)
func RunSubmitWithDependencies(
	ctx context.Context,
	storage submission.StorageClient,
	ledger submission.LedgerClient,
	validator *media.Validator,
	provInput appprov.Input,
	req *submission.Request,
	output io.Writer,
) error {
	// Resolve folders and ledger first; provisioning is idempotent
	provisioner := appprov.NewProvisioner(storage, ledger, io.Discard)
	setup, err := provisioner.Provision(ctx, provInput)
	if err != nil {
		return fmt.Errorf("failed to resolve Drive folders and ledger: %w", err)
	}

	service := appsub.NewService(validator, storage, ledger, setup.Folders, setup.SpreadsheetID, output)

	result, err := service.Submit(ctx, req)
	if err != nil {
		var vErr *appsub.ValidationError
		if errors.As(err, &vErr) {
			return fmt.Errorf("submission rejected: %s", vErr.Message)
		}
		return err
	}

	fmt.Fprintln(output)
	fmt.Fprintf(output, "Submission accepted!\n")
	fmt.Fprintf(output, "  ID:         %s\n", result.ID)
	fmt.Fprintf(output, "  Mode:       %s\n", req.Mode)
	fmt.Fprintf(output, "  Media file: %s\n", result.MediaFileName)
	fmt.Fprintf(output, "  Audio file: %s\n", result.AudioFileName)
	fmt.Fprintf(output, "  Category:   %s\n", req.Category)
	if result.MediaURL != "" {
		fmt.Fprintf(output, "  Media link: %s\n", result.MediaURL)
	}
	if result.AudioURL != "" {
		fmt.Fprintf(output, "  Audio link: %s\n", result.AudioURL)
	}
	return nil
}
