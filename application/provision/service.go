package provision

import (
	"context"
	"fmt"
	"io"

	"sudan-mm-collector/domain/submission"
)

// Provisioner resolves or creates the Drive folder tree and the ledger
// spreadsheet. Re-running provisioning against existing resources is
// idempotent: everything is looked up by name before being created.
type Provisioner struct {
	storage submission.StorageClient
	ledger  submission.LedgerClient
	output  io.Writer
}

// NewProvisioner creates a new provisioner
func NewProvisioner(storage submission.StorageClient, ledger submission.LedgerClient, output io.Writer) *Provisioner {
	if output == nil {
		output = io.Discard
	}
	return &Provisioner{
		storage: storage,
		ledger:  ledger,
		output:  output,
	}
}

// Setup holds the resolved Drive and ledger identifiers
type Setup struct {
	Folders       submission.FolderTree
	SpreadsheetID string
}

// Input contains the provisioning parameters
type Input struct {
	ParentFolderName string // Used when no explicit parent ID is given
	ParentFolderID   string // Optional: existing parent folder
	SpreadsheetName  string
}

// Provision ensures the folder tree and ledger spreadsheet exist
func (p *Provisioner) Provision(ctx context.Context, input Input) (*Setup, error) {
	tree, err := p.ensureFolderTree(ctx, input.ParentFolderName, input.ParentFolderID)
	if err != nil {
		return nil, err
	}

	spreadsheetID, err := p.ensureLedger(ctx, input.SpreadsheetName, tree.ParentID)
	if err != nil {
		return nil, err
	}

	return &Setup{Folders: *tree, SpreadsheetID: spreadsheetID}, nil
}

// ensureFolderTree resolves the parent and its four fixed subfolders
func (p *Provisioner) ensureFolderTree(ctx context.Context, parentName, parentID string) (*submission.FolderTree, error) {
	if parentID != "" {
		if err := p.storage.VerifyFolderAccess(ctx, parentID); err != nil {
			return nil, fmt.Errorf("parent folder check failed: %w", err)
		}
	} else {
		var err error
		parentID, err = p.ensureFolder(ctx, parentName, "")
		if err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(p.output, "Parent folder: %s\n", parentID)

	ids := make(map[string]string, len(submission.SubfolderNames))
	for _, name := range submission.SubfolderNames {
		id, err := p.ensureFolder(ctx, name, parentID)
		if err != nil {
			return nil, err
		}
		ids[name] = id
		fmt.Fprintf(p.output, "  %s: %s\n", name, id)
	}

	tree := &submission.FolderTree{
		ParentID:              parentID,
		ImagesID:              ids[submission.ModeImage.MediaFolder()],
		VideosID:              ids[submission.ModeVideo.MediaFolder()],
		ImageTranscriptionsID: ids[submission.ModeImage.AudioFolder()],
		VideoTranscriptionsID: ids[submission.ModeVideo.AudioFolder()],
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

// ensureFolder looks a folder up by name and creates it when absent
func (p *Provisioner) ensureFolder(ctx context.Context, name, parentID string) (string, error) {
	id, err := p.storage.FindFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	return p.storage.CreateFolder(ctx, name, parentID)
}

// ensureLedger looks the spreadsheet up by name and creates it when
// absent, writing the header rows and moving it under the parent folder
func (p *Provisioner) ensureLedger(ctx context.Context, name, parentFolderID string) (string, error) {
	id, err := p.storage.FindSpreadsheet(ctx, name)
	if err != nil {
		return "", err
	}
	if id != "" {
		fmt.Fprintf(p.output, "Ledger: %s (existing)\n", id)
		return id, nil
	}

	id, err = p.ledger.CreateLedger(ctx, name)
	if err != nil {
		return "", err
	}

	for _, mode := range []submission.Mode{submission.ModeImage, submission.ModeVideo} {
		if err := p.ledger.AppendRow(ctx, id, mode.TabName(), submission.Header); err != nil {
			return "", fmt.Errorf("failed to write header for tab %q: %w", mode.TabName(), err)
		}
	}

	if parentFolderID != "" {
		if err := p.storage.MoveToFolder(ctx, id, parentFolderID); err != nil {
			return "", fmt.Errorf("failed to move ledger under parent folder: %w", err)
		}
	}

	fmt.Fprintf(p.output, "Ledger: %s (created)\n", id)
	return id, nil
}
