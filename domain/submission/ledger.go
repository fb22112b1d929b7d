package submission

import "context"

// LedgerClient defines the interface for spreadsheet ledger operations
// This is a port that can be implemented by different infrastructure adapters
type LedgerClient interface {
	// CreateLedger creates a spreadsheet with the Images and Videos tabs
	// and returns its ID. Header rows are the caller's responsibility.
	CreateLedger(ctx context.Context, name string) (string, error)

	// ReadRows reads every row of a tab, header included
	ReadRows(ctx context.Context, spreadsheetID, tab string) ([][]string, error)

	// AppendRow appends one row to a tab using user-entered interpretation
	AppendRow(ctx context.Context, spreadsheetID, tab string, row []string) error
}
