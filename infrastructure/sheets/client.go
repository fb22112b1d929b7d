package sheets

import (
	"context"
	"fmt"
	"net/http"

	"sudan-mm-collector/domain/submission"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ledgerTabRows and ledgerTabColumns size newly created ledger tabs
const (
	ledgerTabRows    = 1000
	ledgerTabColumns = 6
)

// SheetsService defines the interface for Google Sheets API operations
// This allows mocking the Google Sheets API in tests
type SheetsService interface {
	CreateSpreadsheet(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error)
	GetValues(ctx context.Context, spreadsheetID, readRange string) (*sheets.ValueRange, error)
	AppendValues(ctx context.Context, spreadsheetID, appendRange string, values *sheets.ValueRange) error
}

// GoogleSheetsService is the production implementation using the Google Sheets API
type GoogleSheetsService struct {
	service *sheets.Service
}

// CreateSpreadsheet creates a new spreadsheet
func (s *GoogleSheetsService) CreateSpreadsheet(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error) {
	return s.service.Spreadsheets.Create(spreadsheet).Fields("spreadsheetId").Context(ctx).Do()
}

// GetValues reads a value range from a spreadsheet
func (s *GoogleSheetsService) GetValues(ctx context.Context, spreadsheetID, readRange string) (*sheets.ValueRange, error) {
	return s.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
}

// AppendValues appends rows with user-entered interpretation
func (s *GoogleSheetsService) AppendValues(ctx context.Context, spreadsheetID, appendRange string, values *sheets.ValueRange) error {
	_, err := s.service.Spreadsheets.Values.Append(spreadsheetID, appendRange, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

// Client implements submission.LedgerClient using the Google Sheets API
type Client struct {
	sheetsService SheetsService
}

// ClientOption is a functional option for configuring Client
type ClientOption func(*Client)

// WithSheetsService sets a custom sheets service (for testing)
func WithSheetsService(svc SheetsService) ClientOption {
	return func(c *Client) {
		c.sheetsService = svc
	}
}

// NewClient creates a new Google Sheets client backed by an authenticated
// HTTP client. If a custom sheets service is injected via options, the
// HTTP client may be nil.
func NewClient(ctx context.Context, httpClient *http.Client, opts ...ClientOption) (*Client, error) {
	c := &Client{}

	for _, opt := range opts {
		opt(c)
	}

	// If no custom sheets service was provided, create a real one
	if c.sheetsService == nil {
		srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("unable to create sheets service: %w", err)
		}
		c.sheetsService = &GoogleSheetsService{service: srv}
	}

	return c, nil
}

// CreateLedger implements submission.LedgerClient. The spreadsheet is
// created with one tab per mode, sized to the fixed 6-column layout.
func (c *Client) CreateLedger(ctx context.Context, name string) (string, error) {
	body := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: name,
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					Title: submission.ModeImage.TabName(),
					GridProperties: &sheets.GridProperties{
						RowCount:    ledgerTabRows,
						ColumnCount: ledgerTabColumns,
					},
				},
			},
			{
				Properties: &sheets.SheetProperties{
					Title: submission.ModeVideo.TabName(),
					GridProperties: &sheets.GridProperties{
						RowCount:    ledgerTabRows,
						ColumnCount: ledgerTabColumns,
					},
				},
			},
		},
	}

	created, err := c.sheetsService.CreateSpreadsheet(ctx, body)
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet %q: %w", name, err)
	}
	return created.SpreadsheetId, nil
}

// ReadRows implements submission.LedgerClient. Cell values are flattened
// to strings; the header row is included.
func (c *Client) ReadRows(ctx context.Context, spreadsheetID, tab string) ([][]string, error) {
	result, err := c.sheetsService.GetValues(ctx, spreadsheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to read tab %q: %w", tab, err)
	}

	rows := make([][]string, 0, len(result.Values))
	for _, row := range result.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// AppendRow implements submission.LedgerClient
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, tab string, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	vr := &sheets.ValueRange{
		Values: [][]interface{}{values},
	}

	appendRange := fmt.Sprintf("%s!A:A", tab)
	if err := c.sheetsService.AppendValues(ctx, spreadsheetID, appendRange, vr); err != nil {
		return fmt.Errorf("failed to append row to tab %q: %w", tab, err)
	}
	return nil
}

// Ensure Client implements submission.LedgerClient
var _ submission.LedgerClient = (*Client)(nil)
