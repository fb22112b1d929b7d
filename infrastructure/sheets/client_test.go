package sheets

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/api/sheets/v4"
)

// mockSheetsService is a mock implementation for testing
type mockSheetsService struct {
	createdSpreadsheet *sheets.Spreadsheet
	values             *sheets.ValueRange
	appendedRange      string
	appendedValues     *sheets.ValueRange
	shouldFail         bool
	failError          error
}

func (m *mockSheetsService) CreateSpreadsheet(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	m.createdSpreadsheet = spreadsheet
	return &sheets.Spreadsheet{SpreadsheetId: "sheet-1"}, nil
}

func (m *mockSheetsService) GetValues(ctx context.Context, spreadsheetID, readRange string) (*sheets.ValueRange, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.values, nil
}

func (m *mockSheetsService) AppendValues(ctx context.Context, spreadsheetID, appendRange string, values *sheets.ValueRange) error {
	if m.shouldFail {
		return m.failError
	}
	m.appendedRange = appendRange
	m.appendedValues = values
	return nil
}

func newTestClient(t *testing.T, mock *mockSheetsService) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), nil, WithSheetsService(mock))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestClient_CreateLedger(t *testing.T) {
	mock := &mockSheetsService{}
	client := newTestClient(t, mock)

	id, err := client.CreateLedger(context.Background(), "Sudan-MM-Metadata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "sheet-1" {
		t.Errorf("got spreadsheet id %q", id)
	}

	created := mock.createdSpreadsheet
	if created.Properties.Title != "Sudan-MM-Metadata" {
		t.Errorf("got title %q", created.Properties.Title)
	}
	if len(created.Sheets) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(created.Sheets))
	}
	if created.Sheets[0].Properties.Title != "Images" || created.Sheets[1].Properties.Title != "Videos" {
		t.Errorf("unexpected tab titles: %q, %q",
			created.Sheets[0].Properties.Title, created.Sheets[1].Properties.Title)
	}
	for _, sheet := range created.Sheets {
		grid := sheet.Properties.GridProperties
		if grid.RowCount != ledgerTabRows || grid.ColumnCount != ledgerTabColumns {
			t.Errorf("tab %s: got grid %dx%d", sheet.Properties.Title, grid.RowCount, grid.ColumnCount)
		}
	}
}

func TestClient_CreateLedger_Error(t *testing.T) {
	mock := &mockSheetsService{shouldFail: true, failError: fmt.Errorf("googleapi: Error 403")}
	client := newTestClient(t, mock)

	_, err := client.CreateLedger(context.Background(), "Sudan-MM-Metadata")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !strings.Contains(err.Error(), "failed to create spreadsheet") {
		t.Errorf("unexpected error %q", err.Error())
	}
}

func TestClient_ReadRows(t *testing.T) {
	mock := &mockSheetsService{
		values: &sheets.ValueRange{
			Values: [][]interface{}{
				{"id", "file_link", "msa_caption", "sudanese_caption", "audio_file_link", "category"},
				{"img_1", "Images/img_1.jpg", "caption", "caption", "Image_Audio_Transcriptions/img_1.mp3", "Food"},
			},
		},
	}
	client := newTestClient(t, mock)

	rows, err := client.ReadRows(context.Background(), "sheet-1", "Images")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "img_1" {
		t.Errorf("got id cell %q", rows[1][0])
	}
	if rows[0][5] != "category" {
		t.Errorf("got header cell %q", rows[0][5])
	}
}

func TestClient_ReadRows_EmptyTab(t *testing.T) {
	mock := &mockSheetsService{values: &sheets.ValueRange{}}
	client := newTestClient(t, mock)

	rows, err := client.ReadRows(context.Background(), "sheet-1", "Videos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestClient_AppendRow(t *testing.T) {
	mock := &mockSheetsService{}
	client := newTestClient(t, mock)

	row := []string{"img_4", "Images/img_4.jpg", "msa", "sudanese", "Image_Audio_Transcriptions/img_4.mp3", "Food"}
	if err := client.AppendRow(context.Background(), "sheet-1", "Images", row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.appendedRange != "Images!A:A" {
		t.Errorf("got append range %q", mock.appendedRange)
	}
	if len(mock.appendedValues.Values) != 1 {
		t.Fatalf("expected 1 appended row, got %d", len(mock.appendedValues.Values))
	}
	appended := mock.appendedValues.Values[0]
	if len(appended) != len(row) {
		t.Fatalf("expected %d cells, got %d", len(row), len(appended))
	}
	if appended[0] != "img_4" || appended[5] != "Food" {
		t.Errorf("unexpected appended row: %v", appended)
	}
}

func TestClient_AppendRow_Error(t *testing.T) {
	mock := &mockSheetsService{shouldFail: true, failError: fmt.Errorf("googleapi: Error 500")}
	client := newTestClient(t, mock)

	err := client.AppendRow(context.Background(), "sheet-1", "Images", []string{"img_4"})
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !strings.Contains(err.Error(), "failed to append row") {
		t.Errorf("unexpected error %q", err.Error())
	}
}
