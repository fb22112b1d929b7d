//go:build integration

package steps

import (
	"context"
	"fmt"

	"sudan-mm-collector/application/provision"
	"sudan-mm-collector/domain/submission"

	"github.com/cucumber/godog"
)

// provisionMockStorage simulates Drive folder state in memory
type provisionMockStorage struct {
	folders        map[string]string // "parent/name" -> id
	spreadsheets   map[string]string // name -> id
	createdFolders []string
	moved          map[string]string // fileID -> folderID
	nextID         int
}

func newProvisionMockStorage() *provisionMockStorage {
	return &provisionMockStorage{
		folders:      make(map[string]string),
		spreadsheets: make(map[string]string),
		moved:        make(map[string]string),
	}
}

func (m *provisionMockStorage) key(name, parentID string) string {
	return parentID + "/" + name
}

func (m *provisionMockStorage) FindFolder(ctx context.Context, name, parentID string) (string, error) {
	return m.folders[m.key(name, parentID)], nil
}

func (m *provisionMockStorage) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	m.nextID++
	id := fmt.Sprintf("folder-%d", m.nextID)
	m.folders[m.key(name, parentID)] = id
	m.createdFolders = append(m.createdFolders, name)
	return id, nil
}

func (m *provisionMockStorage) VerifyFolderAccess(ctx context.Context, folderID string) error {
	return nil
}

func (m *provisionMockStorage) Upload(ctx context.Context, req submission.UploadRequest) (*submission.UploadResult, error) {
	return nil, fmt.Errorf("not used in provisioning scenarios")
}

func (m *provisionMockStorage) FindSpreadsheet(ctx context.Context, name string) (string, error) {
	return m.spreadsheets[name], nil
}

func (m *provisionMockStorage) MoveToFolder(ctx context.Context, fileID, folderID string) error {
	m.moved[fileID] = folderID
	return nil
}

// provisionMockLedger records spreadsheet creation and header writes
type provisionMockLedger struct {
	created  []string
	appended map[string][][]string // tab -> rows
}

func newProvisionMockLedger() *provisionMockLedger {
	return &provisionMockLedger{appended: make(map[string][][]string)}
}

func (m *provisionMockLedger) CreateLedger(ctx context.Context, name string) (string, error) {
	m.created = append(m.created, name)
	return "sheet-1", nil
}

func (m *provisionMockLedger) ReadRows(ctx context.Context, spreadsheetID, tab string) ([][]string, error) {
	return m.appended[tab], nil
}

func (m *provisionMockLedger) AppendRow(ctx context.Context, spreadsheetID, tab string, row []string) error {
	m.appended[tab] = append(m.appended[tab], row)
	return nil
}

// provisionContext holds test state for provisioning scenarios
type provisionContext struct {
	storage *provisionMockStorage
	ledger  *provisionMockLedger
	setup   *provision.Setup
	err     error
}

// SharedProvisionContext is reset before each scenario via Before hook
var SharedProvisionContext *provisionContext

func getProvisionContext() *provisionContext {
	return SharedProvisionContext
}

func InitializeProvisionScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedProvisionContext = &provisionContext{
			storage: newProvisionMockStorage(),
			ledger:  newProvisionMockLedger(),
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedProvisionContext = nil
		return c, nil
	})

	ctx.Step(`^no existing Drive folders or spreadsheet$`, noExistingDriveFoldersOrSpreadsheet)
	ctx.Step(`^the workspace for team "([^"]*)" is already provisioned$`, theWorkspaceIsAlreadyProvisioned)
	ctx.Step(`^I provision the workspace for team "([^"]*)"$`, iProvisionTheWorkspaceForTeam)
	ctx.Step(`^the parent folder "([^"]*)" should be created$`, theParentFolderShouldBeCreated)
	ctx.Step(`^all four subfolders should be created$`, allFourSubfoldersShouldBeCreated)
	ctx.Step(`^the ledger should be created with header rows in both tabs$`, theLedgerShouldBeCreatedWithHeaders)
	ctx.Step(`^the ledger should be moved under the parent folder$`, theLedgerShouldBeMovedUnderTheParentFolder)
	ctx.Step(`^nothing new should be created$`, nothingNewShouldBeCreated)
}

func noExistingDriveFoldersOrSpreadsheet() error {
	// The Before hook already starts from an empty mock
	return nil
}

func theWorkspaceIsAlreadyProvisioned(team string) error {
	p := getProvisionContext()

	p.storage.folders["/Sudan-MM-Submission-"+team] = "parent-existing"
	for i, name := range submission.SubfolderNames {
		p.storage.folders["parent-existing/"+name] = fmt.Sprintf("sub-%d", i)
	}
	p.storage.spreadsheets["Sudan-MM-Metadata"] = "sheet-existing"
	return nil
}

func iProvisionTheWorkspaceForTeam(team string) error {
	p := getProvisionContext()

	provisioner := provision.NewProvisioner(p.storage, p.ledger, nil)
	p.setup, p.err = provisioner.Provision(context.Background(), provision.Input{
		ParentFolderName: "Sudan-MM-Submission-" + team,
		SpreadsheetName:  "Sudan-MM-Metadata",
	})
	return nil
}

func theParentFolderShouldBeCreated(name string) error {
	p := getProvisionContext()
	if p.err != nil {
		return fmt.Errorf("provisioning failed: %v", p.err)
	}
	for _, created := range p.storage.createdFolders {
		if created == name {
			return nil
		}
	}
	return fmt.Errorf("parent folder %q was not created (created: %v)", name, p.storage.createdFolders)
}

func allFourSubfoldersShouldBeCreated() error {
	p := getProvisionContext()
	for _, name := range submission.SubfolderNames {
		found := false
		for _, created := range p.storage.createdFolders {
			if created == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("subfolder %q was not created", name)
		}
	}
	if err := p.setup.Folders.Validate(); err != nil {
		return fmt.Errorf("folder tree incomplete: %v", err)
	}
	return nil
}

func theLedgerShouldBeCreatedWithHeaders() error {
	p := getProvisionContext()
	if len(p.ledger.created) != 1 {
		return fmt.Errorf("expected 1 spreadsheet created, got %d", len(p.ledger.created))
	}
	for _, mode := range []submission.Mode{submission.ModeImage, submission.ModeVideo} {
		rows := p.ledger.appended[mode.TabName()]
		if len(rows) != 1 {
			return fmt.Errorf("tab %s: expected 1 header row, got %d", mode.TabName(), len(rows))
		}
		if rows[0][0] != "id" {
			return fmt.Errorf("tab %s: unexpected header %v", mode.TabName(), rows[0])
		}
	}
	return nil
}

func theLedgerShouldBeMovedUnderTheParentFolder() error {
	p := getProvisionContext()
	if p.storage.moved[p.setup.SpreadsheetID] != p.setup.Folders.ParentID {
		return fmt.Errorf("spreadsheet was not moved under the parent folder")
	}
	return nil
}

func nothingNewShouldBeCreated() error {
	p := getProvisionContext()
	if p.err != nil {
		return fmt.Errorf("provisioning failed: %v", p.err)
	}
	if len(p.storage.createdFolders) > 0 {
		return fmt.Errorf("expected no folder creation, got %v", p.storage.createdFolders)
	}
	if len(p.ledger.created) > 0 {
		return fmt.Errorf("expected the existing spreadsheet to be reused")
	}
	if p.setup.SpreadsheetID != "sheet-existing" {
		return fmt.Errorf("got spreadsheet %q, want sheet-existing", p.setup.SpreadsheetID)
	}
	return nil
}
