package submission

// Header is the fixed 6-column header row of each ledger tab
var Header = []string{"id", "file_link", "msa_caption", "sudanese_caption", "audio_file_link", "category"}

// Record is one accepted submission as recorded in the ledger.
// Records are append-only; the collector never mutates or deletes them.
type Record struct {
	ID              string
	MediaLink       string
	MSACaption      string
	SudaneseCaption string
	AudioLink       string
	Category        string
}

// Row returns the record as a ledger row in header column order
func (r Record) Row() []string {
	return []string{r.ID, r.MediaLink, r.MSACaption, r.SudaneseCaption, r.AudioLink, r.Category}
}
