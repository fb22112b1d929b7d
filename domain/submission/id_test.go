package submission

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		mode    Mode
		want    int
		wantErr bool
	}{
		{name: "valid image id", cell: "img_3", mode: ModeImage, want: 3},
		{name: "valid video id", cell: "vid_17", mode: ModeVideo, want: 17},
		{name: "surrounding whitespace", cell: "  img_5  ", mode: ModeImage, want: 5},
		{name: "wrong prefix for mode", cell: "vid_3", mode: ModeImage, wantErr: true},
		{name: "non-numeric suffix", cell: "img_abc", mode: ModeImage, wantErr: true},
		{name: "empty suffix", cell: "img_", mode: ModeImage, wantErr: true},
		{name: "zero suffix", cell: "img_0", mode: ModeImage, wantErr: true},
		{name: "negative suffix", cell: "img_-2", mode: ModeImage, wantErr: true},
		{name: "empty cell", cell: "", mode: ModeImage, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.cell, tt.mode)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q but got none", tt.cell)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.Number != tt.want {
				t.Errorf("got number %d, want %d", id.Number, tt.want)
			}
		})
	}
}

func TestHighestNumber(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		mode Mode
		want int
	}{
		{
			name: "empty sheet",
			rows: nil,
			mode: ModeImage,
			want: 0,
		},
		{
			name: "header only",
			rows: [][]string{Header},
			mode: ModeImage,
			want: 0,
		},
		{
			name: "finds highest not last",
			rows: [][]string{
				Header,
				{"img_3", "Images/img_3.jpg"},
				{"img_7", "Images/img_7.jpg"},
				{"img_2", "Images/img_2.jpg"},
			},
			mode: ModeImage,
			want: 7,
		},
		{
			name: "malformed cells are ignored",
			rows: [][]string{
				Header,
				{"img_4"},
				{"img_banana"},
				{"not-an-id"},
				{""},
				{"img_2"},
			},
			mode: ModeImage,
			want: 4,
		},
		{
			name: "foreign prefix does not count",
			rows: [][]string{
				Header,
				{"vid_99"},
				{"img_1"},
			},
			mode: ModeImage,
			want: 1,
		},
		{
			name: "empty rows are skipped",
			rows: [][]string{
				Header,
				{},
				{"vid_6"},
			},
			mode: ModeVideo,
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HighestNumber(tt.rows, tt.mode)
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextID(t *testing.T) {
	rows := [][]string{
		Header,
		{"img_3", "Images/img_3.jpg", "msa", "sdn", "Image_Audio_Transcriptions/img_3.mp3", "Food"},
	}

	id := NextID(rows, ModeImage)
	if id.String() != "img_4" {
		t.Errorf("got %q, want %q", id.String(), "img_4")
	}

	// Allocation against an unchanged ledger is idempotent
	again := NextID(rows, ModeImage)
	if again != id {
		t.Errorf("repeated allocation differs: %v vs %v", again, id)
	}

	// The allocated ID strictly exceeds every existing one of the mode
	highest := HighestNumber(rows, ModeImage)
	if id.Number <= highest {
		t.Errorf("allocated %d does not exceed highest existing %d", id.Number, highest)
	}

	// First allocation on an empty tab starts at 1
	first := NextID([][]string{Header}, ModeVideo)
	if first.String() != "vid_1" {
		t.Errorf("got %q, want %q", first.String(), "vid_1")
	}
}
