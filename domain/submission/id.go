package submission

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a sequential submission identifier of the form img_<n> or vid_<n>
type ID struct {
	Mode   Mode
	Number int
}

// String returns the ID in its ledger form, e.g. "img_4"
func (id ID) String() string {
	return fmt.Sprintf("%s%d", id.Mode.Prefix(), id.Number)
}

// ParseID parses a ledger cell into an ID for the given mode.
// Cells with a foreign prefix or a non-numeric suffix are rejected.
func ParseID(cell string, mode Mode) (ID, error) {
	cell = strings.TrimSpace(cell)
	prefix := mode.Prefix()
	if !strings.HasPrefix(cell, prefix) {
		return ID{}, fmt.Errorf("id %q does not have prefix %q", cell, prefix)
	}
	n, err := strconv.Atoi(cell[len(prefix):])
	if err != nil || n <= 0 {
		return ID{}, fmt.Errorf("id %q has invalid numeric suffix", cell)
	}
	return ID{Mode: mode, Number: n}, nil
}

// HighestNumber scans ledger rows (header included) and returns the highest
// numeric suffix found under the mode's prefix. Malformed cells are ignored.
// Returns 0 when no valid IDs exist.
func HighestNumber(rows [][]string, mode Mode) int {
	if len(rows) <= 1 {
		return 0
	}

	max := 0
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		id, err := ParseID(row[0], mode)
		if err != nil {
			continue
		}
		if id.Number > max {
			max = id.Number
		}
	}
	return max
}

// NextID returns the ID following the highest one present in the rows.
//
// Allocation is a read-then-increment with no cross-process lock: two
// near-simultaneous submitters can allocate the same ID. Accepted
// limitation of the single-contributor workflow.
func NextID(rows [][]string, mode Mode) ID {
	return ID{Mode: mode, Number: HighestNumber(rows, mode) + 1}
}
