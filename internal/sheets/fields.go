package sheets

import (
	"strconv"
	"strings"
)

// Cell normalizers. The spreadsheet is an uncontrolled, human-edited source,
// so none of these ever fail; malformed input degrades to the zero value.

// parseCount extracts an integer head count from a raw cell. Everything but
// digits (and a leading minus) is stripped, so "2 personas" reads as 2.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}

// parseSiNo reports whether the cell is an affirmative "sí"/"si", in any
// casing or accentuation. Anything else, including an empty cell, is false.
func parseSiNo(s string) bool {
	return Normalize(s) == "si"
}

// cellAt reads a cell defensively: rows are ragged and resolved columns may
// be missing, both of which read as an empty string.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
