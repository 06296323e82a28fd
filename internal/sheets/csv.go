package sheets

import (
	"strings"
	"unicode"
)

// Tokenize splits raw CSV text into rows of string cells with a single
// left-to-right scan. Quoting follows RFC 4180 loosely: a quote opens a
// quoted region, a doubled quote inside it is a literal quote, and the
// delimiter and line breaks are literal while quoted.
//
// Published sheets are messy, so the tokenizer is tolerant rather than
// strict: it never returns an error, blank or whitespace-only lines yield no
// row, a trailing delimiter yields a trailing empty cell, and an unterminated
// quote at end of input flushes whatever accumulated. Rows are not padded to
// equal width; callers index defensively.
//
// The delimiter is a parameter because both comma and semicolon exports
// exist in the wild.
func Tokenize(text string, delim rune) [][]string {
	var (
		rows [][]string
		row  []string
		cell strings.Builder

		inQuotes bool
		// started marks that the current row has at least one real cell:
		// a quote was opened, a delimiter was seen, or a non-space rune was
		// written. Lines that never start a cell produce no row.
		started bool
	)

	flushRow := func() {
		if started {
			row = append(row, cell.String())
			rows = append(rows, row)
		}
		row = nil
		cell.Reset()
		started = false
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if !inQuotes {
				inQuotes = true
				started = true
			} else if i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
			} else {
				inQuotes = false
			}
		case ch == delim && !inQuotes:
			row = append(row, cell.String())
			cell.Reset()
			started = true
		case (ch == '\n' || ch == '\r') && !inQuotes:
			flushRow()
		default:
			cell.WriteRune(ch)
			if inQuotes || !unicode.IsSpace(ch) {
				started = true
			}
		}
	}
	flushRow()
	return rows
}
