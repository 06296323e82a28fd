// Package backend selects and constructs the spreadsheet source the
// dashboard reads from.
package backend

import (
	"context"

	"invitados/internal/sheets"
)

// Source is the unified read interface every backend provides.
type Source interface {
	sheets.GuestSource
	sheets.CostSource
}

// Factory creates sources based on configuration.
type Factory interface {
	CreateSource(ctx context.Context, config Config) (Source, error)
}

// Config holds what the factory needs to build a source.
type Config struct {
	Type Type

	// Published CSV specific
	GuestCSVURL string
	CostCSVURL  string
	Delimiter   rune

	// Memory backend specific
	DataDirectory string

	// The Google Sheets backend configures itself from the environment
	// (spreadsheet ID and service account credentials).
}

// Type represents the kind of backend.
type Type string

const (
	PublishedBackend Type = "published"
	SheetsBackend    Type = "sheets"
	MemoryBackend    Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case PublishedBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
