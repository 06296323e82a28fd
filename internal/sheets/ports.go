// Package sheets turns published spreadsheet data into domain records.
//
// It holds the ports implemented by the concrete adapters (published CSV,
// Google Sheets API, in-memory seed) and the shared parsing pipeline:
// tokenizer, header resolver, field normalizers and record builders.
package sheets

import (
	"context"

	"invitados/internal/core"
)

// Ports for inbound spreadsheet adapters. Fetches are read-only; the guest
// list is the primary sheet, the cost sheet is optional.
type (
	GuestSource interface {
		FetchGuests(ctx context.Context) ([]core.GuestRecord, error)
	}

	CostSource interface {
		FetchCosts(ctx context.Context) ([]core.CostLine, error)
	}
)
