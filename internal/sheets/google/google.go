// Package google reads the guest and cost sheets through the Google Sheets
// API with service account credentials. It is the adapter for spreadsheets
// that are not published to the web; the parsed values go through the same
// pipeline as the published CSV adapter.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"invitados/internal/core"
	"invitados/internal/sheets"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	guestSheet    string
	costSheet     string
}

// Ensure interface conformance
var (
	_ sheets.GuestSource = (*Client)(nil)
	_ sheets.CostSource  = (*Client)(nil)
)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID plus service account credentials via
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional sheet names: GOOGLE_GUESTS_SHEET_NAME (default "Invitados"),
// GOOGLE_COSTS_SHEET_NAME (default "", meaning no cost sheet).
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	guestSheet := strings.TrimSpace(os.Getenv("GOOGLE_GUESTS_SHEET_NAME"))
	if guestSheet == "" {
		guestSheet = "Invitados"
	}
	costSheet := strings.TrimSpace(os.Getenv("GOOGLE_COSTS_SHEET_NAME"))

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		guestSheet:    guestSheet,
		costSheet:     costSheet,
	}, nil
}

// newSheetsService initializes a read-only Sheets Service using service
// account credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inlineJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	credFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inlineJSON == "" && credFile == "" {
		credFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case inlineJSON != "":
		credentialsJSON = []byte(inlineJSON)
	case credFile != "":
		data, err := os.ReadFile(credFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = data
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

func (c *Client) FetchGuests(ctx context.Context) ([]core.GuestRecord, error) {
	rows, err := c.readSheet(ctx, c.guestSheet)
	if err != nil {
		return nil, fmt.Errorf("guest sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	cols := sheets.ResolveHeaders(rows[0], sheets.GuestFields)
	if missing := sheets.MissingFields(cols); len(missing) > 0 {
		slog.WarnContext(ctx, "Guest sheet is missing expected columns",
			"sheet", c.guestSheet, "columns", missing)
	}
	return sheets.BuildGuestRecords(rows, cols), nil
}

func (c *Client) FetchCosts(ctx context.Context) ([]core.CostLine, error) {
	if c.costSheet == "" {
		return nil, nil
	}
	rows, err := c.readSheet(ctx, c.costSheet)
	if err != nil {
		return nil, fmt.Errorf("cost sheet: %w", err)
	}
	return sheets.BuildCostLines(rows), nil
}

func (c *Client) readSheet(ctx context.Context, sheetName string) ([][]string, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A:Z", sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return toRows(resp.Values), nil
}

// toRows stringifies the API value matrix. Ragged rows stay ragged; the
// record builders index defensively.
func toRows(values [][]interface{}) [][]string {
	out := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strings.TrimSpace(fmt.Sprint(v))
		}
		out = append(out, cells)
	}
	return out
}
