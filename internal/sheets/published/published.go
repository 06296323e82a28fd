// Package published fetches guest and cost data from "publish to web" CSV
// URLs of a spreadsheet. This is the default adapter: no credentials, plain
// HTTP GET, CSV text in the response body.
package published

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"invitados/internal/core"
	"invitados/internal/sheets"
)

type Client struct {
	httpClient *http.Client
	guestURL   string
	costURL    string
	delim      rune
}

// Ensure interface conformance
var (
	_ sheets.GuestSource = (*Client)(nil)
	_ sheets.CostSource  = (*Client)(nil)
)

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client (30s overall timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithDelimiter sets the cell delimiter. Comma is the default; some legacy
// exports use semicolons.
func WithDelimiter(d rune) Option {
	return func(c *Client) { c.delim = d }
}

// New creates a client for the given published CSV URLs. costURL may be
// empty when the event has no cost sheet.
func New(guestURL, costURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		guestURL:   guestURL,
		costURL:    costURL,
		delim:      ',',
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) FetchGuests(ctx context.Context) ([]core.GuestRecord, error) {
	text, err := c.fetch(ctx, c.guestURL)
	if err != nil {
		return nil, fmt.Errorf("guest sheet: %w", err)
	}
	rows := sheets.Tokenize(text, c.delim)
	if len(rows) == 0 {
		return nil, nil
	}
	cols := sheets.ResolveHeaders(rows[0], sheets.GuestFields)
	if missing := sheets.MissingFields(cols); len(missing) > 0 {
		slog.WarnContext(ctx, "Guest sheet is missing expected columns",
			"columns", missing, "header", rows[0])
	}
	return sheets.BuildGuestRecords(rows, cols), nil
}

func (c *Client) FetchCosts(ctx context.Context) ([]core.CostLine, error) {
	if c.costURL == "" {
		return nil, nil
	}
	text, err := c.fetch(ctx, c.costURL)
	if err != nil {
		return nil, fmt.Errorf("cost sheet: %w", err)
	}
	return sheets.BuildCostLines(sheets.Tokenize(text, c.delim)), nil
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch csv: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch csv: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
