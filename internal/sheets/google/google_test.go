package google

import (
	"context"
	"os"
	"reflect"
	"testing"
)

func TestNewFromEnvRequiresSpreadsheetID(t *testing.T) {
	t.Setenv("GOOGLE_SPREADSHEET_ID", "")
	if _, err := NewFromEnv(context.Background()); err == nil {
		t.Fatal("expected error without GOOGLE_SPREADSHEET_ID")
	}
}

func TestNewFromEnvRequiresCredentials(t *testing.T) {
	t.Setenv("GOOGLE_SPREADSHEET_ID", "sheet-id")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	if _, err := NewFromEnv(context.Background()); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestNewFromEnvMissingCredentialsFile(t *testing.T) {
	t.Setenv("GOOGLE_SPREADSHEET_ID", "sheet-id")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "/nonexistent/creds.json")
	if _, err := NewFromEnv(context.Background()); err == nil {
		t.Fatal("expected error for unreadable credentials file")
	}
	if _, err := os.Stat("/nonexistent/creds.json"); err == nil {
		t.Fatal("test precondition broken")
	}
}

func TestToRows(t *testing.T) {
	values := [][]interface{}{
		{"Nombre", "Cena", 1},
		{" Ana ", 0},
		{},
	}
	got := toRows(values)
	want := [][]string{
		{"Nombre", "Cena", "1"},
		{"Ana", "0"},
		{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("toRows = %#v, want %#v", got, want)
	}
}

func TestFetchWithoutService(t *testing.T) {
	c := &Client{spreadsheetID: "x", guestSheet: "Invitados"}
	if _, err := c.FetchGuests(context.Background()); err == nil {
		t.Fatal("expected error with nil service")
	}
	// No cost sheet configured: a nil service is fine, nothing to read.
	lines, err := c.FetchCosts(context.Background())
	if err != nil || lines != nil {
		t.Fatalf("FetchCosts = %v, %v; want nil, nil", lines, err)
	}
}
