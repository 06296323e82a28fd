package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:          "8081",
		DataBackend:   "memory",
		CSVDelimiter:  ",",
		DataDirectory: "data",
		ConfirmPolicy:   "all",
		ReloadTimeout:   30 * time.Second,
		RefreshInterval: 5 * time.Minute,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "non numeric port",
			mutate:  func(c *Config) { c.Port = "abc" },
			wantErr: "invalid port 'abc'",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantErr: "must be between 1 and 65535",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.DataBackend = "sqlite" },
			wantErr: "invalid data backend 'sqlite'",
		},
		{
			name:    "published backend requires guest URL",
			mutate:  func(c *Config) { c.DataBackend = "published" },
			wantErr: "GUESTS_CSV_URL is required",
		},
		{
			name: "published backend rejects non http URL",
			mutate: func(c *Config) {
				c.DataBackend = "published"
				c.GuestCSVURL = "ftp://example.com/guests.csv"
			},
			wantErr: "must be http(s)",
		},
		{
			name: "published backend with valid URLs",
			mutate: func(c *Config) {
				c.DataBackend = "published"
				c.GuestCSVURL = "https://docs.google.com/spreadsheets/d/e/abc/pub?output=csv"
				c.CostCSVURL = "https://docs.google.com/spreadsheets/d/e/abc/pub?gid=1&output=csv"
			},
		},
		{
			name:    "bad delimiter",
			mutate:  func(c *Config) { c.CSVDelimiter = "|" },
			wantErr: "invalid CSV delimiter '|'",
		},
		{
			name:    "bad confirm policy",
			mutate:  func(c *Config) { c.ConfirmPolicy = "maybe" },
			wantErr: "invalid confirm policy 'maybe'",
		},
		{
			name:    "reload timeout too small",
			mutate:  func(c *Config) { c.ReloadTimeout = 200 * time.Millisecond },
			wantErr: "must be at least 1 second",
		},
		{
			name:    "reload timeout too large",
			mutate:  func(c *Config) { c.ReloadTimeout = time.Hour },
			wantErr: "must be at most 10 minutes",
		},
		{
			name:    "refresh interval too small",
			mutate:  func(c *Config) { c.RefreshInterval = time.Second },
			wantErr: "invalid refresh interval",
		},
		{
			name:   "refresh disabled is valid",
			mutate: func(c *Config) { c.RefreshInterval = 0 },
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.LogFormat = "json5" },
			wantErr: "invalid log format 'json5'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	c := validConfig()
	c.Port = "abc"
	c.DataBackend = "sqlite"
	c.CSVDelimiter = "|"

	err := c.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid port", "invalid data backend", "invalid CSV delimiter"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q:\n%s", want, err.Error())
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	c := Load()
	if c.Port != "8081" {
		t.Errorf("default port = %s, want 8081", c.Port)
	}
	if c.DataBackend != "memory" {
		t.Errorf("default backend = %s, want memory", c.DataBackend)
	}
	if c.ReloadTimeout != 30*time.Second {
		t.Errorf("default reload timeout = %v", c.ReloadTimeout)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "published")
	t.Setenv("GUESTS_CSV_URL", "https://example.com/pub?output=csv")
	t.Setenv("CSV_DELIMITER", ";")
	t.Setenv("CONFIRM_POLICY", "none")
	t.Setenv("RELOAD_TIMEOUT", "2m")

	c := Load()
	if c.Port != "9090" {
		t.Errorf("port = %s", c.Port)
	}
	if c.DataBackend != "published" {
		t.Errorf("backend = %s", c.DataBackend)
	}
	if c.Delimiter() != ';' {
		t.Errorf("delimiter = %q", c.Delimiter())
	}
	if c.ConfirmPolicy != "none" {
		t.Errorf("confirm policy = %s", c.ConfirmPolicy)
	}
	if c.ReloadTimeout != 2*time.Minute {
		t.Errorf("reload timeout = %v", c.ReloadTimeout)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("env config should validate: %v", err)
	}
}
