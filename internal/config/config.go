package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Data source selection
	DataBackend string

	// Published CSV backend
	GuestCSVURL string
	CostCSVURL  string
	// "," or ";" depending on the export locale.
	CSVDelimiter string

	// Memory backend
	DataDirectory string

	// How rows count as confirmed when the sheet has no confirmation
	// column: "all" or "none".
	ConfirmPolicy string

	// Reload behavior
	ReloadTimeout time.Duration
	// RefreshInterval drives the background refresh loop. Zero disables it.
	RefreshInterval time.Duration

	// Logging
	LogLevel  string
	LogFormat string // "text" or "tint"
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DataBackend: getEnv("DATA_BACKEND", "memory"),

		GuestCSVURL:  getEnv("GUESTS_CSV_URL", ""),
		CostCSVURL:   getEnv("COSTS_CSV_URL", ""),
		CSVDelimiter: getEnv("CSV_DELIMITER", ","),

		DataDirectory: getEnv("DATA_DIR", "data"),

		ConfirmPolicy: getEnv("CONFIRM_POLICY", "all"),

		ReloadTimeout:   getEnvDuration("RELOAD_TIMEOUT", 30*time.Second),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 5*time.Minute),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "published", "sheets", "memory":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [published sheets memory]", c.DataBackend))
	}

	if c.DataBackend == "published" {
		if c.GuestCSVURL == "" {
			errs = append(errs, "GUESTS_CSV_URL is required when using the published backend")
		} else if u, err := url.Parse(c.GuestCSVURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Sprintf("invalid guest CSV URL '%s': must be http(s)", c.GuestCSVURL))
		}
		if c.CostCSVURL != "" {
			if u, err := url.Parse(c.CostCSVURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
				errs = append(errs, fmt.Sprintf("invalid cost CSV URL '%s': must be http(s)", c.CostCSVURL))
			}
		}
	}

	if c.CSVDelimiter != "," && c.CSVDelimiter != ";" {
		errs = append(errs, fmt.Sprintf("invalid CSV delimiter '%s': must be ',' or ';'", c.CSVDelimiter))
	}

	if c.ConfirmPolicy != "all" && c.ConfirmPolicy != "none" {
		errs = append(errs, fmt.Sprintf("invalid confirm policy '%s': must be 'all' or 'none'", c.ConfirmPolicy))
	}

	if c.ReloadTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid reload timeout %v: must be at least 1 second", c.ReloadTimeout))
	} else if c.ReloadTimeout > 10*time.Minute {
		errs = append(errs, fmt.Sprintf("invalid reload timeout %v: must be at most 10 minutes", c.ReloadTimeout))
	}

	if c.RefreshInterval != 0 && c.RefreshInterval < 10*time.Second {
		errs = append(errs, fmt.Sprintf("invalid refresh interval %v: must be 0 (disabled) or at least 10 seconds", c.RefreshInterval))
	}

	switch c.LogFormat {
	case "text", "tint":
	default:
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be 'text' or 'tint'", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	if c.CSVDelimiter == ";" {
		return ';'
	}
	return ','
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
