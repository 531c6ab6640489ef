package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("API.BaseURL = %q, want default base path", cfg.API.BaseURL)
	}
	if cfg.TUI.DebounceMs != 300 {
		t.Errorf("TUI.DebounceMs = %d, want 300", cfg.TUI.DebounceMs)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() should validate cleanly, got %v", ValidationErrors(errs))
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	if got := cfg.API.Timeout(); got != 10*time.Second {
		t.Errorf("API.Timeout() = %v, want 10s", got)
	}
	if got := cfg.TUI.DebounceInterval(); got != 300*time.Millisecond {
		t.Errorf("TUI.DebounceInterval() = %v, want 300ms", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty base url",
			mutate:    func(c *Config) { c.API.BaseURL = "" },
			wantField: "api.base_url",
		},
		{
			name:      "relative base url",
			mutate:    func(c *Config) { c.API.BaseURL = "/api" },
			wantField: "api.base_url",
		},
		{
			name:      "zero timeout",
			mutate:    func(c *Config) { c.API.TimeoutSeconds = 0 },
			wantField: "api.timeout_seconds",
		},
		{
			name:      "negative debounce",
			mutate:    func(c *Config) { c.TUI.DebounceMs = -1 },
			wantField: "tui.debounce_ms",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("Validate() returned no errors, want at least one")
			}

			found := false
			for _, e := range errs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors = %v, want error for field %q", errs, tt.wantField)
			}
		})
	}
}

func TestValidateAcceptsUpperCaseLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "DEBUG"

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors for upper-case level", errs)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "api.base_url", Value: "", Message: "must not be empty"},
		{Field: "logging.level", Value: "loud", Message: "must be one of: debug, info, warn, error"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("Error() = %q, want count prefix", msg)
	}
	if !strings.Contains(msg, "api.base_url") {
		t.Errorf("Error() = %q, want field names included", msg)
	}
}

func TestLogFileFallback(t *testing.T) {
	cfg := Default()

	if got := cfg.Logging.LogFile(); !strings.HasSuffix(got, "dishboard.log") {
		t.Errorf("LogFile() = %q, want dishboard.log under the config dir", got)
	}

	cfg.Logging.File = "/tmp/custom.log"
	if got := cfg.Logging.LogFile(); got != "/tmp/custom.log" {
		t.Errorf("LogFile() = %q, want explicit path preserved", got)
	}
}
