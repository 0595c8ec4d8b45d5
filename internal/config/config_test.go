package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// setRequired sets the env vars without which Load fails.
func setRequired(t *testing.T) {
	t.Helper()
	os.Setenv("GOOGLE_CREDENTIALS_FILE", "/etc/dlf/credentials.json")
	os.Setenv("DRIVE_FOLDER_ID", "folder-123")
	os.Setenv("SPREADSHEET_ID", "sheet-456")
	t.Cleanup(func() {
		os.Unsetenv("GOOGLE_CREDENTIALS_FILE")
		os.Unsetenv("DRIVE_FOLDER_ID")
		os.Unsetenv("SPREADSHEET_ID")
	})
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Upload.MaxFileSize != 10485760 {
		t.Errorf("Upload.MaxFileSize = %d, want %d", cfg.Upload.MaxFileSize, 10485760)
	}
	if cfg.Google.SheetRange != "A1" {
		t.Errorf("Google.SheetRange = %q, want %q", cfg.Google.SheetRange, "A1")
	}
	if !cfg.Rate.Enabled {
		t.Error("Rate.Enabled = false, want true by default")
	}
	if cfg.Rate.PerMinute != 10 {
		t.Errorf("Rate.PerMinute = %d, want %d", cfg.Rate.PerMinute, 10)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	setRequired(t)
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("SERVER_SHUTDOWN_TIMEOUT", "10s")
	os.Setenv("UPLOAD_MAX_FILE_SIZE", "1048576")
	os.Setenv("RATE_LIMIT_ENABLED", "false")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SERVER_SHUTDOWN_TIMEOUT")
		os.Unsetenv("UPLOAD_MAX_FILE_SIZE")
		os.Unsetenv("RATE_LIMIT_ENABLED")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want %v", cfg.Server.ShutdownTimeout, 10*time.Second)
	}
	if cfg.Upload.MaxFileSize != 1048576 {
		t.Errorf("Upload.MaxFileSize = %d, want %d", cfg.Upload.MaxFileSize, 1048576)
	}
	if cfg.Rate.Enabled {
		t.Error("Rate.Enabled = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Setenv("GOOGLE_CREDENTIALS_FILE", "/etc/dlf/credentials.json")
	os.Setenv("DRIVE_FOLDER_ID", "folder-123")
	defer func() {
		os.Unsetenv("GOOGLE_CREDENTIALS_FILE")
		os.Unsetenv("DRIVE_FOLDER_ID")
	}()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded without SPREADSHEET_ID")
	}
	if !strings.Contains(err.Error(), "SPREADSHEET_ID") {
		t.Errorf("error %q does not name the missing variable", err)
	}
}

func TestLoad_SpreadsheetIDAlias(t *testing.T) {
	os.Setenv("GOOGLE_CREDENTIALS_FILE", "/etc/dlf/credentials.json")
	os.Setenv("DRIVE_FOLDER_ID", "folder-123")
	os.Setenv("SHEET_ID", "alias-789")
	defer func() {
		os.Unsetenv("GOOGLE_CREDENTIALS_FILE")
		os.Unsetenv("DRIVE_FOLDER_ID")
		os.Unsetenv("SHEET_ID")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Google.SpreadsheetID != "alias-789" {
		t.Errorf("SpreadsheetID = %q, want %q", cfg.Google.SpreadsheetID, "alias-789")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "bad port", env: "SERVER_PORT", value: "not-a-number"},
		{name: "bad duration", env: "SERVER_READ_TIMEOUT", value: "fast"},
		{name: "bad bool", env: "RATE_LIMIT_ENABLED", value: "maybe"},
		{name: "port out of range", env: "SERVER_PORT", value: "70000"},
		{name: "bad log level", env: "LOG_LEVEL", value: "verbose"},
		{name: "bad log format", env: "LOG_FORMAT", value: "xml"},
		{name: "zero file size", env: "UPLOAD_MAX_FILE_SIZE", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			os.Setenv(tt.env, tt.value)
			defer os.Unsetenv(tt.env)

			if _, err := Load(); err == nil {
				t.Errorf("Load() accepted %s=%q", tt.env, tt.value)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	c := &ServerConfig{Host: "127.0.0.1", Port: 9000}
	if got := c.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9000")
	}
}
