// Package config provides centralized configuration for the
// registration service. Settings come from environment variables with
// defaults and are validated on startup so misconfiguration fails fast.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Google  GoogleConfig
	Rate    RateLimitConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request body
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"30s"`

	// WriteTimeout is the maximum duration for writing the response
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout per request; a submit
	// performs up to four remote calls, so this stays generous
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// UploadConfig holds attachment upload settings.
type UploadConfig struct {
	// MaxFileSize caps the whole multipart request body in bytes
	// (default: 10MB; a submission carries at most three PDFs)
	MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" default:"10485760"`

	// ScratchDir is where attachments are staged before the Drive
	// call; empty means the system temp directory
	ScratchDir string `env:"UPLOAD_SCRATCH_DIR"`
}

// GoogleConfig holds the Drive and Sheets settings.
type GoogleConfig struct {
	// CredentialsFile is the service-account JSON key path (required)
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" required:"true"`

	// DriveFolderID is the folder receiving uploaded attachments (required)
	DriveFolderID string `env:"DRIVE_FOLDER_ID" required:"true"`

	// SpreadsheetID is the registration sheet document id (required)
	// Supports both SPREADSHEET_ID and SHEET_ID env vars
	SpreadsheetID string `env:"SPREADSHEET_ID" envAlt:"SHEET_ID" required:"true"`

	// SheetRange names the appended table within the sheet
	SheetRange string `env:"SHEET_RANGE" default:"A1"`
}

// RateLimitConfig holds per-IP rate limiting for the submit endpoint.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// PerMinute is the allowed submissions per IP per minute (default: 10)
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" default:"10"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
