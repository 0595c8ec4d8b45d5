package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cvzbynek/DLF/internal/config"
	"github.com/cvzbynek/DLF/internal/core"
	"github.com/cvzbynek/DLF/internal/gdrive"
	"github.com/cvzbynek/DLF/internal/gsheets"
	"github.com/cvzbynek/DLF/internal/logging"
	"github.com/cvzbynek/DLF/internal/web"
	"github.com/joho/godotenv"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"drive_folder", cfg.Google.DriveFolderID,
		"spreadsheet", cfg.Google.SpreadsheetID,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// The Drive and Sheets clients are built once from the
	// service-account key and shared by all requests.
	ctx := context.Background()
	creds := option.WithCredentialsFile(cfg.Google.CredentialsFile)

	driveService, err := drive.NewService(ctx, creds, option.WithScopes(drive.DriveScope))
	if err != nil {
		slog.Error("failed to create drive client", "error", err)
		os.Exit(1)
	}

	sheetsService, err := sheets.NewService(ctx, creds, option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		slog.Error("failed to create sheets client", "error", err)
		os.Exit(1)
	}

	store := gdrive.New(driveService, cfg.Google.DriveFolderID, cfg.Upload.ScratchDir)
	appender := gsheets.New(sheetsService, cfg.Google.SpreadsheetID, cfg.Google.SheetRange)
	pipeline := core.NewPipeline(store, appender)

	server := web.NewServer(pipeline, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
