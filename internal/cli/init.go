// Package cli provides common process initialization for cmd/bilancio.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"bilancio/internal/config"
	"bilancio/internal/log"
	"bilancio/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging on stderr and sets it as
// the default logger. The level comes straight from LOG_LEVEL so early
// startup failures are already logged at the requested level.
func SetupLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ParseLevel(os.Getenv("LOG_LEVEL"))
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitArchive opens the SQLite archive. The archive is optional: on
// failure it logs a warning and returns nil, and the session runs with
// the export command disabled.
func InitArchive(logger *log.Logger, dbPath string) *storage.Archive {
	if dbPath == "" {
		return nil
	}
	archive, err := storage.NewArchive(dbPath)
	if err != nil {
		logger.Warn("Failed to initialize archive, continuing without export", "error", err, "path", dbPath)
		return nil
	}
	logger.Debug("Archive initialized", "path", dbPath)
	return archive
}
