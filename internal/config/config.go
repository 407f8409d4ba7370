// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Ledger file (JSON, rewritten in full on every mutation)
	LedgerFile string

	// SQLite archive the export command writes to; empty disables it
	ArchiveDBPath string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		LedgerFile:    getEnv("LEDGER_FILE", "finance_data.json"),
		ArchiveDBPath: getEnv("ARCHIVE_DB_PATH", "./data/archive.db"),
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
	}
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.LedgerFile) == "" {
		errs = append(errs, "ledger file path cannot be empty")
	} else if dir := filepath.Dir(c.LedgerFile); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				errs = append(errs, fmt.Sprintf("cannot create ledger directory '%s': %v", dir, err))
			}
		}
	}

	if c.ArchiveDBPath != "" {
		if dir := filepath.Dir(c.ArchiveDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create archive directory '%s': %v", dir, err))
				}
			}
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
