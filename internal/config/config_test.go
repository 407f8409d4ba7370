package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid defaults",
			config: Config{
				LedgerFile:    filepath.Join(tmp, "finance_data.json"),
				ArchiveDBPath: filepath.Join(tmp, "archive.db"),
				LogLevel:      "warn",
			},
			wantErr: false,
		},
		{
			name: "archive disabled",
			config: Config{
				LedgerFile: filepath.Join(tmp, "finance_data.json"),
				LogLevel:   "debug",
			},
			wantErr: false,
		},
		{
			name: "empty ledger path",
			config: Config{
				LedgerFile: "  ",
				LogLevel:   "warn",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: Config{
				LedgerFile: filepath.Join(tmp, "finance_data.json"),
				LogLevel:   "loud",
			},
			wantErr: true,
		},
		{
			name: "creates missing directories",
			config: Config{
				LedgerFile:    filepath.Join(tmp, "nested", "ledger.json"),
				ArchiveDBPath: filepath.Join(tmp, "nested", "db", "archive.db"),
				LogLevel:      "info",
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEDGER_FILE", "")
	t.Setenv("ARCHIVE_DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.LedgerFile != "finance_data.json" {
		t.Fatalf("unexpected ledger default: %s", cfg.LedgerFile)
	}
	if cfg.ArchiveDBPath != "./data/archive.db" {
		t.Fatalf("unexpected archive default: %s", cfg.ArchiveDBPath)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("unexpected log level default: %s", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEDGER_FILE", "/tmp/my-ledger.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.LedgerFile != "/tmp/my-ledger.json" {
		t.Fatalf("env override ignored: %s", cfg.LedgerFile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env override ignored: %s", cfg.LogLevel)
	}
}
