package main

import (
	"context"
	"os"

	"bilancio/internal/cli"
	"bilancio/internal/console"
	"bilancio/internal/services"
	"bilancio/internal/storage"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	store := storage.NewLedgerStore(cfg.LedgerFile)

	// Typed-nil guard: a nil *Archive must stay a nil interface.
	var archiver services.Archiver
	if archive := cli.InitArchive(logger, cfg.ArchiveDBPath); archive != nil {
		archiver = archive
	}

	svc := services.NewLedgerService(store, archiver)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn("Failed to close ledger service", "error", err)
		}
	}()

	ledger := store.Load()
	logger.Debug("Session starting", "ledger_file", cfg.LedgerFile, "expenses", len(ledger.Expenses))

	session := console.NewSession(&ledger, svc, os.Stdin, os.Stdout)
	if err := session.Run(context.Background()); err != nil {
		logger.Error("Session failed", "error", err)
		os.Exit(1)
	}
}
