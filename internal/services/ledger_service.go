// Package services orchestrates ledger mutations across the JSON store
// and the optional SQLite archive.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bilancio/internal/core"
)

// ErrArchiveUnavailable is returned by Export when no archive was
// configured or its initialization failed at startup.
var ErrArchiveUnavailable = errors.New("archive unavailable")

type (
	// LedgerWriter persists the full ledger.
	LedgerWriter interface {
		Save(l core.Ledger) error
	}

	// Archiver mirrors the ledger into a queryable secondary store.
	Archiver interface {
		Export(ctx context.Context, l core.Ledger) (int, error)
		Close() error
	}
)

// LedgerService applies mutations to the in-memory ledger and persists
// them. The JSON store write is mandatory and its failure propagates;
// the archive mirror is best-effort, mirroring how a failed secondary
// write must never lose a locally saved expense.
type LedgerService struct {
	store   LedgerWriter
	archive Archiver
}

func NewLedgerService(store LedgerWriter, archive Archiver) *LedgerService {
	return &LedgerService{
		store:   store,
		archive: archive,
	}
}

// SetBudget updates the budget and persists the ledger.
func (s *LedgerService) SetBudget(ctx context.Context, l *core.Ledger, budget core.Money) error {
	l.Budget = budget
	return s.persist(ctx, *l)
}

// AddExpense appends the expense and persists the ledger.
func (s *LedgerService) AddExpense(ctx context.Context, l *core.Ledger, e core.Expense) error {
	l.Append(e)
	return s.persist(ctx, *l)
}

// Export rebuilds the archive from the ledger and returns the number of
// rows written.
func (s *LedgerService) Export(ctx context.Context, l core.Ledger) (int, error) {
	if s.archive == nil {
		return 0, ErrArchiveUnavailable
	}
	n, err := s.archive.Export(ctx, l)
	if err != nil {
		return 0, fmt.Errorf("export ledger: %w", err)
	}
	return n, nil
}

func (s *LedgerService) persist(ctx context.Context, l core.Ledger) error {
	if err := s.store.Save(l); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	if s.archive == nil {
		return nil
	}
	// Keep the archive in step with every mutation, but never fail the
	// command over it: the ledger file is already saved.
	if _, err := s.archive.Export(ctx, l); err != nil {
		slog.WarnContext(ctx, "Archive mirror failed, continuing", "error", err)
	}
	return nil
}

// Close releases the archive connection, if any.
func (s *LedgerService) Close() error {
	if s.archive == nil {
		return nil
	}
	if err := s.archive.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}
