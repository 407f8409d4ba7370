package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"bilancio/internal/core"

	_ "modernc.org/sqlite"
)

// Archive mirrors the ledger into a local SQLite database so expenses
// can be queried with ordinary SQL. The JSON ledger file stays the
// source of truth; the archive is derived and never read back.
type Archive struct {
	db *sql.DB
}

func NewArchive(dbPath string) (*Archive, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping archive database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run archive migrations: %w", err)
	}

	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Export replaces the archive contents with the given ledger inside one
// transaction and returns the number of expense rows written.
func (a *Archive) Export(ctx context.Context, l core.Ledger) (int, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return 0, fmt.Errorf("clear archived expenses: %w", err)
	}

	exportedAt := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO budget_snapshot (id, budget_cents, exported_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			budget_cents = excluded.budget_cents,
			exported_at  = excluded.exported_at`,
		l.Budget.Cents, exportedAt)
	if err != nil {
		return 0, fmt.Errorf("write budget snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO expenses (position, date, category, amount_cents, comment)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare expense insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range l.Expenses {
		if _, err := stmt.ExecContext(ctx, i+1, e.Date, e.Category, e.Amount.Cents, e.Comment); err != nil {
			return 0, fmt.Errorf("archive expense %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit archive transaction: %w", err)
	}

	slog.InfoContext(ctx, "Ledger exported to archive",
		"expenses", len(l.Expenses),
		"budget_cents", l.Budget.Cents)
	return len(l.Expenses), nil
}

// CountExpenses reports how many expense rows the archive holds.
func (a *Archive) CountExpenses(ctx context.Context) (int, error) {
	var n int
	if err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count archived expenses: %w", err)
	}
	return n, nil
}
