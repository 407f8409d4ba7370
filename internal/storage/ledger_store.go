// Package storage persists the ledger: a JSON file as the source of
// truth, and an optional SQLite archive the export command mirrors
// into.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bilancio/internal/core"
)

// LedgerStore reads and writes the ledger JSON file. Every save
// rewrites the whole file; there is no incremental format.
type LedgerStore struct {
	path string
}

func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{path: path}
}

// Path returns the ledger file location.
func (s *LedgerStore) Path() string {
	return s.path
}

// Load reads the ledger from disk. A missing or unreadable file, a
// parse failure, a missing budget or expenses key, or an expenses value
// that is not an array all yield the default empty ledger instead of an
// error: a broken store must never take the session down. Entries that
// decode are kept as stored, except that blank categories are filled
// with the fallback label here, at the deserialization boundary.
func (s *LedgerStore) Load() core.Ledger {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return core.DefaultLedger()
	}
	if err != nil {
		slog.Warn("Ledger file unreadable, starting empty", "path", s.path, "error", err)
		return core.DefaultLedger()
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		slog.Warn("Ledger file corrupted, starting empty", "path", s.path, "error", err)
		return core.DefaultLedger()
	}
	budgetRaw, hasBudget := raw["budget"]
	expensesRaw, hasExpenses := raw["expenses"]
	if !hasBudget || !hasExpenses {
		slog.Warn("Ledger file missing required keys, starting empty", "path", s.path)
		return core.DefaultLedger()
	}

	ledger := core.DefaultLedger()
	if err := json.Unmarshal(budgetRaw, &ledger.Budget); err != nil {
		slog.Warn("Ledger budget unreadable, starting empty", "path", s.path, "error", err)
		return core.DefaultLedger()
	}
	var expenses []core.Expense
	if err := json.Unmarshal(expensesRaw, &expenses); err != nil {
		slog.Warn("Ledger expenses unreadable, starting empty", "path", s.path, "error", err)
		return core.DefaultLedger()
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	for i := range expenses {
		if strings.TrimSpace(expenses[i].Category) == "" {
			expenses[i].Category = core.Uncategorized
		}
	}
	ledger.Expenses = expenses

	slog.Debug("Ledger loaded", "path", s.path, "expenses", len(ledger.Expenses))
	return ledger
}

// Save rewrites the whole ledger file. Output is indented and keeps
// non-ASCII text unescaped. The write goes through a temp file and a
// rename; any failure propagates to the caller.
func (s *LedgerStore) Save(l core.Ledger) error {
	if l.Expenses == nil {
		l.Expenses = []core.Expense{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create ledger directory: %w", err)
		}
	}
	if err := writeFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}

	slog.Debug("Ledger saved", "path", s.path, "expenses", len(l.Expenses))
	return nil
}

// writeFile writes bytes via a temp file, then replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
