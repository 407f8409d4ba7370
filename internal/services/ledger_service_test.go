package services

import (
	"context"
	"errors"
	"testing"

	"bilancio/internal/core"
)

type fakeStore struct {
	saved []core.Ledger
	err   error
}

func (f *fakeStore) Save(l core.Ledger) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, l)
	return nil
}

type fakeArchive struct {
	exports int
	err     error
	closed  bool
}

func (f *fakeArchive) Export(_ context.Context, l core.Ledger) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.exports++
	return len(l.Expenses), nil
}

func (f *fakeArchive) Close() error {
	f.closed = true
	return nil
}

func TestSetBudgetPersists(t *testing.T) {
	store := &fakeStore{}
	svc := NewLedgerService(store, nil)
	ledger := core.DefaultLedger()

	if err := svc.SetBudget(context.Background(), &ledger, core.Money{Cents: 10000}); err != nil {
		t.Fatalf("set budget: %v", err)
	}
	if ledger.Budget.Cents != 10000 {
		t.Fatalf("budget not applied: %d", ledger.Budget.Cents)
	}
	if len(store.saved) != 1 || store.saved[0].Budget.Cents != 10000 {
		t.Fatalf("ledger not persisted: %+v", store.saved)
	}
}

func TestAddExpensePersistsAndMirrors(t *testing.T) {
	store := &fakeStore{}
	archive := &fakeArchive{}
	svc := NewLedgerService(store, archive)
	ledger := core.DefaultLedger()

	e := core.Expense{Amount: core.Money{Cents: 3000}, Category: "Food", Date: "2026-01-10"}
	if err := svc.AddExpense(context.Background(), &ledger, e); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if len(ledger.Expenses) != 1 {
		t.Fatalf("expense not appended: %+v", ledger.Expenses)
	}
	if len(store.saved) != 1 {
		t.Fatalf("ledger not persisted: %+v", store.saved)
	}
	if archive.exports != 1 {
		t.Fatalf("archive not mirrored: %d", archive.exports)
	}
}

func TestArchiveFailureDoesNotFailMutation(t *testing.T) {
	store := &fakeStore{}
	archive := &fakeArchive{err: errors.New("disk full")}
	svc := NewLedgerService(store, archive)
	ledger := core.DefaultLedger()

	if err := svc.SetBudget(context.Background(), &ledger, core.Money{Cents: 500}); err != nil {
		t.Fatalf("mutation must survive a mirror failure: %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatal("ledger save skipped")
	}
}

func TestStoreFailurePropagates(t *testing.T) {
	wantErr := errors.New("permission denied")
	svc := NewLedgerService(&fakeStore{err: wantErr}, nil)
	ledger := core.DefaultLedger()

	err := svc.SetBudget(context.Background(), &ledger, core.Money{Cents: 500})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestExportWithoutArchive(t *testing.T) {
	svc := NewLedgerService(&fakeStore{}, nil)
	_, err := svc.Export(context.Background(), core.DefaultLedger())
	if !errors.Is(err, ErrArchiveUnavailable) {
		t.Fatalf("expected ErrArchiveUnavailable, got %v", err)
	}
}

func TestClose(t *testing.T) {
	archive := &fakeArchive{}
	svc := NewLedgerService(&fakeStore{}, archive)
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !archive.closed {
		t.Fatal("archive not closed")
	}

	if err := NewLedgerService(&fakeStore{}, nil).Close(); err != nil {
		t.Fatalf("close without archive: %v", err)
	}
}
