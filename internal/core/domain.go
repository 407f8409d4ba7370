package core

import (
	"errors"
	"strings"
)

// Uncategorized is the fallback label used when an expense carries no
// category.
const Uncategorized = "Без категорії"

type (
	// Expense is one recorded spending event. Date stays a plain
	// YYYY-MM-DD string so hand-edited ledger files survive a load and
	// round-trip verbatim; the parsers hand out validated Dates.
	Expense struct {
		Amount   Money  `json:"amount"`
		Category string `json:"category"`
		Date     string `json:"date"`
		Comment  string `json:"comment"`
	}

	// Ledger is the full persisted state: a budget plus the ordered
	// list of expenses, oldest first.
	Ledger struct {
		Budget   Money     `json:"budget"`
		Expenses []Expense `json:"expenses"`
	}
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("negative amount")
	ErrInvalidDate    = errors.New("invalid date")
)

// DefaultLedger is the state used when no ledger file exists yet or the
// stored one cannot be trusted.
func DefaultLedger() Ledger {
	return Ledger{Expenses: []Expense{}}
}

// Append records a new expense at the end of the list.
func (l *Ledger) Append(e Expense) {
	l.Expenses = append(l.Expenses, e)
}

// NormalizeCategory trims surrounding whitespace and substitutes the
// Uncategorized label for blank input.
func NormalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Uncategorized
	}
	return s
}

// foldCategory is the comparison key for category matching: trimmed and
// lowercased.
func foldCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
