package core

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a validated calendar day. Expense records keep their date as
// a string; Date exists for comparisons in period filters and for
// canonicalizing user input.
type Date struct {
	time.Time
}

// ParseDate validates a YYYY-MM-DD string and returns the parsed day.
// Out-of-range dates (2026-02-31) fail, not just malformed ones.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// ISO returns the canonical YYYY-MM-DD rendering.
func (d Date) ISO() string {
	return d.Format(dateLayout)
}
