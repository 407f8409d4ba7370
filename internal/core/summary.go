package core

// CategoryAmount is an amount aggregated under one category label.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Total sums the amounts of the given expenses. An empty list totals 0.
func Total(expenses []Expense) Money {
	var cents int64
	for _, e := range expenses {
		cents += e.Amount.Cents
	}
	return Money{Cents: cents}
}

// Balance is budget minus total spend; it may be negative.
func Balance(budget Money, expenses []Expense) Money {
	return Money{Cents: budget.Cents - Total(expenses).Cents}
}

// FilterByDate keeps expenses whose stored date string equals the given
// canonical day exactly, preserving order.
func FilterByDate(expenses []Expense, date string) []Expense {
	out := make([]Expense, 0)
	for _, e := range expenses {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// FilterByPeriod keeps expenses dated within [start, end], inclusive.
// Reversed bounds are swapped rather than yielding an empty result, and
// expenses whose stored date does not parse are skipped.
func FilterByPeriod(expenses []Expense, start, end Date) []Expense {
	if end.Before(start.Time) {
		start, end = end, start
	}
	out := make([]Expense, 0)
	for _, e := range expenses {
		d, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		if !d.Before(start.Time) && !d.After(end.Time) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategory keeps expenses whose category matches the query,
// ignoring case and surrounding whitespace on both sides.
func FilterByCategory(expenses []Expense, category string) []Expense {
	key := foldCategory(category)
	out := make([]Expense, 0)
	for _, e := range expenses {
		if foldCategory(e.Category) == key {
			out = append(out, e)
		}
	}
	return out
}

// ReportByCategory sums amounts per category. Labels are folded for
// grouping ("Food" and "food " land in one bucket) and the first
// spelling seen becomes the displayed label. Missing categories count
// under Uncategorized. Iteration order is up to the caller.
func ReportByCategory(expenses []Expense) map[string]Money {
	labels := make(map[string]string)
	sums := make(map[string]int64)
	for _, e := range expenses {
		label := NormalizeCategory(e.Category)
		key := foldCategory(label)
		if _, seen := labels[key]; !seen {
			labels[key] = label
		}
		sums[key] += e.Amount.Cents
	}
	report := make(map[string]Money, len(sums))
	for key, cents := range sums {
		report[labels[key]] = Money{Cents: cents}
	}
	return report
}
