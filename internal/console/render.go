package console

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"bilancio/internal/core"
)

// renderExpenses prints the expense table with a totals footer.
func renderExpenses(w io.Writer, expenses []core.Expense) {
	if len(expenses) == 0 {
		infof(w, "Витрат поки немає.")
		return
	}

	sep := strings.Repeat("-", 72)
	fmt.Fprintf(w, "\n📌 Список витрат:\n%s\n", sep)
	fmt.Fprintf(w, "%-3s %-12s %-18s %10s  %s\n", "#", "Дата", "Категорія", "Сума", "Коментар")
	fmt.Fprintln(w, sep)

	for i, e := range expenses {
		date := e.Date
		if date == "" {
			date = "----"
		}
		fmt.Fprintf(w, "%-3d %-12s %-18s %10s  %s\n",
			i+1, date, e.Category, e.Amount, strings.TrimSpace(e.Comment))
	}

	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "Разом витрат: %s\n\n", core.Total(expenses))
}

// renderReport prints per-category totals sorted by label,
// case-insensitively, with a grand total row.
func renderReport(w io.Writer, report map[string]core.Money) {
	if len(report) == 0 {
		infof(w, "Немає витрат для звіту.")
		return
	}

	rows := make([]core.CategoryAmount, 0, len(report))
	for label, amount := range report {
		rows = append(rows, core.CategoryAmount{Name: label, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		li, lj := strings.ToLower(rows[i].Name), strings.ToLower(rows[j].Name)
		if li == lj {
			return rows[i].Name < rows[j].Name
		}
		return li < lj
	})

	sep := strings.Repeat("-", 40)
	fmt.Fprintf(w, "\n📊 Звіт за категоріями:\n%s\n", sep)
	var total int64
	for _, row := range rows {
		fmt.Fprintf(w, "%-22s %10s\n", row.Name, row.Amount)
		total += row.Amount.Cents
	}
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-22s %10s\n\n", "Разом", core.Money{Cents: total})
}
