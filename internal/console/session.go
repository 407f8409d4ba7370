package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"bilancio/internal/core"
	"bilancio/internal/services"
)

// Session owns the single in-memory ledger for the process lifetime and
// runs the read-dispatch loop over it.
type Session struct {
	ledger   *core.Ledger
	svc      *services.LedgerService
	prompt   *Prompter
	out      io.Writer
	commands map[string]func(context.Context) error
	exits    map[string]struct{}
}

func NewSession(ledger *core.Ledger, svc *services.LedgerService, in io.Reader, out io.Writer) *Session {
	s := &Session{
		ledger: ledger,
		svc:    svc,
		prompt: NewPrompter(in, out),
		out:    out,
		exits: map[string]struct{}{
			"вийти": {}, "exit": {}, "quit": {},
		},
	}
	s.commands = map[string]func(context.Context) error{}
	s.register(s.cmdHelp, "допомога", "help", "?")
	s.register(s.cmdSetBudget, "встановити бюджет", "set-budget")
	s.register(s.cmdAddExpense, "додати витрату", "add-expense")
	s.register(s.cmdShowExpenses, "показати витрати", "show-expenses")
	s.register(s.cmdExpensesByDate, "витрати за дату", "expenses-by-date")
	s.register(s.cmdExpensesByPeriod, "витрати за період", "expenses-by-period")
	s.register(s.cmdExpensesByCategory, "витрати за категорією", "expenses-by-category")
	s.register(s.cmdBalance, "залишок", "balance")
	s.register(s.cmdReport, "звіт за категоріями", "report-by-category")
	s.register(s.cmdExport, "експорт", "export")
	return s
}

func (s *Session) register(h func(context.Context) error, names ...string) {
	for _, name := range names {
		s.commands[name] = h
	}
}

// Run greets the user and dispatches commands until the exit phrase or
// the end of input. Only unrecoverable faults (a failed ledger write)
// return an error.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "👋 Привіт! Я бот «Фінансовий трекер студента».")
	fmt.Fprintln(s.out, "Напиши 'допомога' або 'help', щоб побачити команди.")
	fmt.Fprintln(s.out)

	for {
		line, err := s.prompt.Line("👉 Команда: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		quit, err := s.Dispatch(ctx, line)
		if err != nil {
			// Input closed mid-prompt ends the session quietly.
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if quit {
			return nil
		}
	}
}

// Dispatch routes one command phrase. The exit phrase is the only one
// that reports termination; unrecognized input is a message, not an
// error.
func (s *Session) Dispatch(ctx context.Context, raw string) (bool, error) {
	cmd := strings.ToLower(strings.TrimSpace(raw))
	slog.Debug("Dispatching command", "command", cmd)

	if _, ok := s.exits[cmd]; ok {
		fmt.Fprintln(s.out, "👋 До зустрічі! Бережи бюджет 🙂")
		return true, nil
	}
	handler, ok := s.commands[cmd]
	if !ok {
		errorf(s.out, "Не розпізнав команду. Напиши 'допомога' або 'help'.")
		return false, nil
	}
	return false, handler(ctx)
}

func (s *Session) cmdHelp(context.Context) error {
	fmt.Fprint(s.out, `
🧾 Доступні команди:
- допомога / help                          : показати список команд
- встановити бюджет / set-budget           : задати суму бюджету
- додати витрату / add-expense             : додати нову витрату
- показати витрати / show-expenses         : показати всі витрати
- витрати за дату / expenses-by-date       : фільтр за конкретну дату
- витрати за період / expenses-by-period   : фільтр між двома датами
- витрати за категорією / expenses-by-category : фільтр за категорією
- залишок / balance                        : показати залишок бюджету
- звіт за категоріями / report-by-category : підсумок по категоріях
- експорт / export                         : вивантажити дані в SQLite-архів
- вийти / exit                             : завершити роботу

`)
	return nil
}

func (s *Session) cmdSetBudget(ctx context.Context) error {
	budget, err := s.prompt.Amount("Введи суму бюджету: ")
	if err != nil {
		return err
	}
	if err := s.svc.SetBudget(ctx, s.ledger, budget); err != nil {
		return err
	}
	successf(s.out, "Бюджет встановлено: %s", s.ledger.Budget)
	return nil
}

func (s *Session) cmdAddExpense(ctx context.Context) error {
	amount, err := s.prompt.Amount("Сума витрати: ")
	if err != nil {
		return err
	}
	rawCategory, err := s.prompt.Line("Категорія: ")
	if err != nil {
		return err
	}
	date, err := s.prompt.Date("Дата (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	comment, err := s.prompt.Line("Коментар (необов'язково): ")
	if err != nil {
		return err
	}

	e := core.Expense{
		Amount:   amount,
		Category: core.NormalizeCategory(rawCategory),
		Date:     date.ISO(),
		Comment:  comment,
	}
	if err := s.svc.AddExpense(ctx, s.ledger, e); err != nil {
		return err
	}
	successf(s.out, "Витрату додано.")

	budget := s.ledger.Budget
	balance := core.Balance(budget, s.ledger.Expenses)
	switch {
	case budget.Cents > 0 && balance.Cents < 0:
		warnf(s.out, "УВАГА: Бюджет перевищено на %s!", balance.Abs())
	case budget.Cents > 0:
		fmt.Fprintf(s.out, "💰 Залишок бюджету: %s\n", balance)
	}
	return nil
}

func (s *Session) cmdShowExpenses(context.Context) error {
	renderExpenses(s.out, s.ledger.Expenses)
	return nil
}

func (s *Session) cmdExpensesByDate(context.Context) error {
	d, err := s.prompt.Date("Введи дату (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	renderExpenses(s.out, core.FilterByDate(s.ledger.Expenses, d.ISO()))
	return nil
}

func (s *Session) cmdExpensesByPeriod(context.Context) error {
	start, err := s.prompt.Date("Початкова дата (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := s.prompt.Date("Кінцева дата (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	renderExpenses(s.out, core.FilterByPeriod(s.ledger.Expenses, start, end))
	return nil
}

func (s *Session) cmdExpensesByCategory(context.Context) error {
	category, err := s.prompt.Line("Введи категорію: ")
	if err != nil {
		return err
	}
	if category == "" {
		errorf(s.out, "Категорія не може бути порожньою.")
		return nil
	}
	renderExpenses(s.out, core.FilterByCategory(s.ledger.Expenses, category))
	return nil
}

func (s *Session) cmdBalance(context.Context) error {
	budget := s.ledger.Budget
	spent := core.Total(s.ledger.Expenses)
	balance := core.Balance(budget, s.ledger.Expenses)

	fmt.Fprintf(s.out, "Бюджет: %s\n", budget)
	fmt.Fprintf(s.out, "Витрати: %s\n", spent)
	fmt.Fprintf(s.out, "Залишок: %s\n", balance)

	if budget.Cents > 0 && balance.Cents < 0 {
		warnf(s.out, "Бюджет перевищено на %s!", balance.Abs())
	}
	return nil
}

func (s *Session) cmdReport(context.Context) error {
	renderReport(s.out, core.ReportByCategory(s.ledger.Expenses))
	return nil
}

func (s *Session) cmdExport(ctx context.Context) error {
	n, err := s.svc.Export(ctx, *s.ledger)
	if errors.Is(err, services.ErrArchiveUnavailable) {
		warnf(s.out, "Архів недоступний. Задай ARCHIVE_DB_PATH і перезапусти.")
		return nil
	}
	if err != nil {
		errorf(s.out, "Не вдалося експортувати: %v", err)
		return nil
	}
	successf(s.out, "Експортовано записів: %d", n)
	return nil
}
