// Package console implements the interactive session: line prompts,
// command dispatch and table rendering over any reader/writer pair.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bilancio/internal/core"
)

// Prompter reads validated values from a line-oriented input. Invalid
// amounts and dates are re-prompted indefinitely; only a closed input
// stops the loop. Tests feed a canned reader instead of stdin.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Line prints the prompt and reads one line, trimmed of surrounding
// whitespace. A final unterminated line still counts.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Amount re-prompts until the input parses as a non-negative decimal
// number; both "120.50" and "120,50" are accepted.
func (p *Prompter) Amount(prompt string) (core.Money, error) {
	for {
		raw, err := p.Line(prompt)
		if err != nil {
			return core.Money{}, err
		}
		m, err := core.ParseAmount(raw)
		switch {
		case errors.Is(err, core.ErrNegativeAmount):
			errorf(p.out, "Сума не може бути від'ємною. Спробуй ще раз.")
		case err != nil:
			errorf(p.out, "Некоректне число. Приклад: 120 або 120.50")
		default:
			return m, nil
		}
	}
}

// Date re-prompts until the input is a real calendar day in YYYY-MM-DD
// form, and returns it canonicalized.
func (p *Prompter) Date(prompt string) (core.Date, error) {
	for {
		raw, err := p.Line(prompt)
		if err != nil {
			return core.Date{}, err
		}
		d, err := core.ParseDate(raw)
		if err != nil {
			errorf(p.out, "Некоректна дата. Формат має бути YYYY-MM-DD, наприклад 2026-02-27")
			continue
		}
		return d, nil
	}
}
