package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompterAmountReprompts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n-5\n12,34\n"), &out)

	m, err := p.Amount("Сума: ")
	if err != nil {
		t.Fatalf("amount: %v", err)
	}
	if m.Cents != 1234 {
		t.Fatalf("expected 1234 cents, got %d", m.Cents)
	}
	got := out.String()
	if !strings.Contains(got, "Некоректне число") {
		t.Fatalf("missing invalid-number message:\n%s", got)
	}
	if !strings.Contains(got, "від'ємною") {
		t.Fatalf("missing negative-amount message:\n%s", got)
	}
}

func TestPrompterAmountAcceptsDotAndComma(t *testing.T) {
	for _, in := range []string{"120.50\n", "120,50\n"} {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(in), &out)
		m, err := p.Amount("? ")
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if m.Cents != 12050 {
			t.Fatalf("%q: expected 12050, got %d", in, m.Cents)
		}
	}
}

func TestPrompterDateReprompts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2026-13-01\nnope\n2026-02-27\n"), &out)

	d, err := p.Date("Дата: ")
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if d.ISO() != "2026-02-27" {
		t.Fatalf("expected 2026-02-27, got %s", d.ISO())
	}
	if n := strings.Count(out.String(), "Некоректна дата"); n != 2 {
		t.Fatalf("expected 2 re-prompts, got %d", n)
	}
}

func TestPrompterEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)
	if _, err := p.Line("? "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}

	p = NewPrompter(strings.NewReader("abc\n"), &out)
	if _, err := p.Amount("? "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF after exhausted invalid input, got %v", err)
	}
}

func TestPrompterUnterminatedFinalLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("exit"), &out)
	line, err := p.Line("? ")
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	if line != "exit" {
		t.Fatalf("expected %q, got %q", "exit", line)
	}
}
