// Package core holds the guest/cost domain model and the pure
// aggregation and filtering logic that works on it.
//
// This file contains money parsing and formatting for the Argentine
// convention: dot as thousands separator, comma as decimal separator.
package core

import (
	"strconv"
	"strings"
)

// Money is an ARS amount stored in centavos to avoid floating point drift in
// sums. Display formatting rounds to whole pesos.
type Money struct {
	Centavos int64
}

// Pesos builds a Money from a whole-peso amount.
func Pesos(v int64) Money {
	return Money{Centavos: v * 100}
}

func (m Money) Add(o Money) Money {
	return Money{Centavos: m.Centavos + o.Centavos}
}

func (m Money) Sub(o Money) Money {
	return Money{Centavos: m.Centavos - o.Centavos}
}

// ParseCurrency parses an amount written in the Argentine convention:
// "$ 65.000" and "65.000,50" both carry sixty-five thousand pesos. Currency
// symbols, whitespace and any stray text are ignored; dots are thousands
// separators, a comma starts the decimals.
//
// The source spreadsheet is human-edited, so this never fails: empty or
// unparseable input yields zero.
func ParseCurrency(s string) Money {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	t := b.String()
	t = strings.ReplaceAll(t, ".", "")
	t = strings.ReplaceAll(t, ",", ".")
	if t == "" || t == "-" {
		return Money{}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return Money{}
	}
	if f < 0 {
		return Money{Centavos: int64(f*100.0 - 0.5)}
	}
	return Money{Centavos: int64(f*100.0 + 0.5)}
}

// FormatCurrency renders the amount for display: "$ 65.000". Whole pesos
// only, half-up rounded, dots as thousands separators.
func FormatCurrency(m Money) string {
	c := m.Centavos
	neg := c < 0
	if neg {
		c = -c
	}
	pesos := (c + 50) / 100
	digits := strconv.FormatInt(pesos, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-$ " + b.String()
	}
	return "$ " + b.String()
}
