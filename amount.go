package finstmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// AmountStyle selects one of the two conventions an amount is displayed in.
// The statement view prefixes a currency symbol and keeps the leading minus;
// the compliance view drops the symbol and parenthesizes negatives. Both are
// whole-dollar with thousands grouping. The two are deliberately kept as
// distinct named modes.
type AmountStyle int

const (
	// StyleStatement renders 12345.6 as "$12,346" and -12345.6 as "-$12,346".
	StyleStatement AmountStyle = iota
	// StyleCompliance renders 12345.6 as "12,346" and -12345.6 as "(12,346)".
	StyleCompliance
)

var (
	statementFormatter  = money.NewFormatter(0, ".", ",", "$", "$1")
	complianceFormatter = money.NewFormatter(0, ".", ",", "", "1")
)

func (st AmountStyle) String() string {
	switch st {
	case StyleCompliance:
		return "compliance"
	default:
		return "statement"
	}
}

// ParseAmountStyle parses a string into an AmountStyle.
func ParseAmountStyle(s string) (AmountStyle, error) {
	switch s {
	case "statement":
		return StyleStatement, nil
	case "compliance":
		return StyleCompliance, nil
	default:
		return 0, fmt.Errorf("unknown amount style: %q", s)
	}
}

// Format renders n as a whole-dollar amount in the receiver's convention.
// The value is rounded half away from zero; the rounding loss on display is
// accepted, parsing a formatted amount recovers the rounded value only.
func (st AmountStyle) Format(n float64) string {
	units := decimal.NewFromFloat(finite(n)).Round(0).IntPart()
	if st == StyleCompliance {
		s := complianceFormatter.Format(abs(units))
		if units < 0 {
			return "(" + s + ")"
		}
		return s
	}
	return statementFormatter.Format(units)
}

// ParseAmount reads an amount out of display or keyboard text: currency
// symbols, group separators and whitespace are stripped, a fully
// parenthesized value is negative. It returns 0 for empty input or any text
// that does not parse as a number.
func ParseAmount(s string) float64 {
	s = strings.Map(func(r rune) rune {
		if r == '$' || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 2 {
		neg = true
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	n := d.InexactFloat64()
	if neg {
		n = -n
	}
	return n
}

// editText is the bare form a numeric editor starts from, without any
// currency decoration.
func editText(n float64) string {
	return strconv.FormatFloat(finite(n), 'f', -1, 64)
}

// roundAmount normalizes an amount for encoding: finite, at most two
// decimal places.
func roundAmount(n float64) float64 {
	return decimal.NewFromFloat(finite(n)).Round(2).InexactFloat64()
}

// finite maps NaN and infinities to 0 so every amount operation stays total.
func finite(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
