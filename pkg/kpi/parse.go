// Package kpi derives slot machine performance indicators from raw
// operator-entered values.
package kpi

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ParseNumber converts free-text numeric input to a decimal. Thousands
// separators and embedded whitespace are tolerated. Empty or unparseable
// input yields a null value, never an error; missing data must not block
// manual entry.
func ParseNumber(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// ParseAvailability accepts "99.8", "99.8%" and "0.998" style input and
// returns a fraction. Values above 1 are read as percentages and scaled
// down; inputs are always expected to represent a value at or below 100%.
func ParseAvailability(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	n := ParseNumber(strings.Replace(s, "%", "", 1))
	if !n.Valid {
		return n
	}
	if n.Decimal.GreaterThan(one) {
		n.Decimal = n.Decimal.Shift(-2)
	}
	return n
}
