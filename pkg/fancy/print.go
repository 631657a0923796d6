// Package fancy renders colored status output and locale-aware numbers for
// the terminal.
package fancy

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	Info  = aurora.White
	Ok    = aurora.Green
	Warn  = aurora.Yellow
	Error = aurora.Red
)

type Level = func(arg any) aurora.Value

func Printf(level Level, format string, args ...any) {
	fmt.Print(level(fmt.Sprintf(format, args...)))
}

// Pill renders a status label with color emphasis. Empty labels stay empty.
func Pill(level Level, text string) string {
	if text == "" {
		return ""
	}
	return level(text).String()
}

var printer = message.NewPrinter(language.English)

// Money renders a currency amount with grouped thousands and no fraction
// digits. Null renders empty.
func Money(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	f, _ := d.Decimal.Float64()
	return printer.Sprintf("%.0f", f)
}

// Percent renders a ratio as a percentage with two fraction digits. Null
// renders empty.
func Percent(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.Shift(2).StringFixed(2) + "%"
}
