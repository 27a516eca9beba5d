// Package export renders donation reports as CSV files and printable documents.
package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AmountFormatter prints amounts with locale grouping, two decimals and a fixed currency glyph.
type AmountFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewAmountFormatter creates a formatter for the given BCP 47 locale, e.g. "en-PH".
// An unparseable locale falls back to English.
func NewAmountFormatter(locale, symbol string) *AmountFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &AmountFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Format returns e.g. "₱1,234,567.50".
func (f *AmountFormatter) Format(amount decimal.Decimal) string {
	value := amount.Round(2).InexactFloat64()
	return f.symbol + f.printer.Sprintf("%v", number.Decimal(value, number.Scale(2)))
}

// plainAmount is the machine-readable form used in CSV cells.
func plainAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
