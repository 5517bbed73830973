// Package format renders money, dates and bounded text the same way for both PDF paths.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencyPrefix = "R$ "

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// BRL formats a value for display contexts: "R$ 1.234,56".
func BRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return currencyPrefix + brPrinter.Sprint(number.Decimal(f, number.Scale(2)))
}

// ASCIIMoney formats a value for the raw content stream: "R$ 1234.56".
// No grouping and no locale glyphs; the bytes go straight into the stream.
func ASCIIMoney(v decimal.Decimal) string {
	return currencyPrefix + v.StringFixed(2)
}

// Percent renders a discount percentage with pt-BR separators: "12,5".
func Percent(v decimal.Decimal) string {
	f, _ := v.Float64()
	return brPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}

// ASCIIPercent renders a discount percentage for the raw content stream: "12.5".
func ASCIIPercent(v decimal.Decimal) string {
	return v.Round(2).String()
}
