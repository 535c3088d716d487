// Package format turns raw API values into pt-BR display strings.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders amount as Brazilian reais, e.g. "R$ 1.234,50".
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if amount < 0 {
		return "-" + currencySymbol + " " + printer.Sprintf("%.2f", -amount)
	}
	return currencySymbol + " " + printer.Sprintf("%.2f", amount)
}

// CurrencyPtr is Currency for optional amounts; nil renders as zero.
func CurrencyPtr(amount *float64) string {
	if amount == nil {
		return Currency(0)
	}
	return Currency(*amount)
}

// Number renders v with pt-BR digit grouping and exactly decimals fraction digits.
func Number(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}
