// Package format renders monetary amounts for reports.
package format

import (
	"github.com/iwvelando/investment-picker/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns an amount rounded to cents with thousands separators and
// the currency symbol (e.g., "-1,234.56€").
func Currency(amount float64) string {
	return NumericCurrency(amount) + constants.CurrencySymbol
}

// NumericCurrency returns a rounded amount with separators but without a
// currency symbol (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(2).InexactFloat64()
	return printer.Sprintf("%.2f", rounded)
}

// Fixed returns an amount rounded to cents with no grouping, for machine
// readable output.
func Fixed(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
