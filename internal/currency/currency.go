package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is the fixed currency prefix for all rendered prices.
const Symbol = "₦"

var printer = message.NewPrinter(language.English)

// Format renders an amount with the naira symbol, thousands separators and
// two decimal places, e.g. 425000 -> "₦425,000.00".
func Format(amount float64) string {
	return Symbol + printer.Sprintf("%.2f", amount)
}
