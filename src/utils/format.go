package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders a balance with a dollar sign, thousands
// separators, and a fixed two decimal places.
func FormatCurrency(balance float64) string {
	return fmt.Sprintf("$%s", currencyPrinter.Sprintf("%.2f", balance))
}
