// Package currency renders monetary amounts for response summaries.
package currency

import (
	"fmt"
	"strings"

	"github.com/fraudlens/prediction-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// symbols maps known currency codes to their display symbol. Lookup is
// case-insensitive; anything else gets a code suffix instead.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

var printer = message.NewPrinter(language.English)

// Format renders amount with thousands separators and two decimals, prefixed
// with the currency symbol when the code is known and suffixed with the
// original-case code otherwise. It never fails: a value that cannot be read
// as a number comes back as its raw string representation. Formatting is
// cosmetic and must never abort a prediction.
func Format(amount any, code string) string {
	v, ok := utils.ToFloat(amount)
	if !ok {
		return fmt.Sprint(amount)
	}
	if symbol, known := symbols[strings.ToUpper(code)]; known {
		return symbol + printer.Sprintf("%.2f", v)
	}
	return printer.Sprintf("%.2f", v) + " " + code
}
