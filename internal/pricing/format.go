package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a whole-dollar total with digit grouping, e.g. "$20,475".
func FormatPrice(total int64) string {
	if total < 0 {
		return usdPrinter.Sprintf("-$%v", -total)
	}
	return usdPrinter.Sprintf("$%v", total)
}
