package query

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbol prefixes every price; listings are priced in baht
const currencySymbol = "฿"

// PriceFormatter renders prices with locale digit grouping
type PriceFormatter struct {
	printer *message.Printer
}

// NewPriceFormatter creates a formatter for a BCP 47 locale; invalid locales fall back to Thai
func NewPriceFormatter(locale string) *PriceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Thai
	}
	return &PriceFormatter{printer: message.NewPrinter(tag)}
}

// Format returns e.g. ฿1,500,000
func (f *PriceFormatter) Format(price float64) string {
	return currencySymbol + f.printer.Sprintf("%v", number.Decimal(price, number.MaxFractionDigits(3)))
}
