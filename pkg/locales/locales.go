// Package locales resolves the currency for a configured locale and formats
// monetary values for user-facing messages.
package locales

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyCode returns the lowercase ISO 4217 code Stripe expects for the
// given BCP 47 locale (e.g. "en-US" -> "usd").
func CurrencyCode(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return "", fmt.Errorf("no currency known for locale %q", locale)
	}

	return strings.ToLower(unit.String()), nil
}

// FormatMoney renders an amount in major units with the locale's currency
// symbol. Unknown locales fall back to US dollars.
func FormatMoney(amount float64, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}

	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}
