package locales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyCode(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"en-US", "usd"},
		{"de-DE", "eur"},
		{"ja-JP", "jpy"},
		{"en-GB", "gbp"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			code, err := CurrencyCode(tt.locale)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestCurrencyCode_InvalidLocale(t *testing.T) {
	_, err := CurrencyCode("not a locale!")
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	formatted := FormatMoney(1, "en-US")
	assert.Contains(t, formatted, "$")
	assert.Contains(t, formatted, "1")

	// Unknown locales fall back to USD rather than failing
	fallback := FormatMoney(5, "zz-ZZ")
	assert.Contains(t, fallback, "5")
}
