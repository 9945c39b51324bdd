package form

import (
	"regexp"
	"strings"
)

// BrandRule matches complete card numbers of one brand.
type BrandRule struct {
	Brand   string
	Pattern *regexp.Regexp
}

// BrandRules is the ordered detection list. The first matching rule wins,
// so rules must not overlap; RulesOverlap exists to check that.
var BrandRules = []BrandRule{
	{"visa", regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	{"mastercard", regexp.MustCompile(`^(?:5[1-5][0-9]{2}|222[1-9]|22[3-9][0-9]|2[3-6][0-9]{2}|27[01][0-9]|2720)[0-9]{12}$`)},
	{"amex", regexp.MustCompile(`^3[47][0-9]{13}$`)},
	{"diners-club", regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}$`)},
	{"discover", regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
	{"jcb", regexp.MustCompile(`^(?:2131|1800|35\d{3})\d{11}$`)},
}

// normalizeCardNumber drops the spaces and dashes donors type between digit
// groups. Everything else is left alone so junk input simply fails to match.
func normalizeCardNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)
}

// DetectBrand returns the brand of a complete card number, or "" when no
// rule matches. Partial or malformed input matches nothing.
func DetectBrand(number string) string {
	number = normalizeCardNumber(number)
	for _, rule := range BrandRules {
		if rule.Pattern.MatchString(number) {
			return rule.Brand
		}
	}
	return ""
}

// MatchingBrands returns every brand whose rule matches the number. More
// than one result means the rule list is misconfigured.
func MatchingBrands(number string) []string {
	number = normalizeCardNumber(number)
	var brands []string
	for _, rule := range BrandRules {
		if rule.Pattern.MatchString(number) {
			brands = append(brands, rule.Brand)
		}
	}
	return brands
}

// CardNumberField tracks the card number input and the brand marker on it.
type CardNumberField struct {
	doc   *Document
	name  string
	brand string
}

// NewCardNumberField wires brand detection to the named document field.
func NewCardNumberField(doc *Document, name string) *CardNumberField {
	return &CardNumberField{doc: doc, name: name}
}

// SetNumber records a keystroke's result and re-runs detection. The brand
// marker is cleared whenever the current value matches no rule.
func (f *CardNumberField) SetNumber(number string) {
	if field := f.doc.Field(f.name); field != nil {
		field.Value = number
	}
	f.brand = DetectBrand(number)
}

// Brand returns the currently detected brand, or "".
func (f *CardNumberField) Brand() string {
	return f.brand
}

// MarkerClass returns the CSS marker for the detected brand, or "" when no
// brand is detected.
func (f *CardNumberField) MarkerClass() string {
	if f.brand == "" {
		return ""
	}
	return "card-type-" + f.brand
}
