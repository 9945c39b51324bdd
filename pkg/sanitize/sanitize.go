// Package sanitize normalizes untrusted form input before it is validated or
// forwarded to the payment service.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// TextField strips markup and control characters from a single-line text
// value and collapses runs of whitespace into single spaces.
func TextField(value string) string {
	// Drop anything that looks like a tag, then any stray angle brackets
	value = tagPattern.ReplaceAllString(value, "")
	value = strings.NewReplacer("<", "", ">", "").Replace(value)

	var b strings.Builder
	b.Grow(len(value))

	lastWasSpace := false
	for _, r := range value {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			if !lastWasSpace && b.Len() > 0 {
				b.WriteByte(' ')
				lastWasSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}

	return strings.TrimRight(b.String(), " ")
}
