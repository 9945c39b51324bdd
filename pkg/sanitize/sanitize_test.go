package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Jane Donor",
			expected: "Jane Donor",
		},
		{
			name:     "strips markup",
			input:    `<script>alert("x")</script>Jane`,
			expected: `alert("x")Jane`,
		},
		{
			name:     "strips stray angle brackets",
			input:    "price < 100",
			expected: "price 100",
		},
		{
			name:     "collapses whitespace and control chars",
			input:    "Jane\t\n  Donor\x00",
			expected: "Jane Donor",
		},
		{
			name:     "trims leading and trailing whitespace",
			input:    "   jane@example.org  ",
			expected: "jane@example.org",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TextField(tt.input))
		})
	}
}
