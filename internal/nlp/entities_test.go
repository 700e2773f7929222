// internal/nlp/entities_test.go
package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string][]string
	}{
		{
			name:  "email and phone only",
			input: "contact me at john.doe@example.com or 555-123-4567",
			expected: map[string][]string{
				"email": {"john.doe@example.com"},
				"phone": {"555-123-4567"},
			},
		},
		{
			name:  "url",
			input: "see https://example.com/docs for details",
			expected: map[string][]string{
				"url": {"https://example.com/docs"},
			},
		},
		{
			name:  "date and time",
			input: "my order from 12/05/2024 arrives at 3:30 PM",
			expected: map[string][]string{
				"date": {"12/05/2024"},
				"time": {"3:30 PM"},
			},
		},
		{
			name:  "currency and percentage",
			input: "it costs $49.99 with a 15% discount",
			expected: map[string][]string{
				"currency":   {"$49.99"},
				"percentage": {"15%"},
			},
		},
		{
			name:  "standalone number",
			input: "my order number is 12345.",
			expected: map[string][]string{
				"number": {"12345"},
			},
		},
		{
			name:  "multiple emails",
			input: "cc a@example.com and b@example.org",
			expected: map[string][]string{
				"email": {"a@example.com", "b@example.org"},
			},
		},
		{
			name:     "no entities",
			input:    "hello there",
			expected: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEntities(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractEntitiesIdempotent(t *testing.T) {
	input := "refund $20.00 to jane@example.com by 01/01/2025"

	first := ExtractEntities(input)
	second := ExtractEntities(input)

	assert.Equal(t, first, second)
}

func TestExtractNumbersIgnoresDecoratedDigits(t *testing.T) {
	// Digit runs inside phone numbers, prices and percentages belong to
	// their own entity types.
	got := ExtractEntities("call 555-123-4567 about the $100 invoice, 20% is due in 30 days")

	assert.Equal(t, []string{"30"}, got["number"])
}
