// internal/nlp/normalize_test.go
package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"support-chatbot/internal/common/logger"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Hello, World!",
			expected: "hello world",
		},
		{
			name:     "collapses whitespace runs",
			input:    "  too   many\t\tspaces \n here ",
			expected: "too many spaces here",
		},
		{
			name:     "keeps digits",
			input:    "order #12345 pending",
			expected: "order 12345 pending",
		},
		{
			name:     "punctuation only",
			input:    "?!...",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.expected, got)

			// Normalizing twice never changes the result further.
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("is"))
	assert.False(t, IsStopword("password"))
	assert.False(t, IsStopword(""))
}

func TestTokenizerDropsStopwords(t *testing.T) {
	tok := NewTokenizer(logger.NewNoOpLogger())

	tokens := tok.Tokenize(Normalize("I need help with the password"))

	assert.NotContains(t, tokens, "i")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "with")
	assert.Contains(t, tokens, "help")
	assert.Contains(t, tokens, "password")
}

func TestTokenizerEmptyInput(t *testing.T) {
	tok := NewTokenizer(logger.NewNoOpLogger())

	assert.Empty(t, tok.Tokenize(""))
}

func TestTokenizerWithoutLemmatizer(t *testing.T) {
	tok := &Tokenizer{}

	assert.False(t, tok.Available())
	assert.Equal(t, []string{"password", "reset"}, tok.Tokenize("password reset"))
}
