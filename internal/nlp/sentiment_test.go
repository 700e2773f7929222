// internal/nlp/sentiment_test.go
package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"support-chatbot/internal/models"
)

func TestFallbackSentimentFixedVectors(t *testing.T) {
	scorer := NewFallbackSentimentScorer()

	tests := []struct {
		name     string
		input    string
		expected models.Sentiment
	}{
		{
			name:     "positive outweighs negative",
			input:    "this is a great and wonderful product",
			expected: models.Sentiment{Compound: 0.5, Positive: 0.5, Neutral: 0.3, Negative: 0.2},
		},
		{
			name:     "negative outweighs positive",
			input:    "this is terrible and awful",
			expected: models.Sentiment{Compound: -0.5, Positive: 0.2, Neutral: 0.3, Negative: 0.5},
		},
		{
			name:     "no sentiment words",
			input:    "where is my order",
			expected: models.Sentiment{Compound: 0.0, Positive: 0.3, Neutral: 0.4, Negative: 0.3},
		},
		{
			name:     "tie counts as neutral",
			input:    "good but also bad",
			expected: models.Sentiment{Compound: 0.0, Positive: 0.3, Neutral: 0.4, Negative: 0.3},
		},
		{
			name:     "empty input",
			input:    "",
			expected: models.Sentiment{Compound: 0.0, Positive: 0.3, Neutral: 0.4, Negative: 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scorer.Score(tt.input))
		})
	}
}

func TestLexiconSentimentDirection(t *testing.T) {
	scorer := NewSentimentScorer()

	positive := scorer.Score("I love this, it works great!")
	negative := scorer.Score("This is horrible, I hate it.")

	assert.Greater(t, positive.Compound, 0.0)
	assert.Less(t, negative.Compound, 0.0)
	assert.Greater(t, positive.Compound, negative.Compound)
}
