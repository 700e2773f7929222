// internal/nlp/intent_test.go
package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"support-chatbot/internal/common/config"
	"support-chatbot/internal/common/logger"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return NewClassifier(config.DefaultIntents(), 1000, logger.NewNoOpLogger())
}

func TestClassifyOverrideLayers(t *testing.T) {
	classifier := newTestClassifier(t)

	tests := []struct {
		name       string
		message    string
		intent     string
		confidence float64
		path       string
	}{
		{
			name:       "exact greeting",
			message:    "hello",
			intent:     "greeting",
			confidence: 0.95,
			path:       PathExact,
		},
		{
			name:       "exact greeting ignores case and spacing",
			message:    "  HELLO  ",
			intent:     "greeting",
			confidence: 0.95,
			path:       PathExact,
		},
		{
			name:       "exact goodbye",
			message:    "bye",
			intent:     "goodbye",
			confidence: 0.95,
			path:       PathExact,
		},
		{
			name:       "exact thanks",
			message:    "thank you",
			intent:     "thanks",
			confidence: 0.95,
			path:       PathExact,
		},
		{
			name:       "greeting prefix",
			message:    "hi there, quick question",
			intent:     "greeting",
			confidence: 0.9,
			path:       PathPrefix,
		},
		{
			name:       "business hours phrase",
			message:    "what are your business hours",
			intent:     "business_hours",
			confidence: 0.9,
			path:       PathContain,
		},
		{
			name:       "password reset phrase",
			message:    "I need help with my password reset",
			intent:     "password_reset",
			confidence: 0.9,
			path:       PathContain,
		},
		{
			name:       "contact support phrase",
			message:    "please tell me the support email",
			intent:     "contact_support",
			confidence: 0.9,
			path:       PathContain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.message)
			assert.Equal(t, tt.intent, got.Intent)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.Equal(t, tt.path, got.Path)
		})
	}
}

func TestClassifyExactBeatsPrefix(t *testing.T) {
	classifier := newTestClassifier(t)

	// "hey" is both an exact greeting and a greeting prefix; the exact
	// layer runs first.
	got := classifier.Classify("hey")
	assert.Equal(t, PathExact, got.Path)
	assert.Equal(t, 0.95, got.Confidence)
}

func TestClassifySimilarityUnknownMessage(t *testing.T) {
	classifier := newTestClassifier(t)
	assert.True(t, classifier.SimilarityAvailable())

	// Nothing in the vocabulary matches, so the best score stays zero and
	// the verdict degrades to "general".
	got := classifier.Classify("zebra quantum flux capacitor")
	assert.Equal(t, "general", got.Intent)
	assert.Equal(t, 0.0, got.Confidence)
	assert.Equal(t, PathSimilarity, got.Path)
}

func TestClassifySimilarityBoostCap(t *testing.T) {
	classifier := newTestClassifier(t)

	// "farewell friend" avoids the exact layer but matches the goodbye
	// pattern "farewell" strongly; the conversational boost applies and
	// caps at 0.9.
	got := classifier.Classify("farewell friend")
	if got.Path == PathSimilarity {
		assert.Equal(t, "goodbye", got.Intent)
		assert.LessOrEqual(t, got.Confidence, 0.9)
		assert.Greater(t, got.Confidence, 0.6)
	}
}

func TestClassifyKeywordFallback(t *testing.T) {
	classifier := &Classifier{
		intents: config.DefaultIntents(),
		rules:   buildOverrideRules(),
		logger:  logger.NewNoOpLogger(),
	}
	assert.False(t, classifier.SimilarityAvailable())

	tests := []struct {
		name       string
		message    string
		intent     string
		confidence float64
	}{
		{"ticket keyword", "there is a problem with my account", "support_ticket", 0.8},
		{"pricing keyword", "the cost seems wrong", "pricing", 0.8},
		{"no keyword", "zebra quantum flux", "general", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.message)
			assert.Equal(t, tt.intent, got.Intent)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.Equal(t, PathKeyword, got.Path)
		})
	}
}
