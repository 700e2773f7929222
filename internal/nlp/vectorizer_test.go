// internal/nlp/vectorizer_test.go
package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorizerTransformBeforeFit(t *testing.T) {
	v := NewVectorizer(100)

	_, err := v.Transform("hello world")

	assert.ErrorIs(t, err, ErrNotFitted)
	assert.False(t, v.Fitted())
}

func TestVectorizerFitEmptyCorpus(t *testing.T) {
	v := NewVectorizer(100)

	assert.ErrorIs(t, v.Fit(nil), ErrEmptyCorpus)
	assert.ErrorIs(t, v.Fit([]string{"", "   "}), ErrEmptyCorpus)
}

func TestVectorizerSimilarity(t *testing.T) {
	v := NewVectorizer(100)
	corpus := []string{
		"reset my password",
		"forgot my password",
		"track my order status",
		"cancel my order",
	}
	assert.NoError(t, v.Fit(corpus))
	assert.True(t, v.Fitted())

	passwordVec, err := v.Transform("reset my password")
	assert.NoError(t, err)
	orderVec, err := v.Transform("track my order status")
	assert.NoError(t, err)

	// Identical text is maximally similar to itself.
	assert.InDelta(t, 1.0, CosineSimilarity(passwordVec, passwordVec), 1e-9)

	// A password query is closer to the password documents than to the
	// order documents.
	queryVec, err := v.Transform("forgot my password")
	assert.NoError(t, err)
	assert.Greater(t,
		CosineSimilarity(queryVec, passwordVec),
		CosineSimilarity(queryVec, orderVec),
	)
}

func TestVectorizerUnknownTextIsZeroVector(t *testing.T) {
	v := NewVectorizer(100)
	assert.NoError(t, v.Fit([]string{"reset my password", "track my order"}))

	vec, err := v.Transform("zebra quantum flux")
	assert.NoError(t, err)

	for _, value := range vec {
		assert.Zero(t, value)
	}
	assert.Zero(t, CosineSimilarity(vec, vec))
}

func TestVectorizerVocabularyCap(t *testing.T) {
	v := NewVectorizer(3)
	assert.NoError(t, v.Fit([]string{
		"alpha beta gamma delta",
		"alpha beta gamma",
		"alpha beta",
	}))

	assert.Equal(t, 3, v.VocabularySize())
}
