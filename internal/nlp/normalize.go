// Package nlp implements the text-understanding half of the engine:
// normalization, tokenization, entity extraction, sentiment scoring and
// intent classification.
package nlp

import (
	"regexp"
	"strings"

	golem "github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"support-chatbot/internal/common/logger"
)

var (
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize lowercases the text, replaces everything outside [a-z0-9\s]
// with a space, collapses whitespace runs and trims. Total and idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonAlnumPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// englishStopwords is the fixed stopword set used by tokenization and the
// similarity vocabulary.
var englishStopwords = buildStopwordSet([]string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could", "did",
	"do", "does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "itself", "just", "me", "more", "most", "my", "myself",
	"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "ourselves", "out", "over", "own", "same",
	"she", "should", "so", "some", "such", "than", "that", "the", "their",
	"theirs", "them", "themselves", "then", "there", "these", "they",
	"this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "will", "with", "you", "your", "yours",
	"yourself", "yourselves",
})

func buildStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether a token belongs to the fixed stopword set.
func IsStopword(token string) bool {
	_, ok := englishStopwords[token]
	return ok
}

// Tokenizer splits normalized text into tokens, reduces each to its base
// form and drops stopwords. When the lemma dictionary cannot be loaded the
// tokenizer degrades to identity lemmatization; it never fails.
type Tokenizer struct {
	lemmatizer *golem.Lemmatizer
}

func NewTokenizer(log logger.Logger) *Tokenizer {
	lem, err := golem.New(en.New())
	if err != nil {
		log.Warn("lemma dictionary unavailable, tokens pass through unchanged", map[string]interface{}{
			"error": err.Error(),
		})
		lem = nil
	}
	return &Tokenizer{lemmatizer: lem}
}

// Tokenize expects already-normalized text. The output is informational;
// classification decisions never depend on it.
func (t *Tokenizer) Tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}

	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		tok = t.lemma(tok)
		if IsStopword(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func (t *Tokenizer) lemma(token string) string {
	if t.lemmatizer == nil {
		return token
	}
	return t.lemmatizer.Lemma(token)
}

// Available reports whether the lemmatization resource loaded.
func (t *Tokenizer) Available() bool {
	return t.lemmatizer != nil
}
