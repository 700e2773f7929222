package nlp

import (
	"math"
	"strings"

	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/common/metrics"
	"support-chatbot/internal/models"
)

// Classification paths, reported to metrics so the layer distribution is
// observable.
const (
	PathExact      = "exact"
	PathPrefix     = "prefix"
	PathContain    = "contain"
	PathSimilarity = "similarity"
	PathKeyword    = "keyword"
)

// Fixed phrase sets for the override layers. Evaluation order is the
// order of the rules slice below; first hit wins.
var (
	exactGreetings = []string{
		"hello", "hi", "hey", "how are you", "how are u", "how r u",
		"how's it going", "whats up", "what's up", "how do you do",
		"greetings", "sup", "yo", "good morning", "good afternoon", "good evening",
	}
	exactGoodbyes = []string{"bye", "goodbye", "see you", "take care", "farewell"}
	exactThanks   = []string{"thank you", "thanks", "thank", "appreciate it", "grateful"}

	greetingStarts = []string{"hello", "hi", "hey", "how", "whats", "what's", "sup", "yo"}

	businessHoursPhrases = []string{"business hours", "hours", "when are you open", "what time", "operating hours"}
	passwordPhrases      = []string{"password reset", "forgot password", "reset password", "change password"}
	contactPhrases       = []string{"contact support", "how to contact", "support phone", "support email"}
)

// fallbackKeywords is the keyword table for the last-resort layer, scanned
// in this fixed order.
var fallbackKeywords = []struct {
	intent   string
	keywords []string
}{
	{"greeting", []string{
		"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
		"how are you", "how are u", "how r u", "how's it going", "whats up", "what's up",
		"how do you do", "greetings", "sup", "yo",
	}},
	{"goodbye", []string{"bye", "goodbye", "see you", "take care"}},
	{"help", []string{"help", "support", "assistance"}},
	{"thanks", []string{"thank", "thanks", "appreciate"}},
	{"support_ticket", []string{"ticket", "issue", "problem", "bug", "complaint"}},
	{"product_info", []string{"product", "feature", "specification"}},
	{"pricing", []string{"price", "cost", "how much", "pricing"}},
}

// Classification is one classifier verdict. Confidence calibration differs
// per path and results from different paths are never mixed.
type Classification struct {
	Intent     string
	Confidence float64
	Path       string
}

// overrideRule is one deterministic layer of the classifier. Keeping the
// layers as an ordered rule list keeps the priority order auditable and
// testable in isolation.
type overrideRule struct {
	name  string
	apply func(trimmed string) (Classification, bool)
}

// Classifier assigns an intent and confidence to a message through layered
// decision: deterministic overrides, then vector similarity across all
// configured intents, then keyword matching when vectorization is
// unavailable. Fitted once at construction; safe for concurrent use.
type Classifier struct {
	intents     []models.IntentDefinition
	vectorizer  *Vectorizer
	patternVecs [][][]float64
	rules       []overrideRule
	logger      logger.Logger
}

func NewClassifier(intents []models.IntentDefinition, vocabularySize int, log logger.Logger) *Classifier {
	c := &Classifier{
		intents: intents,
		logger:  log.WithFields(map[string]interface{}{"component": "intent-classifier"}),
	}
	c.rules = buildOverrideRules()
	c.fitVectorizer(vocabularySize)
	return c
}

func buildOverrideRules() []overrideRule {
	return []overrideRule{
		{"exact-greeting", exactRule(exactGreetings, "greeting")},
		{"exact-goodbye", exactRule(exactGoodbyes, "goodbye")},
		{"exact-thanks", exactRule(exactThanks, "thanks")},
		{"greeting-prefix", prefixRule(greetingStarts, "greeting")},
		{"contains-business-hours", containsRule(businessHoursPhrases, "business_hours")},
		{"contains-password-reset", containsRule(passwordPhrases, "password_reset")},
		{"contains-contact-support", containsRule(contactPhrases, "contact_support")},
	}
}

func exactRule(phrases []string, intent string) func(string) (Classification, bool) {
	return func(trimmed string) (Classification, bool) {
		for _, p := range phrases {
			if trimmed == p {
				return Classification{Intent: intent, Confidence: 0.95, Path: PathExact}, true
			}
		}
		return Classification{}, false
	}
}

func prefixRule(starts []string, intent string) func(string) (Classification, bool) {
	return func(trimmed string) (Classification, bool) {
		for _, s := range starts {
			if strings.HasPrefix(trimmed, s) {
				return Classification{Intent: intent, Confidence: 0.9, Path: PathPrefix}, true
			}
		}
		return Classification{}, false
	}
}

func containsRule(phrases []string, intent string) func(string) (Classification, bool) {
	return func(trimmed string) (Classification, bool) {
		for _, p := range phrases {
			if strings.Contains(trimmed, p) {
				return Classification{Intent: intent, Confidence: 0.9, Path: PathContain}, true
			}
		}
		return Classification{}, false
	}
}

// fitVectorizer fits the similarity index over the union of every intent's
// example phrases and precomputes the pattern vectors. On failure the
// classifier degrades to the keyword layer.
func (c *Classifier) fitVectorizer(vocabularySize int) {
	corpus := make([]string, 0, 64)
	for _, intent := range c.intents {
		corpus = append(corpus, intent.Patterns...)
	}

	vectorizer := NewVectorizer(vocabularySize)
	if err := vectorizer.Fit(corpus); err != nil {
		c.logger.Warn("similarity index unavailable, keyword fallback active", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	c.patternVecs = make([][][]float64, len(c.intents))
	for i, intent := range c.intents {
		vecs := make([][]float64, 0, len(intent.Patterns))
		for _, p := range intent.Patterns {
			vec, err := vectorizer.Transform(p)
			if err != nil {
				continue
			}
			vecs = append(vecs, vec)
		}
		c.patternVecs[i] = vecs
	}
	c.vectorizer = vectorizer

	c.logger.Info("similarity index fitted", map[string]interface{}{
		"intents":    len(c.intents),
		"vocabulary": vectorizer.VocabularySize(),
	})
}

// Classify runs the layers in priority order and returns the first hit.
func (c *Classifier) Classify(message string) Classification {
	trimmed := strings.TrimSpace(strings.ToLower(message))

	for _, rule := range c.rules {
		if result, ok := rule.apply(trimmed); ok {
			metrics.ClassificationPathHits.WithLabelValues(result.Path).Inc()
			return result
		}
	}

	result, err := c.classifyBySimilarity(message)
	if err != nil {
		result = c.classifyByKeywords(trimmed)
	}
	metrics.ClassificationPathHits.WithLabelValues(result.Path).Inc()
	return result
}

// classifyBySimilarity scores the message against every intent's example
// phrases and keeps the best. The first intent in configuration order
// reaching the maximum wins ties. An unfitted vectorizer is an explicit
// error, not a silent "general" verdict.
func (c *Classifier) classifyBySimilarity(message string) (Classification, error) {
	if c.vectorizer == nil {
		return Classification{}, ErrNotFitted
	}

	messageVec, err := c.vectorizer.Transform(Normalize(message))
	if err != nil {
		return Classification{}, err
	}

	bestIntent := "general"
	bestScore := 0.0

	for i, intent := range c.intents {
		maxSim := 0.0
		for _, patternVec := range c.patternVecs[i] {
			if sim := CosineSimilarity(messageVec, patternVec); sim > maxSim {
				maxSim = sim
			}
		}
		if maxSim > bestScore {
			bestScore = maxSim
			bestIntent = intent.Name
		}
	}

	// Conversational intents get a confidence boost on a reasonable match.
	switch bestIntent {
	case "greeting", "goodbye", "thanks":
		if bestScore > 0.3 {
			bestScore = math.Min(0.9, bestScore+0.3)
		}
	}

	return Classification{Intent: bestIntent, Confidence: bestScore, Path: PathSimilarity}, nil
}

// classifyByKeywords is the last-resort layer when vectorization is
// unavailable.
func (c *Classifier) classifyByKeywords(trimmed string) Classification {
	for _, row := range fallbackKeywords {
		for _, kw := range row.keywords {
			if strings.Contains(trimmed, kw) {
				return Classification{Intent: row.intent, Confidence: 0.8, Path: PathKeyword}
			}
		}
	}
	return Classification{Intent: "general", Confidence: 0.5, Path: PathKeyword}
}

// SimilarityAvailable reports whether the vector path is active.
func (c *Classifier) SimilarityAvailable() bool {
	return c.vectorizer != nil
}

// Intents returns the configured intent definitions.
func (c *Classifier) Intents() []models.IntentDefinition {
	return c.intents
}
