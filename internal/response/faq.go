// Package response implements the response-selection half of the engine:
// FAQ matching, escalation policy, template selection and the dialogue
// manager that ties them together.
package response

import (
	"strings"

	"support-chatbot/internal/common/metrics"
	"support-chatbot/internal/models"
)

// DefaultFAQThreshold is the minimum score for returning an answer.
// The scoring constants below are empirically tuned, not principled;
// they exist specifically to keep greetings and generic chatter from
// matching specific FAQ answers. Treat them as tunable parameters, but
// changing any of them changes matching behavior.
const DefaultFAQThreshold = 2.0

const (
	keywordHitWeight    = 2.0
	anyKeywordBonus     = 1.0
	domainBoostWeight   = 4.0
	shortMessagePenalty = 1.0
	greetingPenalty     = 5.0
)

// domainBoosts pair a marker inside the FAQ question with message words
// that strongly indicate the entry's topic.
var domainBoosts = []struct {
	questionMarker string
	messageWords   []string
}{
	{"business hours", []string{"hours", "business", "time", "when", "open"}},
	{"password", []string{"password", "reset", "forgot", "login"}},
	{"contact", []string{"contact", "support", "help", "phone", "email"}},
	{"payment", []string{"payment", "credit card", "paypal", "money", "billing"}},
}

// faqGreetingWords feed the anti-collision penalty that keeps greetings
// away from the password FAQ.
var faqGreetingWords = []string{"hello", "hi", "hey", "how are you", "how r u", "whats up"}

// intentFAQKeywords maps the dedicated FAQ intents to the keywords used
// to locate their entry.
var intentFAQKeywords = map[string][]string{
	"business_hours":  {"business hours", "hours", "time", "available"},
	"password_reset":  {"password", "reset", "forgot", "login"},
	"contact_support": {"contact", "support", "phone", "email"},
}

// FAQMatcher scores messages against the knowledge base with weighted
// rules. Entries keep insertion order; score ties resolve first-seen.
type FAQMatcher struct {
	faqs      []models.FAQEntry
	threshold float64
}

func NewFAQMatcher(faqs []models.FAQEntry, threshold float64) *FAQMatcher {
	if threshold == 0 {
		threshold = DefaultFAQThreshold
	}
	return &FAQMatcher{faqs: faqs, threshold: threshold}
}

// Match returns the best-scoring entry's answer when the best score
// reaches the threshold. The threshold is both necessary and sufficient.
func (m *FAQMatcher) Match(message string) (string, bool) {
	messageLower := strings.ToLower(message)

	bestScore := 0.0
	bestAnswer := ""
	for _, faq := range m.faqs {
		if score := m.score(faq, messageLower); score > bestScore {
			bestScore = score
			bestAnswer = faq.Answer
		}
	}

	if bestScore >= m.threshold {
		metrics.FAQMatches.WithLabelValues("match").Inc()
		return bestAnswer, true
	}
	metrics.FAQMatches.WithLabelValues("no_match").Inc()
	return "", false
}

func (m *FAQMatcher) score(faq models.FAQEntry, messageLower string) float64 {
	questionLower := strings.ToLower(faq.Question)

	score := 0.0
	anyKeyword := false
	for _, kw := range faq.Keywords {
		if strings.Contains(messageLower, strings.ToLower(kw)) {
			score += keywordHitWeight
			anyKeyword = true
		}
	}
	if anyKeyword {
		score += anyKeywordBonus
	}

	// Unordered word overlap between question and message, counted only
	// when at least two words are shared.
	common := commonWordCount(questionLower, messageLower)
	if common >= 2 {
		score += float64(common)
	}

	for _, boost := range domainBoosts {
		if !strings.Contains(questionLower, boost.questionMarker) {
			continue
		}
		for _, w := range boost.messageWords {
			if strings.Contains(messageLower, w) {
				score += domainBoostWeight
				break
			}
		}
	}

	if len(strings.Fields(messageLower)) < 3 && len(strings.Fields(questionLower)) > 5 {
		score -= shortMessagePenalty
	}

	// Hard anti-collision rule: greetings must never match the password FAQ.
	if strings.Contains(questionLower, "password") {
		for _, w := range faqGreetingWords {
			if strings.Contains(messageLower, w) {
				score -= greetingPenalty
				break
			}
		}
	}

	return score
}

func commonWordCount(a, b string) int {
	aWords := make(map[string]struct{})
	for _, w := range strings.Fields(a) {
		aWords[w] = struct{}{}
	}
	seen := make(map[string]struct{})
	count := 0
	for _, w := range strings.Fields(b) {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := aWords[w]; ok {
			count++
		}
	}
	return count
}

// MatchForIntent looks up the FAQ entry backing one of the dedicated FAQ
// intents by its keyword set.
func (m *FAQMatcher) MatchForIntent(intent string) (string, bool) {
	targetKeywords, ok := intentFAQKeywords[intent]
	if !ok {
		return "", false
	}

	for _, faq := range m.faqs {
		questionLower := strings.ToLower(faq.Question)
		for _, target := range targetKeywords {
			if strings.Contains(questionLower, target) {
				return faq.Answer, true
			}
			for _, kw := range faq.Keywords {
				if strings.EqualFold(kw, target) {
					return faq.Answer, true
				}
			}
		}
	}
	return "", false
}
