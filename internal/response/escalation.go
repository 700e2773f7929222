package response

import (
	"strings"

	"support-chatbot/internal/models"
)

// Fixed keyword lists backing the escalation policy.
var (
	urgentWords       = []string{"urgent", "emergency", "critical", "broken", "down", "not working"}
	technicalKeywords = []string{"api", "integration", "configuration", "setup", "installation"}
	humanKeywords     = []string{"human", "person", "agent", "representative", "real person"}
)

// Escalation thresholds. Hard escalation overrides all response logic;
// the soft requires-human flag rides along with a normal response.
const (
	escalationCompoundThreshold    = -0.5
	requiresHumanCompoundThreshold = -0.7
	lowConfidenceThreshold         = 0.3
	repeatedMessageCount           = 3
)

// EscalationPolicy decides human handoff from raw text, sentiment and
// recent context. Stateless and safe for concurrent use.
type EscalationPolicy struct{}

// ShouldEscalate reports whether the conversation must be handed to a
// human, overriding normal response generation.
func (EscalationPolicy) ShouldEscalate(message string, sentiment models.Sentiment, context []models.ConversationTurn) bool {
	lower := strings.ToLower(message)
	for _, w := range urgentWords {
		if strings.Contains(lower, w) {
			return true
		}
	}

	if sentiment.Compound < escalationCompoundThreshold {
		return true
	}

	return repeatedUserMessage(context)
}

// repeatedUserMessage detects a frustrated user: the last three user-sent
// turns collapse to a single distinct message. Only evaluated once the
// window holds more than three entries.
func repeatedUserMessage(context []models.ConversationTurn) bool {
	if len(context) <= repeatedMessageCount {
		return false
	}

	var recent []string
	for i := len(context) - 1; i >= 0 && len(recent) < repeatedMessageCount; i-- {
		if context[i].Sender == models.SenderUser {
			recent = append(recent, context[i].Message)
		}
	}
	if len(recent) < repeatedMessageCount {
		return false
	}

	for _, msg := range recent[1:] {
		if msg != recent[0] {
			return false
		}
	}
	return true
}

// RequiresHuman computes the soft flag, independent of hard escalation.
func (EscalationPolicy) RequiresHuman(message string, confidence float64, sentiment models.Sentiment) bool {
	if confidence < lowConfidenceThreshold {
		return true
	}
	if sentiment.Compound < requiresHumanCompoundThreshold {
		return true
	}

	lower := strings.ToLower(message)
	for _, kw := range technicalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, kw := range humanKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
