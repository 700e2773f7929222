package response

import (
	"fmt"
	"strings"
	"time"

	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/common/metrics"
	"support-chatbot/internal/models"
)

// Intents answered straight from the template table.
var templateIntents = map[string]struct{}{
	"greeting":          {},
	"goodbye":           {},
	"thanks":            {},
	"help":              {},
	"account_help":      {},
	"technical_support": {},
	"billing_help":      {},
}

// Recovery word lists for messages the classifier filed under "general"
// even though they are plainly conversational.
var (
	recoveryGreetingWords = []string{"hello", "hi", "hey", "how are you", "how r u", "how's it going", "whats up"}
	recoveryGoodbyeWords  = []string{"bye", "goodbye", "see you", "take care", "farewell"}
	recoveryThanksWords   = []string{"thank", "thanks", "appreciate", "grateful"}
)

// issueKeywords let the human-agent introduction name the user's topic.
var issueKeywords = []struct {
	keyword string
	issue   string
}{
	{"password", "a password reset issue"},
	{"billing", "a billing concern"},
	{"technical", "a technical problem"},
	{"account", "an account issue"},
	{"payment", "a payment problem"},
	{"subscription", "a subscription matter"},
	{"support", "a support request"},
}

// generalFAQConfidence guards the general FAQ path: a low-confidence
// classification must not borrow authority from a lucky FAQ hit.
const generalFAQConfidence = 0.7

// Manager is the dialogue manager: given the NLP analysis, the context
// window and the per-user state it selects the final response, follow-up
// suggestions and the requires-human flag.
type Manager struct {
	catalog     []models.Product
	faq         *FAQMatcher
	templates   *TemplateSet
	suggestions SuggestionTable
	policy      EscalationPolicy
	logger      logger.Logger
}

func NewManager(kb models.KnowledgeBase, templates map[string][]string, suggestions map[string][]string, faqThreshold float64, selector Selector, log logger.Logger) *Manager {
	return &Manager{
		catalog:     kb.Products,
		faq:         NewFAQMatcher(kb.FAQs, faqThreshold),
		templates:   NewTemplateSet(templates, selector),
		suggestions: SuggestionTable(suggestions),
		logger:      log.WithFields(map[string]interface{}{"component": "dialogue-manager"}),
	}
}

// FAQ exposes the matcher for callers that only need lookup.
func (m *Manager) FAQ() *FAQMatcher {
	return m.faq
}

// Respond decides the reply for one analyzed message. Hard escalation is
// checked first and skips all other response logic; the soft
// requires-human flag is recomputed independently afterwards. When state
// is non-nil it is updated in place; serializing that mutation per user
// is the caller's responsibility.
func (m *Manager) Respond(analysis models.Analysis, context []models.ConversationTurn, state *models.ConversationState, now time.Time) models.Reply {
	message := analysis.OriginalText
	intent := analysis.Intent

	var text string
	escalated := m.policy.ShouldEscalate(message, analysis.Sentiment, context)
	if escalated {
		metrics.Escalations.Inc()
		text = m.escalationResponse()
	} else {
		text = m.dispatch(intent, analysis)
	}

	reply := models.Reply{
		Response:      text,
		Confidence:    analysis.Confidence,
		Intent:        intent,
		Suggestions:   m.suggestions.For(intent),
		RequiresHuman: m.policy.RequiresHuman(message, analysis.Confidence, analysis.Sentiment),
		Escalated:     escalated,
		Entities:      analysis.Entities,
		Sentiment:     analysis.Sentiment,
	}

	if state != nil {
		state.Touch(intent, now)
	}

	return reply
}

func (m *Manager) dispatch(intent string, analysis models.Analysis) string {
	message := analysis.OriginalText

	if _, ok := templateIntents[intent]; ok {
		return m.templates.Pick(intent)
	}

	switch intent {
	case "support_ticket":
		return m.supportTicketResponse(message)
	case "product_info":
		return m.productInfoResponse(message)
	case "pricing":
		return m.pricingResponse()
	case "business_hours", "password_reset", "contact_support":
		if answer, ok := m.faq.MatchForIntent(intent); ok {
			return answer
		}
		return m.templates.Pick("fallback")
	}

	// General or unrecognized intent: a FAQ hit is only trusted when the
	// classifier itself was confident.
	if answer, ok := m.faq.Match(message); ok && analysis.Confidence > generalFAQConfidence {
		return answer
	}
	return m.unrelatedResponse(message, analysis.Confidence)
}

// unrelatedResponse recovers conversational messages the classifier
// missed, then grades the rest by confidence.
func (m *Manager) unrelatedResponse(message string, confidence float64) string {
	lower := strings.ToLower(message)

	for _, w := range recoveryGreetingWords {
		if strings.Contains(lower, w) {
			return m.templates.Pick("greeting")
		}
	}
	for _, w := range recoveryGoodbyeWords {
		if strings.Contains(lower, w) {
			return m.templates.Pick("goodbye")
		}
	}
	for _, w := range recoveryThanksWords {
		if strings.Contains(lower, w) {
			return m.templates.Pick("thanks")
		}
	}

	if confidence < lowConfidenceThreshold {
		return m.templates.Pick("unrelated_message")
	}
	return m.templates.Pick("unclear_intent")
}

func (m *Manager) escalationResponse() string {
	response := m.templates.Pick("escalation")
	response += "\n\n" + m.templates.Pick("human_agent_handoff")
	response += "\n\nI've created a support ticket for you. A human agent will contact you shortly."
	return response
}

func (m *Manager) supportTicketResponse(message string) string {
	response := "I can help you create a support ticket. "
	// More than just "create ticket" means the user already described it.
	if len(strings.Fields(message)) > 5 {
		response += "I've noted your issue. Let me create a ticket for you."
	} else {
		response += "Please describe the issue you're experiencing, and I'll create a ticket for you."
	}
	return response
}

func (m *Manager) productInfoResponse(message string) string {
	if len(m.catalog) == 0 {
		return "I'd be happy to provide product information. What specific details are you looking for?"
	}

	messageLower := strings.ToLower(message)
	for _, product := range m.catalog {
		if strings.Contains(messageLower, strings.ToLower(product.Name)) {
			return formatProduct(product)
		}
	}

	var b strings.Builder
	b.WriteString("Here are our available products:\n\n")
	for _, product := range m.catalog {
		fmt.Fprintf(&b, "• **%s** - %s (%s)\n", product.Name, product.Description, product.Price)
	}
	b.WriteString("\nWhich product would you like to know more about?")
	return b.String()
}

func formatProduct(product models.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n%s\nPrice: %s\n\n", product.Name, product.Description, product.Price)
	b.WriteString("**Features:**\n")
	for _, feature := range product.Features {
		fmt.Fprintf(&b, "• %s\n", feature)
	}
	return b.String()
}

func (m *Manager) pricingResponse() string {
	if len(m.catalog) == 0 {
		return "I can help you with pricing information. What product or service are you interested in?"
	}

	var b strings.Builder
	b.WriteString("Here are our current pricing options:\n\n")
	for _, product := range m.catalog {
		fmt.Fprintf(&b, "• **%s**: %s\n  %s\n\n", product.Name, product.Price, product.Description)
	}
	b.WriteString("Would you like more details about any specific plan?")
	return b.String()
}

// HumanAgentIntro produces the introduction shown when a human agent
// takes over, naming the user's issue when the recent context hints at it.
func (m *Manager) HumanAgentIntro(context []models.ConversationTurn) string {
	intro := m.templates.Pick("human_agent_intro")

	if len(context) == 0 {
		return intro
	}

	issue := "this issue"
	var recent []string
	for i := len(context) - 1; i >= 0 && len(recent) < 3; i-- {
		if context[i].Sender == models.SenderUser {
			recent = append(recent, strings.ToLower(context[i].Message))
		}
	}
	for _, row := range issueKeywords {
		found := false
		for _, msg := range recent {
			if strings.Contains(msg, row.keyword) {
				found = true
				break
			}
		}
		if found {
			issue = row.issue
			break
		}
	}

	continuation := strings.ReplaceAll(m.templates.Pick("human_agent_continuation"), "[issue]", issue)
	return intro + "\n\n" + continuation
}
