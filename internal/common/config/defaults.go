// internal/common/config/defaults.go
package config

import "support-chatbot/internal/models"

// Built-in default data set. Used whenever a data file is absent so the
// engine can always start. Same shape as the JSON files, smaller content.

// DefaultIntents returns the built-in intent definitions. Slice order is
// the configuration iteration order used by the similarity tie-break.
func DefaultIntents() []models.IntentDefinition {
	return []models.IntentDefinition{
		{
			Name: "greeting",
			Patterns: []string{
				"hello", "hi", "hey", "good morning", "good afternoon",
				"good evening", "how are you", "how are u", "how r u",
				"how's it going", "whats up", "what's up", "how do you do",
				"greetings", "sup", "yo",
			},
			Responses: []string{"Hello! How can I help you today?"},
		},
		{
			Name: "goodbye",
			Patterns: []string{
				"bye", "goodbye", "see you", "see you later", "take care",
				"have a good day", "farewell",
			},
			Responses: []string{"Goodbye! Have a great day!"},
		},
		{
			Name: "help",
			Patterns: []string{
				"help", "support", "assistance", "what can you do",
				"how does this work", "i need help",
			},
			Responses: []string{"I'm here to help! I can answer questions, create support tickets, and assist with various tasks."},
		},
		{
			Name: "thanks",
			Patterns: []string{
				"thank you", "thanks", "appreciate it", "grateful",
				"thank you so much",
			},
			Responses: []string{"You're welcome! Is there anything else I can help you with?"},
		},
		{
			Name: "support_ticket",
			Patterns: []string{
				"create ticket", "support ticket", "issue", "problem",
				"bug report", "complaint", "technical issue",
			},
			Responses: []string{"I can help you create a support ticket. What's the issue you're experiencing?"},
		},
		{
			Name: "product_info",
			Patterns: []string{
				"product", "feature", "specification", "details",
				"what is", "tell me about", "information",
			},
			Responses: []string{"I'd be happy to provide product information. What specific details are you looking for?"},
		},
		{
			Name: "pricing",
			Patterns: []string{
				"price", "cost", "pricing", "how much", "fee",
				"subscription", "payment",
			},
			Responses: []string{"I can help you with pricing information. What product or service are you interested in?"},
		},
	}
}

// DefaultKnowledgeBase returns the built-in FAQ entries and product catalog.
func DefaultKnowledgeBase() models.KnowledgeBase {
	return models.KnowledgeBase{
		FAQs: []models.FAQEntry{
			{
				Question: "How do I reset my password?",
				Answer:   "To reset your password, go to the login page and click 'Forgot Password'. Enter your email address and follow the instructions sent to your email.",
				Keywords: []string{"password", "reset", "forgot", "login"},
				Category: "account",
			},
			{
				Question: "What are your business hours?",
				Answer:   "Our customer support is available Monday through Friday, 9 AM to 6 PM EST. For urgent issues, you can create a support ticket anytime.",
				Keywords: []string{"hours", "business", "support", "time", "available"},
				Category: "support",
			},
			{
				Question: "How do I contact customer support?",
				Answer:   "You can contact our customer support team by creating a support ticket through this chat, calling us at 1-800-SUPPORT, or emailing support@company.com.",
				Keywords: []string{"contact", "support", "help", "phone", "email"},
				Category: "support",
			},
			{
				Question: "What payment methods do you accept?",
				Answer:   "We accept all major credit cards (Visa, MasterCard, American Express), PayPal, and bank transfers for enterprise customers.",
				Keywords: []string{"payment", "credit card", "paypal", "money", "billing"},
				Category: "billing",
			},
			{
				Question: "How do I cancel my subscription?",
				Answer:   "To cancel your subscription, go to your account settings and click on 'Subscription Management'. You can cancel anytime, and you'll have access until the end of your current billing period.",
				Keywords: []string{"cancel", "subscription", "billing", "account"},
				Category: "billing",
			},
		},
		Products: []models.Product{
			{
				Name:        "Basic Plan",
				Description: "Perfect for individuals and small teams",
				Price:       "$9.99/month",
				Features:    []string{"Basic features", "Email support", "5GB storage"},
				Category:    "subscription",
			},
			{
				Name:        "Pro Plan",
				Description: "Advanced features for growing businesses",
				Price:       "$29.99/month",
				Features:    []string{"All Basic features", "Priority support", "50GB storage", "Advanced analytics"},
				Category:    "subscription",
			},
			{
				Name:        "Enterprise Plan",
				Description: "Custom solutions for large organizations",
				Price:       "Contact sales",
				Features:    []string{"All Pro features", "Dedicated support", "Unlimited storage", "Custom integrations"},
				Category:    "subscription",
			},
		},
		Categories: map[string]string{
			"account": "Account management and settings",
			"support": "Technical support and troubleshooting",
			"billing": "Payment, pricing, and subscription questions",
			"product": "Product features and capabilities",
			"general": "General inquiries and information",
		},
	}
}

// DefaultTemplates returns the built-in response template table.
func DefaultTemplates() map[string][]string {
	return map[string][]string{
		"greeting": {
			"Hello! 👋 How can I help you today?",
			"Hi there! Welcome to our customer support. What can I assist you with?",
			"Greetings! I'm here to help. What would you like to know?",
			"Welcome! How may I be of service to you today?",
		},
		"goodbye": {
			"Goodbye! Have a wonderful day! 👋",
			"Thank you for chatting with us. Take care!",
			"See you later! Feel free to return if you need more help.",
			"Have a great day! Don't hesitate to reach out if you need assistance.",
		},
		"thanks": {
			"You're welcome! 😊 Is there anything else I can help you with?",
			"My pleasure! Let me know if you need any further assistance.",
			"Happy to help! What else can I do for you?",
			"You're very welcome! Feel free to ask if you have more questions.",
		},
		"help": {
			"I'm here to help! I can assist you with:\n• Product information and pricing\n• Account management\n• Technical support\n• Creating support tickets\n\nWhat would you like to know?",
			"I can help you with various topics including product information, account issues, technical support, and more. What specific area do you need assistance with?",
			"I'm your virtual assistant! I can answer questions, provide information, and help you create support tickets. What can I help you with today?",
		},
		"fallback": {
			"I'm not sure I understand. Could you please rephrase that or ask me something else?",
			"I didn't quite catch that. Can you try asking in a different way?",
			"I'm still learning and that's a bit unclear to me. Could you try asking something else?",
			"I'm not sure how to respond to that. Can you ask me about our products, services, or if you need help with something specific?",
		},
		"escalation": {
			"I understand this is important. Let me connect you with a human agent who can better assist you.",
			"This seems like a complex issue that would be better handled by our support team. I'll create a ticket for you.",
			"I want to make sure you get the best possible help. Let me escalate this to our support team.",
		},
		"human_agent_handoff": {
			"Perfect! I'm connecting you with our support specialist now. They'll be with you in just a moment.",
		},
		"human_agent_intro": {
			"Hi there! I'm Sarah from the support team. I can see you've been chatting with our AI assistant. How can I help you today?",
		},
		"human_agent_continuation": {
			"I can see from the conversation that you're dealing with [issue]. Let me help you get this resolved.",
		},
		"unrelated_message": {
			"I'm not sure I understand what you're asking. Could you please rephrase that or ask me about our products, services, account help, or technical support?",
			"I didn't quite catch that. Can you try asking in a different way?",
			"I'm still learning and that's a bit unclear to me. Could you try asking something else?",
		},
		"unclear_intent": {
			"I want to make sure I help you correctly. Could you please be more specific about what you need help with? I can assist with product information, account issues, technical support, billing, or creating support tickets.",
		},
	}
}

// DefaultSuggestions returns the built-in per-intent follow-up suggestions.
// The "default" key is used for any intent not present in the table.
func DefaultSuggestions() map[string][]string {
	return map[string][]string{
		"greeting": {
			"Tell me about your products",
			"I need help with my account",
			"Create a support ticket",
			"What are your business hours?",
		},
		"help": {
			"Product information",
			"Account help",
			"Create support ticket",
			"Pricing information",
		},
		"support_ticket": {
			"Technical issue",
			"Billing problem",
			"Account access",
			"Feature request",
		},
		"product_info": {
			"Basic Plan details",
			"Pro Plan features",
			"Enterprise options",
			"Pricing information",
		},
		"pricing": {
			"Basic Plan pricing",
			"Pro Plan pricing",
			"Enterprise pricing",
			"Payment methods",
		},
		"default": {
			"How can I help you?",
			"Tell me about your services",
			"I need support",
			"Account information",
		},
	}
}
