package models

// IntentDefinition describes one configurable intent: the example phrases
// the similarity index is fitted on, and the canned responses for it.
// Loaded once at startup and immutable afterwards.
type IntentDefinition struct {
	Name      string   `json:"name"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// FAQEntry is one knowledge-base entry. Order inside the knowledge base is
// insertion order; ties in matching are resolved first-seen.
type FAQEntry struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category"`
}

// Product describes one catalog item used by product and pricing responses.
type Product struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Category    string   `json:"category"`
}

// KnowledgeBase bundles the FAQ entries and the product catalog.
type KnowledgeBase struct {
	FAQs       []FAQEntry        `json:"faqs"`
	Products   []Product         `json:"products"`
	Categories map[string]string `json:"categories,omitempty"`
}
