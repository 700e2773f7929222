package response

// maxSuggestions caps follow-up suggestions per reply.
const maxSuggestions = 3

// SuggestionTable maps intents to candidate follow-up suggestions. The
// "default" key serves intents without their own row.
type SuggestionTable map[string][]string

// For returns at most three suggestions for the intent.
func (t SuggestionTable) For(intent string) []string {
	suggestions, ok := t[intent]
	if !ok {
		suggestions = t["default"]
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
