package nlp

import (
	"regexp"
	"strings"
)

// entityPatterns is the fixed set of entity types. The slice keeps a
// deterministic scan order, though no type's matches affect another's.
var entityPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"email", regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{"phone", regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)},
	{"url", regexp.MustCompile(`(?i)https?://(?:[-\w.])+(?:[:\d]+)?(?:/(?:[\w/_.])*(?:\?(?:[\w&=%.])*)?(?:#(?:[\w.])*)?)?`)},
	{"date", regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)},
	{"time", regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:AM|PM)?\b`)},
	{"currency", regexp.MustCompile(`\$\d+(?:\.\d{2})?`)},
	{"percentage", regexp.MustCompile(`\d+(?:\.\d+)?%`)},
}

// ExtractEntities scans the raw message for each fixed entity type and
// collects all non-overlapping matches in order of appearance. Types with
// zero matches are omitted. Idempotent and order-independent across types.
func ExtractEntities(text string) map[string][]string {
	entities := make(map[string][]string)

	for _, ep := range entityPatterns {
		matches := ep.pattern.FindAllString(text, -1)
		if len(matches) > 0 {
			entities[ep.name] = matches
		}
	}

	if numbers := extractNumbers(text); len(numbers) > 0 {
		entities["number"] = numbers
	}

	return entities
}

// extractNumbers collects standalone digit runs. Digit runs embedded in
// hyphenated or decorated tokens (phone numbers, prices, percentages)
// belong to the other entity types, not to "number".
func extractNumbers(text string) []string {
	var numbers []string
	for _, field := range strings.Fields(text) {
		tok := strings.Trim(field, ".,!?;:()\"'")
		if tok == "" {
			continue
		}
		if isDigits(tok) {
			numbers = append(numbers, tok)
		}
	}
	return numbers
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
