package response

import (
	"math/rand"
	"sync"
)

// genericFallback is returned when an intent has no templates at all.
const genericFallback = "I'm not sure I understand. Could you please rephrase that or ask me something else?"

// Selector chooses an index in [0, n). Injected so tests can pin template
// selection to the first entry instead of seeding global randomness.
type Selector func(n int) int

// RandomSelector returns a Selector backed by its own seeded source.
func RandomSelector(seed int64) Selector {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed))
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return rng.Intn(n)
	}
}

// FirstSelector always picks the first template. Used by tests.
func FirstSelector() Selector {
	return func(int) int { return 0 }
}

// TemplateSet holds the response template table and picks one template
// per intent. Read-only after construction.
type TemplateSet struct {
	templates map[string][]string
	selector  Selector
}

func NewTemplateSet(templates map[string][]string, selector Selector) *TemplateSet {
	if selector == nil {
		selector = RandomSelector(rand.Int63())
	}
	return &TemplateSet{templates: templates, selector: selector}
}

// Pick returns one template for the intent, or the generic fallback when
// the intent has none.
func (t *TemplateSet) Pick(intent string) string {
	templates := t.templates[intent]
	if len(templates) == 0 {
		return genericFallback
	}
	return templates[t.selector(len(templates))]
}

// Has reports whether any templates exist for the intent.
func (t *TemplateSet) Has(intent string) bool {
	return len(t.templates[intent]) > 0
}
