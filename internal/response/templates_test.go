// internal/response/templates_test.go
package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateSetPick(t *testing.T) {
	set := NewTemplateSet(map[string][]string{
		"greeting": {"first", "second", "third"},
	}, FirstSelector())

	assert.Equal(t, "first", set.Pick("greeting"))
	assert.Equal(t, genericFallback, set.Pick("no_such_intent"))
	assert.True(t, set.Has("greeting"))
	assert.False(t, set.Has("no_such_intent"))
}

func TestRandomSelectorStaysInRange(t *testing.T) {
	selector := RandomSelector(42)

	for i := 0; i < 100; i++ {
		idx := selector(4)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
	}
}

func TestRandomSelectorDeterministicPerSeed(t *testing.T) {
	a := RandomSelector(7)
	b := RandomSelector(7)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a(10), b(10))
	}
}

func TestSuggestionTableCapsAtThree(t *testing.T) {
	table := SuggestionTable{
		"greeting": {"one", "two", "three", "four"},
		"default":  {"d1", "d2"},
	}

	assert.Equal(t, []string{"one", "two", "three"}, table.For("greeting"))
	assert.Equal(t, []string{"d1", "d2"}, table.For("unknown"))
}

func TestSuggestionTableReturnsCopy(t *testing.T) {
	table := SuggestionTable{"default": {"a", "b"}}

	first := table.For("anything")
	first[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, table.For("anything"))
}
