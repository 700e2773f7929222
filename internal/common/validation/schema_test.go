// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name     string
		document string
		schema   string
		valid    bool
	}{
		{
			name:     "valid intents",
			document: `[{"name":"greeting","patterns":["hello","hi"],"responses":["Hi!"]}]`,
			schema:   IntentsSchema,
			valid:    true,
		},
		{
			name:     "intent without patterns",
			document: `[{"name":"greeting"}]`,
			schema:   IntentsSchema,
			valid:    false,
		},
		{
			name:     "intent with empty patterns",
			document: `[{"name":"greeting","patterns":[]}]`,
			schema:   IntentsSchema,
			valid:    false,
		},
		{
			name:     "valid knowledge base",
			document: `{"faqs":[{"question":"Q?","answer":"A.","keywords":["q"]}],"products":[{"name":"Basic","price":"$9.99"}]}`,
			schema:   KnowledgeBaseSchema,
			valid:    true,
		},
		{
			name:     "faq without answer",
			document: `{"faqs":[{"question":"Q?"}]}`,
			schema:   KnowledgeBaseSchema,
			valid:    false,
		},
		{
			name:     "valid templates",
			document: `{"greeting":["Hello!"],"fallback":["Sorry?"]}`,
			schema:   TemplatesSchema,
			valid:    true,
		},
		{
			name:     "templates with wrong value type",
			document: `{"greeting":"Hello!"}`,
			schema:   TemplatesSchema,
			valid:    false,
		},
		{
			name:     "malformed JSON",
			document: `{"greeting":`,
			schema:   TemplatesSchema,
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON([]byte(tt.document), tt.schema)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
