// Package validation checks the static JSON data files against their
// schemas before the engine is fitted on them.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// IntentsSchema describes the intents.json file: an ordered array of
// intent definitions.
const IntentsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name", "patterns"],
		"properties": {
			"name":      {"type": "string", "minLength": 1},
			"patterns":  {"type": "array", "items": {"type": "string"}, "minItems": 1},
			"responses": {"type": "array", "items": {"type": "string"}}
		}
	}
}`

// KnowledgeBaseSchema describes knowledge_base.json: FAQ entries plus the
// product catalog.
const KnowledgeBaseSchema = `{
	"type": "object",
	"properties": {
		"faqs": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "answer"],
				"properties": {
					"question": {"type": "string", "minLength": 1},
					"answer":   {"type": "string", "minLength": 1},
					"keywords": {"type": "array", "items": {"type": "string"}},
					"category": {"type": "string"}
				}
			}
		},
		"products": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "price"],
				"properties": {
					"name":        {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"price":       {"type": "string"},
					"features":    {"type": "array", "items": {"type": "string"}},
					"category":    {"type": "string"}
				}
			}
		},
		"categories": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`

// TemplatesSchema describes responses.json and suggestions.json: a map
// from intent name to a list of strings.
const TemplatesSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": {"type": "string"}
	}
}`

// ValidateJSON validates a raw JSON document against a schema and returns
// a single error aggregating every violation.
func ValidateJSON(document []byte, schema string) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("document does not match schema: %s", strings.Join(messages, "; "))
}
