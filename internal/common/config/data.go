// internal/common/config/data.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/common/validation"
	"support-chatbot/internal/models"
)

// Data bundles all static data the engine is fitted on at startup:
// intent definitions, the FAQ/product knowledge base, response templates
// and follow-up suggestion tables. Immutable once loaded.
type Data struct {
	Intents       []models.IntentDefinition
	KnowledgeBase models.KnowledgeBase
	Templates     map[string][]string
	Suggestions   map[string][]string
}

// LoadData reads the JSON data files referenced by cfg. Every file is
// optional: a missing file falls back to the built-in default data set and
// is logged, never fatal. A file that exists but fails schema validation is
// an error, since silently discarding operator data would be worse than
// refusing to start.
func LoadData(cfg DataConfig, log logger.Logger) (*Data, error) {
	data := &Data{
		Intents:       DefaultIntents(),
		KnowledgeBase: DefaultKnowledgeBase(),
		Templates:     DefaultTemplates(),
		Suggestions:   DefaultSuggestions(),
	}

	if err := loadJSONFile(cfg.IntentsFile, validation.IntentsSchema, &data.Intents, log); err != nil {
		return nil, fmt.Errorf("intents file: %w", err)
	}
	if err := loadJSONFile(cfg.KnowledgeBaseFile, validation.KnowledgeBaseSchema, &data.KnowledgeBase, log); err != nil {
		return nil, fmt.Errorf("knowledge base file: %w", err)
	}
	if err := loadJSONFile(cfg.ResponsesFile, validation.TemplatesSchema, &data.Templates, log); err != nil {
		return nil, fmt.Errorf("responses file: %w", err)
	}
	if err := loadJSONFile(cfg.SuggestionsFile, validation.TemplatesSchema, &data.Suggestions, log); err != nil {
		return nil, fmt.Errorf("suggestions file: %w", err)
	}

	log.Info("static data loaded", map[string]interface{}{
		"intents":  len(data.Intents),
		"faqs":     len(data.KnowledgeBase.FAQs),
		"products": len(data.KnowledgeBase.Products),
	})

	return data, nil
}

func loadJSONFile(path, schema string, out interface{}, log logger.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("data file missing, using built-in defaults", map[string]interface{}{
				"path": path,
			})
			return nil
		}
		return err
	}

	if err := validation.ValidateJSON(raw, schema); err != nil {
		return err
	}

	return json.Unmarshal(raw, out)
}
