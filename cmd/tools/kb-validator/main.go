// cmd/tools/kb-validator/main.go
//
// kb-validator checks the JSON data files (intents, knowledge base,
// response templates, suggestions) against their schemas before deploy.
package main

import (
	"flag"
	"fmt"
	"os"

	"support-chatbot/internal/common/validation"
)

func main() {
	intentsPath := flag.String("intents", "data/intents.json", "Path to the intents file")
	kbPath := flag.String("kb", "data/knowledge_base.json", "Path to the knowledge base file")
	templatesPath := flag.String("templates", "data/responses.json", "Path to the response templates file")
	flag.Parse()

	checks := []struct {
		name   string
		path   string
		schema string
	}{
		{"intents", *intentsPath, validation.IntentsSchema},
		{"knowledge base", *kbPath, validation.KnowledgeBaseSchema},
		{"templates", *templatesPath, validation.TemplatesSchema},
	}

	failed := false
	for _, check := range checks {
		document, err := os.ReadFile(check.path)
		if os.IsNotExist(err) {
			fmt.Printf("SKIP  %-14s %s (not present, defaults will be used)\n", check.name, check.path)
			continue
		}
		if err != nil {
			fmt.Printf("FAIL  %-14s %s: %v\n", check.name, check.path, err)
			failed = true
			continue
		}

		if err := validation.ValidateJSON(document, check.schema); err != nil {
			fmt.Printf("FAIL  %-14s %s: %v\n", check.name, check.path, err)
			failed = true
			continue
		}
		fmt.Printf("OK    %-14s %s\n", check.name, check.path)
	}

	if failed {
		os.Exit(1)
	}
}
