package nlp

import (
	"strings"
	"sync"

	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/models"
)

// urgencyKeywords flag messages that indicate urgency on the analysis
// result.
var urgencyKeywords = []string{"urgent", "emergency", "asap", "immediately", "critical", "broken", "down"}

// Processor runs the full per-message analysis. Entity extraction,
// sentiment scoring and intent classification have no data dependency on
// each other and run in parallel; all components are read-only after
// construction, so a Processor is safe for concurrent use.
type Processor struct {
	tokenizer  *Tokenizer
	classifier *Classifier
	sentiment  *SentimentScorer
	logger     logger.Logger
}

func NewProcessor(intents []models.IntentDefinition, vocabularySize int, enableSentiment bool, log logger.Logger) *Processor {
	scorer := NewFallbackSentimentScorer()
	if enableSentiment {
		scorer = NewSentimentScorer()
	}
	return &Processor{
		tokenizer:  NewTokenizer(log),
		classifier: NewClassifier(intents, vocabularySize, log),
		sentiment:  scorer,
		logger:     log.WithFields(map[string]interface{}{"component": "nlp-processor"}),
	}
}

// Process analyzes one raw message. It never fails; every sub-component
// has a deterministic fallback.
func (p *Processor) Process(message string) models.Analysis {
	preprocessed := Normalize(message)

	var (
		wg             sync.WaitGroup
		classification Classification
		entities       map[string][]string
		sentiment      models.Sentiment
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		classification = p.classifier.Classify(message)
	}()
	go func() {
		defer wg.Done()
		entities = ExtractEntities(message)
	}()
	go func() {
		defer wg.Done()
		sentiment = p.sentiment.Score(message)
	}()
	wg.Wait()

	tokens := p.tokenizer.Tokenize(preprocessed)

	return models.Analysis{
		OriginalText:     message,
		PreprocessedText: preprocessed,
		Tokens:           tokens,
		Intent:           classification.Intent,
		Confidence:       classification.Confidence,
		Entities:         entities,
		Sentiment:        sentiment,
		WordCount:        len(tokens),
		HasQuestion:      strings.Contains(message, "?"),
		IsUrgent:         detectUrgency(message),
	}
}

func detectUrgency(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range urgencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Classifier exposes the intent classifier for callers that only need
// classification.
func (p *Processor) Classifier() *Classifier {
	return p.classifier
}

// Health reports the state of the linguistic resources.
func (p *Processor) Health() map[string]interface{} {
	return map[string]interface{}{
		"lemmatizer":       p.tokenizer.Available(),
		"similarity_index": p.classifier.SimilarityAvailable(),
		"intents_loaded":   len(p.classifier.Intents()),
	}
}
