package nlp

import (
	"strings"

	"github.com/jonreiter/govader"

	"support-chatbot/internal/models"
)

// Word lists for the deterministic fallback scorer.
var (
	positiveWords = []string{"good", "great", "excellent", "amazing", "wonderful", "happy", "satisfied"}
	negativeWords = []string{"bad", "terrible", "awful", "horrible", "unhappy", "angry", "frustrated"}
)

// SentimentScorer produces 4-axis polarity scores. The primary path is a
// VADER lexicon/rule analyzer; when it is disabled or unavailable the
// scorer falls back to counting fixed positive/negative word lists and
// returning one of three fixed vectors.
type SentimentScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// NewFallbackSentimentScorer builds a scorer without the lexicon analyzer,
// exercising only the deterministic fallback path.
func NewFallbackSentimentScorer() *SentimentScorer {
	return &SentimentScorer{}
}

// Score never fails; any missing resource degrades to the fallback path.
func (s *SentimentScorer) Score(text string) models.Sentiment {
	if s.analyzer != nil {
		scores := s.analyzer.PolarityScores(text)
		return models.Sentiment{
			Negative: scores.Negative,
			Neutral:  scores.Neutral,
			Positive: scores.Positive,
			Compound: scores.Compound,
		}
	}
	return fallbackSentiment(text)
}

// fallbackSentiment compares occurrence counts of the fixed word lists.
// No partial credit beyond the count comparison.
func fallbackSentiment(text string) models.Sentiment {
	lower := strings.ToLower(text)

	positiveCount := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positiveCount++
		}
	}
	negativeCount := 0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negativeCount++
		}
	}

	switch {
	case positiveCount > negativeCount:
		return models.Sentiment{Compound: 0.5, Positive: 0.5, Neutral: 0.3, Negative: 0.2}
	case negativeCount > positiveCount:
		return models.Sentiment{Compound: -0.5, Positive: 0.2, Neutral: 0.3, Negative: 0.5}
	default:
		return models.Sentiment{Compound: 0.0, Positive: 0.3, Neutral: 0.4, Negative: 0.3}
	}
}
