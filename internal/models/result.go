package models

import "time"

// Sentiment holds polarity scores for a message. Negative, Neutral and
// Positive are each in [0,1] and sum to roughly 1; Compound is in [-1,1].
type Sentiment struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Analysis is the merged output of the NLP pipeline for one message:
// intent classification, extracted entities and sentiment. Exactly one
// classification path produced the confidence; scores from different
// paths are never mixed.
type Analysis struct {
	OriginalText     string              `json:"originalText"`
	PreprocessedText string              `json:"preprocessedText"`
	Tokens           []string            `json:"tokens"`
	Intent           string              `json:"intent"`
	Confidence       float64             `json:"confidence"`
	Entities         map[string][]string `json:"entities"`
	Sentiment        Sentiment           `json:"sentiment"`
	WordCount        int                 `json:"wordCount"`
	HasQuestion      bool                `json:"hasQuestion"`
	IsUrgent         bool                `json:"isUrgent"`
}

// Reply is the dialogue manager's decision for one message.
type Reply struct {
	Response      string              `json:"response"`
	Confidence    float64             `json:"confidence"`
	Intent        string              `json:"intent"`
	Suggestions   []string            `json:"suggestions"`
	RequiresHuman bool                `json:"requiresHuman"`
	Escalated     bool                `json:"escalated,omitempty"`
	Entities      map[string][]string `json:"entities"`
	Sentiment     Sentiment           `json:"sentiment"`
}

// Result is the full engine output returned to the caller.
type Result struct {
	Response       string              `json:"response"`
	Confidence     float64             `json:"confidence"`
	Intent         string              `json:"intent"`
	Entities       map[string][]string `json:"entities"`
	Sentiment      Sentiment           `json:"sentiment"`
	Suggestions    []string            `json:"suggestions"`
	RequiresHuman  bool                `json:"requiresHuman"`
	SessionID      string              `json:"sessionId"`
	ProcessingTime float64             `json:"processingTime"`
	Timestamp      time.Time           `json:"timestamp"`
}
