package models

import "time"

// Sender identifies who produced a conversation turn.
type Sender string

const (
	SenderUser       Sender = "user"
	SenderBot        Sender = "bot"
	SenderHumanAgent Sender = "human_agent"
)

// ConversationTurn is a single message in a conversation, as kept in the
// rolling context window and in durable storage.
type ConversationTurn struct {
	ID        string    `json:"id,omitempty" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	SessionID string    `json:"sessionId" db:"session_id"`
	Message   string    `json:"message" db:"message"`
	Sender    Sender    `json:"sender" db:"sender"`
	Intent    string    `json:"intent,omitempty" db:"intent"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// ConversationState tracks per-user dialogue progress. Created on the first
// turn and mutated on every turn; it lives as long as the process (or the
// backing store) unless externally reset.
type ConversationState struct {
	UserID           string    `json:"userId" db:"user_id"`
	LastIntent       string    `json:"lastIntent" db:"last_intent"`
	TurnCount        int       `json:"turnCount" db:"turn_count"`
	LastResponseTime time.Time `json:"lastResponseTime" db:"last_response_time"`
}

// Touch records a completed exchange on the state.
func (s *ConversationState) Touch(intent string, now time.Time) {
	s.LastIntent = intent
	s.TurnCount++
	s.LastResponseTime = now
}
