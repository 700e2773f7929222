// Package store holds conversation history and per-user dialogue state.
package store

import (
	"context"
	"sync"

	"support-chatbot/internal/models"
)

// DefaultWindow bounds how many turns are retained per conversation.
const DefaultWindow = 10

// ConversationStore records turns and per-user dialogue state.
// RecentTurns returns turns oldest first.
type ConversationStore interface {
	AppendTurn(ctx context.Context, turn models.ConversationTurn) error
	RecentTurns(ctx context.Context, userID, sessionID string, limit int) ([]models.ConversationTurn, error)
	State(ctx context.Context, userID string) (models.ConversationState, bool, error)
	SaveState(ctx context.Context, state models.ConversationState) error
}

type conversationKey struct {
	userID    string
	sessionID string
}

// Memory is an in-process ConversationStore. It keeps a bounded sliding
// window of turns per (user, session) and lives only as long as the process.
type Memory struct {
	mu     sync.RWMutex
	window int
	turns  map[conversationKey][]models.ConversationTurn
	states map[string]models.ConversationState
}

// NewMemory creates an in-memory store. A non-positive window falls back to
// DefaultWindow.
func NewMemory(window int) *Memory {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Memory{
		window: window,
		turns:  make(map[conversationKey][]models.ConversationTurn),
		states: make(map[string]models.ConversationState),
	}
}

func (m *Memory) AppendTurn(_ context.Context, turn models.ConversationTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := conversationKey{userID: turn.UserID, sessionID: turn.SessionID}
	history := append(m.turns[key], turn)
	if len(history) > m.window {
		history = history[len(history)-m.window:]
	}
	m.turns[key] = history
	return nil
}

func (m *Memory) RecentTurns(_ context.Context, userID, sessionID string, limit int) ([]models.ConversationTurn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.turns[conversationKey{userID: userID, sessionID: sessionID}]
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	out := make([]models.ConversationTurn, len(history))
	copy(out, history)
	return out, nil
}

func (m *Memory) State(_ context.Context, userID string) (models.ConversationState, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[userID]
	return state, ok, nil
}

func (m *Memory) SaveState(_ context.Context, state models.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[state.UserID] = state
	return nil
}
