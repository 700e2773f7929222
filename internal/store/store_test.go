// internal/store/store_test.go
package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"support-chatbot/internal/models"
)

func userTurn(userID, sessionID, message string) models.ConversationTurn {
	return models.ConversationTurn{
		UserID:    userID,
		SessionID: sessionID,
		Message:   message,
		Sender:    models.SenderUser,
		Timestamp: time.Now().UTC(),
	}
}

func TestMemoryAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10)

	assert.NoError(t, m.AppendTurn(ctx, userTurn("u1", "s1", "first")))
	assert.NoError(t, m.AppendTurn(ctx, userTurn("u1", "s1", "second")))
	assert.NoError(t, m.AppendTurn(ctx, userTurn("u1", "s2", "other session")))

	turns, err := m.RecentTurns(ctx, "u1", "s1", 10)
	assert.NoError(t, err)
	assert.Len(t, turns, 2)
	assert.Equal(t, "first", turns[0].Message)
	assert.Equal(t, "second", turns[1].Message)

	other, err := m.RecentTurns(ctx, "u1", "s2", 10)
	assert.NoError(t, err)
	assert.Len(t, other, 1)

	empty, err := m.RecentTurns(ctx, "u2", "s1", 10)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryWindowBound(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(3)

	for i := 0; i < 5; i++ {
		assert.NoError(t, m.AppendTurn(ctx, userTurn("u1", "s1", fmt.Sprintf("msg-%d", i))))
	}

	turns, err := m.RecentTurns(ctx, "u1", "s1", 10)
	assert.NoError(t, err)
	assert.Len(t, turns, 3)
	assert.Equal(t, "msg-2", turns[0].Message)
	assert.Equal(t, "msg-4", turns[2].Message)
}

func TestMemoryRecentLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10)

	for i := 0; i < 5; i++ {
		assert.NoError(t, m.AppendTurn(ctx, userTurn("u1", "s1", fmt.Sprintf("msg-%d", i))))
	}

	turns, err := m.RecentTurns(ctx, "u1", "s1", 2)
	assert.NoError(t, err)
	assert.Len(t, turns, 2)
	assert.Equal(t, "msg-3", turns[0].Message)
	assert.Equal(t, "msg-4", turns[1].Message)
}

func TestMemoryState(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10)

	_, found, err := m.State(ctx, "u1")
	assert.NoError(t, err)
	assert.False(t, found)

	state := models.ConversationState{UserID: "u1", LastIntent: "greeting", TurnCount: 1}
	assert.NoError(t, m.SaveState(ctx, state))

	loaded, found, err := m.State(ctx, "u1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, state, loaded)
}

func TestMemoryDefaultWindow(t *testing.T) {
	m := NewMemory(0)
	assert.Equal(t, DefaultWindow, m.window)
}
