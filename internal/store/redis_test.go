// internal/store/redis_test.go
package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-chatbot/internal/models"
)

func newTestRedis(t *testing.T, window int) *Redis {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedis(client, window)
}

func TestRedisAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	r := newTestRedis(t, 10)

	require.NoError(t, r.AppendTurn(ctx, userTurn("u1", "s1", "first")))
	require.NoError(t, r.AppendTurn(ctx, userTurn("u1", "s1", "second")))

	turns, err := r.RecentTurns(ctx, "u1", "s1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "first", turns[0].Message)
	assert.Equal(t, "second", turns[1].Message)
	assert.Equal(t, models.SenderUser, turns[0].Sender)
}

func TestRedisWindowTrim(t *testing.T) {
	ctx := context.Background()
	r := newTestRedis(t, 3)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.AppendTurn(ctx, userTurn("u1", "s1", fmt.Sprintf("msg-%d", i))))
	}

	turns, err := r.RecentTurns(ctx, "u1", "s1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "msg-2", turns[0].Message)
	assert.Equal(t, "msg-4", turns[2].Message)
}

func TestRedisSessionsIsolated(t *testing.T) {
	ctx := context.Background()
	r := newTestRedis(t, 10)

	require.NoError(t, r.AppendTurn(ctx, userTurn("u1", "s1", "session one")))
	require.NoError(t, r.AppendTurn(ctx, userTurn("u1", "s2", "session two")))

	turns, err := r.RecentTurns(ctx, "u1", "s1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "session one", turns[0].Message)
}

func TestRedisState(t *testing.T) {
	ctx := context.Background()
	r := newTestRedis(t, 10)

	_, found, err := r.State(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)

	state := models.ConversationState{UserID: "u1", LastIntent: "pricing", TurnCount: 4}
	require.NoError(t, r.SaveState(ctx, state))

	loaded, found, err := r.State(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, state.LastIntent, loaded.LastIntent)
	assert.Equal(t, state.TurnCount, loaded.TurnCount)
}

func TestRedisStateErrorPropagates(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet(stateKey("u1")).SetErr(errors.New("connection reset"))

	r := NewRedis(client, 10)
	_, _, err := r.State(context.Background(), "u1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read state")
}

func TestRedisRecentTurnsErrorPropagates(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectLRange(turnKey("u1", "s1"), -10, -1).SetErr(errors.New("connection reset"))

	r := NewRedis(client, 10)
	_, err := r.RecentTurns(context.Background(), "u1", "s1", 10)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read turns")
}
