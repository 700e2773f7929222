// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"support-chatbot/internal/models"
)

const (
	turnKeyPrefix  = "chat:turns:"
	stateKeyPrefix = "chat:state:"

	stateTTL = 24 * time.Hour
)

// Redis keeps conversation windows in Redis lists and dialogue state as
// JSON values, so multiple server instances share the same context.
type Redis struct {
	client *redis.Client
	window int
}

// NewRedis wraps an existing Redis client. A non-positive window falls back
// to DefaultWindow.
func NewRedis(client *redis.Client, window int) *Redis {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Redis{client: client, window: window}
}

func turnKey(userID, sessionID string) string {
	return fmt.Sprintf("%s%s:%s", turnKeyPrefix, userID, sessionID)
}

func stateKey(userID string) string {
	return stateKeyPrefix + userID
}

func (r *Redis) AppendTurn(ctx context.Context, turn models.ConversationTurn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	key := turnKey(turn.UserID, turn.SessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, int64(-r.window), -1)
	pipe.Expire(ctx, key, stateTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	return nil
}

func (r *Redis) RecentTurns(ctx context.Context, userID, sessionID string, limit int) ([]models.ConversationTurn, error) {
	if limit <= 0 || limit > r.window {
		limit = r.window
	}

	raw, err := r.client.LRange(ctx, turnKey(userID, sessionID), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read turns: %w", err)
	}

	turns := make([]models.ConversationTurn, 0, len(raw))
	for _, item := range raw {
		var turn models.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (r *Redis) State(ctx context.Context, userID string) (models.ConversationState, bool, error) {
	raw, err := r.client.Get(ctx, stateKey(userID)).Result()
	if err == redis.Nil {
		return models.ConversationState{}, false, nil
	}
	if err != nil {
		return models.ConversationState{}, false, fmt.Errorf("failed to read state: %w", err)
	}

	var state models.ConversationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return models.ConversationState{}, false, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return state, true, nil
}

func (r *Redis) SaveState(ctx context.Context, state models.ConversationState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := r.client.Set(ctx, stateKey(state.UserID), payload, stateTTL).Err(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
