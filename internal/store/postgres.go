// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"support-chatbot/internal/models"
)

const conversationsSchema = `
CREATE TABLE IF NOT EXISTS conversations (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	session_id TEXT NOT NULL,
	message TEXT NOT NULL,
	sender TEXT NOT NULL,
	intent TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversations_user_session
	ON conversations (user_id, session_id, created_at);
`

// History archives conversation turns in PostgreSQL. Unlike the rolling
// context window it keeps the full record, for statistics and audits.
type History struct {
	db *sql.DB
}

// NewHistory wraps an existing database handle.
func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

// InitSchema creates the conversations table if it does not exist.
func (h *History) InitSchema(ctx context.Context) error {
	if _, err := h.db.ExecContext(ctx, conversationsSchema); err != nil {
		return fmt.Errorf("failed to create conversations schema: %w", err)
	}
	return nil
}

// StoreTurn persists a single turn. An empty turn ID gets a fresh UUID.
func (h *History) StoreTurn(ctx context.Context, turn models.ConversationTurn) error {
	id := turn.ID
	if id == "" {
		id = uuid.New().String()
	}

	_, err := h.db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, session_id, message, sender, intent, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, turn.UserID, turn.SessionID, turn.Message, string(turn.Sender), turn.Intent, turn.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to store turn: %w", err)
	}
	return nil
}

// Turns returns the archived turns for a conversation, oldest first.
func (h *History) Turns(ctx context.Context, userID, sessionID string, limit int) ([]models.ConversationTurn, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, user_id, session_id, message, sender, intent, created_at
		 FROM (
			SELECT id, user_id, session_id, message, sender, intent, created_at
			FROM conversations
			WHERE user_id = $1 AND session_id = $2
			ORDER BY created_at DESC
			LIMIT $3
		 ) recent
		 ORDER BY created_at ASC`,
		userID, sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []models.ConversationTurn
	for rows.Next() {
		var turn models.ConversationTurn
		var sender string
		if err := rows.Scan(&turn.ID, &turn.UserID, &turn.SessionID, &turn.Message, &sender, &turn.Intent, &turn.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turn.Sender = models.Sender(sender)
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate turns: %w", err)
	}
	return turns, nil
}

// IntentCount is one row of the intent frequency statistics.
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

// Statistics summarizes archived activity over the trailing period.
type Statistics struct {
	TotalMessages int           `json:"totalMessages"`
	UniqueUsers   int           `json:"uniqueUsers"`
	TopIntents    []IntentCount `json:"topIntents"`
}

// Stats aggregates message counts and top intents over the last `days` days.
func (h *History) Stats(ctx context.Context, days int) (Statistics, error) {
	since := time.Now().AddDate(0, 0, -days)

	var stats Statistics
	err := h.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT user_id)
		 FROM conversations
		 WHERE created_at >= $1 AND sender = $2`,
		since, string(models.SenderUser),
	).Scan(&stats.TotalMessages, &stats.UniqueUsers)
	if err != nil {
		return Statistics{}, fmt.Errorf("failed to query statistics: %w", err)
	}

	rows, err := h.db.QueryContext(ctx,
		`SELECT intent, COUNT(*) AS hits
		 FROM conversations
		 WHERE created_at >= $1 AND sender = $2 AND intent <> ''
		 GROUP BY intent
		 ORDER BY hits DESC
		 LIMIT 10`,
		since, string(models.SenderUser),
	)
	if err != nil {
		return Statistics{}, fmt.Errorf("failed to query top intents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ic IntentCount
		if err := rows.Scan(&ic.Intent, &ic.Count); err != nil {
			return Statistics{}, fmt.Errorf("failed to scan intent count: %w", err)
		}
		stats.TopIntents = append(stats.TopIntents, ic)
	}
	if err := rows.Err(); err != nil {
		return Statistics{}, fmt.Errorf("failed to iterate top intents: %w", err)
	}
	return stats, nil
}

// Cleanup deletes archived turns older than the retention period and
// returns the number of rows removed.
func (h *History) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	res, err := h.db.ExecContext(ctx,
		`DELETE FROM conversations WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up conversations: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleaned rows: %w", err)
	}
	return removed, nil
}
