// internal/store/postgres_test.go
package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-chatbot/internal/models"
)

func TestHistoryStoreTurn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO conversations")).
		WithArgs(sqlmock.AnyArg(), "u1", "s1", "hello", "user", "greeting", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	h := NewHistory(db)
	err = h.StoreTurn(context.Background(), models.ConversationTurn{
		UserID:    "u1",
		SessionID: "s1",
		Message:   "hello",
		Sender:    models.SenderUser,
		Intent:    "greeting",
		Timestamp: time.Now().UTC(),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryTurnsOldestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "session_id", "message", "sender", "intent", "created_at"}).
		AddRow("id-1", "u1", "s1", "first", "user", "greeting", now.Add(-2*time.Minute)).
		AddRow("id-2", "u1", "s1", "second", "bot", "greeting", now.Add(-1*time.Minute))

	mock.ExpectQuery("SELECT id, user_id, session_id, message, sender, intent, created_at").
		WithArgs("u1", "s1", 10).
		WillReturnRows(rows)

	h := NewHistory(db)
	turns, err := h.Turns(context.Background(), "u1", "s1", 10)

	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "first", turns[0].Message)
	assert.Equal(t, models.SenderBot, turns[1].Sender)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COUNT(DISTINCT user_id)")).
		WithArgs(sqlmock.AnyArg(), "user").
		WillReturnRows(sqlmock.NewRows([]string{"count", "count"}).AddRow(42, 7))

	mock.ExpectQuery("SELECT intent, COUNT").
		WithArgs(sqlmock.AnyArg(), "user").
		WillReturnRows(sqlmock.NewRows([]string{"intent", "hits"}).
			AddRow("greeting", 20).
			AddRow("pricing", 12))

	h := NewHistory(db)
	stats, err := h.Stats(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalMessages)
	assert.Equal(t, 7, stats.UniqueUsers)
	require.Len(t, stats.TopIntents, 2)
	assert.Equal(t, IntentCount{Intent: "greeting", Count: 20}, stats.TopIntents[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryCleanup(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM conversations")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 17))

	h := NewHistory(db)
	removed, err := h.Cleanup(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, int64(17), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
