// internal/ticket/ticket_test.go
package ticket

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/models"
)

func TestRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tickets")).
		WithArgs(sqlmock.AnyArg(), "u1", "Escalated conversation", "nothing works", "high", "open", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db, logger.NewTestLogger(t))
	ticket, err := repo.Create(context.Background(), "u1", "Escalated conversation", "nothing works", models.TicketPriorityHigh)

	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.True(t, ticket.IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "subject", "description", "priority", "status", "created_at", "resolved_at"}).
		AddRow("t-1", "u1", "subject", "description", "medium", "open", created, nil)

	mock.ExpectQuery("SELECT id, user_id, subject, description, priority, status, created_at, resolved_at").
		WithArgs("t-1").
		WillReturnRows(rows)

	repo := NewRepository(db, logger.NewTestLogger(t))
	ticket, err := repo.Get(context.Background(), "t-1")

	require.NoError(t, err)
	assert.Equal(t, "t-1", ticket.ID)
	assert.Nil(t, ticket.ResolvedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tickets SET status")).
		WithArgs("resolved", sqlmock.AnyArg(), "t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db, logger.NewTestLogger(t))
	err = repo.UpdateStatus(context.Background(), "t-1", models.TicketStatusResolved)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateStatusMissingTicket(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tickets SET status")).
		WithArgs("closed", sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db, logger.NewTestLogger(t))
	err = repo.UpdateStatus(context.Background(), "missing", models.TicketStatusClosed)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
