// Package ticket creates and tracks support tickets raised by escalations.
package ticket

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/models"
)

const ticketsSchema = `
CREATE TABLE IF NOT EXISTS tickets (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	subject TEXT NOT NULL,
	description TEXT NOT NULL,
	priority TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	resolved_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_tickets_user ON tickets (user_id, created_at);
`

// Repository persists tickets in PostgreSQL.
type Repository struct {
	db  *sql.DB
	log logger.Logger
}

// NewRepository wraps an existing database handle.
func NewRepository(db *sql.DB, log logger.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// InitSchema creates the tickets table if it does not exist.
func (r *Repository) InitSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, ticketsSchema); err != nil {
		return fmt.Errorf("failed to create tickets schema: %w", err)
	}
	return nil
}

// Create opens a new ticket and returns it with its generated ID.
func (r *Repository) Create(ctx context.Context, userID, subject, description, priority string) (models.Ticket, error) {
	ticket := models.Ticket{
		ID:          uuid.New().String(),
		UserID:      userID,
		Subject:     subject,
		Description: description,
		Priority:    priority,
		Status:      models.TicketStatusOpen,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (id, user_id, subject, description, priority, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ticket.ID, ticket.UserID, ticket.Subject, ticket.Description,
		ticket.Priority, ticket.Status, ticket.CreatedAt,
	)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	r.log.Info("Ticket created", map[string]interface{}{
		"ticketId": ticket.ID,
		"userId":   userID,
		"priority": priority,
	})
	return ticket, nil
}

// Get loads one ticket by ID.
func (r *Repository) Get(ctx context.Context, id string) (models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, subject, description, priority, status, created_at, resolved_at
		 FROM tickets WHERE id = $1`, id,
	).Scan(&ticket.ID, &ticket.UserID, &ticket.Subject, &ticket.Description,
		&ticket.Priority, &ticket.Status, &ticket.CreatedAt, &ticket.ResolvedAt)
	if err == sql.ErrNoRows {
		return models.Ticket{}, fmt.Errorf("ticket %s not found", id)
	}
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to load ticket: %w", err)
	}
	return ticket, nil
}

// OpenForUser lists a user's open tickets, newest first.
func (r *Repository) OpenForUser(ctx context.Context, userID string) ([]models.Ticket, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, subject, description, priority, status, created_at, resolved_at
		 FROM tickets
		 WHERE user_id = $1 AND status = $2
		 ORDER BY created_at DESC`,
		userID, models.TicketStatusOpen,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var ticket models.Ticket
		if err := rows.Scan(&ticket.ID, &ticket.UserID, &ticket.Subject, &ticket.Description,
			&ticket.Priority, &ticket.Status, &ticket.CreatedAt, &ticket.ResolvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}
	return tickets, nil
}

// UpdateStatus moves a ticket to a new status. Resolving or closing
// records the resolution time.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	var resolvedAt *time.Time
	if status == models.TicketStatusResolved || status == models.TicketStatusClosed {
		now := time.Now().UTC()
		resolvedAt = &now
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE tickets SET status = $1, resolved_at = $2 WHERE id = $3`,
		status, resolvedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check ticket update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("ticket %s not found", id)
	}
	return nil
}
