package models

import "time"

// Ticket priorities and statuses as stored in the tickets table.
const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"

	TicketStatusOpen     = "open"
	TicketStatusResolved = "resolved"
	TicketStatusClosed   = "closed"
)

// Ticket is a support ticket created by the engine (on escalation) or by
// an explicit user request.
type Ticket struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"userId" db:"user_id"`
	Subject     string     `json:"subject" db:"subject"`
	Description string     `json:"description" db:"description"`
	Priority    string     `json:"priority" db:"priority"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty" db:"resolved_at"`
}

// IsOpen reports whether the ticket still needs attention.
func (t *Ticket) IsOpen() bool {
	return t.Status == TicketStatusOpen
}
