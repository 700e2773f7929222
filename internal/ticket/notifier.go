// internal/ticket/notifier.go
package ticket

import (
	"context"
	"fmt"

	"support-chatbot/internal/common/aws"
	"support-chatbot/internal/common/config"
	"support-chatbot/internal/common/errors"
	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/models"
)

// EmailSender sends a plain-text email notification.
type EmailSender interface {
	SendText(ctx context.Context, from, to, subject, body string) error
}

// TopicPublisher publishes a message to an SNS topic.
type TopicPublisher interface {
	PublishToTopic(ctx context.Context, topicARN, message string) error
}

// Notifier tells the support team about newly created tickets over email
// (SES) and, for high-priority tickets, over SMS (SNS). Notification
// failures are logged and reported but never fail ticket creation.
type Notifier struct {
	cfg       config.NotificationConfig
	email     EmailSender
	publisher TopicPublisher
	log       logger.Logger
}

// NewNotifier builds the AWS clients required by the enabled channels.
func NewNotifier(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*Notifier, error) {
	n := &Notifier{cfg: cfg, log: log}

	if cfg.Email.Enabled {
		ses, err := aws.NewSESClient(ctx, cfg.AWS.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create SES client: %w", err)
		}
		n.email = ses
	}
	if cfg.SMS.Enabled {
		sns, err := aws.NewSNSClient(ctx, cfg.AWS.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create SNS client: %w", err)
		}
		n.publisher = sns
	}
	return n, nil
}

// NotifyCreated announces a new ticket on the configured channels.
func (n *Notifier) NotifyCreated(ctx context.Context, ticket models.Ticket) error {
	var firstErr error

	if n.email != nil {
		subject := fmt.Sprintf("[%s] New support ticket %s", ticket.Priority, ticket.ID)
		body := fmt.Sprintf(
			"Ticket: %s\nUser: %s\nPriority: %s\nSubject: %s\n\n%s\n",
			ticket.ID, ticket.UserID, ticket.Priority, ticket.Subject, ticket.Description,
		)
		if err := n.email.SendText(ctx, n.cfg.Email.FromEmail, n.cfg.Email.ToEmail, subject, body); err != nil {
			n.log.Error("Failed to send ticket email", map[string]interface{}{
				"ticketId": ticket.ID,
				"error":    err.Error(),
			})
			firstErr = errors.NewNotificationSendFailedError("email: " + err.Error())
		}
	}

	if n.publisher != nil && n.smsEligible(ticket.Priority) {
		message := fmt.Sprintf("New %s priority ticket %s from user %s: %s",
			ticket.Priority, ticket.ID, ticket.UserID, ticket.Subject)
		if err := n.publisher.PublishToTopic(ctx, n.cfg.SMS.TopicARN, message); err != nil {
			n.log.Error("Failed to publish ticket SMS", map[string]interface{}{
				"ticketId": ticket.ID,
				"error":    err.Error(),
			})
			if firstErr == nil {
				firstErr = errors.NewNotificationSendFailedError("sms: " + err.Error())
			}
		}
	}

	return firstErr
}

func (n *Notifier) smsEligible(priority string) bool {
	switch n.cfg.SMS.PriorityThreshold {
	case models.TicketPriorityLow, "":
		return true
	case models.TicketPriorityMedium:
		return priority != models.TicketPriorityLow
	case models.TicketPriorityHigh:
		return priority == models.TicketPriorityHigh
	default:
		return true
	}
}
