// internal/ticket/notifier_test.go
package ticket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"support-chatbot/internal/common/config"
	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/models"
)

type stubEmailSender struct {
	sent    int
	subject string
	err     error
}

func (s *stubEmailSender) SendText(_ context.Context, from, to, subject, body string) error {
	s.sent++
	s.subject = subject
	return s.err
}

type stubPublisher struct {
	published int
	message   string
	err       error
}

func (s *stubPublisher) PublishToTopic(_ context.Context, topicARN, message string) error {
	s.published++
	s.message = message
	return s.err
}

func testTicket(priority string) models.Ticket {
	return models.Ticket{
		ID:          "t-1",
		UserID:      "u1",
		Subject:     "Escalated conversation",
		Description: "the site is down",
		Priority:    priority,
		Status:      models.TicketStatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
}

func testNotifier(email *stubEmailSender, publisher *stubPublisher, threshold string) *Notifier {
	var cfg config.NotificationConfig
	cfg.Email.FromEmail = "bot@example.com"
	cfg.Email.ToEmail = "support@example.com"
	cfg.SMS.TopicARN = "arn:aws:sns:us-east-1:123456789012:tickets"
	cfg.SMS.PriorityThreshold = threshold

	n := &Notifier{cfg: cfg, log: logger.NewNoOpLogger()}
	if email != nil {
		n.email = email
	}
	if publisher != nil {
		n.publisher = publisher
	}
	return n
}

func TestNotifyCreatedSendsBothChannels(t *testing.T) {
	email := &stubEmailSender{}
	publisher := &stubPublisher{}
	n := testNotifier(email, publisher, models.TicketPriorityLow)

	err := n.NotifyCreated(context.Background(), testTicket(models.TicketPriorityHigh))

	assert.NoError(t, err)
	assert.Equal(t, 1, email.sent)
	assert.Contains(t, email.subject, "t-1")
	assert.Equal(t, 1, publisher.published)
	assert.Contains(t, publisher.message, "high priority")
}

func TestNotifyCreatedRespectsSMSThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold string
		priority  string
		published int
	}{
		{"high threshold blocks medium", models.TicketPriorityHigh, models.TicketPriorityMedium, 0},
		{"high threshold passes high", models.TicketPriorityHigh, models.TicketPriorityHigh, 1},
		{"medium threshold blocks low", models.TicketPriorityMedium, models.TicketPriorityLow, 0},
		{"empty threshold passes everything", "", models.TicketPriorityLow, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &stubPublisher{}
			n := testNotifier(nil, publisher, tt.threshold)

			err := n.NotifyCreated(context.Background(), testTicket(tt.priority))

			assert.NoError(t, err)
			assert.Equal(t, tt.published, publisher.published)
		})
	}
}

func TestNotifyCreatedReportsFirstFailure(t *testing.T) {
	email := &stubEmailSender{err: errors.New("ses throttled")}
	publisher := &stubPublisher{}
	n := testNotifier(email, publisher, models.TicketPriorityLow)

	err := n.NotifyCreated(context.Background(), testTicket(models.TicketPriorityMedium))

	assert.Error(t, err)
	// SMS still goes out even when email fails.
	assert.Equal(t, 1, publisher.published)
}
