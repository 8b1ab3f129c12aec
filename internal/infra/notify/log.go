package notify

import (
	"context"
	"log/slog"

	"party-rental/internal/usecase/shared"
)

// LogMailer stands in for SES in development. Messages are logged, not sent.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, msg shared.EmailMessage) error {
	if msg.To == "" {
		return ErrRecipientRequired
	}
	slog.InfoContext(ctx, "email not sent, SES disabled",
		"recipient", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"body_bytes", len(msg.Body),
	)
	return nil
}
