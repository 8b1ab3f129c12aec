// Package notify delivers outbox emails.
package notify

import (
	"context"
	"log/slog"

	"party-rental/internal/pkg/config"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var (
	ErrRecipientRequired = errs.New("recipient is required")
	ErrSESNotConfigured  = errs.New("ses region, credentials and sender are required")
)

// EmailAPI is the slice of the SES v2 client the mailer calls.
type EmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESMailer struct {
	client EmailAPI
	sender string
}

func NewSESMailer(ctx context.Context, cfg config.SESConfig) (*SESMailer, error) {
	if !cfg.Enabled() {
		return nil, ErrSESNotConfigured
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}
	return NewSESMailerWithClient(sesv2.NewFromConfig(awsCfg), cfg.Sender), nil
}

func NewSESMailerWithClient(client EmailAPI, sender string) *SESMailer {
	return &SESMailer{client: client, sender: sender}
}

func (m *SESMailer) Send(ctx context.Context, msg shared.EmailMessage) error {
	if msg.To == "" {
		return ErrRecipientRequired
	}

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Body)},
				},
			},
		},
		FromEmailAddress: aws.String(m.sender),
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		slog.Error("failed to send SES email", "recipient", msg.To, "subject", msg.Subject, "error", err.Error())
		return errs.Wrap(err, "send ses email")
	}
	slog.Debug("SES email sent", "recipient", msg.To, "message_id", aws.ToString(out.MessageId))
	return nil
}
