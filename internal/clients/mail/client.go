package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"intake-agent/internal/observability"

	"github.com/resendlabs/resend-go"
)

var (
	ErrMissingAPIKey    = errors.New("resend api key is required")
	ErrMissingRecipient = errors.New("email recipient is required")
)

// ResendClient delivers intake confirmation emails through Resend. Every
// message carries the configured reply-to address and tags so replies reach
// the front desk and deliveries can be filtered in the Resend dashboard.
type ResendClient struct {
	emails  resend.EmailsSvc
	replyTo string
	tags    []resend.Tag
	logger  *observability.Logger
}

type Option func(*ResendClient)

// WithReplyTo routes patient replies to addr instead of the sender.
func WithReplyTo(addr string) Option {
	return func(c *ResendClient) { c.replyTo = strings.TrimSpace(addr) }
}

// WithTag attaches a Resend tag to every message.
func WithTag(name, value string) Option {
	return func(c *ResendClient) { c.tags = append(c.tags, resend.Tag{Name: name, Value: value}) }
}

func NewResendClient(apiKey string, logger *observability.Logger, opts ...Option) (*ResendClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}
	return newClient(client.Emails, logger, opts...), nil
}

func newClient(emails resend.EmailsSvc, logger *observability.Logger, opts ...Option) *ResendClient {
	c := &ResendClient{emails: emails, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendEmail sends one HTML email and returns the Resend message id.
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrMissingRecipient
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
		ReplyTo: c.replyTo,
	}
	if len(c.tags) > 0 {
		params.Tags = append([]resend.Tag(nil), c.tags...)
	}

	res, err := c.emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "email_id", Value: res.Id}), "email sent")
	return res.Id, nil
}
