package email

import (
	"context"

	"intake-agent/internal/intake"
)

// MailClient delivers a rendered email and returns the provider message id.
type MailClient interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// EmailSender defines the interface for sending emails
type EmailSender interface {
	// SendIntakeConfirmationEmail mails the booked appointment to the patient
	SendIntakeConfirmationEmail(ctx context.Context, record intake.Record) error
}
