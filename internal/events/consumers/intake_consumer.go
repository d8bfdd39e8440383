package consumers

//go:generate go run go.uber.org/mock/mockgen@latest -source=intake_consumer.go -destination=mocks_test.go -package=consumers

import (
	"context"
	"errors"
	"fmt"

	"intake-agent/internal/clients/kafka"
	"intake-agent/internal/email"
	"intake-agent/internal/events"
	"intake-agent/internal/intake"
	"intake-agent/internal/observability"
)

// EventSource streams events to a handler until its context ends.
type EventSource interface {
	ConsumeEvents(ctx context.Context, handler func(context.Context, kafka.EventMessage) error) error
}

// ConfirmationMailer sends the confirmation email for a completed intake.
type ConfirmationMailer interface {
	SendIntakeConfirmationEmail(ctx context.Context, record intake.Record) error
}

// IntakeConsumer emails patients whose intake call completed.
type IntakeConsumer struct {
	source EventSource
	mailer ConfirmationMailer
	logger *observability.Logger
}

func NewIntakeConsumer(source EventSource, mailer ConfirmationMailer, logger *observability.Logger) *IntakeConsumer {
	return &IntakeConsumer{
		source: source,
		mailer: mailer,
		logger: logger,
	}
}

// Start consumes events until ctx is cancelled. Each event is processed
// before the handler returns, so its offset is committed only once the email
// has been sent or deliberately skipped.
func (c *IntakeConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, "Starting intake consumer")

	err := c.source.ConsumeEvents(ctx, c.ProcessEvent)
	if err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Error(ctx, "consumer error", err)
		return err
	}
	c.logger.Info(ctx, "Intake consumer stopped")
	return nil
}

// ProcessEvent handles one event. Events other than intake.completed are
// ignored, as are records without an email address.
func (c *IntakeConsumer) ProcessEvent(ctx context.Context, event kafka.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	if event.Type != events.TypeIntakeCompleted {
		c.logger.Debug(ctx, fmt.Sprintf("Intake consumer ignoring event type: %s", event.Type))
		return nil
	}

	payload, err := events.DecodeIntakeCompleted(event)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: payload.CallSID})

	if payload.Record.Email == "" {
		c.logger.Info(ctx, "intake record has no email, skipping confirmation email")
		return nil
	}

	if err := c.mailer.SendIntakeConfirmationEmail(ctx, payload.Record); err != nil {
		if errors.Is(err, email.ErrInvalidEmailAddress) {
			return nil
		}
		return err
	}

	c.logger.Info(ctx, "Sent intake confirmation email")
	return nil
}
