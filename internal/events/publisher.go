package events

//go:generate go run go.uber.org/mock/mockgen@latest -source=publisher.go -destination=mocks_test.go -package=events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"intake-agent/internal/clients/kafka"
	"intake-agent/internal/intake"
	"intake-agent/internal/observability"

	"github.com/google/uuid"
)

const TypeIntakeCompleted = "intake.completed"

var ErrUnexpectedEventType = errors.New("unexpected event type")

// IntakeCompleted is published once per call after the confirmation text went out.
type IntakeCompleted struct {
	RecordID        string        `json:"record_id,omitempty"`
	CallSID         string        `json:"call_sid"`
	ConfirmationSID string        `json:"confirmation_sid"`
	Record          intake.Record `json:"record"`
}

// EventProducer writes event envelopes to the broker.
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// PublishIntakeCompleted publishes an intake.completed event keyed by call sid.
func (p *Publisher) PublishIntakeCompleted(ctx context.Context, payload IntakeCompleted) error {
	data, err := toData(payload)
	if err != nil {
		p.logger.Error(ctx, "failed to encode intake.completed payload", err)
		return err
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      TypeIntakeCompleted,
		Key:       payload.CallSID,
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	return p.producer.PublishEvent(ctx, event)
}

// DecodeIntakeCompleted extracts the payload of an intake.completed event.
func DecodeIntakeCompleted(event kafka.EventMessage) (IntakeCompleted, error) {
	if event.Type != TypeIntakeCompleted {
		return IntakeCompleted{}, fmt.Errorf("%w: %s", ErrUnexpectedEventType, event.Type)
	}

	dataBytes, err := json.Marshal(event.Data)
	if err != nil {
		return IntakeCompleted{}, fmt.Errorf("failed to marshal event data: %w", err)
	}

	var payload IntakeCompleted
	if err := json.Unmarshal(dataBytes, &payload); err != nil {
		return IntakeCompleted{}, fmt.Errorf("failed to unmarshal event data: %w", err)
	}
	return payload, nil
}

func toData(payload IntakeCompleted) (map[string]interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event payload: %w", err)
	}
	return data, nil
}
