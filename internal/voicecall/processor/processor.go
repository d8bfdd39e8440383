package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"intake-agent/internal/agent"
	"intake-agent/internal/events"
	"intake-agent/internal/intake"
	"intake-agent/internal/llm"
	"intake-agent/internal/observability"
	"intake-agent/internal/store"
	"intake-agent/internal/voicecall/session"

	"github.com/twilio/twilio-go/twiml"
)

// DialogueAgent produces the agent's side of the conversation.
type DialogueAgent interface {
	Kind() agent.Kind
	InitialMessage() string
	Respond(ctx context.Context, history []llm.Message, input string) (agent.Reply, error)
}

// SMSSender delivers the confirmation text message.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// IntakeStore persists completed intake records.
type IntakeStore interface {
	CreateIntakeRecord(ctx context.Context, params store.CreateIntakeRecordParams) (store.IntakeRecord, error)
}

// EventPublisher announces completed intakes.
type EventPublisher interface {
	PublishIntakeCompleted(ctx context.Context, payload events.IntakeCompleted) error
}

var (
	ErrSendConfirmation = errors.New("failed to send confirmation message")
	ErrCallCompleted    = errors.New("call already completed")
	ErrMissingCallSID   = errors.New("missing call sid")
)

// Config holds the immutable settings shared by every call.
type Config struct {
	BaseURL          string
	InboundCallRoute string
}

// TurnURL is where Twilio posts each speech result.
func (c Config) TurnURL() string {
	return c.BaseURL + c.InboundCallRoute + "/turn"
}

type CallProcessor struct {
	cfg       Config
	agent     DialogueAgent
	sessions  session.Store
	sms       SMSSender
	store     IntakeStore
	publisher EventPublisher
	logger    *observability.Logger
	now       func() time.Time
}

type Option func(*CallProcessor)

// WithIntakeStore persists every completed record.
func WithIntakeStore(s IntakeStore) Option {
	return func(p *CallProcessor) { p.store = s }
}

// WithEventPublisher publishes an intake.completed event per completed call.
func WithEventPublisher(pub EventPublisher) Option {
	return func(p *CallProcessor) { p.publisher = pub }
}

func New(cfg Config, dialogueAgent DialogueAgent, sessions session.Store, sms SMSSender, logger *observability.Logger, opts ...Option) *CallProcessor {
	p := &CallProcessor{
		cfg:      cfg,
		agent:    dialogueAgent,
		sessions: sessions,
		sms:      sms,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StartCall opens a fresh session for the call and returns the greeting TwiML.
func (p *CallProcessor) StartCall(ctx context.Context, callSID, from string) (string, error) {
	if callSID == "" {
		return "", ErrMissingCallSID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callSID})

	greeting := p.agent.InitialMessage()
	now := p.now().UTC()
	sess := session.Session{
		CallSID:   callSID,
		Caller:    from,
		AgentKind: string(p.agent.Kind()),
		CreatedAt: now,
	}
	sess.AddTurn(llm.RoleAssistant, greeting, now)

	err := p.sessions.Create(ctx, sess)
	switch {
	case errors.Is(err, session.ErrSessionExists):
		// Twilio retried the webhook; greet again without resetting the dialogue.
		p.logger.Warn(ctx, "call session already exists")
	case err != nil:
		p.logger.Error(ctx, "failed to create call session", err)
		return "", fmt.Errorf("failed to create call session: %w", err)
	default:
		p.logger.Info(ctx, "Inbound call started")
	}

	return p.gatherTwiML(greeting)
}

// ProcessTurn feeds the caller's speech to the agent and returns the next
// TwiML. When the agent produces an intake record the call is completed and
// the TwiML says goodbye and hangs up.
func (p *CallProcessor) ProcessTurn(ctx context.Context, callSID, speech string) (string, error) {
	if callSID == "" {
		return "", ErrMissingCallSID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callSID})

	sess, err := p.sessions.Get(ctx, callSID)
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			p.logger.Error(ctx, "failed to load call session", err)
		}
		return "", fmt.Errorf("failed to load call session: %w", err)
	}
	if sess.Completed {
		return "", ErrCallCompleted
	}

	speech = strings.TrimSpace(speech)
	if speech == "" {
		return p.gatherTwiML(noInputMessage)
	}

	reply, err := p.agent.Respond(ctx, sess.Turns, speech)
	if err != nil {
		p.logger.Error(ctx, "agent failed to respond", err)
		return "", fmt.Errorf("agent failed to respond: %w", err)
	}

	now := p.now().UTC()
	sess.AddTurn(llm.RoleUser, speech, now)
	sess.AddTurn(llm.RoleAssistant, reply.Text, now)

	if reply.Record != nil {
		if err := p.CompleteCall(ctx, &sess, *reply.Record); err != nil {
			return "", err
		}
		return p.hangupTwiML(reply.Text)
	}

	if err := p.sessions.Save(ctx, sess); err != nil {
		p.logger.Error(ctx, "failed to save call session", err)
		return "", fmt.Errorf("failed to save call session: %w", err)
	}

	return p.gatherTwiML(reply.Text)
}

// CompleteCall sends the confirmation text for record and marks the session
// complete. Completion is claimed in the session store before sending, so
// concurrent turns for one call send the text at most once; the losing turn
// gets ErrCallCompleted. A failed send releases the claim and fails the call.
// Persistence and event publishing are best effort.
func (p *CallProcessor) CompleteCall(ctx context.Context, sess *session.Session, record intake.Record) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "booked_provider", Value: record.BookedProvider},
		observability.Field{Key: "booked_date", Value: record.BookedDate},
	)

	claimed, err := p.sessions.MarkCompleted(ctx, sess.CallSID)
	if err != nil {
		p.logger.Error(ctx, "failed to claim call completion", err)
		return fmt.Errorf("failed to claim call completion: %w", err)
	}
	if !claimed {
		p.logger.Warn(ctx, "call completion already claimed by another turn")
		return ErrCallCompleted
	}

	messageSID, err := p.sms.SendSMS(ctx, record.Phone, ConfirmationMessage(record))
	if err != nil {
		p.logger.Error(ctx, "failed to send confirmation message", err)
		if clearErr := p.sessions.ClearCompleted(ctx, sess.CallSID); clearErr != nil {
			p.logger.Error(ctx, "failed to release call completion", clearErr)
		}
		return fmt.Errorf("%w: %w", ErrSendConfirmation, err)
	}

	payload := events.IntakeCompleted{
		CallSID:         sess.CallSID,
		ConfirmationSID: messageSID,
		Record:          record,
	}

	if p.store != nil {
		stored, err := p.store.CreateIntakeRecord(ctx, store.CreateIntakeRecordParams{
			CallSID:         sess.CallSID,
			Record:          record,
			ConfirmationSID: messageSID,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to persist intake record", err)
		} else {
			sess.RecordID = stored.ID.String()
			payload.RecordID = sess.RecordID
		}
	}

	if p.publisher != nil {
		if err := p.publisher.PublishIntakeCompleted(ctx, payload); err != nil {
			p.logger.Error(ctx, "failed to publish intake completed event", err)
		}
	}

	sess.Completed = true
	sess.UpdatedAt = p.now().UTC()
	if err := p.sessions.Save(ctx, *sess); err != nil {
		p.logger.Error(ctx, "failed to save completed call session", err)
	}

	p.logger.Info(ctx, "Intake completed and confirmation sent")
	return nil
}

// EndCall drops the session once Twilio reports a terminal call status.
func (p *CallProcessor) EndCall(ctx context.Context, callSID, status string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: callSID},
		observability.Field{Key: "call_status", Value: status},
	)

	if !isTerminalStatus(status) {
		p.logger.Debug(ctx, "ignoring non terminal call status")
		return nil
	}

	if err := p.sessions.Delete(ctx, callSID); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		p.logger.Error(ctx, "failed to delete call session", err)
		return fmt.Errorf("failed to delete call session: %w", err)
	}

	p.logger.Info(ctx, "Call ended")
	return nil
}

// ConfirmationMessage is the body of the confirmation text message. A date
// that already ends in a period, such as "11:00 a.m.", is not given a second.
func ConfirmationMessage(record intake.Record) string {
	date := strings.TrimSuffix(strings.TrimSpace(record.BookedDate), ".")
	return fmt.Sprintf("Your appointment is confirmed with %s on %s.", record.BookedProvider, date)
}

func isTerminalStatus(status string) bool {
	switch status {
	case "completed", "busy", "failed", "no-answer", "canceled":
		return true
	default:
		return false
	}
}

func (p *CallProcessor) gatherTwiML(message string) (string, error) {
	gather := &twiml.VoiceGather{
		Input:         "speech",
		Action:        p.cfg.TurnURL(),
		Method:        "POST",
		SpeechTimeout: "auto",
		InnerElements: []twiml.Element{
			&twiml.VoiceSay{Message: message},
		},
	}
	// Reached only when the caller said nothing before the gather timed out.
	redirect := &twiml.VoiceRedirect{
		Url:    p.cfg.TurnURL(),
		Method: "POST",
	}

	result, err := twiml.Voice([]twiml.Element{gather, redirect})
	if err != nil {
		return "", fmt.Errorf("failed to build TwiML: %w", err)
	}
	return result, nil
}

func (p *CallProcessor) hangupTwiML(message string) (string, error) {
	result, err := twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: message},
		&twiml.VoiceHangup{},
	})
	if err != nil {
		return "", fmt.Errorf("failed to build TwiML: %w", err)
	}
	return result, nil
}
