package session

import (
	"context"
	"errors"
	"time"

	"intake-agent/internal/llm"
)

var (
	ErrSessionNotFound = errors.New("call session not found")
	ErrSessionExists   = errors.New("call session already exists")
)

// DefaultTTL bounds how long an abandoned call's session is kept.
const DefaultTTL = time.Hour

// Session is the dialogue state of one phone call, keyed by Twilio CallSid.
type Session struct {
	CallSID   string        `json:"call_sid"`
	Caller    string        `json:"caller"`
	AgentKind string        `json:"agent_kind"`
	Turns     []llm.Message `json:"turns"`
	Completed bool          `json:"completed"`
	RecordID  string        `json:"record_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// AddTurn appends a turn and bumps UpdatedAt.
func (s *Session) AddTurn(role llm.Role, content string, now time.Time) {
	s.Turns = append(s.Turns, llm.Message{Role: role, Content: content})
	s.UpdatedAt = now
}

// Store persists call sessions. Implementations must be safe for concurrent
// use by independent calls.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, callSID string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, callSID string) error
	// MarkCompleted atomically claims completion of the call. Only the first
	// caller gets true; later callers get false until ClearCompleted.
	MarkCompleted(ctx context.Context, callSID string) (bool, error)
	// ClearCompleted releases a claim whose completion failed.
	ClearCompleted(ctx context.Context, callSID string) error
}
