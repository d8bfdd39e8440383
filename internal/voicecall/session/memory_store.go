package session

import (
	"context"
	"sync"

	"intake-agent/internal/llm"
)

// MemoryStore keeps sessions in process memory. It is used when Redis is not
// configured; sessions are lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]Session
	completed map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string]Session),
		completed: make(map[string]bool),
	}
}

func (m *MemoryStore) Create(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.CallSID]; ok {
		return ErrSessionExists
	}
	m.sessions[s.CallSID] = clone(s)
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, callSID string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[callSID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return clone(s), nil
}

func (m *MemoryStore) Save(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.CallSID] = clone(s)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, callSID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, callSID)
	delete(m.completed, callSID)
	return nil
}

func (m *MemoryStore) MarkCompleted(ctx context.Context, callSID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.completed[callSID] {
		return false, nil
	}
	m.completed[callSID] = true
	return true, nil
}

func (m *MemoryStore) ClearCompleted(ctx context.Context, callSID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.completed, callSID)
	return nil
}

// clone copies the turn slice so callers never share backing arrays.
func clone(s Session) Session {
	s.Turns = append([]llm.Message(nil), s.Turns...)
	return s
}
