package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"intake-agent/internal/clients/redis"
	"intake-agent/internal/observability"
)

const keyPrefix = "intake:call:"

// RedisStore keeps sessions as JSON documents with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *observability.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *observability.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func key(callSID string) string {
	return keyPrefix + callSID
}

func doneKey(callSID string) string {
	return keyPrefix + callSID + ":done"
}

func (r *RedisStore) Create(ctx context.Context, s Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	created, err := r.client.SetNX(ctx, key(s.CallSID), payload, r.ttl)
	if err != nil {
		r.logger.Error(ctx, "failed to create call session", err)
		return fmt.Errorf("failed to create call session: %w", err)
	}
	if !created {
		return ErrSessionExists
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, callSID string) (Session, error) {
	payload, err := r.client.Get(ctx, key(callSID))
	if errors.Is(err, redis.ErrKeyNotFound) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Error(ctx, "failed to get call session", err)
		return Session{}, fmt.Errorf("failed to get call session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, key(s.CallSID), payload, r.ttl); err != nil {
		r.logger.Error(ctx, "failed to save call session", err)
		return fmt.Errorf("failed to save call session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, callSID string) error {
	if err := r.client.Del(ctx, key(callSID), doneKey(callSID)); err != nil {
		r.logger.Error(ctx, "failed to delete call session", err)
		return fmt.Errorf("failed to delete call session: %w", err)
	}
	return nil
}

// MarkCompleted sets a separate done key with SET NX so concurrent turns on
// any replica race on a single Redis command.
func (r *RedisStore) MarkCompleted(ctx context.Context, callSID string) (bool, error) {
	claimed, err := r.client.SetNX(ctx, doneKey(callSID), []byte("1"), r.ttl)
	if err != nil {
		r.logger.Error(ctx, "failed to mark call session completed", err)
		return false, fmt.Errorf("failed to mark call session completed: %w", err)
	}
	return claimed, nil
}

func (r *RedisStore) ClearCompleted(ctx context.Context, callSID string) error {
	if err := r.client.Del(ctx, doneKey(callSID)); err != nil {
		r.logger.Error(ctx, "failed to clear call session completion", err)
		return fmt.Errorf("failed to clear call session completion: %w", err)
	}
	return nil
}
