package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"fmt"
	"time"

	"intake-agent/internal/observability"
)

const window = time.Minute

// Counter increments a counter that expires at the end of its window.
type Counter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed   bool      `json:"allowed"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Service applies a fixed one minute window per caller key
type Service struct {
	counter Counter
	limit   int
	logger  *observability.Logger
	now     func() time.Time
}

func NewService(counter Counter, requestsPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		counter: counter,
		limit:   requestsPerMinute,
		logger:  logger,
		now:     time.Now,
	}
}

// Check counts one request for callerKey. A failing counter lets the request
// through so the read API stays available when Redis is down.
func (s *Service) Check(ctx context.Context, callerKey string) Result {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: callerKey},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	now := s.now()
	windowStart := now.Truncate(window)
	resetAt := windowStart.Add(window)
	key := fmt.Sprintf("rl:%s:%d", callerKey, windowStart.Unix())

	count, err := s.counter.IncrWindow(ctx, key, window)
	if err != nil {
		s.logger.Error(ctx, "rate limit check failed, allowing request", err)
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: resetAt}
	}

	remaining := s.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   int(count) <= s.limit,
		Limit:     s.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
