package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"intake-agent/internal/observability"
	"intake-agent/internal/store"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	ErrIntakeNotFound = errors.New("intake record not found")
	ErrInvalidPage    = errors.New("invalid pagination parameters")
)

// IntakeStore defines the database operations required by IntakeProcessor
type IntakeStore interface {
	GetIntakeRecordByID(ctx context.Context, id uuid.UUID) (store.IntakeRecord, error)
	ListIntakeRecords(ctx context.Context, limit, offset int) ([]store.IntakeRecord, error)
}

type IntakeProcessor struct {
	store  IntakeStore
	logger *observability.Logger
}

func New(store IntakeStore, logger *observability.Logger) IntakeProcessor {
	return IntakeProcessor{
		store:  store,
		logger: logger,
	}
}

// Page is one page of intake records, newest first.
type Page struct {
	Records []store.IntakeRecord `json:"records"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

func (p *IntakeProcessor) GetIntake(ctx context.Context, id uuid.UUID) (store.IntakeRecord, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "intake_id", Value: id})

	record, err := p.store.GetIntakeRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.IntakeRecord{}, ErrIntakeNotFound
		}
		p.logger.Error(ctx, "failed to get intake record", err)
		return store.IntakeRecord{}, err
	}
	return record, nil
}

// ListIntakes returns a page of records. A zero limit selects DefaultLimit.
func (p *IntakeProcessor) ListIntakes(ctx context.Context, limit, offset int) (Page, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 || limit > MaxLimit || offset < 0 {
		return Page{}, ErrInvalidPage
	}

	records, err := p.store.ListIntakeRecords(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list intake records", err)
		return Page{}, err
	}

	return Page{Records: records, Limit: limit, Offset: offset}, nil
}
