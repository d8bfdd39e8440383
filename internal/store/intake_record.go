package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"intake-agent/internal/intake"

	"github.com/google/uuid"
)

// IntakeRecord is a collected intake record as stored after its call ended.
type IntakeRecord struct {
	ID      uuid.UUID `db:"id" json:"id"`
	CallSID string    `db:"call_sid" json:"call_sid"`
	intake.Record
	ConfirmationSID sql.NullString `db:"confirmation_sid" json:"-"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

type CreateIntakeRecordParams struct {
	CallSID         string
	Record          intake.Record
	ConfirmationSID string
}

const sqlCreateIntakeRecord = `
INSERT INTO intake_records (
	call_sid, patient_name, dob, insurance_name, insurance_id, referral, referral_physician,
	reason, address, phone, email, booked_provider, booked_date, confirmation_sid
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING *`

func (s *Store) CreateIntakeRecord(ctx context.Context, params CreateIntakeRecordParams) (IntakeRecord, error) {
	r := params.Record
	confirmationSID := sql.NullString{String: params.ConfirmationSID, Valid: params.ConfirmationSID != ""}

	var record IntakeRecord
	err := s.db.GetContext(ctx, &record, sqlCreateIntakeRecord,
		params.CallSID, r.PatientName, r.DOB, r.InsuranceName, r.InsuranceID, r.Referral, r.ReferralPhysician,
		r.Reason, r.Address, r.Phone, r.Email, r.BookedProvider, r.BookedDate, confirmationSID,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create intake record", err)
		return IntakeRecord{}, fmt.Errorf("failed to create intake record: %w", err)
	}
	return record, nil
}

const sqlGetIntakeRecordByID = `
SELECT * FROM intake_records WHERE id = $1`

func (s *Store) GetIntakeRecordByID(ctx context.Context, id uuid.UUID) (IntakeRecord, error) {
	var record IntakeRecord
	err := s.db.GetContext(ctx, &record, sqlGetIntakeRecordByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return IntakeRecord{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get intake record by id", err)
		return IntakeRecord{}, fmt.Errorf("failed to get intake record by id: %w", err)
	}
	return record, nil
}

const sqlGetIntakeRecordByCallSID = `
SELECT * FROM intake_records WHERE call_sid = $1`

func (s *Store) GetIntakeRecordByCallSID(ctx context.Context, callSID string) (IntakeRecord, error) {
	var record IntakeRecord
	err := s.db.GetContext(ctx, &record, sqlGetIntakeRecordByCallSID, callSID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return IntakeRecord{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get intake record by call sid", err)
		return IntakeRecord{}, fmt.Errorf("failed to get intake record by call sid: %w", err)
	}
	return record, nil
}

const sqlListIntakeRecords = `
SELECT * FROM intake_records
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

func (s *Store) ListIntakeRecords(ctx context.Context, limit, offset int) ([]IntakeRecord, error) {
	records := []IntakeRecord{}
	err := s.db.SelectContext(ctx, &records, sqlListIntakeRecords, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list intake records", err)
		return nil, fmt.Errorf("failed to list intake records: %w", err)
	}
	return records, nil
}
