package store

import (
	"context"
	"testing"

	"intake-agent/internal/intake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// DefaultRecord returns a fully populated intake record.
func DefaultRecord() intake.Record {
	return intake.Record{
		PatientName:    "Jane Doe",
		DOB:            "1990-01-01",
		InsuranceName:  "Aetna",
		InsuranceID:    "AET-123",
		Referral:       false,
		Reason:         "annual checkup",
		Address:        "1 Main St, Springfield",
		Phone:          "+15551234567",
		Email:          "jane@example.com",
		BookedProvider: "Dr. Pickle",
		BookedDate:     "July 3rd at 11:00 a.m.",
	}
}

// CreateIntakeRecord stores a record under a random call sid.
func (f *Fixtures) CreateIntakeRecord(opts ...func(*CreateIntakeRecordParams)) IntakeRecord {
	f.t.Helper()
	params := CreateIntakeRecordParams{
		CallSID: "CA" + uuid.NewString(),
		Record:  DefaultRecord(),
	}
	for _, fn := range opts {
		fn(&params)
	}

	record, err := f.testDB.Store.CreateIntakeRecord(f.ctx, params)
	require.NoError(f.t, err)
	return record
}
