package intake

// Record is the structured set of patient fields collected during one call.
// A Record is built once by the collect-data action and is not mutated after.
type Record struct {
	PatientName       string `json:"patient_name" db:"patient_name"`
	DOB               string `json:"dob" db:"dob"`
	InsuranceName     string `json:"insurance_name" db:"insurance_name"`
	InsuranceID       string `json:"insurance_id" db:"insurance_id"`
	Referral          bool   `json:"referral" db:"referral"`
	ReferralPhysician string `json:"referral_physician" db:"referral_physician"`
	Reason            string `json:"reason" db:"reason"`
	Address           string `json:"address" db:"address"`
	Phone             string `json:"phone" db:"phone"`
	Email             string `json:"email" db:"email"`
	BookedProvider    string `json:"booked_provider" db:"booked_provider"`
	BookedDate        string `json:"booked_date" db:"booked_date"`
}

// Fields exposes the record as a map keyed by schema field name.
func (r Record) Fields() map[string]any {
	return map[string]any{
		FieldPatientName:       r.PatientName,
		FieldDOB:               r.DOB,
		FieldInsuranceName:     r.InsuranceName,
		FieldInsuranceID:       r.InsuranceID,
		FieldReferral:          r.Referral,
		FieldReferralPhysician: r.ReferralPhysician,
		FieldReason:            r.Reason,
		FieldAddress:           r.Address,
		FieldPhone:             r.Phone,
		FieldEmail:             r.Email,
		FieldBookedProvider:    r.BookedProvider,
		FieldBookedDate:        r.BookedDate,
	}
}
