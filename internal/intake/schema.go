package intake

// Field names of the intake schema. They double as JSON keys in tool-call
// arguments, in Record.Fields and in stored rows.
const (
	FieldPatientName       = "patient_name"
	FieldDOB               = "dob"
	FieldInsuranceName     = "insurance_name"
	FieldInsuranceID       = "insurance_id"
	FieldReferral          = "referral"
	FieldReferralPhysician = "referral_physician"
	FieldReason            = "reason"
	FieldAddress           = "address"
	FieldPhone             = "phone"
	FieldEmail             = "email"
	FieldBookedProvider    = "booked_provider"
	FieldBookedDate        = "booked_date"
)

// FieldType is the JSON schema type of a field.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeBoolean FieldType = "boolean"
)

// FieldSpec describes one field the dialogue policy must collect.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Description string
}

// Schema lists the fields collected on every call, in the order they are asked.
var Schema = []FieldSpec{
	{FieldPatientName, FieldTypeString, "The patient's name."},
	{FieldDOB, FieldTypeString, "The patient's date of birth."},
	{FieldInsuranceName, FieldTypeString, "The patient's insurance provider's name."},
	{FieldInsuranceID, FieldTypeString, "The patient's insurance ID."},
	{FieldReferral, FieldTypeBoolean, "Whether or not the patient has a referral."},
	{FieldReferralPhysician, FieldTypeString, "The name of the physician the patient was referred to. Empty when there is no referral."},
	{FieldReason, FieldTypeString, "The patient's chief medical complaint/reason they are calling."},
	{FieldAddress, FieldTypeString, "The patient's address."},
	{FieldPhone, FieldTypeString, "The patient's phone number."},
	{FieldEmail, FieldTypeString, "The patient's email address."},
	{FieldBookedProvider, FieldTypeString, "The name of the doctor the patient is booked for."},
	{FieldBookedDate, FieldTypeString, "The date and time of the appointment the patient is booked for."},
}

// JSONSchema returns the object schema of the collect-data tool parameters.
// Every field is required.
func JSONSchema() map[string]any {
	properties := make(map[string]any, len(Schema))
	required := make([]string, 0, len(Schema))
	for _, f := range Schema {
		properties[f.Name] = map[string]any{
			"type":        string(f.Type),
			"description": f.Description,
		}
		required = append(required, f.Name)
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
