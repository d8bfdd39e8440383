package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"intake-agent/internal/observability"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingField      = errors.New("missing required intake field")
	ErrInvalidParameters = errors.New("invalid intake parameters")
	ErrUnsupportedAction = errors.New("action type not supported by agent config")
)

// ActionType identifies an action the dialogue policy may invoke.
type ActionType string

const ActionTypeCollectData ActionType = "action_collect_data"

const collectDataDescription = `Records the intake data collected from the patient.
Call this once the patient has chosen an appointment, with every field filled in.
Returns the normalized intake record.`

// ActionConfig selects an action for an agent.
type ActionConfig struct {
	Type ActionType `json:"type"`
}

// Action is a tool callable by a dialogue policy mid-conversation.
type Action interface {
	Name() string
	Description() string
	JSONSchema() map[string]any
	// Execute decodes raw tool-call arguments and runs the action.
	Execute(ctx context.Context, args json.RawMessage) (Record, error)
}

// Parameters is the argument set of the collect-data tool.
type Parameters struct {
	PatientName       string `json:"patient_name" validate:"required"`
	DOB               string `json:"dob" validate:"required"`
	InsuranceName     string `json:"insurance_name" validate:"required"`
	InsuranceID       string `json:"insurance_id" validate:"required"`
	Referral          *bool  `json:"referral" validate:"required"`
	ReferralPhysician string `json:"referral_physician" validate:"required_if=Referral true"`
	Reason            string `json:"reason" validate:"required"`
	Address           string `json:"address" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	Email             string `json:"email" validate:"required"`
	BookedProvider    string `json:"booked_provider" validate:"required"`
	BookedDate        string `json:"booked_date" validate:"required"`
}

// normalized returns a copy with every string field trimmed.
func (p Parameters) normalized() Parameters {
	p.PatientName = strings.TrimSpace(p.PatientName)
	p.DOB = strings.TrimSpace(p.DOB)
	p.InsuranceName = strings.TrimSpace(p.InsuranceName)
	p.InsuranceID = strings.TrimSpace(p.InsuranceID)
	p.ReferralPhysician = strings.TrimSpace(p.ReferralPhysician)
	p.Reason = strings.TrimSpace(p.Reason)
	p.Address = strings.TrimSpace(p.Address)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	p.BookedProvider = strings.TrimSpace(p.BookedProvider)
	p.BookedDate = strings.TrimSpace(p.BookedDate)
	return p
}

// CollectDataAction validates and normalizes intake fields into a Record.
// It holds no per-call state, so one instance serves every call.
type CollectDataAction struct {
	validate *validator.Validate
	logger   *observability.Logger
}

func NewCollectDataAction(logger *observability.Logger) *CollectDataAction {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CollectDataAction{
		validate: v,
		logger:   logger,
	}
}

func (a *CollectDataAction) Name() string {
	return string(ActionTypeCollectData)
}

func (a *CollectDataAction) Description() string {
	return collectDataDescription
}

func (a *CollectDataAction) JSONSchema() map[string]any {
	return JSONSchema()
}

func (a *CollectDataAction) Execute(ctx context.Context, args json.RawMessage) (Record, error) {
	var params Parameters
	if err := json.Unmarshal(args, &params); err != nil {
		a.logger.Error(ctx, "failed to decode collect data arguments", err)
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return a.Run(ctx, params)
}

// Run trims every string field, validates the result and builds the Record.
func (a *CollectDataAction) Run(ctx context.Context, params Parameters) (Record, error) {
	params = params.normalized()

	if err := a.validate.Struct(params); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			a.logger.Error(ctx, "collect data validation failed", err)
			return Record{}, fmt.Errorf("%w: %s", ErrMissingField, buildValidationMessage(validationErrs))
		}
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	record := Record{
		PatientName:       params.PatientName,
		DOB:               params.DOB,
		InsuranceName:     params.InsuranceName,
		InsuranceID:       params.InsuranceID,
		Referral:          *params.Referral,
		ReferralPhysician: params.ReferralPhysician,
		Reason:            params.Reason,
		Address:           params.Address,
		Phone:             params.Phone,
		Email:             params.Email,
		BookedProvider:    params.BookedProvider,
		BookedDate:        params.BookedDate,
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "action", Value: a.Name()},
		observability.Field{Key: "booked_provider", Value: record.BookedProvider},
		observability.Field{Key: "booked_date", Value: record.BookedDate},
	)
	a.logger.Info(ctx, "Successfully collected data")

	return record, nil
}

func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	names := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		names = append(names, fieldErr.Field())
	}
	return strings.Join(names, ", ")
}

// ActionFactory builds the actions an agent config asks for.
type ActionFactory struct {
	logger *observability.Logger
}

func NewActionFactory(logger *observability.Logger) *ActionFactory {
	return &ActionFactory{logger: logger}
}

func (f *ActionFactory) CreateAction(cfg ActionConfig) (Action, error) {
	switch cfg.Type {
	case ActionTypeCollectData:
		return NewCollectDataAction(f.logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAction, cfg.Type)
	}
}
