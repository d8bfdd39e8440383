package apierrors

import (
	"errors"
	"strings"

	"intake-agent/internal/intake"
	intakesProcessor "intake-agent/internal/intakes/processor"
	"intake-agent/internal/store"
	"intake-agent/internal/voicecall/processor"
	"intake-agent/internal/voicecall/session"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map call processor errors
	case errors.Is(err, processor.ErrMissingCallSID):
		return BadRequest(CodeMissingCallSID, "CallSid is required")

	case errors.Is(err, processor.ErrCallCompleted):
		return Conflict(CodeCallCompleted, "Call has already completed")

	case errors.Is(err, session.ErrSessionNotFound):
		return NotFound(CodeCallNotFound, "Call not found")

	case errors.Is(err, processor.ErrSendConfirmation):
		return ServiceUnavailable(
			CodeSMSServiceError,
			"Confirmation message could not be sent.",
			err,
		)

	// Map intake action errors
	case errors.Is(err, intake.ErrMissingField):
		return BadRequest(CodeIncompleteIntake, "Intake data is incomplete")

	case errors.Is(err, intake.ErrInvalidParameters):
		return BadRequest(CodeInvalidToolArguments, "Intake data is malformed")

	// Map intake read API errors
	case errors.Is(err, intakesProcessor.ErrIntakeNotFound):
		return NotFound(CodeIntakeNotFound, "Intake record not found")

	case errors.Is(err, intakesProcessor.ErrInvalidPage):
		return BadRequest(CodeInvalidInput, "limit must be between 1 and 100 and offset must not be negative")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeIntakeNotFound, "Intake record not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// Email service errors (Resend)
	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// AI service errors (OpenAI, Gemini)
	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "gemini") ||
		strings.Contains(errMsg, "chat completion") || strings.Contains(errMsg, "ai service") {
		return ServiceUnavailable(
			CodeAIServiceError,
			"AI service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
