package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"intake-agent/internal/intake"
	"intake-agent/internal/store"
	"intake-agent/internal/voicecall/processor"
	"intake-agent/internal/voicecall/session"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "missing call sid", err: processor.ErrMissingCallSID, wantStatus: http.StatusBadRequest, wantCode: CodeMissingCallSID},
		{name: "completed call", err: processor.ErrCallCompleted, wantStatus: http.StatusConflict, wantCode: CodeCallCompleted},
		{name: "unknown call", err: fmt.Errorf("failed to load call session: %w", session.ErrSessionNotFound), wantStatus: http.StatusNotFound, wantCode: CodeCallNotFound},
		{name: "sms failure", err: fmt.Errorf("%w: boom", processor.ErrSendConfirmation), wantStatus: http.StatusServiceUnavailable, wantCode: CodeSMSServiceError},
		{name: "missing intake field", err: fmt.Errorf("agent failed to respond: %w", intake.ErrMissingField), wantStatus: http.StatusBadRequest, wantCode: CodeIncompleteIntake},
		{name: "malformed tool args", err: intake.ErrInvalidParameters, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidToolArguments},
		{name: "intake not found", err: store.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: CodeIntakeNotFound},
		{name: "openai outage", err: errors.New("failed to create chat completion: 503"), wantStatus: http.StatusServiceUnavailable, wantCode: CodeAIServiceError},
		{name: "resend outage", err: errors.New("resend: failed to send email"), wantStatus: http.StatusServiceUnavailable, wantCode: CodeEmailServiceError},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: CodeInternalError},
		{name: "already an api error", err: Unauthorized("nope"), wantStatus: http.StatusUnauthorized, wantCode: CodeUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			apiErr := MapError(tt.err)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}

	assert.Nil(t, MapError(nil))
}

func TestRespondWithError_SanitizesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithError(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeInternalError, body.Code)
	assert.NotContains(t, body.Error, "password")
	assert.True(t, c.IsAborted())
}

type createRequest struct {
	Email string `validate:"required,email"`
	Limit int    `validate:"lte=100"`
}

func TestRespondWithValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	err := validator.New().Struct(createRequest{Limit: 500})
	RespondWithValidationError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeInvalidInput, body.Code)
	assert.Contains(t, body.Error, "Email is required")
	assert.Contains(t, body.Error, "Limit must be less than or equal to 100")
}
