package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"net/url"

	"intake-agent/internal/apierrors"
	"intake-agent/internal/observability"

	"github.com/gin-gonic/gin"
)

// CallService runs the intake dialogue for Twilio voice webhooks.
type CallService interface {
	StartCall(ctx context.Context, callSID, from string) (string, error)
	ProcessTurn(ctx context.Context, callSID, speech string) (string, error)
	EndCall(ctx context.Context, callSID, status string) error
}

// SignatureValidator checks the X-Twilio-Signature of a webhook request.
type SignatureValidator interface {
	ValidateRequest(fullURL string, params url.Values, signature string) bool
}

type Handler struct {
	calls  CallService
	logger *observability.Logger
}

func New(calls CallService, logger *observability.Logger) Handler {
	return Handler{
		calls:  calls,
		logger: logger,
	}
}

// HandleInboundCall answers a new call with the greeting.
func (h *Handler) HandleInboundCall(c *gin.Context) {
	ctx := c.Request.Context()

	twimlResult, err := h.calls.StartCall(ctx, c.PostForm("CallSid"), c.PostForm("From"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	respondTwiML(c, twimlResult)
}

// HandleTurn receives the caller's transcribed speech for one turn.
func (h *Handler) HandleTurn(c *gin.Context) {
	ctx := c.Request.Context()

	twimlResult, err := h.calls.ProcessTurn(ctx, c.PostForm("CallSid"), c.PostForm("SpeechResult"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	respondTwiML(c, twimlResult)
}

// HandleStatus receives Twilio's call status callback.
func (h *Handler) HandleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.calls.EndCall(ctx, c.PostForm("CallSid"), c.PostForm("CallStatus")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ValidateTwilioSignature rejects webhook requests that were not signed with
// the account's auth token. Twilio signs the public URL it called, so the
// configured base URL is used instead of the request's Host.
func ValidateTwilioSignature(validator SignatureValidator, baseURL string, logger *observability.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := c.Request.ParseForm(); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}

		fullURL := baseURL + c.Request.URL.RequestURI()
		signature := c.GetHeader("X-Twilio-Signature")
		if signature == "" || !validator.ValidateRequest(fullURL, c.Request.PostForm, signature) {
			logger.Warn(ctx, "rejected webhook with invalid Twilio signature")
			apierrors.RespondWithError(c, apierrors.Forbidden("Invalid request signature"))
			return
		}

		c.Next()
	}
}

func respondTwiML(c *gin.Context, twimlResult string) {
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, twimlResult)
}
