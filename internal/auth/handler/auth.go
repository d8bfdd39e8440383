package handler

import (
	"context"
	"strings"

	"intake-agent/internal/apierrors"
	"intake-agent/internal/auth/processor"
	"intake-agent/internal/observability"

	"github.com/gin-gonic/gin"
)

// ContextKeySubject holds the authenticated token subject on the gin context.
const ContextKeySubject = "Subject"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
}

type Handler struct {
	validator TokenValidator
	logger    *observability.Logger
}

func New(validator TokenValidator, logger *observability.Logger) Handler {
	return Handler{
		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.validator.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized(err.Error()))
		return
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Token has no subject"))
		return
	}

	c.Set(ContextKeySubject, sub)
	c.Next()
}
