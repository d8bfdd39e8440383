package handler

import (
	"net/http"

	"intake-agent/internal/apierrors"
	"intake-agent/internal/intakes/processor"
	"intake-agent/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.IntakeProcessor
	logger    *observability.Logger
}

func New(processor processor.IntakeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ListIntakesRequest holds the pagination query parameters
type ListIntakesRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// HandleListIntakes returns collected intake records, newest first
func (h *Handler) HandleListIntakes(c *gin.Context) {
	ctx := c.Request.Context()

	var req ListIntakesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	page, err := h.processor.ListIntakes(ctx, req.Limit, req.Offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleGetIntake returns one intake record
func (h *Handler) HandleGetIntake(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid intake id"))
		return
	}

	record, err := h.processor.GetIntake(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
