package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/service"
	pkgerrors "venuecrew/backend/pkg/errors"
	"venuecrew/backend/pkg/response"
)

// TipsHandler serves the tip distribution endpoints.
type TipsHandler struct {
	tipsSvc service.TipsService
}

// NewTipsHandler creates a TipsHandler.
func NewTipsHandler(tipsSvc service.TipsService) *TipsHandler {
	return &TipsHandler{tipsSvc: tipsSvc}
}

// SetTips distributes an even per-person amount across a shift's roster.
// POST /api/v1/shifts/:id/tips
func (h *TipsHandler) SetTips(c *gin.Context) {
	var req dto.SetTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 17001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignments, err := h.tipsSvc.SetTips(c.Request.Context(), c.Param("id"), req.PerPersonAmount, actorID)
	if err != nil {
		h.handleTipsError(c, err)
		return
	}
	response.OK(c, gin.H{"assignments": assignments})
}

// Publish freezes the shift's tip amounts and notifies the roster.
// POST /api/v1/shifts/:id/tips/publish
func (h *TipsHandler) Publish(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	shift, err := h.tipsSvc.Publish(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		h.handleTipsError(c, err)
		return
	}
	response.OK(c, shift)
}

func (h *TipsHandler) handleTipsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14101, "shift not found")
	case errors.Is(err, service.ErrVenueNotFound):
		response.NotFound(c, 11101, "venue not found")
	case errors.Is(err, service.ErrNegativeTipAmount):
		response.BadRequest(c, 17101, "tip amount must not be negative")
	case errors.Is(err, service.ErrTipPoolDisabled):
		response.BadRequest(c, 17102, "tip pooling is not enabled at this venue")
	case errors.Is(err, service.ErrNoAssignments):
		response.BadRequest(c, 17103, "shift has no assignments")
	case errors.Is(err, service.ErrTipsPublished):
		response.Conflict(c, 17104, "tips for this shift have already been published")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 17105, "record was modified concurrently, refresh and retry")
	default:
		response.InternalError(c)
	}
}
