package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/service"
	pkgerrors "venuecrew/backend/pkg/errors"
	"venuecrew/backend/pkg/response"
)

// AvailabilityHandler serves the monthly availability endpoints.
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// Submit upserts the target member's availability for a month. Workers may
// only submit their own; managers may submit for anyone.
// PUT /api/v1/staff/:id/availability
func (h *AvailabilityHandler) Submit(c *gin.Context) {
	var req dto.SubmitAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "invalid request body")
		return
	}

	staffID := c.Param("id")
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	if staffID != actorID && role != model.RoleManager && role != model.RoleGeneralManager {
		response.Forbidden(c, 10003, "cannot submit availability for another staff member")
		return
	}

	record, err := h.availabilitySvc.Submit(c.Request.Context(), staffID, &req)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, record)
}

// Get returns one member's availability for a month.
// GET /api/v1/staff/:id/availability?month=YYYY-MM
func (h *AvailabilityHandler) Get(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, 13001, "month is required")
		return
	}

	record, err := h.availabilitySvc.Get(c.Request.Context(), c.Param("id"), month)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, record)
}

// Lock closes a month for edits.
// POST /api/v1/staff/:id/availability/lock?month=YYYY-MM
func (h *AvailabilityHandler) Lock(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, 13001, "month is required")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	record, err := h.availabilitySvc.Lock(c.Request.Context(), c.Param("id"), month, actorID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, record)
}

// Unlock grants a one-shot edit window on a locked month.
// POST /api/v1/staff/:id/availability/unlock?month=YYYY-MM
func (h *AvailabilityHandler) Unlock(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, 13001, "month is required")
		return
	}

	var req dto.UnlockAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	record, err := h.availabilitySvc.Unlock(c.Request.Context(), c.Param("id"), month, req.Reason, actorID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, record)
}

// Relock clears an unlock grant.
// POST /api/v1/staff/:id/availability/relock?month=YYYY-MM
func (h *AvailabilityHandler) Relock(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, 13001, "month is required")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	record, err := h.availabilitySvc.Relock(c.Request.Context(), c.Param("id"), month, actorID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, record)
}

func (h *AvailabilityHandler) handleAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAvailabilityNotFound):
		response.NotFound(c, 13101, "availability record not found")
	case errors.Is(err, service.ErrAvailabilityLocked):
		response.Conflict(c, 13102, "availability for this month is locked")
	case errors.Is(err, service.ErrInvalidMonth):
		response.BadRequest(c, 13103, "month must be formatted YYYY-MM")
	case errors.Is(err, service.ErrInvalidDay):
		response.BadRequest(c, 13104, "day entries must map a valid day of month to available or unavailable")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 13105, "record was modified concurrently, refresh and retry")
	default:
		response.InternalError(c)
	}
}
