package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/service"
	pkgerrors "venuecrew/backend/pkg/errors"
	"venuecrew/backend/pkg/response"
)

// ShiftHandler serves the shift endpoints.
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler creates a ShiftHandler.
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// Create creates a shift.
// POST /api/v1/shifts
func (h *ShiftHandler) Create(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.Created(c, shift)
}

// Get returns one shift.
// GET /api/v1/shifts/:id
func (h *ShiftHandler) Get(c *gin.Context) {
	shift, err := h.shiftSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, shift)
}

// List returns shifts filtered by venue and date range, paginated.
// GET /api/v1/shifts
func (h *ShiftHandler) List(c *gin.Context) {
	var query dto.ListShiftsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 14001, "invalid query parameters")
		return
	}

	shifts, total, err := h.shiftSvc.List(c.Request.Context(), &query)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OKPage(c, shifts, total, query.GetPage(), query.GetPageSize())
}

// Update patches a shift.
// PATCH /api/v1/shifts/:id
func (h *ShiftHandler) Update(c *gin.Context) {
	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.Update(c.Request.Context(), c.Param("id"), &req, actorID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, shift)
}

// Delete soft-deletes a shift.
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.shiftSvc.Delete(c.Request.Context(), c.Param("id"), actorID); err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, nil)
}

// PostTrade flags the shift as up for trade.
// POST /api/v1/shifts/:id/trade
func (h *ShiftHandler) PostTrade(c *gin.Context) {
	var req dto.TradeShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.PostTrade(c.Request.Context(), c.Param("id"), req.Reason, actorID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, shift)
}

// ClearTrade removes the up-for-trade flag.
// DELETE /api/v1/shifts/:id/trade
func (h *ShiftHandler) ClearTrade(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.ClearTrade(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, shift)
}

func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14101, "shift not found")
	case errors.Is(err, service.ErrVenueNotFound):
		response.NotFound(c, 11101, "venue not found")
	case errors.Is(err, service.ErrInvalidShiftTime):
		response.BadRequest(c, 14102, "shift times must be formatted HH:MM")
	case errors.Is(err, service.ErrShiftNotOnTrade):
		response.Conflict(c, 14103, "shift is not up for trade")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 14104, "record was modified concurrently, refresh and retry")
	default:
		response.InternalError(c)
	}
}
