package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/repository"
	"venuecrew/backend/internal/service"
	"venuecrew/backend/pkg/response"
)

// OverrideHandler serves the override workflow endpoints.
type OverrideHandler struct {
	overrideSvc service.OverrideService
}

// NewOverrideHandler creates an OverrideHandler.
func NewOverrideHandler(overrideSvc service.OverrideService) *OverrideHandler {
	return &OverrideHandler{overrideSvc: overrideSvc}
}

// Create requests an override for a validation conflict.
// POST /api/v1/overrides
func (h *OverrideHandler) Create(c *gin.Context) {
	var req dto.RequestOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	override, err := h.overrideSvc.Request(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleOverrideError(c, err)
		return
	}
	response.Created(c, override)
}

// Resolve approves or declines a pending override. Only the staff member
// named in it may call this.
// PATCH /api/v1/overrides/:id
func (h *OverrideHandler) Resolve(c *gin.Context) {
	var req dto.ResolveOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "action must be approve or decline")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var (
		override interface{}
		err      error
	)
	if req.Action == "approve" {
		override, err = h.overrideSvc.Approve(c.Request.Context(), c.Param("id"), actorID)
	} else {
		override, err = h.overrideSvc.Decline(c.Request.Context(), c.Param("id"), actorID)
	}
	if err != nil {
		h.handleOverrideError(c, err)
		return
	}
	response.OK(c, override)
}

// Get returns one override.
// GET /api/v1/overrides/:id
func (h *OverrideHandler) Get(c *gin.Context) {
	override, err := h.overrideSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleOverrideError(c, err)
		return
	}
	response.OK(c, override)
}

// List returns overrides, filtered and paginated.
// GET /api/v1/overrides
func (h *OverrideHandler) List(c *gin.Context) {
	var query dto.ListOverridesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 16001, "invalid query parameters")
		return
	}

	filter := repository.OverrideFilter{StaffID: query.StaffID, Status: query.Status}
	overrides, total, err := h.overrideSvc.List(c.Request.Context(), filter, query.GetOffset(), query.GetPageSize())
	if err != nil {
		h.handleOverrideError(c, err)
		return
	}
	response.OKPage(c, overrides, total, query.GetPage(), query.GetPageSize())
}

func (h *OverrideHandler) handleOverrideError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOverrideNotFound):
		response.NotFound(c, 16101, "override not found")
	case errors.Is(err, service.ErrOverrideResolved):
		response.Conflict(c, 16102, "override has already been resolved")
	case errors.Is(err, service.ErrOverrideNotOwner):
		response.Forbidden(c, 16103, "only the staff member named in the override may resolve it")
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14101, "shift not found")
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 12101, "staff member not found")
	case errors.Is(err, service.ErrAlreadyAssigned):
		response.Conflict(c, 15103, "staff member is already assigned to this shift")
	default:
		response.InternalError(c)
	}
}
