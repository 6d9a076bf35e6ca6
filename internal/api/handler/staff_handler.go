package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/service"
	pkgerrors "venuecrew/backend/pkg/errors"
	"venuecrew/backend/pkg/response"
)

// StaffHandler serves the staff directory endpoints.
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// Create adds a staff member.
// POST /api/v1/staff
func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	staff, err := h.staffSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}
	response.Created(c, staff)
}

// Get returns one staff member with affiliations.
// GET /api/v1/staff/:id
func (h *StaffHandler) Get(c *gin.Context) {
	staff, err := h.staffSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleStaffError(c, err)
		return
	}
	response.OK(c, staff)
}

// List returns the staff directory, filtered and paginated.
// GET /api/v1/staff
func (h *StaffHandler) List(c *gin.Context) {
	var query dto.ListStaffQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 12001, "invalid query parameters")
		return
	}

	members, total, err := h.staffSvc.List(c.Request.Context(), &query)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}
	response.OKPage(c, members, total, query.GetPage(), query.GetPageSize())
}

// Update patches a staff member.
// PATCH /api/v1/staff/:id
func (h *StaffHandler) Update(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	staff, err := h.staffSvc.Update(c.Request.Context(), c.Param("id"), &req, actorID)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}
	response.OK(c, staff)
}

// Delete soft-deletes a staff member.
// DELETE /api/v1/staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.staffSvc.Delete(c.Request.Context(), c.Param("id"), actorID); err != nil {
		h.handleStaffError(c, err)
		return
	}
	response.OK(c, nil)
}

// SetVenues replaces a staff member's venue affiliations.
// PUT /api/v1/staff/:id/venues
func (h *StaffHandler) SetVenues(c *gin.Context) {
	var req dto.SetVenuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	staff, err := h.staffSvc.SetVenues(c.Request.Context(), c.Param("id"), req.VenueIDs, actorID)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}
	response.OK(c, staff)
}

func (h *StaffHandler) handleStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 12101, "staff member not found")
	case errors.Is(err, service.ErrVenueNotFound):
		response.NotFound(c, 11101, "venue not found")
	case errors.Is(err, service.ErrLeadMustBeBartender):
		response.BadRequest(c, 12102, "only bartenders can carry the lead flag")
	case errors.Is(err, service.ErrInvalidCutoff):
		response.BadRequest(c, 12103, "day job cutoff must be formatted HH:MM")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 12104, "record was modified concurrently, refresh and retry")
	default:
		response.InternalError(c)
	}
}
