package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/service"
	"venuecrew/backend/pkg/response"
)

// VenueHandler serves the venue endpoints.
type VenueHandler struct {
	venueSvc service.VenueService
}

// NewVenueHandler creates a VenueHandler.
func NewVenueHandler(venueSvc service.VenueService) *VenueHandler {
	return &VenueHandler{venueSvc: venueSvc}
}

// Create creates a venue.
// POST /api/v1/venues
func (h *VenueHandler) Create(c *gin.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	venue, err := h.venueSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleVenueError(c, err)
		return
	}
	response.Created(c, venue)
}

// Get returns one venue.
// GET /api/v1/venues/:id
func (h *VenueHandler) Get(c *gin.Context) {
	venue, err := h.venueSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleVenueError(c, err)
		return
	}
	response.OK(c, venue)
}

// List returns venues, paginated.
// GET /api/v1/venues
func (h *VenueHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 11001, "invalid query parameters")
		return
	}

	venues, total, err := h.venueSvc.List(c.Request.Context(), page.GetOffset(), page.GetPageSize())
	if err != nil {
		h.handleVenueError(c, err)
		return
	}
	response.OKPage(c, venues, total, page.GetPage(), page.GetPageSize())
}

// Update patches a venue.
// PATCH /api/v1/venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	venue, err := h.venueSvc.Update(c.Request.Context(), c.Param("id"), &req, actorID)
	if err != nil {
		h.handleVenueError(c, err)
		return
	}
	response.OK(c, venue)
}

// Delete soft-deletes a venue.
// DELETE /api/v1/venues/:id
func (h *VenueHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.venueSvc.Delete(c.Request.Context(), c.Param("id"), actorID); err != nil {
		h.handleVenueError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *VenueHandler) handleVenueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVenueNotFound):
		response.NotFound(c, 11101, "venue not found")
	default:
		response.InternalError(c)
	}
}
