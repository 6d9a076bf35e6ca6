package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/service"
	"venuecrew/backend/pkg/response"
)

// AssignmentHandler serves assignment and staffing-engine endpoints.
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
	validationSvc service.ValidationService
	rankingSvc    service.RankingService
	plannerSvc    service.PlannerService
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(
	assignmentSvc service.AssignmentService,
	validationSvc service.ValidationService,
	rankingSvc service.RankingService,
	plannerSvc service.PlannerService,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentSvc: assignmentSvc,
		validationSvc: validationSvc,
		rankingSvc:    rankingSvc,
		plannerSvc:    plannerSvc,
	}
}

// Assign places a staff member on a shift. Returns 422 with the violation
// list when validation fails.
// POST /api/v1/shifts/:id/assignments
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.Assign(c.Request.Context(), c.Param("id"), &req, actorID, role)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.Created(c, assignment)
}

// List returns a shift's assignments.
// GET /api/v1/shifts/:id/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignmentSvc.ListByShift(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, gin.H{"list": assignments})
}

// Unassign removes an assignment.
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.assignmentSvc.Unassign(c.Request.Context(), c.Param("id"), actorID); err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, nil)
}

// Validate runs the conflict checks without committing anything.
// POST /api/v1/shifts/:id/validate
func (h *AssignmentHandler) Validate(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "invalid request body")
		return
	}

	violations, err := h.validationSvc.Validate(c.Request.Context(), service.Candidate{
		UserID:  req.UserID,
		ShiftID: c.Param("id"),
		Role:    req.Role,
		IsLead:  req.IsLead,
	})
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, gin.H{"violations": violations, "valid": len(violations) == 0})
}

// Candidates returns the ranked candidate list for a slot kind.
// GET /api/v1/shifts/:id/candidates?slot=LEAD|BARTENDER|BARBACK
func (h *AssignmentHandler) Candidates(c *gin.Context) {
	var query dto.CandidateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 15001, "slot must be LEAD, BARTENDER or BARBACK")
		return
	}

	candidates, err := h.rankingSvc.RankCandidates(c.Request.Context(), c.Param("id"), query.Slot)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, gin.H{"list": candidates})
}

// AutoAssign fills a single shift's open slots.
// POST /api/v1/shifts/:id/auto-assign
func (h *AssignmentHandler) AutoAssign(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.plannerSvc.AutoAssign(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, result)
}

// AutoSchedule runs auto-assign across a date range.
// POST /api/v1/auto-schedule?venueId&startDate&endDate
func (h *AssignmentHandler) AutoSchedule(c *gin.Context) {
	var query dto.AutoScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 15001, "startDate and endDate are required, formatted YYYY-MM-DD")
		return
	}

	start, err := time.Parse("2006-01-02", query.StartDate)
	if err != nil {
		response.BadRequest(c, 15001, "invalid startDate")
		return
	}
	end, err := time.Parse("2006-01-02", query.EndDate)
	if err != nil {
		response.BadRequest(c, 15001, "invalid endDate")
		return
	}
	if end.Before(start) {
		response.BadRequest(c, 15002, "endDate must not precede startDate")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.plannerSvc.AutoSchedule(c.Request.Context(), query.VenueID, start, end, actorID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.UnprocessableEntity(c, 15101, "validation failed",
			gin.H{"errors": validationErr.Violations})
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14101, "shift not found")
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 12101, "staff member not found")
	case errors.Is(err, service.ErrVenueNotFound):
		response.NotFound(c, 11101, "venue not found")
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 15102, "assignment not found")
	case errors.Is(err, service.ErrAlreadyAssigned):
		response.Conflict(c, 15103, "staff member is already assigned to this shift")
	case errors.Is(err, service.ErrBypassForbidden):
		response.Forbidden(c, 15104, "only general managers may bypass validation")
	default:
		response.InternalError(c)
	}
}
