package dto

// PaginationRequest is the standard page/page_size query pair.
type PaginationRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (p *PaginationRequest) GetPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize < 1 {
		return 20
	}
	if p.PageSize > 100 {
		return 100
	}
	return p.PageSize
}

func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// Violation type tags, machine-readable.
const (
	ViolationDoubleBooking   = "double_booking"
	ViolationAvailability    = "availability_conflict"
	ViolationDayJob          = "day_job_conflict"
	ViolationVenueIneligible = "venue_ineligible"
	ViolationRoleMismatch    = "role_mismatch"
	ViolationLeadIneligible  = "lead_ineligible"
)

// Violation is one scheduling-rule failure found for a candidate.
// Suggestion is a short hint on how to fix it.
type Violation struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	Suggestion    string `json:"suggestion"`
	ViolationType string `json:"violationType"`
}
