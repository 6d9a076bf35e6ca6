package dto

// AssignRequest places one staff member on a shift. BypassValidation is
// honored only for general managers.
type AssignRequest struct {
	UserID           string `json:"userId" binding:"required,uuid"`
	Role             string `json:"role" binding:"required,oneof=bartender barback"`
	IsLead           bool   `json:"isLead"`
	IsOnCall         bool   `json:"isOnCall"`
	BypassValidation bool   `json:"bypassValidation"`
}

// AssignSummary breaks an auto-assign run down by slot kind.
type AssignSummary struct {
	LeadsAssigned      int `json:"leadsAssigned"`
	BartendersAssigned int `json:"bartendersAssigned"`
	BarbacksAssigned   int `json:"barbacksAssigned"`
}

// AutoAssignResult reports one shift's auto-assign run.
type AutoAssignResult struct {
	Assigned int           `json:"assigned"`
	Summary  AssignSummary `json:"summary"`
}

// AutoScheduleQuery selects the shifts a batch run covers.
type AutoScheduleQuery struct {
	VenueID   string `form:"venueId" binding:"omitempty,uuid"`
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
}

// AutoScheduleResult aggregates a batch run. Shifts already fully staffed
// are skipped and not counted in Processed.
type AutoScheduleResult struct {
	Processed int `json:"processed"`
	Assigned  int `json:"assigned"`
}

// CandidateQuery selects the slot kind to rank candidates for.
type CandidateQuery struct {
	Slot string `form:"slot" binding:"required,oneof=LEAD BARTENDER BARBACK"`
}

// Candidate is one ranked entry for an open slot.
type Candidate struct {
	StaffID      string `json:"staff_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	IsLead       bool   `json:"is_lead"`
	Availability string `json:"availability"` // available | unknown
}
