package dto

// RequestOverrideRequest asks the named staff member to accept a
// conflicting assignment. Role and the lead/on-call flags are recorded so
// an approval commits exactly this assignment.
type RequestOverrideRequest struct {
	ShiftID       string `json:"shiftId" binding:"required,uuid"`
	UserID        string `json:"userId" binding:"required,uuid"`
	Reason        string `json:"reason" binding:"required,max=500"`
	ViolationType string `json:"violationType" binding:"required,max=50"`
	Role          string `json:"role" binding:"required,oneof=bartender barback"`
	IsLead        bool   `json:"isLead"`
	IsOnCall      bool   `json:"isOnCall"`
}

// ResolveOverrideRequest approves or declines a pending override.
type ResolveOverrideRequest struct {
	Action string `json:"action" binding:"required,oneof=approve decline"`
}

// ListOverridesQuery filters overrides.
type ListOverridesQuery struct {
	PaginationRequest
	StaffID string `form:"staff_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=pending approved declined"`
}
