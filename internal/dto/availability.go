package dto

// SubmitAvailabilityRequest upserts a staff member's availability for a
// month ("2026-09"). Days maps day-of-month to "available"/"unavailable";
// days left out stay unknown.
type SubmitAvailabilityRequest struct {
	Month string         `json:"month" binding:"required,len=7"`
	Days  map[int]string `json:"days" binding:"required"`
}

// UnlockAvailabilityRequest lets a manager reopen a locked record.
type UnlockAvailabilityRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
