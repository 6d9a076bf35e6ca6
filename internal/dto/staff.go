package dto

// CreateStaffRequest creates a staff member. VenueIDs become venue
// affiliations in the given preference order.
type CreateStaffRequest struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Email           string   `json:"email" binding:"required,email"`
	Role            string   `json:"role" binding:"required,oneof=bartender barback manager general_manager"`
	IsLead          bool     `json:"is_lead"`
	DayJobCutoff    string   `json:"day_job_cutoff" binding:"omitempty,len=5"`
	CrossVenueGrant bool     `json:"cross_venue_grant"`
	VenueIDs        []string `json:"venue_ids" binding:"omitempty,dive,uuid"`
}

// UpdateStaffRequest patches a staff member.
type UpdateStaffRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	IsLead          *bool   `json:"is_lead"`
	Status          *string `json:"status" binding:"omitempty,oneof=active inactive"`
	DayJobCutoff    *string `json:"day_job_cutoff" binding:"omitempty,len=5"`
	CrossVenueGrant *bool   `json:"cross_venue_grant"`
}

// SetVenuesRequest replaces a staff member's venue affiliations with the
// given venues, in preference order.
type SetVenuesRequest struct {
	VenueIDs []string `json:"venue_ids" binding:"required,min=0,dive,uuid"`
}

// ListStaffQuery filters the staff directory.
type ListStaffQuery struct {
	PaginationRequest
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
	Role    string `form:"role" binding:"omitempty,oneof=bartender barback manager general_manager"`
	Status  string `form:"status" binding:"omitempty,oneof=active inactive"`
}
