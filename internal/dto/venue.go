package dto

// CreateVenueRequest creates a venue.
type CreateVenueRequest struct {
	Name                    string `json:"name" binding:"required,max=200"`
	IsNetworked             bool   `json:"is_networked"`
	TipPoolEnabled          bool   `json:"tip_pool_enabled"`
	AvailabilityDeadlineDay int    `json:"availability_deadline_day" binding:"omitempty,min=1,max=28"`
}

// UpdateVenueRequest patches a venue. Nil fields are left unchanged.
type UpdateVenueRequest struct {
	Name                    *string `json:"name" binding:"omitempty,max=200"`
	IsNetworked             *bool   `json:"is_networked"`
	TipPoolEnabled          *bool   `json:"tip_pool_enabled"`
	AvailabilityDeadlineDay *int    `json:"availability_deadline_day" binding:"omitempty,min=1,max=28"`
	IsActive                *bool   `json:"is_active"`
}
