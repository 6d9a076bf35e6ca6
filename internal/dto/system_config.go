package dto

// UpdateSystemConfigRequest patches the engine-wide settings row.
type UpdateSystemConfigRequest struct {
	EquityWindow        *string `json:"equity_window" binding:"omitempty,oneof=week month all"`
	RequireAvailability *bool   `json:"require_availability"`
}
