package dto

// CreateShiftRequest creates a shift. Times are "HH:MM"; an end at or
// before the start means the shift runs past midnight.
type CreateShiftRequest struct {
	VenueID            string `json:"venue_id" binding:"required,uuid"`
	ShiftDate          string `json:"shift_date" binding:"required,datetime=2006-01-02"`
	StartTime          string `json:"start_time" binding:"required,len=5"`
	EndTime            string `json:"end_time" binding:"required,len=5"`
	BartendersRequired int    `json:"bartenders_required" binding:"min=0"`
	BarbacksRequired   int    `json:"barbacks_required" binding:"min=0"`
	LeadsRequired      int    `json:"leads_required" binding:"min=0"`
	EventName          string `json:"event_name" binding:"omitempty,max=200"`
}

// UpdateShiftRequest patches a shift.
type UpdateShiftRequest struct {
	StartTime          *string `json:"start_time" binding:"omitempty,len=5"`
	EndTime            *string `json:"end_time" binding:"omitempty,len=5"`
	BartendersRequired *int    `json:"bartenders_required" binding:"omitempty,min=0"`
	BarbacksRequired   *int    `json:"barbacks_required" binding:"omitempty,min=0"`
	LeadsRequired      *int    `json:"leads_required" binding:"omitempty,min=0"`
	EventName          *string `json:"event_name" binding:"omitempty,max=200"`
}

// ListShiftsQuery filters shifts by venue and date range.
type ListShiftsQuery struct {
	PaginationRequest
	VenueID   string `form:"venue_id" binding:"omitempty,uuid"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// TradeShiftRequest marks a shift as up for trade.
type TradeShiftRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}
