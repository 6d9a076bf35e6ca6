package model

import "time"

// Override statuses. Pending requests are resolved exactly once.
const (
	OverrideStatusPending  = "pending"
	OverrideStatusApproved = "approved"
	OverrideStatusDeclined = "declined"
)

// Override is a request to place a staff member on a shift despite a
// validation conflict. Only the member it names may resolve it. The
// requested role, lead and on-call flags are frozen at request time so an
// approval commits exactly what the manager asked for.
type Override struct {
	OverrideID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"override_id"`
	ShiftID       string     `gorm:"type:uuid;not null" json:"shift_id"`
	StaffID       string     `gorm:"type:uuid;not null" json:"staff_id"`
	RequestedBy   string     `gorm:"type:uuid;not null" json:"requested_by"`
	ViolationType string     `gorm:"size:50;not null" json:"violation_type"`
	Reason        string     `gorm:"size:500;not null" json:"reason"`
	Role          string     `gorm:"size:20;not null" json:"role"`
	IsLead        bool       `gorm:"not null;default:false" json:"is_lead"`
	IsOnCall      bool       `gorm:"not null;default:false" json:"is_on_call"`
	Status        string     `gorm:"size:20;not null;default:pending" json:"status"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	VersionedModel
}

func (Override) TableName() string { return "overrides" }

// IsResolved reports whether the override reached a terminal state.
func (o *Override) IsResolved() bool {
	return o.Status != OverrideStatusPending
}
