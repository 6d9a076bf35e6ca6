package model

import "time"

// Audit actions recorded against staffing decisions.
const (
	AuditActionValidationBypass   = "validation_bypass"
	AuditActionOverrideApproved   = "override_approved"
	AuditActionOverrideDeclined   = "override_declined"
	AuditActionAvailabilityUnlock = "availability_unlock"
	AuditActionTipsPublished      = "tips_published"
)

// AuditLog records a privileged action and who performed it.
type AuditLog struct {
	AuditLogID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_log_id"`
	ActorID    string    `gorm:"type:uuid;not null" json:"actor_id"`
	Action     string    `gorm:"size:50;not null" json:"action"`
	ShiftID    string    `gorm:"type:uuid" json:"shift_id,omitempty"`
	StaffID    string    `gorm:"type:uuid" json:"staff_id,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
