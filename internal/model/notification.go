package model

import "time"

// Notification types.
const (
	NotificationOverrideRequested = "override_requested"
	NotificationOverrideResolved  = "override_resolved"
	NotificationShiftAssigned     = "shift_assigned"
	NotificationShiftUnassigned   = "shift_unassigned"
	NotificationTipsPublished     = "tips_published"
	NotificationTradePosted       = "trade_posted"
)

// Notification is an in-app message for one staff member.
// ReferenceID points at the shift or override that triggered it.
type Notification struct {
	NotificationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	RecipientID    string    `gorm:"type:uuid;not null" json:"recipient_id"`
	Type           string    `gorm:"size:50;not null" json:"type"`
	Message        string    `gorm:"size:500;not null" json:"message"`
	ReferenceID    string    `gorm:"type:uuid" json:"reference_id,omitempty"`
	IsRead         bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
