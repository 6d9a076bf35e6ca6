package model

import "github.com/shopspring/decimal"

// Assignment places one staff member on one shift. A member can hold at
// most one assignment per shift; the unique (shift_id, staff_id) index
// backs that up.
type Assignment struct {
	AssignmentID string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	ShiftID      string          `gorm:"type:uuid;not null" json:"shift_id"`
	StaffID      string          `gorm:"type:uuid;not null" json:"staff_id"`
	Role         string          `gorm:"size:20;not null" json:"role"`
	IsLead       bool            `gorm:"not null;default:false" json:"is_lead"`
	IsOnCall     bool            `gorm:"not null;default:false" json:"is_on_call"`
	TipAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"tip_amount"`
	BaseModel
	Version int `gorm:"default:1" json:"version"`
}

func (Assignment) TableName() string { return "assignments" }
