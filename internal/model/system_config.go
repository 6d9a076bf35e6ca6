package model

import "time"

// Equity window options for the fair-distribution ranking factor.
const (
	EquityWindowWeek  = "week"
	EquityWindowMonth = "month"
	EquityWindowAll   = "all"
)

// SystemConfig is the single row of engine-wide settings.
type SystemConfig struct {
	Singleton           bool      `gorm:"primaryKey;default:true" json:"-"`
	EquityWindow        string    `gorm:"size:10;not null;default:month" json:"equity_window"`
	RequireAvailability bool      `gorm:"not null;default:false" json:"require_availability"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	UpdatedBy           string    `gorm:"type:uuid" json:"updated_by,omitempty"`
}

func (SystemConfig) TableName() string { return "system_config" }
