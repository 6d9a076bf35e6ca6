package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Day availability statuses. A day missing from the map is "unknown":
// the member never said either way.
const (
	DayAvailable   = "available"
	DayUnavailable = "unavailable"
)

// DayMap maps day-of-month (1-31) to an availability status.
// Stored as a JSONB column.
type DayMap map[int]string

// Value implements driver.Valuer.
func (m DayMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *DayMap) Scan(value interface{}) error {
	if value == nil {
		*m = DayMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into DayMap", value)
	}
	if len(data) == 0 {
		*m = DayMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Status returns the stored status for a day, or "" when unknown.
func (m DayMap) Status(day int) string {
	if m == nil {
		return ""
	}
	return m[day]
}

// AvailabilityRecord is one staff member's availability for one month
// ("2026-09"). Records lock at the venue deadline; a manager can grant a
// one-shot unlock afterwards.
type AvailabilityRecord struct {
	RecordID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	StaffID      string     `gorm:"type:uuid;not null" json:"staff_id"`
	Month        string     `gorm:"size:7;not null" json:"month"`
	Days         DayMap     `gorm:"type:jsonb;not null;default:'{}'" json:"days"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	LockedAt     *time.Time `json:"locked_at,omitempty"`
	IsLocked     bool       `gorm:"not null;default:false" json:"is_locked"`
	UnlockedBy   string     `gorm:"type:uuid" json:"unlocked_by,omitempty"`
	UnlockReason string     `gorm:"size:500" json:"unlock_reason,omitempty"`
	UnlockedAt   *time.Time `json:"unlocked_at,omitempty"`
	VersionedModel
}

func (AvailabilityRecord) TableName() string { return "availability_records" }

// Editable reports whether the record can still be changed: either it has
// never locked, or a manager granted an unlock that has not been cleared.
func (r *AvailabilityRecord) Editable() bool {
	return !r.IsLocked || r.UnlockedAt != nil
}
